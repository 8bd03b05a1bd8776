// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/buildinfo"
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/config"
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/fs"
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/logger"
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/shell"
	_ "github.com/palantir/gradle-plugin-testing/internal/adapters/versions"
	// Register app and engine nodes.
	_ "github.com/palantir/gradle-plugin-testing/internal/app"
	_ "github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
)
