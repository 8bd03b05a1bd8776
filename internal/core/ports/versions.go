// Package ports defines the core interfaces for the application.
package ports

import "github.com/palantir/gradle-plugin-testing/internal/core/domain"

// VersionSource loads the mapping from dependency coordinate to version.
//
//go:generate go run go.uber.org/mock/mockgen -source=versions.go -destination=mocks/mock_versions.go -package=mocks
type VersionSource interface {
	// Load reads the backing source and returns its entries.
	Load() (domain.VersionMap, error)
}

// Environment provides read access to environment variables.
type Environment interface {
	// LookupEnv returns the value of the variable and whether it is set.
	LookupEnv(key string) (string, bool)
}

// VersionSourceFactory selects the version source described by an environment.
type VersionSourceFactory interface {
	// FromEnvironment returns the source selected by the environment.
	FromEnvironment(env Environment) (VersionSource, error)
}
