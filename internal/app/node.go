package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"github.com/palantir/gradle-plugin-testing/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"github.com/palantir/gradle-plugin-testing/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/palantir/gradle-plugin-testing/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"github.com/palantir/gradle-plugin-testing/internal/adapters/versions" //nolint:depguard // Wired in app layer
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
	"github.com/palantir/gradle-plugin-testing/internal/engine/propagate"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			propagate.NodeID,
			shell.NodeID,
			versions.NodeID,
			versions.EnvironmentNodeID,
			fs.WriterNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	task, err := graft.Dep[*propagate.Task](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.VersionSourceFactory](ctx)
	if err != nil {
		return nil, err
	}

	env, err := graft.Dep[ports.Environment](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.LineWriter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, task, executor, sources, writer, env, log), nil
}
