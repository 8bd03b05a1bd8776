package versions

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the version source factory Graft node.
	NodeID graft.ID = "adapter.version_sources"
	// EnvironmentNodeID is the unique identifier for the process environment Graft node.
	EnvironmentNodeID graft.ID = "adapter.environment"
)

func init() {
	graft.Register(graft.Node[ports.VersionSourceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionSourceFactory, error) {
			return NewFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.Environment]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Environment, error) {
			return OSEnvironment{}, nil
		},
	})
}
