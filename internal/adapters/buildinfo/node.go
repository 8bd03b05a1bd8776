package buildinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

// NodeID is the unique identifier for the build info store Graft node.
const NodeID graft.ID = "adapter.build_info_store"

func init() {
	graft.Register(graft.Node[ports.BuildInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BuildInfoStore, error) {
			return NewFileStore(), nil
		},
	})
}
