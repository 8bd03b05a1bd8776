package propagate

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/buildinfo"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/fs"
	"github.com/palantir/gradle-plugin-testing/internal/adapters/logger"
	"github.com/palantir/gradle-plugin-testing/internal/core/ports"
)

// NodeID is the unique identifier for the propagation task Graft node.
const NodeID graft.ID = "engine.propagate"

func init() {
	graft.Register(graft.Node[*Task]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			buildinfo.NodeID,
			fs.HasherNodeID,
			fs.VerifierNodeID,
			fs.WriterNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Task, error) {
			store, err := graft.Dep[ports.BuildInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			verifier, err := graft.Dep[ports.Verifier](ctx)
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
			return New(store, hasher, verifier, writer, log), nil
		},
	})
}
