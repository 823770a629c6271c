package fingerprint

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bndl/internal/adapters/logger"
	"go.trai.ch/bndl/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint collector Graft node.
const NodeID graft.ID = "adapter.fingerprint"

func init() {
	graft.Register(graft.Node[*Collector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Collector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCollector(log), nil
		},
	})
}
