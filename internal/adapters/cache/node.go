package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bndl/internal/adapters/config"
	"go.trai.ch/bndl/internal/adapters/fingerprint"
	"go.trai.ch/bndl/internal/adapters/logger"
	"go.trai.ch/bndl/internal/core/ports"
)

// NodeID is the unique identifier for the bundle cache Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.BundleCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fingerprint.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BundleCache, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			collector, err := graft.Dep[*fingerprint.Collector](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(cfg.CacheDir, collector, log), nil
		},
	})
}
