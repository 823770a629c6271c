package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bndl/internal/adapters/cache"
	"go.trai.ch/bndl/internal/adapters/config"
	"go.trai.ch/bndl/internal/adapters/editor"
	"go.trai.ch/bndl/internal/adapters/logger"
	"go.trai.ch/bndl/internal/adapters/scan"
	"go.trai.ch/bndl/internal/core/ports"
)

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			config.NodeID,
			editor.NodeID,
			logger.NodeID,
			scan.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			bundleCache, err := graft.Dep[ports.BundleCache](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.Scanner](ctx)
			if err != nil {
				return nil, err
			}
			launcher, err := graft.Dep[ports.EditorLauncher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(cfg, bundleCache, scanner, launcher, log),
				Config: cfg,
				Logger: log,
			}, nil
		},
	})
}
