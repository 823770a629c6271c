package editor

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bndl/internal/adapters/config"
	"go.trai.ch/bndl/internal/adapters/logger"
	"go.trai.ch/bndl/internal/core/ports"
)

// NodeID is the unique identifier for the editor launcher Graft node.
const NodeID graft.ID = "adapter.editor"

func init() {
	graft.Register(graft.Node[ports.EditorLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.EditorLauncher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(NewResolver(cfg.Editor), log), nil
		},
	})
}
