package lease

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/config"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the lease manager Graft node.
const NodeID graft.ID = "adapter.lease_manager"

func init() {
	graft.Register(graft.Node[ports.LeaseManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.LeaseManager, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(cfg.StateDir, cfg.LockOrphanAfter), nil
		},
	})
}
