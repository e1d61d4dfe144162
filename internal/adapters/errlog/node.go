package errlog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/config"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the fetch error log Graft node.
const NodeID graft.ID = "adapter.error_log"

func init() {
	graft.Register(graft.Node[ports.ErrorLog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ErrorLog, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(domain.ErrorLogPath(cfg.StateDir), cfg.ErrorLogMaxKB), nil
		},
	})
}
