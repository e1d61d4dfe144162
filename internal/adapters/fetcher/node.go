package fetcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/cache"
	"go.trai.ch/tally/internal/adapters/config"
	"go.trai.ch/tally/internal/adapters/errlog"
	"go.trai.ch/tally/internal/adapters/logger"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the usage fetcher Graft node.
const NodeID graft.ID = "adapter.fetcher"

func init() {
	graft.Register(graft.Node[ports.Fetcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, cache.NodeID, errlog.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Fetcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.UsageCache](ctx)
			if err != nil {
				return nil, err
			}
			errs, err := graft.Dep[ports.ErrorLog](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg, store, errs, log), nil
		},
	})
}
