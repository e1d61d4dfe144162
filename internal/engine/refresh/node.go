package refresh

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/cache"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/adapters/config"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/adapters/dispatch" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/adapters/fetcher"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/adapters/lease"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

const (
	// CoordinatorNodeID is the unique identifier for the refresh coordinator Graft node.
	CoordinatorNodeID graft.ID = "engine.refresh.coordinator"
	// RefresherNodeID is the unique identifier for the foreground refresher Graft node.
	RefresherNodeID graft.ID = "engine.refresh.refresher"
)

func init() {
	graft.Register(graft.Node[*Coordinator]{
		ID:        CoordinatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.NodeID,
			lease.NodeID,
			dispatch.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Coordinator, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.UsageCache](ctx)
			if err != nil {
				return nil, err
			}

			leases, err := graft.Dep[ports.LeaseManager](ctx)
			if err != nil {
				return nil, err
			}

			dispatcher, err := graft.Dep[ports.Dispatcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewCoordinator(cfg, store, leases, dispatcher, log), nil
		},
	})

	graft.Register(graft.Node[*Refresher]{
		ID:        RefresherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lease.NodeID,
			fetcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Refresher, error) {
			leases, err := graft.Dep[ports.LeaseManager](ctx)
			if err != nil {
				return nil, err
			}

			f, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewRefresher(leases, f, log), nil
		},
	})
}
