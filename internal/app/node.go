package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/cache"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/errlog"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/adapters/timestamp" //nolint:depguard // Wired in app layer
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/tally/internal/engine/refresh"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			refresh.CoordinatorNodeID,
			refresh.RefresherNodeID,
			cache.NodeID,
			timestamp.NodeID,
			git.NodeID,
			render.NodeID,
			errlog.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	coordinator, err := graft.Dep[*refresh.Coordinator](ctx)
	if err != nil {
		return nil, err
	}

	refresher, err := graft.Dep[*refresh.Refresher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.UsageCache](ctx)
	if err != nil {
		return nil, err
	}

	timestamps, err := graft.Dep[ports.TimestampStore](ctx)
	if err != nil {
		return nil, err
	}

	branches, err := graft.Dep[ports.BranchResolver](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
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

	return New(cfg, coordinator, refresher, store, timestamps, branches, renderer, errs, log), nil
}
