package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tally/internal/adapters/logger"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// NodeID is the unique identifier for the configuration Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*domain.Config]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return Resolve(NewLoader(), log), nil
		},
	})
}

// debugSwitch is implemented by loggers whose level can be raised at runtime.
type debugSwitch interface {
	SetDebug(enabled bool)
}

// Resolve loads the configuration, falling back to defaults with a warning
// when the file is unusable, and raises the log level when debug is on.
func Resolve(loader ports.ConfigLoader, log ports.Logger) *domain.Config {
	cfg, err := loader.Load()
	if err != nil {
		log.Warn("ignoring config file: " + err.Error())
	}
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	if cfg.Debug {
		if sw, ok := log.(debugSwitch); ok {
			sw.SetDebug(true)
		}
	}
	return cfg
}
