package ports

import "go.trai.ch/tally/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the resolved configuration. On error the returned config
	// still holds usable defaults.
	Load() (*domain.Config, error)
}
