// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/tally/internal/adapters/cache"
	_ "go.trai.ch/tally/internal/adapters/config"
	_ "go.trai.ch/tally/internal/adapters/dispatch"
	_ "go.trai.ch/tally/internal/adapters/errlog"
	_ "go.trai.ch/tally/internal/adapters/fetcher"
	_ "go.trai.ch/tally/internal/adapters/git"
	_ "go.trai.ch/tally/internal/adapters/lease"
	_ "go.trai.ch/tally/internal/adapters/logger"
	_ "go.trai.ch/tally/internal/adapters/render"
	_ "go.trai.ch/tally/internal/adapters/timestamp"
	// Register app and engine nodes.
	_ "go.trai.ch/tally/internal/app"
	_ "go.trai.ch/tally/internal/engine/refresh"
)
