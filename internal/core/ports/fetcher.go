package ports

import (
	"context"

	"go.trai.ch/tally/internal/core/domain"
)

// Fetcher refreshes one cache kind from the external usage command.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch runs the usage command and commits its output on success.
	// On failure the live document is left untouched.
	Fetch(ctx context.Context, kind domain.CacheKind) error
}
