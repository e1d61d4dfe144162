package ports

import (
	"context"

	"go.trai.ch/tally/internal/core/domain"
)

// Dispatcher starts a refresh job for a held lease without waiting for it.
// The job owns the lease from then on and releases it when it finishes.
//
//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks
type Dispatcher interface {
	Dispatch(ctx context.Context, lease *domain.Lease) error
}
