package refresh

import (
	"context"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Options selects what a Refresher run does.
type Options struct {
	// Kinds to refresh. Empty means all kinds.
	Kinds []domain.CacheKind
	// Leased means the caller already holds the locks, created by the
	// dispatching process.
	Leased bool
	// LeaseToken identifies the dispatched lease in logs.
	LeaseToken string
}

// Result is the outcome of refreshing one kind.
type Result struct {
	Kind domain.CacheKind
	// Skipped is set when another process held the lock.
	Skipped bool
	Err     error
}

// Refresher runs fetches in the foreground, one goroutine per kind.
type Refresher struct {
	leases  ports.LeaseManager
	fetcher ports.Fetcher
	logger  ports.Logger
}

// NewRefresher creates a Refresher.
func NewRefresher(leases ports.LeaseManager, fetcher ports.Fetcher, logger ports.Logger) *Refresher {
	return &Refresher{
		leases:  leases,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Refresh fetches the selected kinds concurrently. Each kind holds its own
// lease, which is released when its fetch completes, whatever the outcome.
// Results are returned in the order of opts.Kinds.
func (r *Refresher) Refresh(ctx context.Context, opts Options) []Result {
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = domain.AllKinds()
	}

	results := make([]Result, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			results[i] = r.refreshOne(gctx, kind, opts)
			// Kinds are independent; one failing must not cancel the other.
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Refresher) refreshOne(ctx context.Context, kind domain.CacheKind, opts Options) Result {
	result := Result{Kind: kind}

	var lease *domain.Lease
	if opts.Leased {
		lease = r.leases.Adopt(kind, opts.LeaseToken)
	} else {
		if _, err := r.leases.ReclaimOrphan(kind); err != nil {
			r.logger.Debug(kind.String() + ": reclaim failed: " + err.Error())
		}
		acquired, ok, err := r.leases.Acquire(kind)
		if err != nil {
			result.Err = err
			return result
		}
		if !ok {
			result.Skipped = true
			return result
		}
		lease = acquired
	}

	defer func() {
		if err := r.leases.Release(lease); err != nil {
			r.logger.Debug(kind.String() + ": release failed: " + err.Error())
		}
	}()

	result.Err = r.fetcher.Fetch(ctx, kind)
	return result
}
