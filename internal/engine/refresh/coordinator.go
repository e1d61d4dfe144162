// Package refresh keeps the usage caches fresh without blocking the status line.
package refresh

import (
	"context"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
)

// Coordinator decides per invocation whether a cache kind needs a background
// refresh and makes sure at most one is in flight per kind.
type Coordinator struct {
	cfg        *domain.Config
	cache      ports.UsageCache
	leases     ports.LeaseManager
	dispatcher ports.Dispatcher
	logger     ports.Logger
	now        func() time.Time
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithClock replaces the wall clock used for staleness checks.
func WithClock(now func() time.Time) Option {
	return func(c *Coordinator) {
		c.now = now
	}
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(
	cfg *domain.Config,
	cache ports.UsageCache,
	leases ports.LeaseManager,
	dispatcher ports.Dispatcher,
	logger ports.Logger,
	opts ...Option,
) *Coordinator {
	c := &Coordinator{
		cfg:        cfg,
		cache:      cache,
		leases:     leases,
		dispatcher: dispatcher,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaybeRefreshAll runs MaybeRefresh for every cache kind.
func (c *Coordinator) MaybeRefreshAll(ctx context.Context) {
	for _, kind := range domain.AllKinds() {
		c.MaybeRefresh(ctx, kind)
	}
}

// MaybeRefresh seeds a missing cache and dispatches a refresh job when the
// cache is missing or stale. It reports whether a job was dispatched, which
// says nothing about whether the fetch will succeed. Errors are logged at
// debug level and never returned.
func (c *Coordinator) MaybeRefresh(ctx context.Context, kind domain.CacheKind) bool {
	modTime, exists, err := c.cache.Stat(kind)
	if err != nil {
		c.logger.Debug(kind.String() + ": stat failed: " + err.Error())
		return false
	}

	if !exists {
		if err := c.cache.Seed(kind); err != nil {
			c.logger.Debug(kind.String() + ": seed failed: " + err.Error())
		}
		return c.trigger(ctx, kind)
	}

	if !domain.IsStale(c.now(), modTime, c.cfg.Policy(kind).StaleAfter) {
		return false
	}
	return c.trigger(ctx, kind)
}

func (c *Coordinator) trigger(ctx context.Context, kind domain.CacheKind) bool {
	reclaimed, err := c.leases.ReclaimOrphan(kind)
	switch {
	case err != nil:
		c.logger.Debug(kind.String() + ": reclaim failed: " + err.Error())
	case reclaimed:
		c.logger.Debug(kind.String() + ": reclaimed orphaned lock")
	}

	lease, ok, err := c.leases.Acquire(kind)
	if err != nil {
		c.logger.Debug(kind.String() + ": acquire failed: " + err.Error())
		return false
	}
	if !ok {
		c.logger.Debug(kind.String() + ": refresh already in progress")
		return false
	}

	if err := c.dispatcher.Dispatch(ctx, lease); err != nil {
		c.logger.Debug(kind.String() + ": dispatch failed: " + err.Error())
		if rerr := c.leases.Release(lease); rerr != nil {
			c.logger.Debug(kind.String() + ": release failed: " + rerr.Error())
		}
		return false
	}

	c.logger.Debug(kind.String() + ": dispatched refresh " + lease.Token)
	return true
}
