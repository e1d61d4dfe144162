package refresh_test

import (
	"context"
	"os"
	"testing"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/engine/refresh"
	"pgregory.net/rapid"
)

// fakeCache reports a fixed modification time.
type fakeCache struct {
	modTime time.Time
	exists  bool
}

func (f *fakeCache) Stat(domain.CacheKind) (time.Time, bool, error) { return f.modTime, f.exists, nil }
func (f *fakeCache) Seed(domain.CacheKind) error                    { return nil }
func (f *fakeCache) Load(k domain.CacheKind) domain.UsagePayload    { return domain.UsagePayload{Kind: k} }
func (f *fakeCache) CreateTemp(domain.CacheKind) (*os.File, error)  { return nil, os.ErrInvalid }
func (f *fakeCache) Commit(domain.CacheKind, string) error          { return nil }
func (f *fakeCache) WriteDefault(domain.CacheKind) error            { return nil }
func (f *fakeCache) SweepTemp(time.Duration) (int, error)           { return 0, nil }

// freeLeases always grants the lease.
type freeLeases struct{}

func (freeLeases) ReclaimOrphan(domain.CacheKind) (bool, error) { return false, nil }
func (freeLeases) Acquire(k domain.CacheKind) (*domain.Lease, bool, error) {
	return &domain.Lease{Kind: k}, true, nil
}
func (freeLeases) Adopt(k domain.CacheKind, token string) *domain.Lease {
	return &domain.Lease{Kind: k, Token: token}
}
func (freeLeases) Release(*domain.Lease) error { return nil }

// countingDispatcher counts dispatched jobs.
type countingDispatcher struct{ n int }

func (d *countingDispatcher) Dispatch(context.Context, *domain.Lease) error {
	d.n++
	return nil
}

type nopLogger struct{}

func (nopLogger) Debug(string) {}
func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(error)  {}

func TestCoordinator_TriggersIffStale(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		kind := rapid.SampledFrom(domain.AllKinds()).Draw(rt, "kind")
		cfg := domain.DefaultConfig()
		window := cfg.Policy(kind).StaleAfter
		age := time.Duration(rapid.Int64Range(0, int64(3*window)).Draw(rt, "age"))
		exists := rapid.Bool().Draw(rt, "exists")

		base := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
		dispatcher := &countingDispatcher{}
		c := refresh.NewCoordinator(
			cfg,
			&fakeCache{modTime: base.Add(-age), exists: exists},
			freeLeases{},
			dispatcher,
			nopLogger{},
			refresh.WithClock(func() time.Time { return base }),
		)

		dispatched := c.MaybeRefresh(context.Background(), kind)

		want := !exists || age > window
		if dispatched != want {
			rt.Fatalf("exists=%v age=%s window=%s: dispatched=%v, want %v", exists, age, window, dispatched, want)
		}
		if dispatcher.n != map[bool]int{true: 1, false: 0}[want] {
			rt.Fatalf("dispatch count %d", dispatcher.n)
		}
	})
}
