package refresh_test

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/cache"
	"go.trai.ch/tally/internal/adapters/lease"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/engine/refresh"
)

// atomicDispatcher counts jobs and leaves the lease held, as a detached job would.
type atomicDispatcher struct{ n atomic.Int32 }

func (d *atomicDispatcher) Dispatch(context.Context, *domain.Lease) error {
	d.n.Add(1)
	return nil
}

func newIntegration(t *testing.T, clock func() time.Time) (string, *refresh.Coordinator, *atomicDispatcher) {
	t.Helper()
	dir := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.StateDir = dir

	dispatcher := &atomicDispatcher{}
	opts := []refresh.Option{}
	if clock != nil {
		opts = append(opts, refresh.WithClock(clock))
	}
	c := refresh.NewCoordinator(
		cfg,
		cache.NewStore(dir),
		lease.NewManager(dir, cfg.LockOrphanAfter),
		dispatcher,
		nopLogger{},
		opts...,
	)
	return dir, c, dispatcher
}

func TestIntegration_ConcurrentInvocationsDispatchOnce(t *testing.T) {
	t.Parallel()

	dir, c, dispatcher := newIntegration(t, nil)

	var wg sync.WaitGroup
	for range 24 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.MaybeRefresh(context.Background(), domain.KindBlocks)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), dispatcher.n.Load())
	assert.DirExists(t, domain.LockPath(dir, domain.KindBlocks))

	data, err := os.ReadFile(domain.CachePath(dir, domain.KindBlocks))
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocks":[]}`, string(data))
}

func TestIntegration_SecondInvocationSeesLock(t *testing.T) {
	t.Parallel()

	later := time.Now().Add(time.Hour)
	_, c, dispatcher := newIntegration(t, func() time.Time { return later })

	assert.True(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
	assert.False(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
	assert.Equal(t, int32(1), dispatcher.n.Load())
}

func TestIntegration_OrphanedLockIsReclaimed(t *testing.T) {
	t.Parallel()

	dir, c, dispatcher := newIntegration(t, nil)
	lockPath := domain.LockPath(dir, domain.KindBlocks)
	require.NoError(t, os.MkdirAll(lockPath, 0o750))
	old := time.Now().Add(-61 * time.Second)
	require.NoError(t, os.Chtimes(lockPath, old, old))

	assert.True(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
	assert.Equal(t, int32(1), dispatcher.n.Load())

	info, err := os.Stat(lockPath)
	require.NoError(t, err)
	assert.True(t, info.ModTime().After(old), "marker must be recreated by the new owner")
}

func TestIntegration_FreshLockBlocksRefresh(t *testing.T) {
	t.Parallel()

	dir, c, dispatcher := newIntegration(t, nil)
	lockPath := domain.LockPath(dir, domain.KindBlocks)
	require.NoError(t, os.MkdirAll(lockPath, 0o750))
	recent := time.Now().Add(-59 * time.Second)
	require.NoError(t, os.Chtimes(lockPath, recent, recent))

	assert.False(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
	assert.Zero(t, dispatcher.n.Load())
	assert.FileExists(t, domain.CachePath(dir, domain.KindBlocks), "seeding happens even when the lock is held")
}
