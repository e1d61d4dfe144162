package lease_test

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/adapters/lease"
	"go.trai.ch/tally/internal/core/domain"
)

const orphanAfter = 60 * time.Second

func TestManager_AcquireRelease(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	m := lease.NewManager(dir, orphanAfter)

	l, ok, err := m.Acquire(domain.KindBlocks)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.LockPath(dir, domain.KindBlocks), l.Path)
	assert.NotEmpty(t, l.Token)
	assert.DirExists(t, l.Path)

	_, ok, err = m.Acquire(domain.KindBlocks)
	require.NoError(t, err)
	assert.False(t, ok, "second acquire must fail while the marker exists")

	require.NoError(t, m.Release(l))
	assert.NoDirExists(t, l.Path)
	require.NoError(t, m.Release(l), "release is idempotent")

	_, ok, err = m.Acquire(domain.KindBlocks)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestManager_KindsAreIndependent(t *testing.T) {
	t.Parallel()

	m := lease.NewManager(t.TempDir(), orphanAfter)

	_, ok, err := m.Acquire(domain.KindBlocks)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = m.Acquire(domain.KindDaily)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestManager_ConcurrentAcquire(t *testing.T) {
	t.Parallel()

	m := lease.NewManager(t.TempDir(), orphanAfter)

	var (
		wg      sync.WaitGroup
		winners atomic.Int32
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := m.Acquire(domain.KindDaily)
			assert.NoError(t, err)
			if ok {
				winners.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}

func TestManager_ReclaimOrphan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		age     time.Duration
		reclaim bool
	}{
		{name: "fresh", age: 5 * time.Second, reclaim: false},
		{name: "exactly at threshold", age: 60 * time.Second, reclaim: false},
		{name: "past threshold", age: 61 * time.Second, reclaim: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			created := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
			now := created.Add(tt.age)
			m := lease.NewManager(dir, orphanAfter, lease.WithClock(func() time.Time { return now }))

			l, ok, err := m.Acquire(domain.KindBlocks)
			require.NoError(t, err)
			require.True(t, ok)
			require.NoError(t, os.Chtimes(l.Path, created, created))

			removed, err := m.ReclaimOrphan(domain.KindBlocks)
			require.NoError(t, err)
			assert.Equal(t, tt.reclaim, removed)

			_, ok, err = m.Acquire(domain.KindBlocks)
			require.NoError(t, err)
			assert.Equal(t, tt.reclaim, ok)
		})
	}
}

func TestManager_ReclaimWithoutMarker(t *testing.T) {
	t.Parallel()

	removed, err := lease.NewManager(t.TempDir(), orphanAfter).ReclaimOrphan(domain.KindDaily)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestManager_AdoptReleasesParentMarker(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	parent := lease.NewManager(dir, orphanAfter)
	child := lease.NewManager(dir, orphanAfter)

	l, ok, err := parent.Acquire(domain.KindDaily)
	require.NoError(t, err)
	require.True(t, ok)

	adopted := child.Adopt(domain.KindDaily, l.Token)
	assert.Equal(t, l.Path, adopted.Path)
	assert.Equal(t, l.Token, adopted.Token)

	require.NoError(t, child.Release(adopted))
	assert.NoDirExists(t, l.Path)
}
