package refresh_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports/mocks"
	"go.trai.ch/tally/internal/engine/refresh"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type coordinatorMocks struct {
	cache      *mocks.MockUsageCache
	leases     *mocks.MockLeaseManager
	dispatcher *mocks.MockDispatcher
}

func newCoordinator(t *testing.T) (*refresh.Coordinator, coordinatorMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := coordinatorMocks{
		cache:      mocks.NewMockUsageCache(ctrl),
		leases:     mocks.NewMockLeaseManager(ctrl),
		dispatcher: mocks.NewMockDispatcher(ctrl),
	}
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	c := refresh.NewCoordinator(
		domain.DefaultConfig(), m.cache, m.leases, m.dispatcher, logger,
		refresh.WithClock(func() time.Time { return now }),
	)
	return c, m
}

func TestCoordinator_AbsentCacheSeedsAndDispatches(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	lease := &domain.Lease{Kind: domain.KindBlocks, Token: "t1"}

	gomock.InOrder(
		m.cache.EXPECT().Stat(domain.KindBlocks).Return(time.Time{}, false, nil),
		m.cache.EXPECT().Seed(domain.KindBlocks).Return(nil),
		m.leases.EXPECT().ReclaimOrphan(domain.KindBlocks).Return(false, nil),
		m.leases.EXPECT().Acquire(domain.KindBlocks).Return(lease, true, nil),
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), lease).Return(nil),
	)

	assert.True(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
}

func TestCoordinator_FreshCacheDoesNothing(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	m.cache.EXPECT().Stat(domain.KindDaily).Return(now.Add(-5*time.Minute), true, nil)

	assert.False(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
}

func TestCoordinator_StaleCacheDispatches(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	lease := &domain.Lease{Kind: domain.KindDaily, Token: "t2"}

	m.cache.EXPECT().Stat(domain.KindDaily).Return(now.Add(-5*time.Minute-time.Second), true, nil)
	m.leases.EXPECT().ReclaimOrphan(domain.KindDaily).Return(false, nil)
	m.leases.EXPECT().Acquire(domain.KindDaily).Return(lease, true, nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), lease).Return(nil)

	assert.True(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
}

func TestCoordinator_ContentionSkips(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	m.cache.EXPECT().Stat(domain.KindBlocks).Return(now.Add(-time.Hour), true, nil)
	m.leases.EXPECT().ReclaimOrphan(domain.KindBlocks).Return(false, nil)
	m.leases.EXPECT().Acquire(domain.KindBlocks).Return(nil, false, nil)

	assert.False(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
}

func TestCoordinator_DispatchFailureReleasesLease(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	lease := &domain.Lease{Kind: domain.KindBlocks, Token: "t3"}

	m.cache.EXPECT().Stat(domain.KindBlocks).Return(now.Add(-time.Hour), true, nil)
	m.leases.EXPECT().ReclaimOrphan(domain.KindBlocks).Return(true, nil)
	m.leases.EXPECT().Acquire(domain.KindBlocks).Return(lease, true, nil)
	m.dispatcher.EXPECT().Dispatch(gomock.Any(), lease).Return(errors.New("fork failed"))
	m.leases.EXPECT().Release(lease).Return(nil)

	assert.False(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
}

func TestCoordinator_ErrorsAreAbsorbed(t *testing.T) {
	t.Parallel()

	t.Run("stat", func(t *testing.T) {
		t.Parallel()
		c, m := newCoordinator(t)
		m.cache.EXPECT().Stat(domain.KindBlocks).Return(time.Time{}, false, errors.New("permission denied"))

		assert.False(t, c.MaybeRefresh(context.Background(), domain.KindBlocks))
	})

	t.Run("seed and reclaim", func(t *testing.T) {
		t.Parallel()
		c, m := newCoordinator(t)
		lease := &domain.Lease{Kind: domain.KindDaily}

		m.cache.EXPECT().Stat(domain.KindDaily).Return(time.Time{}, false, nil)
		m.cache.EXPECT().Seed(domain.KindDaily).Return(errors.New("read-only"))
		m.leases.EXPECT().ReclaimOrphan(domain.KindDaily).Return(false, errors.New("stat failed"))
		m.leases.EXPECT().Acquire(domain.KindDaily).Return(lease, true, nil)
		m.dispatcher.EXPECT().Dispatch(gomock.Any(), lease).Return(nil)

		assert.True(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
	})

	t.Run("acquire", func(t *testing.T) {
		t.Parallel()
		c, m := newCoordinator(t)

		m.cache.EXPECT().Stat(domain.KindDaily).Return(now.Add(-time.Hour), true, nil)
		m.leases.EXPECT().ReclaimOrphan(domain.KindDaily).Return(false, nil)
		m.leases.EXPECT().Acquire(domain.KindDaily).Return(nil, false, errors.New("no space"))

		assert.False(t, c.MaybeRefresh(context.Background(), domain.KindDaily))
	})
}

func TestCoordinator_MaybeRefreshAll(t *testing.T) {
	t.Parallel()

	c, m := newCoordinator(t)
	m.cache.EXPECT().Stat(domain.KindBlocks).Return(now, true, nil)
	m.cache.EXPECT().Stat(domain.KindDaily).Return(now, true, nil)

	c.MaybeRefreshAll(context.Background())
}
