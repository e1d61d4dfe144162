// Package lease coordinates refreshes across processes with lock marker directories.
package lease

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// Manager implements ports.LeaseManager. A lease is held while the kind's
// marker directory exists; os.Mkdir is the atomic test-and-set.
type Manager struct {
	dir         string
	orphanAfter time.Duration
	now         func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces the wall clock used for orphan detection.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// NewManager creates a Manager keeping markers in dir.
func NewManager(dir string, orphanAfter time.Duration, opts ...Option) *Manager {
	m := &Manager{
		dir:         dir,
		orphanAfter: orphanAfter,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ReclaimOrphan removes the kind's marker when it is older than the orphan threshold.
func (m *Manager) ReclaimOrphan(kind domain.CacheKind) (bool, error) {
	path := domain.LockPath(m.dir, kind)

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrLeaseReclaimFailed.Error()), "path", path)
	}

	if !domain.IsOrphaned(m.now(), info.ModTime(), m.orphanAfter) {
		return false, nil
	}

	if err := os.RemoveAll(path); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrLeaseReclaimFailed.Error()), "path", path)
	}
	return true, nil
}

// Acquire creates the kind's marker. It returns ok=false without error when
// the marker already exists.
func (m *Manager) Acquire(kind domain.CacheKind) (*domain.Lease, bool, error) {
	if err := os.MkdirAll(m.dir, domain.DirPerm); err != nil {
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrStateDirCreateFailed.Error()), "dir", m.dir)
	}

	path := domain.LockPath(m.dir, kind)
	if err := os.Mkdir(path, domain.DirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, domain.ErrLeaseAcquireFailed.Error()), "path", path)
	}

	return &domain.Lease{
		Kind:       kind,
		Token:      uuid.NewString(),
		Path:       path,
		AcquiredAt: m.now(),
	}, true, nil
}

// Adopt returns a handle to a marker created on our behalf by another process.
func (m *Manager) Adopt(kind domain.CacheKind, token string) *domain.Lease {
	return &domain.Lease{
		Kind:       kind,
		Token:      token,
		Path:       domain.LockPath(m.dir, kind),
		AcquiredAt: m.now(),
	}
}

// Release removes the lease's marker. A marker that is already gone is fine.
func (m *Manager) Release(lease *domain.Lease) error {
	if lease == nil {
		return nil
	}
	if err := os.RemoveAll(lease.Path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrLeaseReleaseFailed.Error()), "path", lease.Path)
	}
	return nil
}
