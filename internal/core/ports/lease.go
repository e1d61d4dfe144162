package ports

import "go.trai.ch/tally/internal/core/domain"

// LeaseManager grants at most one refresh per cache kind across processes.
// Exclusion is advisory: a marker older than the orphan threshold may be
// reclaimed by anyone.
//
//go:generate go run go.uber.org/mock/mockgen -source=lease.go -destination=mocks/mock_lease.go -package=mocks
type LeaseManager interface {
	// ReclaimOrphan deletes the kind's lock marker if it outlived the orphan threshold.
	// It reports whether a marker was removed.
	ReclaimOrphan(kind domain.CacheKind) (bool, error)

	// Acquire atomically creates the kind's lock marker.
	// ok is false when another process already holds it.
	Acquire(kind domain.CacheKind) (lease *domain.Lease, ok bool, err error)

	// Adopt returns a handle to a marker created by another process on our behalf.
	Adopt(kind domain.CacheKind, token string) *domain.Lease

	// Release removes the lock marker. Releasing a missing marker is not an error.
	Release(lease *domain.Lease) error
}
