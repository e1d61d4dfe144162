package domain

import "time"

// Lease is the right to refresh one cache kind, backed by a lock marker.
type Lease struct {
	Kind CacheKind
	// Token identifies the acquisition in diagnostics. Markers carry no payload,
	// so the token is never compared against the filesystem.
	Token      string
	Path       string
	AcquiredAt time.Time
}

// IsStale reports whether a cache written at modTime needs a refresh.
// The window is exclusive: a cache exactly window old is still fresh.
func IsStale(now, modTime time.Time, window time.Duration) bool {
	return now.Sub(modTime) > window
}

// IsOrphaned reports whether a lock marker created at markerTime has outlived
// its owner and may be reclaimed.
func IsOrphaned(now, markerTime time.Time, ttl time.Duration) bool {
	return now.Sub(markerTime) > ttl
}
