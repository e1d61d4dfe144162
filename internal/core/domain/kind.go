// Package domain holds the usage cache model and the pure rules that govern it.
package domain

import "go.trai.ch/zerr"

// CacheKind identifies one of the independently cached usage documents.
type CacheKind int

const (
	// KindBlocks is the short-horizon "active block" usage document.
	KindBlocks CacheKind = iota
	// KindDaily is the aggregate usage document for the current day.
	KindDaily
)

// AllKinds returns every cache kind in refresh order.
func AllKinds() []CacheKind {
	return []CacheKind{KindBlocks, KindDaily}
}

// String returns the name used for file names, flags and logs.
func (k CacheKind) String() string {
	switch k {
	case KindBlocks:
		return "blocks"
	case KindDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// ParseCacheKind converts a kind name back into a CacheKind.
func ParseCacheKind(name string) (CacheKind, error) {
	switch name {
	case "blocks":
		return KindBlocks, nil
	case "daily":
		return KindDaily, nil
	default:
		return 0, zerr.With(ErrUnknownCacheKind, "kind", name)
	}
}
