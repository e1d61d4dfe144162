package ports

import (
	"os"
	"time"

	"go.trai.ch/tally/internal/core/domain"
)

// UsageCache is the on-disk store holding one document per cache kind.
// Documents are only ever replaced whole, never mutated in place.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type UsageCache interface {
	// Stat returns the modification time of the live document and whether it exists.
	Stat(kind domain.CacheKind) (modTime time.Time, exists bool, err error)

	// Seed writes the empty default document unless one already exists.
	// It never clobbers a document committed concurrently by a fetch.
	Seed(kind domain.CacheKind) error

	// Load returns the cached document. Missing or malformed content yields
	// the empty default; Load never fails.
	Load(kind domain.CacheKind) domain.UsagePayload

	// CreateTemp opens a scratch file next to the live document.
	CreateTemp(kind domain.CacheKind) (*os.File, error)

	// Commit atomically replaces the live document with the scratch file at tmpPath.
	Commit(kind domain.CacheKind, tmpPath string) error

	// WriteDefault atomically replaces the live document with the empty default.
	WriteDefault(kind domain.CacheKind) error

	// SweepTemp removes scratch files older than maxAge that a killed fetch
	// left behind, returning how many were removed.
	SweepTemp(maxAge time.Duration) (int, error)
}
