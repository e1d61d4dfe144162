package ports

import "go.trai.ch/tally/internal/core/domain"

// ErrorLog records fetch diagnostics in a size-capped, rotated file.
//
//go:generate go run go.uber.org/mock/mockgen -source=errlog.go -destination=mocks/mock_errlog.go -package=mocks
type ErrorLog interface {
	// Record appends one line describing a failed fetch.
	Record(kind domain.CacheKind, err error, detail string)

	// Close flushes pending lines.
	Close() error
}
