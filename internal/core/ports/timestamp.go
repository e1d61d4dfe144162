package ports

import "time"

// TimestampStore tracks when each session last submitted a prompt.
// Every session owns its own file; only the sweep touches foreign files.
//
//go:generate go run go.uber.org/mock/mockgen -source=timestamp.go -destination=mocks/mock_timestamp.go -package=mocks
type TimestampStore interface {
	// RecordPromptSubmitted stores the current time for the session.
	RecordPromptSubmitted(sessionID string) error

	// Elapsed returns the time since the session's last prompt, if known.
	Elapsed(sessionID string) (time.Duration, bool)

	// Remove forgets the session.
	Remove(sessionID string) error

	// Sweep deletes timestamps older than maxAge and returns how many were removed.
	Sweep(maxAge time.Duration) (int, error)
}
