// Package timestamp persists the per-session "last prompt submitted" times.
package timestamp

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.TimestampStore with one small file per session.
type Store struct {
	stateDir string
	dir      string
	now      func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store under the state directory.
func NewStore(stateDir string, opts ...Option) *Store {
	s := &Store{
		stateDir: stateDir,
		dir:      domain.SessionsPath(stateDir),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RecordPromptSubmitted writes the current time as epoch seconds, replacing
// the previous value atomically.
func (s *Store) RecordPromptSubmitted(sessionID string) error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateDirCreateFailed.Error()), "dir", s.dir)
	}

	tmp, err := os.CreateTemp(s.dir, sessionID+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTimestampWriteFailed.Error()), "session", sessionID)
	}
	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(strconv.FormatInt(s.now().Unix(), 10)); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrTimestampWriteFailed.Error()), "session", sessionID)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTimestampWriteFailed.Error()), "session", sessionID)
	}

	if err := os.Rename(tmpName, domain.TimestampPath(s.stateDir, sessionID)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTimestampWriteFailed.Error()), "session", sessionID)
	}
	return nil
}

// Elapsed returns the time since the session's last recorded prompt.
func (s *Store) Elapsed(sessionID string) (time.Duration, bool) {
	//nolint:gosec // session ids are sanitized before they reach the store
	data, err := os.ReadFile(domain.TimestampPath(s.stateDir, sessionID))
	if err != nil {
		return 0, false
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return 0, false
	}

	elapsed := s.now().Sub(time.Unix(secs, 0))
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, true
}

// Remove deletes the session's timestamp. A missing file is not an error.
func (s *Store) Remove(sessionID string) error {
	err := os.Remove(domain.TimestampPath(s.stateDir, sessionID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrTimestampWriteFailed.Error()), "session", sessionID)
	}
	return nil
}

// Sweep removes timestamp files last written more than maxAge ago, along
// with scratch files an interrupted write left behind.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrTimestampSweepFailed.Error()), "dir", s.dir)
	}

	now := s.now()
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !sweepable(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

func sweepable(name string) bool {
	return strings.HasSuffix(name, domain.TimestampFileExt) || strings.HasSuffix(name, ".tmp")
}
