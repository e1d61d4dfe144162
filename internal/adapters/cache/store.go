// Package cache implements the on-disk usage cache shared by all status-line processes.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

const tempFileExt = ".tmp"

// Store implements ports.UsageCache with one JSON document per cache kind.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created lazily.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory the store writes to.
func (s *Store) Dir() string {
	return s.dir
}

// Stat returns the modification time of the kind's live document.
func (s *Store) Stat(kind domain.CacheKind) (time.Time, bool, error) {
	info, err := os.Stat(domain.CachePath(s.dir, kind))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "kind", kind.String())
	}
	return info.ModTime(), true, nil
}

// Seed writes the empty default document unless one already exists.
// The document is published with a hard link, which fails instead of
// replacing a file committed by a concurrent fetch.
func (s *Store) Seed(kind domain.CacheKind) error {
	path := domain.CachePath(s.dir, kind)

	tmpName, err := s.writeTemp(kind, domain.EmptyPayload(kind))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheSeedFailed.Error()), "kind", kind.String())
	}
	defer func() { _ = os.Remove(tmpName) }()

	linkErr := os.Link(tmpName, path)
	if linkErr == nil || errors.Is(linkErr, fs.ErrExist) {
		return nil
	}

	// Some filesystems have no hard links. Fall back to a checked rename.
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheSeedFailed.Error()), "kind", kind.String())
	}
	return nil
}

// Load returns the cached document, or the empty default when the file is
// missing, partial or malformed.
func (s *Store) Load(kind domain.CacheKind) domain.UsagePayload {
	payload := domain.UsagePayload{Kind: kind}

	//nolint:gosec // path is built from the state dir and a fixed kind name
	data, err := os.ReadFile(domain.CachePath(s.dir, kind))
	if err != nil || len(data) == 0 {
		return payload
	}

	switch kind {
	case domain.KindDaily:
		var report domain.DailyReport
		if json.Unmarshal(data, &report) == nil {
			payload.Daily = report
		}
	default:
		var report domain.BlocksReport
		if json.Unmarshal(data, &report) == nil {
			payload.Blocks = report
		}
	}
	return payload
}

// CreateTemp opens a scratch file in the state directory. Creating it next to
// the live document keeps the final rename on one filesystem.
func (s *Store) CreateTemp(kind domain.CacheKind) (*os.File, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	f, err := os.CreateTemp(s.dir, kind.String()+"-*"+tempFileExt)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheTempFailed.Error()), "kind", kind.String())
	}
	return f, nil
}

// Commit atomically replaces the live document with tmpPath.
func (s *Store) Commit(kind domain.CacheKind, tmpPath string) error {
	if err := os.Chmod(tmpPath, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCommitFailed.Error()), "kind", kind.String())
	}
	if err := os.Rename(tmpPath, domain.CachePath(s.dir, kind)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCommitFailed.Error()), "kind", kind.String())
	}
	return nil
}

// WriteDefault atomically replaces the live document with the empty default.
func (s *Store) WriteDefault(kind domain.CacheKind) error {
	tmpName, err := s.writeTemp(kind, domain.EmptyPayload(kind))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheCommitFailed.Error()), "kind", kind.String())
	}
	if err := s.Commit(kind, tmpName); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// SweepTemp removes scratch files in the state directory last written more
// than maxAge ago. A fetch killed before its cleanup runs leaves one behind.
func (s *Store) SweepTemp(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, domain.ErrCacheSweepFailed.Error()), "dir", s.dir)
	}

	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), tempFileExt) {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}

func (s *Store) writeTemp(kind domain.CacheKind, data []byte) (string, error) {
	f, err := s.CreateTemp(kind)
	if err != nil {
		return "", err
	}
	tmpName := f.Name()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return "", err
	}
	return tmpName, nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStateDirCreateFailed.Error()), "dir", s.dir)
	}
	return nil
}
