package domain

import (
	"os"
	"path/filepath"
	"time"
)

// Environment variables shared by the loader, the logger and the dispatcher.
const (
	// ConfigEnv points at an explicit config file.
	ConfigEnv = "TALLY_CONFIG"

	// StateDirEnv overrides the shared state directory. The dispatcher sets it
	// for the refresh job so parent and child agree on the directory.
	StateDirEnv = "TALLY_STATE_DIR"

	// MaxMemoryEnv caps the usage command's memory, in megabytes.
	MaxMemoryEnv = "TALLY_FETCH_MAX_MEMORY_MB"

	// DebugEnv enables debug logging when set to "1".
	DebugEnv = "TALLY_DEBUG"
)

const (
	// StateDirName is the name of the shared state directory under the system temp dir.
	StateDirName = "tally"

	// SessionsDirName holds one timestamp file per session.
	SessionsDirName = "sessions"

	// CacheFileExt is the extension of the cached usage documents.
	CacheFileExt = ".json"

	// LockDirExt is the suffix of the per-kind lock marker directories.
	LockDirExt = ".lock"

	// TimestampFileExt is the extension of session timestamp files.
	TimestampFileExt = ".ts"

	// ErrorLogFile is the name of the fetch diagnostics log.
	ErrorLogFile = "fetch-errors.log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600

	// MaxEventBytes caps how much of stdin is read as an event payload.
	MaxEventBytes = 1 << 20

	// TimestampRetention is the age after which session timestamps are swept.
	TimestampRetention = 24 * time.Hour
)

// DefaultStateDir returns the shared directory all status-line processes coordinate through.
func DefaultStateDir() string {
	return filepath.Join(os.TempDir(), StateDirName)
}

// CachePath returns the live cache file for a kind.
func CachePath(stateDir string, kind CacheKind) string {
	return filepath.Join(stateDir, kind.String()+CacheFileExt)
}

// LockPath returns the lock marker directory for a kind.
func LockPath(stateDir string, kind CacheKind) string {
	return filepath.Join(stateDir, kind.String()+LockDirExt)
}

// SessionsPath returns the directory holding session timestamp files.
func SessionsPath(stateDir string) string {
	return filepath.Join(stateDir, SessionsDirName)
}

// TimestampPath returns the timestamp file of a resolved session identifier.
func TimestampPath(stateDir, sessionID string) string {
	return filepath.Join(SessionsPath(stateDir), sessionID+TimestampFileExt)
}

// ErrorLogPath returns the fetch diagnostics log path.
func ErrorLogPath(stateDir string) string {
	return filepath.Join(stateDir, ErrorLogFile)
}
