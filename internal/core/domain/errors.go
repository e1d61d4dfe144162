package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownCacheKind is returned when a cache kind name is not recognized.
	ErrUnknownCacheKind = zerr.New("unknown cache kind")

	// ErrStateDirCreateFailed is returned when the shared state directory cannot be created.
	ErrStateDirCreateFailed = zerr.New("failed to create state directory")

	// ErrCacheReadFailed is returned when a cache file cannot be inspected.
	ErrCacheReadFailed = zerr.New("failed to read usage cache")

	// ErrCacheSeedFailed is returned when the default cache payload cannot be written.
	ErrCacheSeedFailed = zerr.New("failed to seed usage cache")

	// ErrCacheTempFailed is returned when a temporary cache file cannot be created.
	ErrCacheTempFailed = zerr.New("failed to create temporary cache file")

	// ErrCacheCommitFailed is returned when a fetched payload cannot replace the live cache.
	ErrCacheCommitFailed = zerr.New("failed to commit usage cache")

	// ErrCacheSweepFailed is returned when the state directory cannot be listed for stale scratch files.
	ErrCacheSweepFailed = zerr.New("failed to sweep cache scratch files")

	// ErrLeaseAcquireFailed is returned when a lock marker cannot be created for reasons
	// other than contention.
	ErrLeaseAcquireFailed = zerr.New("failed to acquire refresh lease")

	// ErrLeaseReleaseFailed is returned when a lock marker cannot be removed.
	ErrLeaseReleaseFailed = zerr.New("failed to release refresh lease")

	// ErrLeaseReclaimFailed is returned when an orphaned lock marker cannot be removed.
	ErrLeaseReclaimFailed = zerr.New("failed to reclaim orphaned lease")

	// ErrDispatchFailed is returned when a background refresh cannot be started.
	ErrDispatchFailed = zerr.New("failed to dispatch background refresh")

	// ErrUsageCommandUnavailable is returned when neither the usage command nor its fallback runner is usable.
	ErrUsageCommandUnavailable = zerr.New("usage command unavailable")

	// ErrFetchFailed is returned when the usage command exits with an error.
	ErrFetchFailed = zerr.New("usage command failed")

	// ErrFetchTimeout is returned when the usage command exceeds its deadline.
	ErrFetchTimeout = zerr.New("usage command timed out")

	// ErrFetchEmptyOutput is returned when the usage command produced no output.
	ErrFetchEmptyOutput = zerr.New("usage command produced no output")

	// ErrFetchInvalidOutput is returned when the usage command output is not valid JSON.
	ErrFetchInvalidOutput = zerr.New("usage command produced invalid JSON")

	// ErrTimestampWriteFailed is returned when a session timestamp cannot be written.
	ErrTimestampWriteFailed = zerr.New("failed to write session timestamp")

	// ErrTimestampSweepFailed is returned when the timestamp directory cannot be listed.
	ErrTimestampSweepFailed = zerr.New("failed to sweep session timestamps")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEventDecodeFailed is returned when the stdin event is not valid JSON.
	ErrEventDecodeFailed = zerr.New("failed to decode event")
)
