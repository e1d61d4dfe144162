//go:build !linux

package fetcher

// limitMemory is a no-op where prlimit(2) is unavailable; the NODE_OPTIONS
// heap cap still applies.
func limitMemory(_, _ int) error {
	return nil
}
