//go:build linux

package fetcher

import "golang.org/x/sys/unix"

// dataLimitFactor leaves room above the heap cap for code, buffers and
// thread stacks, which also count against RLIMIT_DATA.
const dataLimitFactor = 2

// limitMemory caps the writable data of a running child at dataLimitFactor
// times maxMB, never above its current hard limit. RLIMIT_AS is not used:
// Node reserves more address space at startup than any sane cap allows.
func limitMemory(pid, maxMB int) error {
	if maxMB <= 0 {
		return nil
	}

	var current unix.Rlimit
	if err := unix.Prlimit(pid, unix.RLIMIT_DATA, nil, &current); err != nil {
		return err
	}

	limit := min((uint64(maxMB)*dataLimitFactor)<<20, current.Max)
	return unix.Prlimit(pid, unix.RLIMIT_DATA, &unix.Rlimit{Cur: limit, Max: limit}, nil)
}
