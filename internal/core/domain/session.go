package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const maxSessionIDLen = 128

var safeSessionID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ResolveSessionID picks the identity that keys a session's timestamp file.
// The explicit session id wins, then the transcript file, then the parent
// process id, so concurrent sessions never share a timer.
func ResolveSessionID(ev *Event, ppid int) string {
	if id := strings.TrimSpace(ev.SessionID); id != "" {
		return sanitizeSessionID(id)
	}

	if path := strings.TrimSpace(ev.TranscriptPath); path != "" {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if isSafeSessionID(stem) {
			return stem
		}
		return "t-" + hashID(path)
	}

	return "ppid-" + strconv.Itoa(ppid)
}

func sanitizeSessionID(id string) string {
	if isSafeSessionID(id) {
		return id
	}
	return "h-" + hashID(id)
}

func isSafeSessionID(id string) bool {
	return len(id) <= maxSessionIDLen && safeSessionID.MatchString(id)
}

func hashID(s string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s))
}
