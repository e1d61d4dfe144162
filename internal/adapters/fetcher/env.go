package fetcher

import (
	"strconv"
	"strings"
)

const (
	nodeOptionsKey  = "NODE_OPTIONS"
	maxOldSpaceFlag = "--max-old-space-size="
)

// withMemoryCap returns env with the Node heap limit merged into NODE_OPTIONS.
// Other NODE_OPTIONS flags are kept; an existing heap limit is replaced.
func withMemoryCap(env []string, maxMB int) []string {
	result := make([]string, 0, len(env)+1)
	var existing string
	for _, entry := range env {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == nodeOptionsKey {
			existing = v
			continue
		}
		result = append(result, entry)
	}

	var opts []string
	for _, field := range strings.Fields(existing) {
		if maxMB > 0 && strings.HasPrefix(field, maxOldSpaceFlag) {
			continue
		}
		opts = append(opts, field)
	}
	if maxMB > 0 {
		opts = append(opts, maxOldSpaceFlag+strconv.Itoa(maxMB))
	}

	if len(opts) > 0 {
		result = append(result, nodeOptionsKey+"="+strings.Join(opts, " "))
	}
	return result
}
