// Package git reads the checked-out branch straight from the repository metadata.
package git

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	refPrefix    = "ref: refs/heads/"
	gitdirPrefix = "gitdir:"
	shortHashLen = 7
)

// Resolver implements ports.BranchResolver without spawning git.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Branch returns the branch checked out in the repository containing dir,
// the short commit hash for a detached HEAD, or "" outside a repository.
func (r *Resolver) Branch(dir string) string {
	if dir == "" {
		return ""
	}
	gitDir := findGitDir(dir)
	if gitDir == "" {
		return ""
	}

	//nolint:gosec // reading repository metadata
	content, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return ""
	}

	head := strings.TrimSpace(string(content))
	if branch, ok := strings.CutPrefix(head, refPrefix); ok {
		return branch
	}
	if len(head) >= shortHashLen && !strings.HasPrefix(head, "ref:") {
		return head[:shortHashLen]
	}
	return ""
}

// findGitDir walks up from dir to the first .git entry. A .git file, as
// created for worktrees and submodules, points at the real metadata dir.
func findGitDir(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ".git")
		if info, err := os.Stat(candidate); err == nil {
			if info.IsDir() {
				return candidate
			}
			return readGitFile(candidate)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func readGitFile(path string) string {
	//nolint:gosec // reading repository metadata
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	target, ok := strings.CutPrefix(strings.TrimSpace(string(content)), gitdirPrefix)
	if !ok {
		return ""
	}
	target = strings.TrimSpace(target)
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}
	return target
}
