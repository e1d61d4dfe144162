package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tally/internal/core/domain"
)

func TestResolveSessionID(t *testing.T) {
	tests := []struct {
		name  string
		event domain.Event
		ppid  int
		check func(t *testing.T, got string)
	}{
		{
			name:  "explicit session id",
			event: domain.Event{SessionID: "abc-123", TranscriptPath: "/x/other.jsonl"},
			check: func(t *testing.T, got string) {
				assert.Equal(t, "abc-123", got)
			},
		},
		{
			name:  "transcript stem",
			event: domain.Event{TranscriptPath: "/home/u/.claude/projects/p/5f0e9c1a.jsonl"},
			check: func(t *testing.T, got string) {
				assert.Equal(t, "5f0e9c1a", got)
			},
		},
		{
			name:  "unsafe transcript stem is hashed",
			event: domain.Event{TranscriptPath: "/tmp/.hidden"},
			check: func(t *testing.T, got string) {
				assert.True(t, strings.HasPrefix(got, "t-"), got)
				assert.Len(t, got, 2+16)
			},
		},
		{
			name:  "parent process fallback",
			event: domain.Event{},
			ppid:  4242,
			check: func(t *testing.T, got string) {
				assert.Equal(t, "ppid-4242", got)
			},
		},
		{
			name:  "path traversal in session id is hashed",
			event: domain.Event{SessionID: "../../etc/passwd"},
			check: func(t *testing.T, got string) {
				assert.True(t, strings.HasPrefix(got, "h-"), got)
				assert.NotContains(t, got, "/")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, domain.ResolveSessionID(&tt.event, tt.ppid))
		})
	}
}

func TestResolveSessionID_DistinctSessionsNeverCollide(t *testing.T) {
	a := domain.Event{SessionID: "a/b"}
	b := domain.Event{SessionID: "a:b"}
	assert.NotEqual(t, domain.ResolveSessionID(&a, 1), domain.ResolveSessionID(&b, 1))

	c := domain.Event{TranscriptPath: "/one/.x"}
	d := domain.Event{TranscriptPath: "/two/.x"}
	assert.NotEqual(t, domain.ResolveSessionID(&c, 1), domain.ResolveSessionID(&d, 1))
}
