// Package errlog keeps a size-capped log of failed usage fetches.
package errlog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jrick/logrotate/rotator"
	"go.trai.ch/tally/internal/core/domain"
)

const (
	// maxRolls is the number of rotated files kept next to the live log.
	maxRolls = 1

	// maxDetailBytes bounds how much child output is kept per entry.
	maxDetailBytes = 2048
)

// Log implements ports.ErrorLog on top of a jrick/logrotate rotator.
// The rotator is started on the first Record, so processes that never fail
// never touch the file.
type Log struct {
	path        string
	thresholdKB int64
	now         func() time.Time

	once sync.Once
	mu   sync.Mutex
	pipe *io.PipeWriter
	done chan struct{}
	rot  *rotator.Rotator
	err  error
}

// New creates a Log writing to path, rotating once the file exceeds thresholdKB.
func New(path string, thresholdKB int64) *Log {
	return &Log{
		path:        path,
		thresholdKB: thresholdKB,
		now:         time.Now,
	}
}

// Record appends one line: "<RFC3339> [<kind>] <err>: <detail>".
func (l *Log) Record(kind domain.CacheKind, err error, detail string) {
	l.once.Do(l.start)
	if l.pipe == nil {
		return
	}

	line := formatLine(l.now(), kind, err, detail)

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.pipe, line)
}

// Close flushes pending lines and stops the rotator.
func (l *Log) Close() error {
	l.mu.Lock()
	pipe := l.pipe
	l.mu.Unlock()
	if pipe == nil {
		return nil
	}

	_ = pipe.Close()
	<-l.done
	return l.err
}

func (l *Log) start() {
	if err := os.MkdirAll(filepath.Dir(l.path), domain.DirPerm); err != nil {
		return
	}

	rot, err := rotator.New(l.path, l.thresholdKB, false, maxRolls)
	if err != nil {
		return
	}

	pr, pw := io.Pipe()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rot = rot
	l.pipe = pw
	l.done = make(chan struct{})

	go func() {
		defer close(l.done)
		err := rot.Run(pr)
		if err != nil && !errors.Is(err, io.EOF) {
			l.err = err
		}
		_ = rot.Close()
	}()
}

func formatLine(now time.Time, kind domain.CacheKind, err error, detail string) string {
	var b strings.Builder
	b.WriteString(now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, " [%s] ", kind)
	if err != nil {
		b.WriteString(err.Error())
	} else {
		b.WriteString("fetch failed")
	}

	detail = strings.TrimSpace(detail)
	if len(detail) > maxDetailBytes {
		detail = detail[len(detail)-maxDetailBytes:]
	}
	if detail != "" {
		b.WriteString(": ")
		b.WriteString(strings.Join(strings.Fields(detail), " "))
	}
	b.WriteByte('\n')
	return b.String()
}
