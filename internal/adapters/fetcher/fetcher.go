// Package fetcher runs the external usage command and commits its output to the cache.
package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/tally/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

const (
	// waitDelay bounds how long Wait blocks on output pipes after the child is killed.
	waitDelay = 2 * time.Second

	// stderrTail is how much of the child's stderr is kept for the error log.
	stderrTail = 4096

	dateLayout = "20060102"
)

// Fetcher implements ports.Fetcher.
type Fetcher struct {
	cfg    *domain.Config
	cache  ports.UsageCache
	errs   ports.ErrorLog
	logger ports.Logger

	now     func() time.Time
	environ func() []string

	probeOnce  sync.Once
	invocation []string
	probeErr   error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClock replaces the wall clock used for the daily date range.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		f.now = now
	}
}

// WithEnviron replaces the environment the child inherits.
func WithEnviron(environ func() []string) Option {
	return func(f *Fetcher) {
		f.environ = environ
	}
}

// New creates a Fetcher.
func New(
	cfg *domain.Config,
	cache ports.UsageCache,
	errs ports.ErrorLog,
	logger ports.Logger,
	opts ...Option,
) *Fetcher {
	f := &Fetcher{
		cfg:     cfg,
		cache:   cache,
		errs:    errs,
		logger:  logger,
		now:     time.Now,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch runs the usage command for kind and atomically replaces the cached
// document with its output. Failures leave the cache untouched and are
// recorded in the error log. When no usage command is available the empty
// default document is written instead.
func (f *Fetcher) Fetch(ctx context.Context, kind domain.CacheKind) error {
	invocation, err := f.resolve(ctx)
	if err != nil {
		if werr := f.cache.WriteDefault(kind); werr != nil {
			f.logger.Debug("writing default payload: " + werr.Error())
		}
		f.errs.Record(kind, err, "")
		return err
	}

	args := append(append([]string{}, invocation[1:]...), f.args(kind)...)
	detail, err := f.run(ctx, kind, invocation[0], args)
	if err != nil {
		f.errs.Record(kind, err, detail)
		return err
	}

	f.logger.Debug("refreshed " + kind.String() + " usage cache")
	return nil
}

func (f *Fetcher) args(kind domain.CacheKind) []string {
	if kind == domain.KindDaily {
		today := f.now().Format(dateLayout)
		return []string{"daily", "--json", "--since", today, "--until", today}
	}
	return []string{"blocks", "--json"}
}

// run executes the command with stdout redirected to a scratch file and
// commits the file when it holds a JSON document. It returns the stderr tail
// for diagnostics.
func (f *Fetcher) run(ctx context.Context, kind domain.CacheKind, name string, args []string) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, f.cfg.Policy(kind).Timeout)
	defer cancel()

	tmp, err := f.cache.CreateTemp(kind)
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	stderr := &tailBuffer{max: stderrTail}
	cmd := command(runCtx, name, args...)
	cmd.Stdout = tmp
	cmd.Stderr = stderr
	cmd.Env = withMemoryCap(f.environ(), f.cfg.Fetch.MaxMemoryMB)

	runErr := cmd.Start()
	if runErr == nil {
		if err := limitMemory(cmd.Process.Pid, f.cfg.Fetch.MaxMemoryMB); err != nil {
			f.logger.Debug("limiting usage command memory: " + err.Error())
		}
		runErr = cmd.Wait()
	}
	closeErr := tmp.Close()

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return stderr.String(), zerr.With(domain.ErrFetchTimeout, "timeout", f.cfg.Policy(kind).Timeout.String())
	}
	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return stderr.String(), zerr.With(zerr.Wrap(runErr, domain.ErrFetchFailed.Error()), "exit_code", exitCode)
	}
	if closeErr != nil {
		return "", zerr.Wrap(closeErr, domain.ErrCacheTempFailed.Error())
	}

	if err := validate(tmpName); err != nil {
		return stderr.String(), err
	}

	if err := f.cache.Commit(kind, tmpName); err != nil {
		return "", err
	}
	committed = true
	return "", nil
}

func validate(path string) error {
	//nolint:gosec // path comes from os.CreateTemp in the state dir
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheTempFailed.Error())
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.ErrFetchEmptyOutput
	}
	if !json.Valid(data) {
		return domain.ErrFetchInvalidOutput
	}
	return nil
}

// command builds an exec.Cmd running in its own process group. Cancelling
// ctx kills the whole group, so helpers spawned by a runner like npx die too.
func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // configured usage command
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = waitDelay
	return cmd
}

// tailBuffer keeps the last max bytes written to it.
type tailBuffer struct {
	mu  sync.Mutex
	max int
	buf []byte
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return string(t.buf)
}
