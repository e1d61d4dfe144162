package fetcher

import (
	"context"
	"os/exec"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// resolve returns the usage command invocation, probing availability once
// per Fetcher.
func (f *Fetcher) resolve(ctx context.Context) ([]string, error) {
	f.probeOnce.Do(func() {
		f.invocation, f.probeErr = f.probe(ctx)
	})
	return f.invocation, f.probeErr
}

func (f *Fetcher) probe(ctx context.Context) ([]string, error) {
	fetch := f.cfg.Fetch

	if fetch.Command != "" {
		if path, err := exec.LookPath(fetch.Command); err == nil {
			return []string{path}, nil
		}
	}

	if len(fetch.Fallback) == 0 {
		return nil, zerr.With(domain.ErrUsageCommandUnavailable, "command", fetch.Command)
	}

	runner, err := exec.LookPath(fetch.Fallback[0])
	if err != nil {
		return nil, zerr.With(domain.ErrUsageCommandUnavailable, "fallback", fetch.Fallback[0])
	}

	probeCtx, cancel := context.WithTimeout(ctx, fetch.ProbeTimeout)
	defer cancel()

	args := append(append([]string{}, fetch.Fallback[1:]...), "--version")
	cmd := command(probeCtx, runner, args...)
	cmd.Env = withMemoryCap(f.environ(), fetch.MaxMemoryMB)
	if err := cmd.Run(); err != nil {
		f.logger.Debug("usage fallback probe failed: " + err.Error())
		return nil, zerr.With(zerr.Wrap(err, domain.ErrUsageCommandUnavailable.Error()), "fallback", fetch.Fallback[0])
	}

	invocation := append([]string{runner}, fetch.Fallback[1:]...)
	return invocation, nil
}
