// Package dispatch launches refresh jobs as detached copies of the running binary.
package dispatch

import (
	"context"
	"os"
	"os/exec"
	"syscall"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
)

// Spawner implements ports.Dispatcher by re-executing the current binary
// with the refresh command in a new session, so the job survives the
// status-line process that started it.
type Spawner struct {
	executablePath string
	stateDir       string
}

// NewSpawner creates a Spawner for the running executable.
func NewSpawner(stateDir string) (*Spawner, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine executable path")
	}
	return NewSpawnerWithPath(exe, stateDir), nil
}

// NewSpawnerWithPath creates a Spawner that runs executablePath.
func NewSpawnerWithPath(executablePath, stateDir string) *Spawner {
	return &Spawner{executablePath: executablePath, stateDir: stateDir}
}

// Args returns the command line the refresh job is started with.
func Args(lease *domain.Lease) []string {
	return []string{
		"refresh",
		"--" + lease.Kind.String(),
		"--quiet",
		"--leased",
		"--lease-token", lease.Token,
	}
}

// Dispatch starts the refresh job for lease and returns without waiting.
func (s *Spawner) Dispatch(_ context.Context, lease *domain.Lease) error {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDispatchFailed.Error())
	}
	defer func() { _ = devNull.Close() }()

	//nolint:gosec // G204: executablePath is our own binary, args are fixed literals
	cmd := exec.Command(s.executablePath, Args(lease)...)
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.Env = append(os.Environ(), domain.StateDirEnv+"="+s.stateDir)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDispatchFailed.Error()), "kind", lease.Kind.String())
	}

	// The job outlives us; nobody waits for it.
	_ = cmd.Process.Release()
	return nil
}
