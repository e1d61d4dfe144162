package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tally/internal/core/domain"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	l := &Loader{Path: filepath.Join(t.TempDir(), "absent.yaml"), getenv: envFrom(nil)}

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
state_dir: /var/tmp/tally-test
debug: true
blocks:
  stale_after: 10s
  timeout: 5s
daily:
  stale_after: 10m
lock_orphan_after: 2m
session_window: 4h
fetch:
  command: /opt/bin/ccusage
  fallback: []
  probe_timeout: 1s
  max_memory_mb: 0
error_log:
  max_size_kb: 64
`)
	l := &Loader{Path: path, getenv: envFrom(nil)}

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/tmp/tally-test", cfg.StateDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 10*time.Second, cfg.Blocks.StaleAfter)
	assert.Equal(t, 5*time.Second, cfg.Blocks.Timeout)
	assert.Equal(t, 10*time.Minute, cfg.Daily.StaleAfter)
	assert.Equal(t, domain.DefaultConfig().Daily.Timeout, cfg.Daily.Timeout)
	assert.Equal(t, 2*time.Minute, cfg.LockOrphanAfter)
	assert.Equal(t, 4*time.Hour, cfg.SessionWindow)
	assert.Equal(t, "/opt/bin/ccusage", cfg.Fetch.Command)
	assert.Empty(t, cfg.Fetch.Fallback)
	assert.NotNil(t, cfg.Fetch.Fallback)
	assert.Equal(t, time.Second, cfg.Fetch.ProbeTimeout)
	assert.Zero(t, cfg.Fetch.MaxMemoryMB)
	assert.Equal(t, int64(64), cfg.ErrorLogMaxKB)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "state_dir: /from/file\nfetch:\n  max_memory_mb: 128\n")
	l := &Loader{Path: path, getenv: envFrom(map[string]string{
		domain.StateDirEnv:  "/from/env",
		domain.MaxMemoryEnv: "1024",
		domain.DebugEnv:     "1",
	})}

	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.StateDir)
	assert.Equal(t, 1024, cfg.Fetch.MaxMemoryMB)
	assert.True(t, cfg.Debug)
}

func TestLoad_InvalidMemoryEnvIgnored(t *testing.T) {
	l := &Loader{getenv: envFrom(map[string]string{domain.MaxMemoryEnv: "lots"})}

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig().Fetch.MaxMemoryMB, cfg.Fetch.MaxMemoryMB)
}

func TestLoad_MalformedFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "blocks: [not, a, mapping\n")
	l := &Loader{Path: path, getenv: envFrom(map[string]string{domain.StateDirEnv: "/env"})}

	cfg, err := l.Load()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "/env", cfg.StateDir)
	assert.Equal(t, domain.DefaultConfig().Blocks, cfg.Blocks)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "/custom.yaml", DefaultPath(envFrom(map[string]string{domain.ConfigEnv: "/custom.yaml"})))
	assert.Equal(t,
		filepath.Join("/xdg", "tally", "config.yaml"),
		DefaultPath(envFrom(map[string]string{"XDG_CONFIG_HOME": "/xdg"})),
	)
}
