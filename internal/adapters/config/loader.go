// Package config loads the runtime configuration from an optional YAML file
// and environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/tally/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Loader implements ports.ConfigLoader.
type Loader struct {
	// Path is the config file location. A missing file is not an error.
	Path   string
	getenv func(string) string
}

// NewLoader creates a Loader for the default config location.
func NewLoader() *Loader {
	return &Loader{
		Path:   DefaultPath(os.Getenv),
		getenv: os.Getenv,
	}
}

// DefaultPath returns TALLY_CONFIG, else $XDG_CONFIG_HOME/tally/config.yaml,
// else ~/.config/tally/config.yaml.
func DefaultPath(getenv func(string) string) string {
	if p := getenv(domain.ConfigEnv); p != "" {
		return p
	}
	if xdg := getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, domain.StateDirName, configFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", domain.StateDirName, configFileName)
}

// Load reads the config file and applies environment overrides on top.
// The returned config is always usable; a non-nil error reports a file
// that could not be read or parsed and was ignored.
func (l *Loader) Load() (*domain.Config, error) {
	getenv := l.getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := domain.DefaultConfig()
	fileErr := l.applyFile(cfg)
	applyEnv(cfg, getenv)

	return cfg, fileErr
}

func (l *Loader) applyFile(cfg *domain.Config) error {
	if l.Path == "" {
		return nil
	}

	data, err := os.ReadFile(l.Path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.Path)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.Path)
	}

	apply(cfg, &file)
	return nil
}

func apply(cfg *domain.Config, file *File) {
	if file.StateDir != "" {
		cfg.StateDir = file.StateDir
	}
	if file.Debug != nil {
		cfg.Debug = *file.Debug
	}
	applyPolicy(&cfg.Blocks, file.Blocks)
	applyPolicy(&cfg.Daily, file.Daily)
	if file.LockOrphanAfter != nil && *file.LockOrphanAfter > 0 {
		cfg.LockOrphanAfter = *file.LockOrphanAfter
	}
	if file.SessionWindow != nil && *file.SessionWindow > 0 {
		cfg.SessionWindow = *file.SessionWindow
	}
	if file.Fetch.Command != "" {
		cfg.Fetch.Command = file.Fetch.Command
	}
	if file.Fetch.Fallback != nil {
		cfg.Fetch.Fallback = file.Fetch.Fallback
	}
	if file.Fetch.ProbeTimeout != nil && *file.Fetch.ProbeTimeout > 0 {
		cfg.Fetch.ProbeTimeout = *file.Fetch.ProbeTimeout
	}
	if file.Fetch.MaxMemoryMB != nil {
		cfg.Fetch.MaxMemoryMB = *file.Fetch.MaxMemoryMB
	}
	if file.ErrorLog.MaxSizeKB != nil && *file.ErrorLog.MaxSizeKB > 0 {
		cfg.ErrorLogMaxKB = *file.ErrorLog.MaxSizeKB
	}
}

func applyPolicy(policy *domain.KindPolicy, dto KindPolicyDTO) {
	if dto.StaleAfter != nil && *dto.StaleAfter >= 0 {
		policy.StaleAfter = *dto.StaleAfter
	}
	if dto.Timeout != nil && *dto.Timeout > 0 {
		policy.Timeout = *dto.Timeout
	}
}

func applyEnv(cfg *domain.Config, getenv func(string) string) {
	if dir := getenv(domain.StateDirEnv); dir != "" {
		cfg.StateDir = dir
	}
	if raw := getenv(domain.MaxMemoryEnv); raw != "" {
		if mb, err := strconv.Atoi(raw); err == nil && mb >= 0 {
			cfg.Fetch.MaxMemoryMB = mb
		}
	}
	if getenv(domain.DebugEnv) == "1" {
		cfg.Debug = true
	}
}
