package config

import "time"

// File is the structure of the optional YAML config file.
// Pointer fields distinguish "unset" from an explicit zero.
type File struct {
	StateDir        string         `yaml:"state_dir"`
	Debug           *bool          `yaml:"debug"`
	Blocks          KindPolicyDTO  `yaml:"blocks"`
	Daily           KindPolicyDTO  `yaml:"daily"`
	LockOrphanAfter *time.Duration `yaml:"lock_orphan_after"`
	SessionWindow   *time.Duration `yaml:"session_window"`
	Fetch           FetchDTO       `yaml:"fetch"`
	ErrorLog        ErrorLogDTO    `yaml:"error_log"`
}

// KindPolicyDTO holds the refresh timings of one cache kind.
type KindPolicyDTO struct {
	StaleAfter *time.Duration `yaml:"stale_after"`
	Timeout    *time.Duration `yaml:"timeout"`
}

// FetchDTO describes the usage command.
type FetchDTO struct {
	Command      string         `yaml:"command"`
	Fallback     []string       `yaml:"fallback"`
	ProbeTimeout *time.Duration `yaml:"probe_timeout"`
	MaxMemoryMB  *int           `yaml:"max_memory_mb"`
}

// ErrorLogDTO configures the fetch diagnostics log.
type ErrorLogDTO struct {
	MaxSizeKB *int64 `yaml:"max_size_kb"`
}
