package domain

import "time"

// KindPolicy holds the refresh timings of one cache kind.
type KindPolicy struct {
	// StaleAfter is the staleness window: a cache older than this is refreshed.
	StaleAfter time.Duration
	// Timeout is the hard wall-clock limit of one fetch.
	Timeout time.Duration
}

// FetchConfig describes how the external usage command is invoked.
type FetchConfig struct {
	// Command is the primary usage binary looked up on PATH.
	Command string
	// Fallback is the runner invocation used when Command is missing, e.g. npx.
	Fallback []string
	// ProbeTimeout bounds the fallback availability probe.
	ProbeTimeout time.Duration
	// MaxMemoryMB caps the child's heap and, on Linux, its data segment.
	// Zero disables the cap.
	MaxMemoryMB int
}

// Config is the resolved runtime configuration.
type Config struct {
	StateDir        string
	Debug           bool
	Blocks          KindPolicy
	Daily           KindPolicy
	LockOrphanAfter time.Duration
	SessionWindow   time.Duration
	Fetch           FetchConfig
	ErrorLogMaxKB   int64
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() *Config {
	return &Config{
		StateDir: DefaultStateDir(),
		Blocks: KindPolicy{
			StaleAfter: 30 * time.Second,
			Timeout:    20 * time.Second,
		},
		Daily: KindPolicy{
			StaleAfter: 5 * time.Minute,
			Timeout:    45 * time.Second,
		},
		LockOrphanAfter: 60 * time.Second,
		SessionWindow:   5 * time.Hour,
		Fetch: FetchConfig{
			Command:      "ccusage",
			Fallback:     []string{"npx", "-y", "ccusage@latest"},
			ProbeTimeout: 3 * time.Second,
			MaxMemoryMB:  512,
		},
		ErrorLogMaxKB: 256,
	}
}

// Policy returns the refresh timings of a kind.
func (c *Config) Policy(kind CacheKind) KindPolicy {
	if kind == KindDaily {
		return c.Daily
	}
	return c.Blocks
}
