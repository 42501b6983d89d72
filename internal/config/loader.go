package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if TIPOUT_CONFIG is set
//  3. env (prefix TIPOUT_)
func Load() (*Config, error) {
	return LoadFile(os.Getenv("TIPOUT_CONFIG"))
}

// LoadFile is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadFile(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}

	// TIPOUT_HEAD_BUSSER_POINTS -> head_busser_points. Keys are flat, so
	// underscores are kept.
	envProvider := env.Provider("TIPOUT_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "tipout_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrLoadConfig, err)
	}

	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.RosterSeparator != ":" && c.RosterSeparator != "=" {
		return fmt.Errorf("%w: roster_separator must be \":\" or \"=\", got %q", ErrInvalidConfig, c.RosterSeparator)
	}
	if c.HeadBusserPoints < 0 || c.StandardBusserPoints < 0 {
		return fmt.Errorf("%w: busser point values must not be negative", ErrInvalidConfig)
	}
	for i, b := range c.LatencyBuckets {
		if b <= 0 || (i > 0 && b <= c.LatencyBuckets[i-1]) {
			return fmt.Errorf("%w: latency_buckets must be positive and increasing, got %v", ErrInvalidConfig, c.LatencyBuckets)
		}
	}
	return nil
}
