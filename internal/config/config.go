// Package config defines the service configuration and how it is loaded.
package config

import (
	"github.com/mmynk/tipout/internal/calculator"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// StaticPath is the directory the shift form is served from.
	StaticPath string `koanf:"static_path"`

	// MetricsEnabled toggles recording and the /metrics endpoint.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// LatencyBuckets overrides the latency histogram buckets, in seconds.
	// Empty keeps the Prometheus defaults.
	LatencyBuckets []float64 `koanf:"latency_buckets"`

	// HeadBusserPoints and StandardBusserPoints are the house point values
	// used when a request does not override them.
	HeadBusserPoints     float64 `koanf:"head_busser_points"`
	StandardBusserPoints float64 `koanf:"standard_busser_points"`

	// RosterSeparator splits name and points in adjusted rosters: ":" or "=".
	RosterSeparator string `koanf:"roster_separator"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:             "info",
		Addr:                 ":8080",
		StaticPath:           "./static",
		MetricsEnabled:       true,
		HeadBusserPoints:     calculator.DefaultHeadBusserPointValue,
		StandardBusserPoints: calculator.DefaultStandardBusserPointValue,
		RosterSeparator:      "=",
	}
}

// AllocationDefaults returns the base allocation config requests start from.
func (c *Config) AllocationDefaults() calculator.AllocationConfig {
	cfg := calculator.DefaultAllocationConfig()
	cfg.HeadBusserPointValue = c.HeadBusserPoints
	cfg.StandardBusserPointValue = c.StandardBusserPoints
	if r := []rune(c.RosterSeparator); len(r) == 1 {
		cfg.Separator = r[0]
	}
	return cfg
}
