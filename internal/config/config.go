// Package config defines process configuration for skillr and how it is loaded.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"

	"github.com/okian/skillr/pkg/skillr"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Validate turns on input and result checks around every rating call.
	Validate bool `koanf:"validate"`

	// MetricsEnabled toggles Prometheus metric collection.
	MetricsEnabled bool `koanf:"metrics_enabled"`

	// Model constants; see skillr.Config.
	Loc         float64 `koanf:"loc"`
	Scale       float64 `koanf:"scale"`
	Beta        float64 `koanf:"beta"`
	Tau         float64 `koanf:"tau"`
	PDraw       float64 `koanf:"p_draw"`
	EntropyRate float64 `koanf:"entropy_rate"`
}

// New creates a Config holding the defaults. The context is reserved for
// future use.
func New(_ context.Context) *Config {
	m := skillr.DefaultConfig()
	return &Config{
		LogLevel:       "info",
		Validate:       true,
		MetricsEnabled: true,
		Loc:            m.Loc,
		Scale:          m.Scale,
		Beta:           m.Beta,
		Tau:            m.Tau,
		PDraw:          m.PDraw,
		EntropyRate:    m.EntropyRate,
	}
}

// Model returns the rating model constants.
func (c *Config) Model() skillr.Config {
	return skillr.Config{
		Loc:         c.Loc,
		Scale:       c.Scale,
		Beta:        c.Beta,
		Tau:         c.Tau,
		PDraw:       c.PDraw,
		EntropyRate: c.EntropyRate,
	}
}
