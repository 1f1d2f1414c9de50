// Package config loads runtime configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/vttbr/compendium-i18n/internal/errors"
)

// Config holds the runtime configuration for the module
type Config struct {
	// RedisAddr is the address of the Redis instance backing host state
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// EventsChannel carries host notifications into the module
	EventsChannel string `env:"HOST_EVENTS_CHANNEL" envDefault:"host:events"`

	// RenderChannel carries UI refresh requests back to the host
	RenderChannel string `env:"HOST_RENDER_CHANNEL" envDefault:"host:render"`

	// FlagScope namespaces folder flags; empty means the module ID
	FlagScope string `env:"FLAG_SCOPE"`

	// Locale overrides the host language setting when non-empty
	Locale string `env:"LOCALE_OVERRIDE"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return cfg, nil
}
