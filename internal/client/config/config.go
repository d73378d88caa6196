package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime settings for the console.
//
// Fields:
//   - ServerURL: base URL of the team API, scheme included.
//   - RequestTimeout: upper bound for a single API call.
//   - StatePath: SQLite file backing the durable session lifetime.
//   - LogLevel: debug, info, warn or error.
//   - RateLimit: outgoing requests per second; zero disables the limit.
type Config struct {
	ServerURL      string        `validate:"required,url,startswith=http"`
	RequestTimeout time.Duration `validate:"gt=0"`
	StatePath      string        `validate:"required"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	RateLimit      float64       `validate:"gte=0"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://127.0.0.1:3001"
	c.RequestTimeout = 10 * time.Second
	c.StatePath = "teamconsole.db"
	c.LogLevel = "info"
	c.RateLimit = 5
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment, then command-line flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
