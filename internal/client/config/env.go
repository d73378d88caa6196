package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// EnvConfig is the environment DTO. Unset variables leave the field zero
// and the corresponding Config value untouched.
type EnvConfig struct {
	ServerURL      string        `env:"TEAMCONSOLE_SERVER_URL" env-description:"base URL of the team API"`
	RequestTimeout time.Duration `env:"TEAMCONSOLE_REQUEST_TIMEOUT" env-description:"per-request timeout, e.g. 5s"`
	StatePath      string        `env:"TEAMCONSOLE_STATE_PATH" env-description:"SQLite file for remembered sessions"`
	LogLevel       string        `env:"TEAMCONSOLE_LOG_LEVEL" env-description:"debug, info, warn or error"`
	RateLimit      string        `env:"TEAMCONSOLE_RATE_LIMIT" env-description:"outgoing requests per second, 0 for no limit"`
}

func parseEnv(cfg *Config) error {
	var ec EnvConfig
	if err := cleanenv.ReadEnv(&ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	if ec.ServerURL != "" {
		cfg.ServerURL = ec.ServerURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StatePath != "" {
		cfg.StatePath = ec.StatePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.RateLimit != "" {
		v, err := strconv.ParseFloat(ec.RateLimit, 64)
		if err != nil {
			return fmt.Errorf("TEAMCONSOLE_RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = v
	}
	return nil
}

// EnvUsage describes the supported environment variables.
func EnvUsage() string {
	text, err := cleanenv.GetDescription(&EnvConfig{}, nil)
	if err != nil {
		return ""
	}
	return text
}
