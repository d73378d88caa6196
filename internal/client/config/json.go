package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/teamconsole/internal/flagx"
	"github.com/dmitrijs2005/teamconsole/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations
// may be strings like "5s" or integer nanoseconds.
type JSONConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	StatePath      string         `json:"state_path"`
	LogLevel       string         `json:"log_level"`
	RateLimit      *float64       `json:"rate_limit"`
}

// parseJSON overlays cfg with the file named by -c/-config or
// $TEAMCONSOLE_CONFIG. Keys absent from the file keep their value.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RateLimit != nil {
		cfg.RateLimit = *jc.RateLimit
	}
	return nil
}
