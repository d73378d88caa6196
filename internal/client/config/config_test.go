package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://127.0.0.1:3001", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "teamconsole.db", c.StatePath)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 5.0, c.RateLimit)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no scheme", func(c *Config) { c.ServerURL = "127.0.0.1:3001" }},
		{"empty url", func(c *Config) { c.ServerURL = "" }},
		{"ftp", func(c *Config) { c.ServerURL = "ftp://example.com" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"no state path", func(c *Config) { c.StatePath = "" }},
		{"unknown level", func(c *Config) { c.LogLevel = "verbose" }},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaults()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"server_url":      "http://json.example:1",
		"request_timeout": "20s",
		"state_path":      "json.db",
		"rate_limit":      0,
	})
	t.Setenv("TEAMCONSOLE_SERVER_URL", "http://env.example:2")
	t.Setenv("TEAMCONSOLE_LOG_LEVEL", "debug")

	cfg, err := LoadConfig([]string{"-c", path, "-a", "https://flag.example"})
	require.NoError(t, err)

	want := &Config{
		ServerURL:      "https://flag.example",
		RequestTimeout: 20 * time.Second,
		StatePath:      "json.db",
		LogLevel:       "debug",
		RateLimit:      0,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("TEAMCONSOLE_CONFIG", "")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_InvalidResult(t *testing.T) {
	_, err := LoadConfig([]string{"-a", "not a url"})
	require.Error(t, err)
}

func TestEnvUsage(t *testing.T) {
	usage := EnvUsage()
	assert.Contains(t, usage, "TEAMCONSOLE_SERVER_URL")
	assert.Contains(t, usage, "TEAMCONSOLE_REQUEST_TIMEOUT")
}
