package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("overrides set variables only", func(t *testing.T) {
		t.Setenv("TEAMCONSOLE_REQUEST_TIMEOUT", "750ms")
		t.Setenv("TEAMCONSOLE_STATE_PATH", "/data/tc.db")

		cfg := defaults()
		require.NoError(t, parseEnv(cfg))

		assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
		assert.Equal(t, "/data/tc.db", cfg.StatePath)
		assert.Equal(t, "http://127.0.0.1:3001", cfg.ServerURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("rate limit", func(t *testing.T) {
		t.Setenv("TEAMCONSOLE_RATE_LIMIT", "2.5")

		cfg := defaults()
		require.NoError(t, parseEnv(cfg))
		assert.Equal(t, 2.5, cfg.RateLimit)

		t.Setenv("TEAMCONSOLE_RATE_LIMIT", "fast")
		require.Error(t, parseEnv(defaults()))
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("TEAMCONSOLE_REQUEST_TIMEOUT", "soon")

		require.Error(t, parseEnv(defaults()))
	})
}
