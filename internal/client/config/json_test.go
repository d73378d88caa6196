package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"server_url":      "http://www.example:9000",
		"request_timeout": "15s",
		"state_path":      "/var/lib/tc.db",
		"log_level":       "error",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"request_timeout": 2_000_000_000,
	})

	t.Run("loads from flag", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", full}))

		assert.Equal(t, "http://www.example:9000", cfg.ServerURL)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/var/lib/tc.db", cfg.StatePath)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("loads from env when no flag", func(t *testing.T) {
		t.Setenv("TEAMCONSOLE_CONFIG", partial)

		cfg := defaults()
		require.NoError(t, parseJSON(cfg, nil))

		assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "http://127.0.0.1:3001", cfg.ServerURL, "absent keys keep their value")
	})

	t.Run("no file → no changes", func(t *testing.T) {
		t.Setenv("TEAMCONSOLE_CONFIG", "")

		cfg := defaults()
		require.NoError(t, parseJSON(cfg, nil))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		require.Error(t, parseJSON(defaults(), []string{"-c", bad}))
	})

	t.Run("missing file → error", func(t *testing.T) {
		require.Error(t, parseJSON(defaults(), []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
