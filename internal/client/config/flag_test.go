package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://10.0.0.1:8080", "-t", "3", "-s", "/tmp/s.db", "-l", "warn"},
			expected: &Config{
				ServerURL: "http://10.0.0.1:8080", RequestTimeout: 3 * time.Second, StatePath: "/tmp/s.db", LogLevel: "warn", RateLimit: 5,
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-c", "cfg.json", "-x", "-a=http://h"},
			expected: &Config{
				ServerURL: "http://h", RequestTimeout: 10 * time.Second, StatePath: "teamconsole.db", LogLevel: "info", RateLimit: 5,
			},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()

			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
