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
		name     string
		args     []string
		expected func() *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090", "-t", "10", "-v", "vault.db", "-l", "debug"},
			expected: func() *Config {
				c := defaults()
				c.ServerURL = "http://127.0.0.1:9090"
				c.RequestTimeout = 10 * time.Second
				c.VaultPath = "vault.db"
				c.Log.Level = "debug"
				return c
			},
		},
		{
			name: "foreign flags ignored",
			args: []string{"-ui", "tui", "-a", "http://h:1"},
			expected: func() *Config {
				c := defaults()
				c.ServerURL = "http://h:1"
				return c
			},
		},
		{
			name:    "incorrect timeout",
			args:    []string{"-t", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected(), cfg))
		})
	}
}

func TestParseFlags_TimeoutUntouchedWithoutFlag(t *testing.T) {
	cfg := defaults()
	cfg.RequestTimeout = 1500 * time.Millisecond

	require.NoError(t, parseFlags(cfg, []string{"-a", "http://h:1"}))
	assert.Equal(t, 1500*time.Millisecond, cfg.RequestTimeout)
}
