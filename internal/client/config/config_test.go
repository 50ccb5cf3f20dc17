package config

import (
	"os"
	"path/filepath"
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

func writeTempFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, "http://localhost:3105", c.ServerURL)
	assert.Equal(t, "/login", c.LoginPath)
	assert.Equal(t, "/user", c.RegisterPath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "http://localhost:3105/login", c.LoginURL())
	assert.Equal(t, "http://localhost:3105/user", c.RegisterURL())
	require.NoError(t, c.Validate())
}

func TestLoadConfig_NoSources_ReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func TestLoadConfig_YAMLFile(t *testing.T) {
	path := writeTempFile(t, "client.yaml", `
server_url: https://auth.example.com/
request_timeout: 3s
log:
  level: DEBUG
  format: json
`)

	cfg, err := LoadConfig([]string{"-c", path})
	require.NoError(t, err)

	want := defaults()
	want.ServerURL = "https://auth.example.com"
	want.RequestTimeout = 3 * time.Second
	want.Log.Level = "debug"
	want.Log.Format = "json"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestLoadConfig_JSONFile(t *testing.T) {
	path := writeTempFile(t, "client.json", `{"login_path": "/auth/login", "vault_path": "/tmp/v.db"}`)

	cfg, err := LoadConfig([]string{"-config=" + path})
	require.NoError(t, err)
	assert.Equal(t, "/auth/login", cfg.LoginPath)
	assert.Equal(t, "/tmp/v.db", cfg.VaultPath)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempFile(t, "client.yaml", "server_url: http://from-file:1\nregister_path: /file\n")
	t.Setenv("AUTHCLIENT__SERVER_URL", "http://from-env:2")
	t.Setenv("AUTHCLIENT__LOG__LEVEL", "warn")

	t.Run("env beats file", func(t *testing.T) {
		cfg, err := LoadConfig([]string{"-c", path})
		require.NoError(t, err)
		assert.Equal(t, "http://from-env:2", cfg.ServerURL)
		assert.Equal(t, "/file", cfg.RegisterPath)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("flags beat env", func(t *testing.T) {
		cfg, err := LoadConfig([]string{"-c", path, "-a", "http://from-flag:3", "-t", "7", "-l", "error"})
		require.NoError(t, err)
		assert.Equal(t, "http://from-flag:3", cfg.ServerURL)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "error", cfg.Log.Level)
	})
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"-c", filepath.Join(t.TempDir(), "absent.yaml")}
			},
		},
		{
			name: "malformed file",
			args: func(t *testing.T) []string {
				return []string{"-c", writeTempFile(t, "bad.yaml", "server_url: [unterminated")}
			},
		},
		{
			name: "invalid url",
			args: func(*testing.T) []string { return []string{"-a", "not a url"} },
		},
		{
			name: "non numeric timeout",
			args: func(*testing.T) []string { return []string{"-t", "abc"} },
		},
		{
			name: "unknown log level",
			args: func(*testing.T) []string { return []string{"-l", "chatty"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(tt.args(t))
			require.Error(t, err)
		})
	}
}

func TestValidate_PathsMustBeAbsolute(t *testing.T) {
	c := defaults()
	c.LoginPath = "login"
	require.Error(t, c.Validate())
}
