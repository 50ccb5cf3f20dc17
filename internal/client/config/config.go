package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"
)

// Config holds runtime settings for the authclient front ends.
type Config struct {
	ServerURL      string        `koanf:"server_url" validate:"required,url"`
	LoginPath      string        `koanf:"login_path" validate:"required,startswith=/"`
	RegisterPath   string        `koanf:"register_path" validate:"required,startswith=/"`
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"gte=0"`
	VaultPath      string        `koanf:"vault_path" validate:"required"`
	KeyFile        string        `koanf:"key_file" validate:"required"`
	Log            LogConfig     `koanf:"log"`
}

// LogConfig holds logging settings. An empty File means the front end picks
// its own sink (stderr for the CLI, nothing for the TUI).
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
	File   string `koanf:"file"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:3105"
	c.LoginPath = "/login"
	c.RegisterPath = "/user"
	c.RequestTimeout = 15 * time.Second
	c.VaultPath = "authclient.db"
	c.KeyFile = "authclient.key"
	c.Log = LogConfig{Level: "info", Format: "text"}
}

// LoadConfig builds a Config from defaults, the optional config file, the
// environment and finally args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	k := koanf.New(".")
	if err := loadFile(k, args); err != nil {
		return nil, err
	}
	if err := loadEnv(k); err != nil {
		return nil, err
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate normalises c and checks it against the struct constraints.
func (c *Config) Validate() error {
	c.ServerURL = strings.TrimRight(strings.TrimSpace(c.ServerURL), "/")
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))

	if err := validate.Struct(c); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			fe := ve[0]
			return fmt.Errorf("invalid config %s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoginURL is the absolute sign-in endpoint.
func (c *Config) LoginURL() string {
	return c.ServerURL + c.LoginPath
}

// RegisterURL is the absolute sign-up endpoint.
func (c *Config) RegisterURL() string {
	return c.ServerURL + c.RegisterPath
}
