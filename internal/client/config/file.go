package config

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authclient/internal/flagx"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that overlay the config file.
const EnvPrefix = "AUTHCLIENT__"

// loadFile reads the file named by -c/-config into k. Nothing is loaded when
// no such flag is present.
func loadFile(k *koanf.Koanf, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	return nil
}

// loadEnv overlays AUTHCLIENT__ variables:
// AUTHCLIENT__SERVER_URL -> server_url, AUTHCLIENT__LOG__LEVEL -> log.level.
func loadEnv(k *koanf.Koanf) error {
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.TrimPrefix(s, EnvPrefix)
		key = strings.ToLower(key)
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return fmt.Errorf("failed to load env variables: %w", err)
	}
	return nil
}
