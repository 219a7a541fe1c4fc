package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	// PathEnv names the config file. CONFIG_PATH is still honoured when it
	// is unset.
	PathEnv     = "RECIPEBOX_CONFIG"
	legacyEnv   = "CONFIG_PATH"
	defaultPath = "./config.yaml"
)

// Load reads the configuration used by the API server and every cmd tool.
// Values resolve as ENV > YAML > env-default tags. A missing file is only an
// error when its path was given explicitly; otherwise ENV and defaults are
// used on their own.
func Load() (*Config, error) {
	path, explicit := configPath()

	var cfg Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func configPath() (path string, explicit bool) {
	for _, key := range []string{PathEnv, legacyEnv} {
		if p := strings.TrimSpace(os.Getenv(key)); p != "" {
			return p, true
		}
	}
	return defaultPath, false
}

// normalize tidies values operators commonly write loosely, such as
// LOG_LEVEL=WARN.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Database.DSN = strings.TrimSpace(c.Database.DSN)
	c.Tracing.Endpoint = strings.TrimSpace(c.Tracing.Endpoint)
}
