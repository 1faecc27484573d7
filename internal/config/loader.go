package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads configuration using the path from the CONFIG_PATH env variable.
// See LoadFrom for the resolution rules.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// An empty path falls back to ./config.yaml; if that file is absent the
// configuration comes from ENV and defaults only. A non-empty path that
// does not exist is an error.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadTool reads the database-only configuration used by maintenance
// commands, with the same path resolution as Load.
func LoadTool() (*ToolConfig, error) {
	return LoadToolFrom(os.Getenv("CONFIG_PATH"))
}

// LoadToolFrom is LoadFrom for ToolConfig. Sections other than database and
// log are ignored, so no Telegram token is needed.
func LoadToolFrom(path string) (*ToolConfig, error) {
	var cfg ToolConfig
	if err := read(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(path string, cfg any) error {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
