package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultConfigPath is used when CONFIG_PATH is not set. The file is
// optional in that case; env vars and env-default tags fill the gaps.
const defaultConfigPath = "./config.yaml"

// Load builds the configuration for the training backend and its tools.
// Sources, strongest first: environment variables, the YAML file, the
// env-default tags. A CONFIG_PATH that points at a missing file is an
// error; a missing default file is not.
func Load() (*Config, error) {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if path == "" {
		path, explicit = defaultConfigPath, false
	}

	var cfg Config
	switch _, statErr := os.Stat(path); {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case explicit:
		return nil, fmt.Errorf("config: open %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
