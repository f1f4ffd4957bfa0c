package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when no config path is given and PERMUTA_CONFIG is unset.
const DefaultPath = "./permuta.yaml"

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file is path when non-empty, else PERMUTA_CONFIG, else DefaultPath.
// A missing DefaultPath is not an error: configuration then comes from ENV
// and defaults only. A missing explicit file is.
func Load(path string) (*Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = os.Getenv("PERMUTA_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
