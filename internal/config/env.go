package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by speakscore.
const EnvPrefix = "SPEAKSCORE"

// EnvConfig holds overrides read from SPEAKSCORE_* variables. Unset
// variables leave the pointer nil.
type EnvConfig struct {
	Mode        *string        `envconfig:"MODE"`
	Duration    *time.Duration `envconfig:"DURATION"`
	Format      *string        `envconfig:"FORMAT"`
	Color       *bool          `envconfig:"COLOR"`
	LogLevel    *string        `envconfig:"LOG_LEVEL"`
	Fillers     *string        `envconfig:"FILLERS"`
	Transitions *string        `envconfig:"TRANSITIONS"`
	References  *string        `envconfig:"REFERENCES"`
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding existing values. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// LoadEnv reads SPEAKSCORE_* overrides from the environment.
func LoadEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("failed to read environment: %w", err)
	}
	return cfg, nil
}
