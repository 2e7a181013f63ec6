package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all scratchfs configuration.
type Config struct {
	Scratch ScratchConfig
	Logging LogConfig
}

// ScratchConfig holds the base paths for the scratch roots.
//
// TenantRoot has no sensible default: it belongs to the embedding
// application's tenancy context and stays empty until that context
// supplies one.
type ScratchConfig struct {
	GlobalRoot string `envconfig:"SCRATCHFS_GLOBAL_ROOT" default:"_temp"`
	TenantRoot string `envconfig:"SCRATCHFS_TENANT_ROOT" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"SCRATCHFS_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"SCRATCHFS_LOG_DEV" default:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Scratch: ScratchConfig{
			GlobalRoot: "_temp",
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
	}
}
