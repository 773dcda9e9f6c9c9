package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Scopes for the default install destination.
const (
	ScopeUser   = "user"
	ScopeSystem = "system"
)

type Config struct {
	Scope          string `toml:"scope" validate:"oneof=user system"`
	DefaultVersion string `toml:"default_version"`
	LogLevel       string `toml:"log_level" validate:"oneof=trace debug info warn error off"`

	// Path the config was read from; empty when no file was found.
	Source string `toml:"-"`
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Scope:    ScopeUser,
		LogLevel: "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/deskgen/config.toml, falling back to
// ~/.config/deskgen/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "deskgen", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "deskgen", "config.toml"), nil
}

// Load builds the configuration with precedence: env vars > file > defaults.
// An empty configPath means DefaultPath, which may be absent; an explicit
// path must exist.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	explicit := configPath != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	if _, err := toml.DecodeFile(configPath, cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
	} else {
		cfg.Source = configPath
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("DESKGEN_SCOPE"); v != "" {
		cfg.Scope = v
	}
	if v, ok := os.LookupEnv("DESKGEN_DEFAULT_VERSION"); ok {
		cfg.DefaultVersion = v
	}
	if v := os.Getenv("DESKGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DESKGEN_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil && debug {
			cfg.LogLevel = "debug"
		}
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
