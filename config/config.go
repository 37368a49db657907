// Package config loads the directory server configuration.
// Values come from defaults, then an optional YAML file, then DIRECTORY_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides. Nested keys are separated
// by a double underscore: DIRECTORY_SERVER__PORT sets server.port.
const EnvPrefix = "DIRECTORY_"

// Config is the top-level configuration, corresponding to directory.yml.
type Config struct {
	Server    ServerConfig    `yaml:"server" koanf:"server"`
	Data      DataConfig      `yaml:"data" koanf:"data"`
	Logging   LoggingConfig   `yaml:"logging" koanf:"logging"`
	Analytics AnalyticsConfig `yaml:"analytics" koanf:"analytics"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port          int    `yaml:"port" koanf:"port"`
	Mode          string `yaml:"mode" koanf:"mode"` // gin mode: debug, release or test
	AllowedOrigin string `yaml:"allowed_origin" koanf:"allowed_origin"`
}

// DataConfig selects the dataset. An empty File serves the embedded seed.
type DataConfig struct {
	File string `yaml:"file" koanf:"file"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"` // text or json
}

// AnalyticsConfig bounds the in-memory search analytics.
type AnalyticsConfig struct {
	MaxEvents int `yaml:"max_events" koanf:"max_events"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:          8080,
			Mode:          "release",
			AllowedOrigin: "*",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Analytics: AnalyticsConfig{
			MaxEvents: 10000,
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DIRECTORY_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps DIRECTORY_SERVER__ALLOWED_ORIGIN to server.allowed_origin.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// ApplyDefaults fills zero values with their defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.Server.Port == 0 {
		c.Server.Port = defaults.Server.Port
	}
	if c.Server.Mode == "" {
		c.Server.Mode = defaults.Server.Mode
	}
	if c.Server.AllowedOrigin == "" {
		c.Server.AllowedOrigin = defaults.Server.AllowedOrigin
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	if c.Analytics.MaxEvents == 0 {
		c.Analytics.MaxEvents = defaults.Analytics.MaxEvents
	}
}

var (
	validModes   = map[string]bool{"debug": true, "release": true, "test": true}
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true}
)

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid logging.level %q: must be one of debug, info, warn, error", c.Logging.Level)
	}
	if !validFormats[c.Logging.Format] {
		return fmt.Errorf("invalid logging.format %q: must be text or json", c.Logging.Format)
	}
	if c.Analytics.MaxEvents < 0 {
		return fmt.Errorf("analytics.max_events must be non-negative")
	}
	return nil
}

// Address returns the listen address for the HTTP server.
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
