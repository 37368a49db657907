package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, ":8080", cfg.Address())
}

func TestLoad_FileAndEnvOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.yml")
	content := `
server:
  port: 9090
  mode: debug
data:
  file: data/directory.yaml
logging:
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("DIRECTORY_LOGGING__LEVEL", "debug")
	t.Setenv("DIRECTORY_ANALYTICS__MAX_EVENTS", "50")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin, "unset keys keep their defaults")
	assert.Equal(t, "data/directory.yaml", cfg.Data.File)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 50, cfg.Analytics.MaxEvents)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "directory.yml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  format: xml\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"negative port", func(c *Config) { c.Server.Port = -1 }, true},
		{"unknown mode", func(c *Config) { c.Server.Mode = "prod" }, true},
		{"unknown level", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"upper-case level", func(c *Config) { c.Logging.Level = "WARN" }, false},
		{"negative max events", func(c *Config) { c.Analytics.MaxEvents = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: 3000}}
	cfg.ApplyDefaults()

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, 10000, cfg.Analytics.MaxEvents)
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yml")

	cfg := DefaultConfig()
	cfg.Data.File = "snapshot.gob"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
