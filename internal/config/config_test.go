package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Catalog.Source)
	assert.Equal(t, "filmes.json", cfg.Catalog.JSONPath)
	assert.Equal(t, "memory", cfg.Sessions.Store)
	assert.Equal(t, "movieqa_session", cfg.Sessions.CookieName)
	assert.Equal(t, 0.2, cfg.Engine.LowConfidenceThreshold)
	assert.Equal(t, 0.5, cfg.Engine.SessionFallbackScore)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8080
catalog:
  source: sqlite
  sqlite_path: /tmp/filmes.db
engine:
  low_confidence_threshold: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Catalog.Source)
	assert.Equal(t, "/tmp/filmes.db", cfg.Catalog.SQLitePath)
	assert.Equal(t, 0.3, cfg.Engine.LowConfidenceThreshold)
	// Untouched sections keep their defaults.
	assert.Equal(t, "memory", cfg.Sessions.Store)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MOVIEQA_SERVER_PORT", "9000")
	t.Setenv("MOVIEQA_SESSIONS_STORE", "redis")
	t.Setenv("MOVIEQA_REDIS_ADDR", "redis.internal:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Sessions.Store)
	assert.Equal(t, "redis.internal:6379", cfg.Sessions.Redis.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(c *Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, false},
		{"bad catalog source", func(c *Config) { c.Catalog.Source = "csv" }, false},
		{"bad session store", func(c *Config) { c.Sessions.Store = "memcached" }, false},
		{"threshold above one", func(c *Config) { c.Engine.LowConfidenceThreshold = 1.5 }, false},
		{"negative fallback score", func(c *Config) { c.Engine.SessionFallbackScore = -0.1 }, false},
		{"redis store", func(c *Config) { c.Sessions.Store = "redis" }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
