// Package config provides unified configuration loading for the movie QA service.
// Supports YAML files, a .env file, environment variables, and defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the movie QA service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Sessions      SessionsConfig      `yaml:"sessions"`
	Engine        EngineConfig        `yaml:"engine"`
	OMDB          OMDBConfig          `yaml:"omdb"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
	AllowedOrigins   []string      `yaml:"allowed_origins"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	Source     string `yaml:"source"` // json or sqlite
	JSONPath   string `yaml:"json_path"`
	SQLitePath string `yaml:"sqlite_path"`
}

// SessionsConfig holds session store settings.
type SessionsConfig struct {
	Store      string        `yaml:"store"` // memory or redis
	TTL        time.Duration `yaml:"ttl"`
	CookieName string        `yaml:"cookie_name"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// EngineConfig holds question-answering engine settings.
type EngineConfig struct {
	LowConfidenceThreshold float64 `yaml:"low_confidence_threshold"`
	SessionFallbackScore   float64 `yaml:"session_fallback_score"`
}

// OMDBConfig holds OMDb API client settings used by the fetch command.
type OMDBConfig struct {
	BaseURL string        `yaml:"base_url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Load reads configuration from a YAML file and applies environment overrides.
// An empty path loads defaults plus environment only.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with sensible defaults for development.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             5000,
			ReadTimeout:      15 * time.Second,
			WriteTimeout:     15 * time.Second,
			IdleTimeout:      60 * time.Second,
			GracefulShutdown: 10 * time.Second,
			AllowedOrigins:   []string{"http://localhost:3000"},
		},
		Catalog: CatalogConfig{
			Source:     "json",
			JSONPath:   "filmes.json",
			SQLitePath: "filmes.db",
		},
		Sessions: SessionsConfig{
			Store:      "memory",
			TTL:        30 * time.Minute,
			CookieName: "movieqa_session",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "movieqa:sess:",
			},
		},
		Engine: EngineConfig{
			LowConfidenceThreshold: 0.2,
			SessionFallbackScore:   0.5,
		},
		OMDB: OMDBConfig{
			BaseURL: "https://www.omdbapi.com/",
			Timeout: 15 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel:  "info",
			LogFormat: "console",
		},
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}

	switch c.Catalog.Source {
	case "json", "sqlite":
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}

	switch c.Sessions.Store {
	case "memory", "redis":
	default:
		return fmt.Errorf("unknown session store %q", c.Sessions.Store)
	}

	if t := c.Engine.LowConfidenceThreshold; t < 0 || t > 1 {
		return fmt.Errorf("low confidence threshold %f outside [0, 1]", t)
	}
	if s := c.Engine.SessionFallbackScore; s < 0 || s > 1 {
		return fmt.Errorf("session fallback score %f outside [0, 1]", s)
	}

	return nil
}

// applyEnvOverrides overrides configuration with MOVIEQA_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOVIEQA_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("MOVIEQA_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MOVIEQA_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("MOVIEQA_CATALOG_JSON_PATH"); v != "" {
		cfg.Catalog.JSONPath = v
	}
	if v := os.Getenv("MOVIEQA_CATALOG_SQLITE_PATH"); v != "" {
		cfg.Catalog.SQLitePath = v
	}
	if v := os.Getenv("MOVIEQA_SESSIONS_STORE"); v != "" {
		cfg.Sessions.Store = v
	}
	if v := os.Getenv("MOVIEQA_REDIS_ADDR"); v != "" {
		cfg.Sessions.Redis.Addr = v
	}
	if v := os.Getenv("MOVIEQA_REDIS_PASSWORD"); v != "" {
		cfg.Sessions.Redis.Password = v
	}
	if v := os.Getenv("MOVIEQA_OMDB_API_KEY"); v != "" {
		cfg.OMDB.APIKey = v
	}
	if v := os.Getenv("MOVIEQA_LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}
	if v := os.Getenv("MOVIEQA_LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}
