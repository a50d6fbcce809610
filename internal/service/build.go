// Package service wires configuration into the catalog, engine and
// session store. Shared by the API server and the CLI.
package service

import (
	"context"
	"fmt"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
	"github.com/ProjetoPAA/projetoPAA/internal/config"
	"github.com/ProjetoPAA/projetoPAA/internal/engine"
	"github.com/ProjetoPAA/projetoPAA/internal/observability"
	"github.com/ProjetoPAA/projetoPAA/internal/session"
)

// LoadCatalogRecords reads the movie records from the configured source.
// A missing JSON file yields an empty list rather than an error.
func LoadCatalogRecords(cfg *config.Config, logger *observability.Logger) ([]catalog.MovieRecord, error) {
	switch cfg.Catalog.Source {
	case "sqlite":
		db, err := catalog.OpenDB(cfg.Catalog.SQLitePath)
		if err != nil {
			return nil, err
		}
		defer db.Close()

		store := catalog.NewStore(db)
		ctx := context.Background()
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store.ListAll(ctx)
	case "json":
		return catalog.LoadFile(cfg.Catalog.JSONPath, logger)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// BuildEngine constructs the process-wide engine instance: catalog and
// similarity index are built once here and shared by all requests.
func BuildEngine(records []catalog.MovieRecord, cfg *config.Config, logger *observability.Logger) *engine.Engine {
	cat := catalog.Load(records, logger)
	return engine.New(cat, logger, engine.Config{
		LowConfidenceThreshold: cfg.Engine.LowConfidenceThreshold,
		SessionFallbackScore:   cfg.Engine.SessionFallbackScore,
	})
}

// NewSessionStore creates the configured session store.
func NewSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Sessions.Store {
	case "redis":
		return session.NewRedisStore(session.RedisConfig{
			Addr:     cfg.Sessions.Redis.Addr,
			Password: cfg.Sessions.Redis.Password,
			DB:       cfg.Sessions.Redis.DB,
			Prefix:   cfg.Sessions.Redis.Prefix,
			TTL:      cfg.Sessions.TTL,
		})
	case "memory":
		return session.NewMemoryStore(cfg.Sessions.TTL), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Sessions.Store)
	}
}
