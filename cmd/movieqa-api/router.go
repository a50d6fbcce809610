// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/ProjetoPAA/projetoPAA/cmd/movieqa-api/handlers"
	"github.com/ProjetoPAA/projetoPAA/cmd/movieqa-api/middleware"
	"github.com/ProjetoPAA/projetoPAA/internal/config"
	"github.com/ProjetoPAA/projetoPAA/internal/engine"
	"github.com/ProjetoPAA/projetoPAA/internal/observability"
	"github.com/ProjetoPAA/projetoPAA/internal/session"
)

// NewRouter creates the API router with all routes configured.
func NewRouter(logger *observability.Logger, qa *engine.Engine, sessions session.Store, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(chimiddleware.Timeout(cfg.Server.ReadTimeout))
	r.Use(middleware.Session(cfg.Sessions.CookieName))

	// Health check
	r.Get("/saude", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","service":"movieqa"}`))
	})

	ask := handlers.NewAskHandler(logger, qa, sessions)
	r.Post("/perguntar", ask.Ask)
	r.Get("/sessao", ask.DebugSession)

	return r
}
