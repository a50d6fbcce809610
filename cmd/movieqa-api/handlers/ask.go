// Package handlers provides HTTP handlers for the movie QA API.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ProjetoPAA/projetoPAA/cmd/movieqa-api/middleware"
	"github.com/ProjetoPAA/projetoPAA/internal/engine"
	"github.com/ProjetoPAA/projetoPAA/internal/observability"
	"github.com/ProjetoPAA/projetoPAA/internal/session"
)

// AskHandler handles question-answering requests.
type AskHandler struct {
	logger   *observability.Logger
	qa       *engine.Engine
	sessions session.Store
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(logger *observability.Logger, qa *engine.Engine, sessions session.Store) *AskHandler {
	return &AskHandler{
		logger:   logger,
		qa:       qa,
		sessions: sessions,
	}
}

// AskRequestDTO is the API request for a question.
type AskRequestDTO struct {
	Question string `json:"pergunta"`
}

// AskResponseDTO is the API response. Field names match what the
// existing frontend consumes.
type AskResponseDTO struct {
	Question  string  `json:"pergunta"`
	Answer    string  `json:"resposta"`
	Movie     string  `json:"filme"`
	Score     float64 `json:"score"`
	LastMovie string  `json:"ultimo_filme"`
}

// ErrorDTO is the API error shape.
type ErrorDTO struct {
	Error string `json:"erro"`
}

// SessionDTO echoes the stored session for debugging.
type SessionDTO struct {
	SessionID string `json:"session_id"`
	LastMovie string `json:"ultimo_filme"`
}

// Ask answers a question, reading and writing the caller's session.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: `Campo "pergunta" é obrigatório`})
		return
	}

	ctx := r.Context()
	sessionID := middleware.SessionID(ctx)

	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		h.logger.Error().Err(err).Msg("Session read failed")
		writeJSON(w, http.StatusInternalServerError, ErrorDTO{Error: err.Error()})
		return
	}

	result, err := h.qa.AnswerQuestion(req.Question, &state)
	if err != nil {
		h.logger.Error().Err(err).Str("question", req.Question).Msg("Answering failed")
		writeJSON(w, http.StatusInternalServerError, ErrorDTO{Error: err.Error()})
		return
	}

	if err := h.sessions.Put(ctx, sessionID, state); err != nil {
		h.logger.Error().Err(err).Msg("Session write failed")
	}

	writeJSON(w, http.StatusOK, AskResponseDTO{
		Question:  result.Question,
		Answer:    result.Answer,
		Movie:     result.MatchedTitle,
		Score:     result.Score,
		LastMovie: result.LastMatchedTitle,
	})
}

// DebugSession echoes the caller's stored session state.
func (h *AskHandler) DebugSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionID(ctx)

	state, err := h.sessions.Get(ctx, sessionID)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		writeJSON(w, http.StatusInternalServerError, ErrorDTO{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, SessionDTO{
		SessionID: sessionID,
		LastMovie: state.LastMatchedTitle,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
