// Package engine orchestrates the question-answering pipeline: normalize,
// synonym-expand, similarity-search, classify, compose, with a session
// fallback for low-confidence follow-up questions.
package engine

import (
	"math/rand"

	"github.com/ProjetoPAA/projetoPAA/internal/answer"
	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
	"github.com/ProjetoPAA/projetoPAA/internal/classify"
	"github.com/ProjetoPAA/projetoPAA/internal/index"
	"github.com/ProjetoPAA/projetoPAA/internal/observability"
	"github.com/ProjetoPAA/projetoPAA/internal/textnorm"
)

// Defaults for the confidence policy.
const (
	// DefaultLowConfidenceThreshold is the cosine score below which a
	// match is not trusted on its own.
	DefaultLowConfidenceThreshold = 0.2
	// DefaultSessionFallbackScore is reported when the last matched title
	// is reused for a low-confidence follow-up.
	DefaultSessionFallbackScore = 0.5
)

// Canned user-facing responses. These are success-shaped: the caller
// returns them as ordinary answers, not errors.
const (
	insufficientAnswer = "Não tenho informações suficientes sobre esse filme."
	notFoundAnswer     = "Filme não encontrado na base de dados."
)

// SessionState is the per-conversation state. The transport layer owns
// its persistence; the engine only reads it on low-confidence queries and
// writes it after every successful compose.
type SessionState struct {
	LastMatchedTitle string `json:"ultimo_filme,omitempty"`
}

// AnswerResult is the outcome of answering a single question.
type AnswerResult struct {
	Question         string
	Answer           string
	MatchedTitle     string
	Score            float64
	LastMatchedTitle string
}

// Config holds engine tuning knobs. Zero values select defaults.
type Config struct {
	LowConfidenceThreshold float64
	SessionFallbackScore   float64
	RandSource             rand.Source
}

// Engine answers natural-language questions about a fixed movie catalog.
// The catalog and index are built once and immutable, so a single Engine
// is safe for concurrent requests.
type Engine struct {
	catalog    *catalog.Catalog
	normalizer *textnorm.Normalizer
	index      *index.Index
	classifier *classify.Classifier
	composer   *answer.Composer
	logger     *observability.Logger

	lowConfidence float64
	fallbackScore float64
}

// New builds an engine over the catalog: the documents are normalized and
// indexed here, once.
func New(cat *catalog.Catalog, logger *observability.Logger, cfg Config) *Engine {
	if cfg.LowConfidenceThreshold <= 0 {
		cfg.LowConfidenceThreshold = DefaultLowConfidenceThreshold
	}
	if cfg.SessionFallbackScore <= 0 {
		cfg.SessionFallbackScore = DefaultSessionFallbackScore
	}
	if logger == nil {
		logger = observability.Nop()
	}

	normalizer := textnorm.New()

	return &Engine{
		catalog:       cat,
		normalizer:    normalizer,
		index:         index.Build(cat.Documents(), normalizer),
		classifier:    classify.NewClassifier(),
		composer:      answer.NewComposer(cfg.RandSource),
		logger:        logger,
		lowConfidence: cfg.LowConfidenceThreshold,
		fallbackScore: cfg.SessionFallbackScore,
	}
}

// AnswerQuestion runs the full pipeline for one question. It is safe to
// call with an empty string or arbitrary Unicode; low-confidence and
// not-found outcomes are returned as canned answers, and the error is
// reserved for unexpected internal failures. state may be nil, meaning a
// fresh conversation; on success the engine writes the matched title
// back into it.
func (e *Engine) AnswerQuestion(question string, state *SessionState) (AnswerResult, error) {
	if state == nil {
		state = &SessionState{}
	}

	result := AnswerResult{
		Question:         question,
		LastMatchedTitle: state.LastMatchedTitle,
	}

	normalized := e.normalizer.Normalize(question)
	expanded := classify.ExpandSynonyms(normalized)

	best, score := e.index.Query(expanded)
	result.Score = clamp01(score)

	var title string
	if rec, ok := e.catalog.Record(best); ok {
		title = rec.Title
	}

	if score < e.lowConfidence {
		reused := false
		if last := state.LastMatchedTitle; last != "" {
			if _, ok := e.catalog.Lookup(last); ok {
				title = last
				result.Score = e.fallbackScore
				reused = true
			}
		}
		if !reused {
			// No usable session fallback; leave the session untouched.
			result.Answer = insufficientAnswer
			e.logger.Debug().
				Str("question", question).
				Float64("score", score).
				Msg("No confident match")
			return result, nil
		}
	}

	movie, ok := e.catalog.Lookup(title)
	if !ok {
		// The index matched a record the catalog no longer holds.
		result.Answer = notFoundAnswer
		return result, nil
	}

	// Classification runs on the raw question, not the normalized text.
	categories := e.classifier.Classify(question)

	result.Answer = e.composer.Compose(movie, categories)
	result.MatchedTitle = movie.Title

	state.LastMatchedTitle = movie.Title
	result.LastMatchedTitle = movie.Title

	e.logger.Debug().
		Str("question", question).
		Str("matched_title", movie.Title).
		Float64("score", result.Score).
		Strs("categories", categoryStrings(categories)).
		Msg("Question answered")

	return result, nil
}

// CatalogSize returns the number of records the engine answers over.
func (e *Engine) CatalogSize() int {
	return e.catalog.Len()
}

func categoryStrings(categories []classify.Category) []string {
	out := make([]string, len(categories))
	for i, c := range categories {
		out[i] = string(c)
	}
	return out
}

func clamp01(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	}
	return x
}
