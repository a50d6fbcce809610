package index

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lowercaseNormalizer keeps index tests independent of the real text
// pipeline: documents and queries are plain lowercase token strings.
type lowercaseNormalizer struct{}

func (lowercaseNormalizer) Normalize(text string) string {
	return strings.ToLower(text)
}

func TestBuild(t *testing.T) {
	ix := Build([]string{"matrix reloaded", "inception dream"}, lowercaseNormalizer{})

	assert.Equal(t, 2, ix.Len())
	assert.Equal(t, 4, ix.VocabularySize())
}

func TestBuild_Empty(t *testing.T) {
	ix := Build(nil, lowercaseNormalizer{})

	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, ix.VocabularySize())

	best, score := ix.Query("anything")
	assert.Equal(t, -1, best)
	assert.Zero(t, score)
}

func TestQuery_BestMatch(t *testing.T) {
	ix := Build([]string{"matrix reloaded", "inception dream"}, lowercaseNormalizer{})

	best, score := ix.Query("matrix")
	assert.Equal(t, 0, best)
	// Both doc-0 terms carry the same IDF, so the cosine against a
	// single-term query is exactly 1/sqrt(2).
	assert.InDelta(t, 1/math.Sqrt2, score, 1e-9)

	best, score = ix.Query("dream")
	assert.Equal(t, 1, best)
	assert.InDelta(t, 1/math.Sqrt2, score, 1e-9)
}

func TestQuery_ScoreBounds(t *testing.T) {
	docs := []string{
		"matrix neo trinity",
		"inception dream heist",
		"matrix inception crossover",
	}
	ix := Build(docs, lowercaseNormalizer{})

	queries := []string{
		"matrix",
		"matrix neo trinity",
		"inception dream heist crossover",
		"matrix matrix matrix",
	}
	for _, q := range queries {
		_, score := ix.Query(q)
		assert.GreaterOrEqual(t, score, 0.0, "query %q", q)
		assert.LessOrEqual(t, score, 1.0+1e-9, "query %q", q)
	}
}

func TestQuery_ExactDocumentScoresOne(t *testing.T) {
	ix := Build([]string{"matrix neo trinity", "inception dream"}, lowercaseNormalizer{})

	best, score := ix.Query("matrix neo trinity")
	assert.Equal(t, 0, best)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestQuery_NoOverlap(t *testing.T) {
	ix := Build([]string{"matrix reloaded"}, lowercaseNormalizer{})

	best, score := ix.Query("completely unrelated words")
	assert.Equal(t, 0, best)
	assert.Zero(t, score)
}

func TestQuery_EmptyQuery(t *testing.T) {
	ix := Build([]string{"matrix reloaded"}, lowercaseNormalizer{})

	_, score := ix.Query("")
	assert.Zero(t, score)
}

func TestQuery_TieBreaksTowardLowestIndex(t *testing.T) {
	// Both documents contain the query term with identical weight.
	ix := Build([]string{"shared alpha", "shared beta"}, lowercaseNormalizer{})

	best, score := ix.Query("shared")
	assert.Equal(t, 0, best)
	assert.Greater(t, score, 0.0)
}

func TestQuery_IgnoresOutOfVocabularyTerms(t *testing.T) {
	ix := Build([]string{"matrix reloaded", "inception dream"}, lowercaseNormalizer{})

	bestClean, scoreClean := ix.Query("matrix")
	bestNoisy, scoreNoisy := ix.Query("matrix zzzz")
	require.Equal(t, bestClean, bestNoisy)
	// The unknown term dilutes term frequency but adds no weight, so the
	// match target is unchanged and the score can only drop or hold.
	assert.LessOrEqual(t, scoreNoisy, scoreClean+1e-9)
	assert.Greater(t, scoreNoisy, 0.0)
}

func TestQuery_EmptyDocumentNeverMatches(t *testing.T) {
	ix := Build([]string{"", "matrix"}, lowercaseNormalizer{})

	best, score := ix.Query("matrix")
	assert.Equal(t, 1, best)
	assert.Greater(t, score, 0.0)
}
