package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandSynonyms(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"no synonyms", "matrix filme", "matrix filme"},
		{"director synonym", "realizador matrix", "diretor matrix"},
		{"cast synonym", "elenco matrix", "ator matrix"},
		{"genre synonym", "estilo matrix", "genero matrix"},
		{"year synonym", "lancamento matrix", "ano matrix"},
		{"multi word synonym", "ficcao cientifica matrix", "genero matrix"},
		{"several groups at once", "realizador e elenco", "diretor e ator"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExpandSynonyms(tc.input))
		})
	}
}

func TestExpandSynonyms_StemmedEngineInput(t *testing.T) {
	// The engine expands after normalization, where inflected entries
	// have already been stemmed ("dirigiu" → "dirig", "lancamento" →
	// "lancament") and no longer match the table; those tokens pass
	// through unchanged and the similarity query sees the stems.
	assert.Equal(t, "dirig matrix", ExpandSynonyms("dirig matrix"))
	assert.Equal(t, "lancament matrix", ExpandSynonyms("lancament matrix"))
	assert.Equal(t, "estre matrix", ExpandSynonyms("estre matrix"))
}

func TestExpandSynonyms_EarlierGroupWins(t *testing.T) {
	// "criador" is a director synonym; after the director group rewrites
	// it, the genre group's "categoria" can no longer fire on it.
	assert.Equal(t, "diretor", ExpandSynonyms("criador"))

	// "acao" rewrites to genero even as a substring of a larger token;
	// the expansion is substring-based on purpose, matching how the
	// similarity query treats the text.
	assert.Equal(t, "genero", ExpandSynonyms("acao"))
}
