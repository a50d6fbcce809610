package textnorm

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestNormalizer_Normalize(t *testing.T) {
	n := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty string", "", ""},
		{"whitespace only", "   \t\n  ", ""},
		{"stop words only", "de o que e a com não", ""},
		{"punctuation and digits only", "!!! 123 ??? 2019", ""},
		{"verb is stemmed", "Quem dirigiu Matrix?", "dirig matrix"},
		{"question word is dropped", "quem matrix", "matrix"},
		{"english stop words dropped", "the matrix", "matrix"},
		{"year digits removed", "matrix 1999", "matrix"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, n.Normalize(tc.input))
		})
	}
}

func TestNormalizer_StripsAccents(t *testing.T) {
	n := New()

	out := n.Normalize("Qual o gênero de ação do filme?")
	for _, r := range out {
		assert.True(t, r <= unicode.MaxASCII, "normalized output should be ASCII, got %q", out)
	}
	assert.NotContains(t, out, "ê")
	assert.NotContains(t, out, "ç")
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := New()

	// "temas" stems onto the stop word "tem", and "direção" needs two
	// stemmer passes to reach a stable stem; both used to change again
	// on re-normalization.
	inputs := []string{
		"temas temos tema coisas coisa",
		"direção lançamento estreia do filme",
		"Quem dirigiu Matrix?",
		"Qual o gênero de ação do filme?",
		"Em que ano foi lançado The Dark Knight?",
		"asdkjf qwer zxcv",
		"the matrix reloaded 2003",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in)
		assert.Equal(t, once, n.Normalize(once), "input %q", in)
	}
}

func TestNormalizer_DropsStemsThatLandOnStopWords(t *testing.T) {
	n := New()

	// "temas" → "tem", which is itself a stop word.
	assert.Equal(t, "", n.Normalize("temas"))
}

func TestNormalizer_TotalOnArbitraryInput(t *testing.T) {
	n := New()

	inputs := []string{
		"🎬🎬🎬",
		strings.Repeat("a", 10_000),
		"MiXeD CaSe InPuT",
		"tabs\tand\nnewlines",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { n.Normalize(in) })
	}
}

func TestNormalizer_SingleSpaceSeparated(t *testing.T) {
	n := New()

	out := n.Normalize("Matrix    Reloaded   filme")
	if out != "" {
		assert.Equal(t, strings.Join(strings.Fields(out), " "), out,
			"terms must be joined by single spaces")
	}
	assert.False(t, strings.HasPrefix(out, " "))
	assert.False(t, strings.HasSuffix(out, " "))
}
