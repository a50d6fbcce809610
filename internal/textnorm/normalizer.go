// Package textnorm turns raw text into the normalized term stream the
// similarity index is built on. The pipeline is lowercase, diacritic
// transliteration, punctuation and digit removal, UAX#29 word
// segmentation, bilingual stop-word removal, and Snowball stemming with a
// Portuguese-first, English-fallback policy.
package textnorm

import (
	"strings"
	"unicode"

	"github.com/blevesearch/snowballstem"
	"github.com/blevesearch/snowballstem/english"
	"github.com/blevesearch/snowballstem/portuguese"
	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer converts raw text into stemmed, stop-word-free term text.
// It is stateless and safe for concurrent use.
type Normalizer struct{}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{}
}

// unaccent decomposes characters and drops combining marks, so "ação"
// becomes "acao".
var unaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases the input, transliterates accents, strips
// punctuation and digits, tokenizes on word boundaries, removes English
// and Portuguese stop words and stems what survives. It is total: any
// input, including the empty string, yields a (possibly empty) result,
// and a token no stemmer accepts passes through unchanged rather than
// being dropped. It is also idempotent: tokens are stemmed to a fixed
// point and stems that land on a stop word ("temas" stems to "tem") are
// filtered again, so Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(text string) string {
	lowered := strings.ToLower(text)
	if out, _, err := transform.String(unaccent, lowered); err == nil {
		lowered = out
	}

	// Keep letters and whitespace only; punctuation and digits go.
	var cleaned strings.Builder
	cleaned.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			cleaned.WriteRune(r)
		}
	}

	var stems []string
	tokens := words.FromString(cleaned.String())
	for tokens.Next() {
		token := strings.TrimSpace(tokens.Value())
		if token == "" {
			continue
		}
		if isStopWord(token) {
			continue
		}
		stem := stemTokenFixedPoint(token)
		if stem == "" || isStopWord(stem) {
			continue
		}
		stems = append(stems, stem)
	}

	return strings.Join(stems, " ")
}

// stemTokenFixedPoint reapplies the stemmer until the token stops
// changing. A single pass is not enough: the Portuguese stemmer maps
// "direcao" to "direca" and only a second pass reaches the stable
// "direc".
func stemTokenFixedPoint(token string) string {
	for i := 0; i < 8; i++ {
		next := stemToken(token)
		if next == token {
			break
		}
		token = next
	}
	return token
}

// stemToken tries the Portuguese stemmer first and falls back to English.
// Stemming never fails the pipeline: if neither stemmer accepts the token
// it is returned as-is.
func stemToken(token string) string {
	env := snowballstem.NewEnv(token)
	if portuguese.Stem(env) {
		return env.Current()
	}

	env = snowballstem.NewEnv(token)
	if english.Stem(env) {
		return env.Current()
	}

	return token
}
