// Package classify maps raw questions to the semantic categories they ask
// about: director, cast, genre, year, synopsis or general information.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Category is the semantic type of information a question requests.
type Category string

// Category tags, named as the question bank and answer templates use them.
const (
	CategoryDiretor Category = "diretor"
	CategoryAtor    Category = "ator"
	CategoryGenero  Category = "genero"
	CategoryAno     Category = "ano"
	CategorySinopse Category = "sinopse"
	CategoryGeral   Category = "geral"
)

// fuzzyMatchCutoff is the 0-100 ratio a bank example must strictly exceed.
const fuzzyMatchCutoff = 70

// Classifier classifies questions with a fuzzy match against a curated
// example bank, falling back to keyword patterns. Read-only after
// construction, safe for concurrent use.
type Classifier struct {
	bank     []QuestionExample
	patterns []categoryPattern
}

type categoryPattern struct {
	category Category
	re       *regexp.Regexp
}

// NewClassifier creates a classifier over the built-in question bank.
func NewClassifier() *Classifier {
	return &Classifier{
		bank: questionBank,
		// Tested in this fixed order; the first match wins.
		patterns: []categoryPattern{
			{CategoryDiretor, regexp.MustCompile(`diretor|dirigiu|realizador`)},
			{CategoryAtor, regexp.MustCompile(`ator|atriz|elenco|estrela`)},
			{CategoryGenero, regexp.MustCompile(`gênero|genero|tipo|estilo`)},
			{CategoryAno, regexp.MustCompile(`ano|lançamento|lançou`)},
			{CategorySinopse, regexp.MustCompile(`sinopse|resumo|enredo`)},
		},
	}
}

// Classify returns the categories a question asks about, in order. It is
// total: every input yields at least one category, geral when nothing
// more specific matches. The fuzzy bank runs first; a bank hit whose sole
// category is geral is not terminal and defers to the keyword patterns.
func (c *Classifier) Classify(question string) []Category {
	lowered := strings.ToLower(question)

	for _, example := range c.bank {
		if fuzzyRatio(lowered, strings.ToLower(example.Text)) <= fuzzyMatchCutoff {
			continue
		}
		if len(example.Categories) == 1 && example.Categories[0] == CategoryGeral {
			break
		}
		categories := make([]Category, len(example.Categories))
		copy(categories, example.Categories)
		return categories
	}

	for _, p := range c.patterns {
		if p.re.MatchString(lowered) {
			return []Category{p.category}
		}
	}
	return []Category{CategoryGeral}
}

// fuzzyRatio is a symmetric 0-100 similarity between two strings:
// Levenshtein distance normalized by the longer rune length.
func fuzzyRatio(a, b string) int {
	if a == b {
		return 100
	}

	longest := utf8.RuneCountInString(a)
	if lb := utf8.RuneCountInString(b); lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 100
	}

	distance := levenshtein.ComputeDistance(a, b)
	return int(float64(longest-distance) / float64(longest) * 100)
}
