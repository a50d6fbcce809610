// Package answer renders movie records into natural-language responses.
package answer

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
	"github.com/ProjetoPAA/projetoPAA/internal/classify"
)

// NotUnderstood is the fixed response for categories the composer does
// not know how to answer.
const NotUnderstood = "Não consegui entender sua pergunta."

// missingSynopsis substitutes for records without one.
const missingSynopsis = "Sinopse não disponível"

// Composer turns a movie record and a category list into answer text.
// Where a category has several phrasings one is picked uniformly at
// random; that output variability is intentional.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a composer drawing phrasing choices from src.
// A nil source gets a time-seeded one; tests pass a fixed seed and
// assert against Phrasings.
func NewComposer(src rand.Source) *Composer {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Composer{rng: rand.New(src)}
}

// Compose renders one answer per category, in order, joined with single
// spaces. It never panics on sparse records and never emits template
// placeholders; an empty category list yields the NotUnderstood message.
func (c *Composer) Compose(movie catalog.MovieRecord, categories []classify.Category) string {
	if len(categories) == 0 {
		return NotUnderstood
	}

	parts := make([]string, len(categories))
	for i, cat := range categories {
		parts[i] = c.composeOne(movie, cat)
	}
	return strings.Join(parts, " ")
}

func (c *Composer) composeOne(movie catalog.MovieRecord, category classify.Category) string {
	variants := Phrasings(movie, category)
	if len(variants) == 0 {
		return fallbackAnswer(movie, category)
	}
	return variants[c.pick(len(variants))]
}

func (c *Composer) pick(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// Phrasings returns every phrasing the composer may choose for a
// category, or nil for categories served by the single-phrasing
// fallback. Exposed so tests can assert on the full output set.
func Phrasings(m catalog.MovieRecord, category classify.Category) []string {
	switch category {
	case classify.CategoryDiretor:
		directors := strings.Join(m.Directors, ", ")
		return []string{
			fmt.Sprintf("O diretor de %s é %s.", m.Title, directors),
			fmt.Sprintf("%s foi dirigido por %s.", m.Title, directors),
		}
	case classify.CategoryAtor:
		actors := strings.Join(m.Actors, ", ")
		return []string{
			fmt.Sprintf("No elenco de %s temos: %s.", m.Title, actors),
			fmt.Sprintf("Os atores principais são %s.", actors),
		}
	case classify.CategoryGenero:
		genres := strings.Join(m.Genres, ", ")
		return []string{
			fmt.Sprintf("%s é do gênero: %s.", m.Title, genres),
			fmt.Sprintf("Classificado como: %s.", genres),
		}
	case classify.CategoryAno:
		year := yearString(m)
		return []string{
			fmt.Sprintf("Foi lançado em %s.", year),
			fmt.Sprintf("Ano de lançamento: %s.", year),
		}
	}
	return nil
}

// fallbackAnswer is the fixed single-phrasing generator for categories
// outside the template set.
func fallbackAnswer(m catalog.MovieRecord, category classify.Category) string {
	switch category {
	case classify.CategoryGeral:
		return fmt.Sprintf("Sobre %s: Diretor(es): %s, Ano: %s, Gênero: %s",
			m.Title, strings.Join(m.Directors, ", "), yearString(m), strings.Join(m.Genres, ", "))
	case classify.CategorySinopse:
		synopsis := m.Synopsis
		if synopsis == "" {
			synopsis = missingSynopsis
		}
		return fmt.Sprintf("A sinopse de %s é: %s.", m.Title, synopsis)
	}
	return NotUnderstood
}

func yearString(m catalog.MovieRecord) string {
	if m.Year == catalog.YearUnknown {
		return "desconhecido"
	}
	return strconv.Itoa(m.Year)
}
