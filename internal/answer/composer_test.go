package answer

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
	"github.com/ProjetoPAA/projetoPAA/internal/classify"
)

var testMovie = catalog.MovieRecord{
	Title:     "The Matrix",
	Directors: []string{"Lana Wachowski", "Lilly Wachowski"},
	Actors:    []string{"Keanu Reeves", "Laurence Fishburne"},
	Year:      1999,
	Genres:    []string{"Action", "Sci-Fi"},
	Synopsis:  "A hacker discovers reality is a simulation.",
}

func TestCompose_SingleCategory(t *testing.T) {
	c := NewComposer(rand.NewSource(1))

	tests := []struct {
		name     string
		category classify.Category
		contains []string
	}{
		{"diretor", classify.CategoryDiretor, []string{"Lana Wachowski", "Lilly Wachowski"}},
		{"ator", classify.CategoryAtor, []string{"Keanu Reeves", "Laurence Fishburne"}},
		{"genero", classify.CategoryGenero, []string{"Action", "Sci-Fi"}},
		{"ano", classify.CategoryAno, []string{"1999"}},
		{"sinopse", classify.CategorySinopse, []string{"The Matrix", "simulation"}},
		{"geral", classify.CategoryGeral, []string{"The Matrix", "1999", "Action"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Compose(testMovie, []classify.Category{tc.category})
			for _, want := range tc.contains {
				assert.Contains(t, got, want)
			}
		})
	}
}

func TestCompose_PicksFromPhrasingSet(t *testing.T) {
	c := NewComposer(rand.NewSource(42))

	for _, category := range []classify.Category{
		classify.CategoryDiretor,
		classify.CategoryAtor,
		classify.CategoryGenero,
		classify.CategoryAno,
	} {
		variants := Phrasings(testMovie, category)
		require.NotEmpty(t, variants, "category %s", category)

		// Every draw must land inside the declared phrasing set.
		for i := 0; i < 20; i++ {
			got := c.Compose(testMovie, []classify.Category{category})
			assert.Contains(t, variants, got, "category %s", category)
		}
	}
}

func TestCompose_CompoundCategories(t *testing.T) {
	c := NewComposer(rand.NewSource(7))

	got := c.Compose(testMovie, []classify.Category{classify.CategoryDiretor, classify.CategoryAno})
	assert.Contains(t, got, "Wachowski")
	assert.Contains(t, got, "1999")

	// Exactly one joining space between the two parts.
	first := Phrasings(testMovie, classify.CategoryDiretor)
	matched := false
	for _, p := range first {
		if strings.HasPrefix(got, p+" ") {
			matched = true
		}
	}
	assert.True(t, matched, "answer %q must start with a diretor phrasing", got)
}

func TestCompose_EmptyCategories(t *testing.T) {
	c := NewComposer(rand.NewSource(1))

	assert.Equal(t, NotUnderstood, c.Compose(testMovie, nil))
	assert.Equal(t, NotUnderstood, c.Compose(testMovie, []classify.Category{}))
}

func TestCompose_UnknownCategory(t *testing.T) {
	c := NewComposer(rand.NewSource(1))

	got := c.Compose(testMovie, []classify.Category{classify.Category("trilha_sonora")})
	assert.Equal(t, NotUnderstood, got)
}

func TestCompose_SparseRecord(t *testing.T) {
	c := NewComposer(rand.NewSource(1))
	sparse := catalog.MovieRecord{Title: "Obscure Film"}

	for _, category := range []classify.Category{
		classify.CategoryDiretor,
		classify.CategoryAtor,
		classify.CategoryGenero,
		classify.CategoryAno,
		classify.CategorySinopse,
		classify.CategoryGeral,
	} {
		got := c.Compose(sparse, []classify.Category{category})
		assert.NotEmpty(t, got)
		assert.NotContains(t, got, "%s", "no unexpanded placeholders")
		assert.NotContains(t, got, "%d", "no unexpanded placeholders")
	}
}

func TestCompose_MissingSynopsisAndYear(t *testing.T) {
	c := NewComposer(rand.NewSource(1))
	sparse := catalog.MovieRecord{Title: "Obscure Film"}

	assert.Contains(t, c.Compose(sparse, []classify.Category{classify.CategorySinopse}), "Sinopse não disponível")
	assert.Contains(t, c.Compose(sparse, []classify.Category{classify.CategoryAno}), "desconhecido")
}

func TestNewComposer_NilSource(t *testing.T) {
	c := NewComposer(nil)
	assert.NotPanics(t, func() {
		c.Compose(testMovie, []classify.Category{classify.CategoryDiretor})
	})
}
