package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err, "API key is required")

	c, err := NewClient(Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestFetchMovie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		assert.Equal(t, "The Matrix", r.URL.Query().Get("t"))
		assert.Equal(t, "movie", r.URL.Query().Get("type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
            "Title": "The Matrix",
            "Director": "Lana Wachowski, Lilly Wachowski",
            "Actors": "Keanu Reeves, Laurence Fishburne",
            "Genre": "Action, Sci-Fi",
            "Year": "1999",
            "Plot": "A hacker learns the truth.",
            "Response": "True"
        }`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	rec, err := client.FetchMovie(context.Background(), "The Matrix")
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", rec.Title)
	assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, rec.Directors)
	assert.Equal(t, []string{"Keanu Reeves", "Laurence Fishburne"}, rec.Actors)
	assert.Equal(t, 1999, rec.Year)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, rec.Genres)
	assert.Equal(t, "A hacker learns the truth.", rec.Synopsis)
}

func TestFetchMovie_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response": "False", "Error": "Movie not found!"}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchMovie(context.Background(), "No Such Movie")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Movie not found!")
}

func TestFetchMovie_MissingFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
            "Title": "Obscure Film",
            "Director": "N/A",
            "Actors": "N/A",
            "Genre": "N/A",
            "Year": "N/A",
            "Plot": "N/A",
            "Response": "True"
        }`))
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	rec, err := client.FetchMovie(context.Background(), "Obscure Film")
	require.NoError(t, err)

	assert.Equal(t, "Obscure Film", rec.Title)
	assert.Nil(t, rec.Directors)
	assert.Nil(t, rec.Actors)
	assert.Nil(t, rec.Genres)
	assert.Equal(t, catalog.YearUnknown, rec.Year)
	assert.Empty(t, rec.Synopsis)
}

func TestFetchMovie_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.FetchMovie(context.Background(), "The Matrix")
	assert.Error(t, err)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"1999", 1999},
		{"2010–2012", 2010},
		{"N/A", catalog.YearUnknown},
		{"", catalog.YearUnknown},
		{"soon", catalog.YearUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, parseYear(tc.input), "input %q", tc.input)
	}
}
