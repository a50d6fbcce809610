// Package omdb fetches movie data from the OMDb API to populate the
// catalog.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ProjetoPAA/projetoPAA/internal/catalog"
)

// Client queries the OMDb title-lookup endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Config holds OMDb client configuration.
type Config struct {
	APIKey  string
	BaseURL string // Default: https://www.omdbapi.com/
	Timeout time.Duration
}

// NewClient creates a new OMDb client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.omdbapi.com/"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}, nil
}

// movieResponse is the OMDb title-lookup payload. List fields arrive as
// comma-joined strings and absent fields as the literal "N/A".
type movieResponse struct {
	Title    string `json:"Title"`
	Director string `json:"Director"`
	Actors   string `json:"Actors"`
	Genre    string `json:"Genre"`
	Year     string `json:"Year"`
	Plot     string `json:"Plot"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// FetchMovie looks up one movie by title and maps it to a catalog record.
func (c *Client) FetchMovie(ctx context.Context, title string) (catalog.MovieRecord, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	params.Set("type", "movie")
	params.Set("r", "json")

	endpoint := strings.TrimSuffix(c.baseURL, "/") + "/?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return catalog.MovieRecord{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return catalog.MovieRecord{}, fmt.Errorf("omdb request for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catalog.MovieRecord{}, fmt.Errorf("omdb request for %q: unexpected status %d", title, resp.StatusCode)
	}

	var payload movieResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return catalog.MovieRecord{}, fmt.Errorf("decode omdb response for %q: %w", title, err)
	}

	if payload.Response != "True" {
		reason := payload.Error
		if reason == "" {
			reason = "unknown error"
		}
		return catalog.MovieRecord{}, fmt.Errorf("omdb lookup for %q failed: %s", title, reason)
	}

	return catalog.MovieRecord{
		Title:     payload.Title,
		Directors: splitList(payload.Director),
		Actors:    splitList(payload.Actors),
		Year:      parseYear(payload.Year),
		Genres:    splitList(payload.Genre),
		Synopsis:  cleanField(payload.Plot),
	}, nil
}

// splitList splits OMDb's comma-joined list fields, dropping "N/A".
func splitList(value string) []string {
	value = cleanField(value)
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func cleanField(value string) string {
	value = strings.TrimSpace(value)
	if value == "N/A" {
		return ""
	}
	return value
}

var yearDigits = regexp.MustCompile(`\d{4}`)

// parseYear extracts a four-digit year from values like "2019" or
// "2010–2012"; anything else maps to the unknown sentinel.
func parseYear(value string) int {
	if m := yearDigits.FindString(value); m != "" {
		year, _ := strconv.Atoi(m)
		return year
	}
	return catalog.YearUnknown
}
