package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ProjetoPAA/projetoPAA/internal/observability"
)

// movieJSON mirrors the on-disk filmes.json record shape shared with the
// OMDb fetch command. Field names are the Portuguese keys the frontend
// already consumes.
type movieJSON struct {
	Title     string       `json:"titulo"`
	Directors []string     `json:"diretor"`
	Actors    []string     `json:"atores"`
	Year      flexibleYear `json:"ano"`
	Genres    []string     `json:"genero"`
	Synopsis  string       `json:"sinopse,omitempty"`
}

// flexibleYear accepts a JSON number or a string such as "2019" or
// "Desconhecido". Anything without a four-digit year decodes to
// YearUnknown.
type flexibleYear int

var yearPattern = regexp.MustCompile(`\d{4}`)

func (y *flexibleYear) UnmarshalJSON(data []byte) error {
	var asInt int
	if err := json.Unmarshal(data, &asInt); err == nil {
		*y = flexibleYear(asInt)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("year is neither number nor string: %s", data)
	}

	asString = strings.TrimSpace(asString)
	if n, err := strconv.Atoi(asString); err == nil {
		*y = flexibleYear(n)
		return nil
	}
	if m := yearPattern.FindString(asString); m != "" {
		n, _ := strconv.Atoi(m)
		*y = flexibleYear(n)
		return nil
	}

	*y = YearUnknown
	return nil
}

func (y flexibleYear) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(y))
}

// LoadFile reads movie records from a JSON file. A missing file is not an
// error: it yields an empty record list so the service can still start.
func LoadFile(path string, logger *observability.Logger) ([]MovieRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if logger != nil {
			logger.Warn().Str("path", path).Msg("Catalog file not found; starting with an empty catalog")
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw []movieJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	records := make([]MovieRecord, len(raw))
	for i, m := range raw {
		records[i] = MovieRecord{
			Title:     m.Title,
			Directors: m.Directors,
			Actors:    m.Actors,
			Year:      int(m.Year),
			Genres:    m.Genres,
			Synopsis:  m.Synopsis,
		}
	}
	return records, nil
}

// SaveFile writes movie records to a JSON file in the filmes.json shape.
func SaveFile(path string, records []MovieRecord) error {
	raw := make([]movieJSON, len(records))
	for i, r := range records {
		raw[i] = movieJSON{
			Title:     r.Title,
			Directors: r.Directors,
			Actors:    r.Actors,
			Year:      flexibleYear(r.Year),
			Genres:    r.Genres,
			Synopsis:  r.Synopsis,
		}
	}

	data, err := json.MarshalIndent(raw, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog file: %w", err)
	}
	return nil
}
