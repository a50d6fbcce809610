// Package catalog holds the movie records and the flattened searchable
// documents derived from them.
package catalog

import (
	"strconv"
	"strings"

	"github.com/ProjetoPAA/projetoPAA/internal/observability"
)

// YearUnknown is the sentinel for records without a release year.
const YearUnknown = 0

// MovieRecord is a single movie in the catalog. Records are immutable
// after load; the catalog owns them.
type MovieRecord struct {
	Title     string
	Directors []string
	Actors    []string
	Year      int // YearUnknown when absent
	Genres    []string
	Synopsis  string
}

// Catalog is an immutable, ordered collection of movie records plus one
// derived document per record. Safe for unsynchronized concurrent reads.
type Catalog struct {
	records   []MovieRecord
	documents []string
}

// Load builds a Catalog from an ordered record list. Documents are
// regenerated here as a pure function of each record. Duplicate titles
// are kept (Lookup returns the first) but logged.
func Load(records []MovieRecord, logger *observability.Logger) *Catalog {
	documents := make([]string, len(records))
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		documents[i] = buildDocument(r)

		key := strings.ToLower(r.Title)
		if seen[key] && logger != nil {
			logger.Warn().Str("title", r.Title).Msg("Duplicate title in catalog; first record wins on lookup")
		}
		seen[key] = true
	}

	return &Catalog{records: records, documents: documents}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the ordered record list.
func (c *Catalog) Records() []MovieRecord {
	return c.records
}

// Record returns the record at index i.
func (c *Catalog) Record(i int) (MovieRecord, bool) {
	if i < 0 || i >= len(c.records) {
		return MovieRecord{}, false
	}
	return c.records[i], true
}

// Documents returns the derived document list, aligned with record order.
func (c *Catalog) Documents() []string {
	return c.documents
}

// Lookup finds a record by title, case-insensitively. The boolean is
// false when no record matches; callers must handle that explicitly.
func (c *Catalog) Lookup(title string) (MovieRecord, bool) {
	for _, r := range c.records {
		if strings.EqualFold(r.Title, title) {
			return r, true
		}
	}
	return MovieRecord{}, false
}

// buildDocument flattens a record into the text the similarity index is
// built from. The synopsis is intentionally excluded.
func buildDocument(r MovieRecord) string {
	parts := make([]string, 0, 5)
	if r.Title != "" {
		parts = append(parts, r.Title)
	}
	if len(r.Directors) > 0 {
		parts = append(parts, strings.Join(r.Directors, " "))
	}
	if len(r.Actors) > 0 {
		parts = append(parts, strings.Join(r.Actors, " "))
	}
	if r.Year != YearUnknown {
		parts = append(parts, strconv.Itoa(r.Year))
	}
	if len(r.Genres) > 0 {
		parts = append(parts, strings.Join(r.Genres, " "))
	}
	return strings.Join(parts, " ")
}
