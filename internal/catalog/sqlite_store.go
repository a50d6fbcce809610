package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB is the subset of *sql.DB the store uses.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Store persists movie records in SQLite. The list-valued fields are
// stored as JSON text columns.
type Store struct {
	db DB
}

// OpenDB opens (and creates if needed) the SQLite database at path.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return db, nil
}

// NewStore creates a movie store over the given database.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Init creates the movies table if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS movies (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			title     TEXT NOT NULL,
			directors TEXT NOT NULL DEFAULT '[]',
			actors    TEXT NOT NULL DEFAULT '[]',
			year      INTEGER NOT NULL DEFAULT 0,
			genres    TEXT NOT NULL DEFAULT '[]',
			synopsis  TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

// ReplaceAll overwrites the stored catalog with the given records,
// preserving their order.
func (s *Store) ReplaceAll(ctx context.Context, records []MovieRecord) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM movies`); err != nil {
		return fmt.Errorf("clear movies table: %w", err)
	}

	query := `
		INSERT INTO movies (title, directors, actors, year, genres, synopsis)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for _, r := range records {
		directors, err := json.Marshal(r.Directors)
		if err != nil {
			return fmt.Errorf("marshal directors: %w", err)
		}
		actors, err := json.Marshal(r.Actors)
		if err != nil {
			return fmt.Errorf("marshal actors: %w", err)
		}
		genres, err := json.Marshal(r.Genres)
		if err != nil {
			return fmt.Errorf("marshal genres: %w", err)
		}

		_, err = s.db.ExecContext(ctx, query,
			r.Title, string(directors), string(actors), r.Year, string(genres), r.Synopsis,
		)
		if err != nil {
			return fmt.Errorf("insert movie %q: %w", r.Title, err)
		}
	}
	return nil
}

// ListAll returns all stored records in insertion order.
func (s *Store) ListAll(ctx context.Context) ([]MovieRecord, error) {
	query := `
		SELECT title, directors, actors, year, genres, synopsis
		FROM movies
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var records []MovieRecord
	for rows.Next() {
		var r MovieRecord
		var directors, actors, genres string
		if err := rows.Scan(&r.Title, &directors, &actors, &r.Year, &genres, &r.Synopsis); err != nil {
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		if err := json.Unmarshal([]byte(directors), &r.Directors); err != nil {
			return nil, fmt.Errorf("decode directors for %q: %w", r.Title, err)
		}
		if err := json.Unmarshal([]byte(actors), &r.Actors); err != nil {
			return nil, fmt.Errorf("decode actors for %q: %w", r.Title, err)
		}
		if err := json.Unmarshal([]byte(genres), &r.Genres); err != nil {
			return nil, fmt.Errorf("decode genres for %q: %w", r.Title, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movie rows: %w", err)
	}
	return records, nil
}
