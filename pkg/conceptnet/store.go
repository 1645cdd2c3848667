package conceptnet

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	start TEXT NOT NULL,
	relation TEXT NOT NULL,
	"end" TEXT NOT NULL,
	weight REAL DEFAULT 1.0
);
CREATE INDEX IF NOT EXISTS idx_start ON entries (start);
CREATE INDEX IF NOT EXISTS idx_end ON entries ("end")
`

// InitSchema creates the entries table and its indexes if missing.
func InitSchema(db *sql.DB) error {
	for _, s := range strings.Split(schemaSQL, ";") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// Store is a Lookup backed by a local SQLite ConceptNet database, as
// produced by the Importer.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database connection.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// OpenStore opens the SQLite database at path and ensures the schema.
func OpenStore(path string) (*Store, *sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening conceptnet db: %w", err)
	}
	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return NewStore(db), db, nil
}

// Related returns all edges touching word in either direction, forward
// edges first, each direction in insertion order. Unknown words yield an
// empty slice.
func (s *Store) Related(ctx context.Context, word string) ([]Edge, error) {
	word = strings.ToLower(strings.TrimSpace(word))

	var edges []Edge

	rows, err := s.db.QueryContext(ctx,
		`SELECT relation, "end", weight FROM entries WHERE start = ? ORDER BY id`, word)
	if err != nil {
		return nil, fmt.Errorf("querying forward edges: %w", err)
	}
	edges, err = scanEdges(rows, edges, Forward)
	if err != nil {
		return nil, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT relation, start, weight FROM entries WHERE "end" = ? ORDER BY id`, word)
	if err != nil {
		return nil, fmt.Errorf("querying backward edges: %w", err)
	}
	edges, err = scanEdges(rows, edges, Backward)
	if err != nil {
		return nil, err
	}

	return edges, nil
}

func scanEdges(rows *sql.Rows, edges []Edge, dir Direction) ([]Edge, error) {
	defer rows.Close()
	for rows.Next() {
		var e Edge
		var weight sql.NullFloat64
		if err := rows.Scan(&e.Relation, &e.Word, &weight); err != nil {
			return edges, fmt.Errorf("scanning edge: %w", err)
		}
		e.Direction = dir
		e.Weight = 1.0
		if weight.Valid {
			e.Weight = weight.Float64
		}
		edges = append(edges, e)
	}
	return edges, rows.Err()
}

// CountEntries returns the total number of assertions in the store.
func (s *Store) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	return n, err
}
