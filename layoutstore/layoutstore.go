// Package layoutstore persists window layouts across sessions in a SQLite
// database: for each named layout, the class, number, position, size and
// viewport zoom of every open window.
package layoutstore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS layouts (
    name       TEXT NOT NULL,
    class      INTEGER NOT NULL,
    number     INTEGER NOT NULL,
    x          INTEGER NOT NULL,
    y          INTEGER NOT NULL,
    width      INTEGER NOT NULL,
    height     INTEGER NOT NULL,
    zoom       INTEGER NOT NULL DEFAULT 0,
    saved_at   INTEGER NOT NULL,
    PRIMARY KEY (name, class, number)
);

CREATE INDEX IF NOT EXISTS idx_layouts_name ON layouts(name);
`

// WindowPlacement is one saved window record.
type WindowPlacement struct {
	Class  uint8
	Number uint16
	X, Y   int
	Width  int
	Height int
	Zoom   int
}

// Store is a SQLite-backed layout store. Safe for use from one goroutine.
type Store struct {
	db *sql.DB
}

// Open opens or creates the store at path, creating parent directories as
// needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=temp_store(MEMORY)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open layout store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect layout store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrate(db *sql.DB) error {
	var version int
	err := db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		_, err = db.Exec(`INSERT INTO schema_version (version) VALUES (?)`, schemaVersion)
		if err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != schemaVersion {
		// Only one version exists so far; wipe anything newer or corrupt.
		if _, err := db.Exec(`DELETE FROM layouts`); err != nil {
			return fmt.Errorf("reset layouts: %w", err)
		}
		if _, err := db.Exec(`UPDATE schema_version SET version = ?`, schemaVersion); err != nil {
			return fmt.Errorf("update schema version: %w", err)
		}
	}
	return nil
}

// Save replaces the named layout with the given placements.
func (s *Store) Save(name string, placements []WindowPlacement) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM layouts WHERE name = ?`, name); err != nil {
		return fmt.Errorf("clear layout %q: %w", name, err)
	}

	now := time.Now().UnixNano()
	stmt, err := tx.Prepare(`INSERT INTO layouts
		(name, class, number, x, y, width, height, zoom, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range placements {
		if _, err := stmt.Exec(name, p.Class, p.Number, p.X, p.Y, p.Width, p.Height, p.Zoom, now); err != nil {
			return fmt.Errorf("insert placement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Load returns the placements of the named layout, in saved order. A
// missing name yields an empty slice, not an error.
func (s *Store) Load(name string) ([]WindowPlacement, error) {
	rows, err := s.db.Query(`SELECT class, number, x, y, width, height, zoom
		FROM layouts WHERE name = ? ORDER BY rowid`, name)
	if err != nil {
		return nil, fmt.Errorf("load layout %q: %w", name, err)
	}
	defer rows.Close()

	var placements []WindowPlacement
	for rows.Next() {
		var p WindowPlacement
		if err := rows.Scan(&p.Class, &p.Number, &p.X, &p.Y, &p.Width, &p.Height, &p.Zoom); err != nil {
			return nil, fmt.Errorf("scan placement: %w", err)
		}
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate layout %q: %w", name, err)
	}
	return placements, nil
}

// Names lists the saved layout names.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query(`SELECT DISTINCT name FROM layouts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan layout name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the named layout.
func (s *Store) Delete(name string) error {
	if _, err := s.db.Exec(`DELETE FROM layouts WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete layout %q: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
