// Package cache stores raw metadata payloads fetched from upstream
// sources, keyed by source and DOI, so repeated runs against the same
// database do not refetch.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Cache is a SQLite-backed payload cache.
type Cache struct {
	db *sql.DB
}

// Open opens or creates a cache database at the given path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS payloads (
			source TEXT NOT NULL,
			doi TEXT NOT NULL,
			payload BLOB NOT NULL,
			fetched_at INTEGER NOT NULL,
			PRIMARY KEY (source, doi)
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Get returns the cached payload for (source, doi), or ok=false on a miss.
func (c *Cache) Get(source, doi string) (payload []byte, ok bool, err error) {
	row := c.db.QueryRow(
		`SELECT payload FROM payloads WHERE source = ? AND doi = ?`, source, doi)
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("reading cache: %w", err)
	}
	return payload, true, nil
}

// Put stores or replaces the payload for (source, doi).
func (c *Cache) Put(source, doi string, payload []byte) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO payloads (source, doi, payload, fetched_at)
		 VALUES (?, ?, ?, ?)`,
		source, doi, payload, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}
	return nil
}
