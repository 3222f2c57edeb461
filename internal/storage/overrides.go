// Package storage persists the override registry in SQLite so user
// customizations survive restarts.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/vilosource/vfwidgets-theme/internal/overrides"
)

const schema = `
CREATE TABLE IF NOT EXISTS overrides (
	layer TEXT NOT NULL,
	token TEXT NOT NULL,
	value TEXT NOT NULL,
	PRIMARY KEY (layer, token)
)`

// OverrideStore reads and writes the two-layer override state.
type OverrideStore struct {
	db   *sql.DB
	path string
}

// OpenOverrideStore opens (creating if needed) the override database.
// ncruces/go-sqlite3 requires the file: URI scheme for proper WAL support.
func OpenOverrideStore(path string) (*OverrideStore, error) {
	log.Printf("storage: opening override database at %s", path)

	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open override database: %w", err)
	}

	// Single writer; the registry itself does the in-memory sharing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping override database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create overrides table: %w", err)
	}

	return &OverrideStore{db: db, path: path}, nil
}

// Save replaces the persisted state with the registry's current contents,
// atomically within one transaction.
func (s *OverrideStore) Save(ctx context.Context, reg *overrides.Registry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM overrides"); err != nil {
		return fmt.Errorf("failed to clear overrides: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO overrides (layer, token, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	state := reg.ToMap()
	count := 0
	for layer, entries := range state {
		for token, value := range entries {
			if _, err := stmt.ExecContext(ctx, layer, token, value); err != nil {
				return fmt.Errorf("failed to insert override %s/%s: %w", layer, token, err)
			}
			count++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit overrides: %w", err)
	}
	log.Printf("storage: saved %d overrides", count)
	return nil
}

// Load rebuilds a registry from the persisted state. Values were validated
// when stored, so reconstruction goes through overrides.FromMap, which
// still rejects unknown layers.
func (s *OverrideStore) Load(ctx context.Context) (*overrides.Registry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT layer, token, value FROM overrides")
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	state := map[string]map[string]string{}
	for rows.Next() {
		var layer, token, value string
		if err := rows.Scan(&layer, &token, &value); err != nil {
			return nil, fmt.Errorf("failed to scan override: %w", err)
		}
		if state[layer] == nil {
			state[layer] = make(map[string]string)
		}
		state[layer][token] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating overrides: %w", err)
	}

	return overrides.FromMap(state)
}

// Close closes the database connection.
func (s *OverrideStore) Close() error {
	if s.db != nil {
		log.Printf("storage: closing override database")
		return s.db.Close()
	}
	return nil
}
