// Package sqlite stores named slots in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"freelancercheckin/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	name TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens (creating if needed) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// A single writer keeps SQLite from returning SQLITE_BUSY under concurrent saves.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create slots table: %w", err)
	}
	return db, nil
}

// slotRepository implements domain.SlotRepository using SQLite.
type slotRepository struct {
	db  *sql.DB
	now func() time.Time
}

// Ensure slotRepository implements domain.SlotRepository.
var _ domain.SlotRepository = (*slotRepository)(nil)

// NewSlotRepository returns a SlotRepository backed by db. The slots table must exist.
func NewSlotRepository(db *sql.DB) domain.SlotRepository {
	return &slotRepository{db: db, now: time.Now}
}

// Get returns the payload stored under name, or domain.ErrNotFound.
func (r *slotRepository) Get(ctx context.Context, name string) ([]byte, error) {
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get slot %s: %w", name, err)
	}
	return []byte(payload), nil
}

// Put replaces the payload stored under name.
func (r *slotRepository) Put(ctx context.Context, name string, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO slots (name, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, string(payload), r.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("put slot %s: %w", name, err)
	}
	return nil
}
