package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"freelancercheckin/internal/domain"
)

// Schema creates the slots table. It is safe to run on every start.
const Schema = `
	CREATE TABLE IF NOT EXISTS slots (
		name       TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)
`

type slotRepository struct {
	DB  *sql.DB
	now func() time.Time
}

func NewSlotRepository(db *sql.DB) domain.SlotRepository {
	return &slotRepository{
		DB:  db,
		now: time.Now,
	}
}

// Migrate creates the slots table if it does not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}

func (r *slotRepository) Get(ctx context.Context, name string) ([]byte, error) {
	query := `
		SELECT payload
		FROM slots
		WHERE name = $1
	`
	var payload string
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return []byte(payload), nil
}

func (r *slotRepository) Put(ctx context.Context, name string, payload []byte) error {
	query := `
		INSERT INTO slots (name, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, name, string(payload), r.now())
	return err
}
