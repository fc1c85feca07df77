package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// MainSaveKey is the save slot for the single local user.
const MainSaveKey = "main_user"

// SaveRepo stores opaque JSON save blobs. Interpreting the blob is the
// engine's job; this repo only reads and overwrites it wholesale.
type SaveRepo struct {
	db *sql.DB
}

func NewSaveRepo(db *sql.DB) *SaveRepo {
	return &SaveRepo{db: db}
}

// Get returns the raw blob for the key, or nil when no save exists yet.
func (r *SaveRepo) Get(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE key = ?`, key)
	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("save get: %w", err)
	}
	return []byte(data), nil
}

func (r *SaveRepo) Put(ctx context.Context, key string, data []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO saves (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save put: %w", err)
	}
	return nil
}
