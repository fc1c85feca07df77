package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultDBPath returns the default GoalForge DB location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".goalforge.db"), nil
}

// Open opens (and creates if missing) the SQLite database at the provided
// path and brings the schema up to date.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS goals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER NULL,
			title TEXT NOT NULL,

			status TEXT DEFAULT 'open',
			boss INTEGER DEFAULT 0,
			base_xp INTEGER NOT NULL,

			deadline DATETIME,
			blocked_by TEXT,

			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME,

			FOREIGN KEY(parent_id) REFERENCES goals(id)
		);`,
		// The save blob is the single persisted aggregate (settings +
		// profile), overwritten wholesale after every mutation.
		`CREATE TABLE IF NOT EXISTS saves (
			key TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_goals_parent_id ON goals(parent_id);`,
		`CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
