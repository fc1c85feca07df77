package root

import (
	"context"
	"database/sql"

	"goalforge/internal/config"
	"goalforge/internal/engine"
	"goalforge/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cfg, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cfg, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	svc := engine.NewService(db)
	svc.ThemeOverride = cfg.Theme
	return svc, cleanup, nil
}
