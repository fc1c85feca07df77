package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"goalforge/internal/storage"
)

// Config holds the environment-driven settings. Everything else lives in
// the persisted save blob.
type Config struct {
	// DBPath points at the SQLite database file. Empty means the default
	// location under the user's home directory.
	DBPath string `envconfig:"DB"`
	// Theme overrides the saved theme selection for this invocation.
	Theme string `envconfig:"THEME"`
}

// Load reads GOALFORGE_* environment variables and fills in defaults.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("goalforge", &cfg); err != nil {
		return nil, fmt.Errorf("read env config: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	return &cfg, nil
}
