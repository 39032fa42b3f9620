// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is everything the server needs at startup.
type Config struct {
	Addr         string `env:"ADDR" envDefault:":8080"`
	DataDir      string `env:"DATA_DIR" envDefault:"./data"`
	HistoryFile  string `env:"HISTORY_FILE"`
	TemplatesDir string `env:"TEMPLATES_DIR"`
	CatalogPath  string `env:"CATALOG_PATH"`
}

// Load parses the environment and fills path defaults derived from DataDir.
// HistoryFile and TemplatesDir default to locations under DataDir;
// CatalogPath empty means the embedded catalog.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HistoryFile == "" {
		cfg.HistoryFile = filepath.Join(cfg.DataDir, "runs_history.json")
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = filepath.Join(cfg.DataDir, "templates")
	}
	return cfg, nil
}
