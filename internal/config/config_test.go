package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.HistoryFile == "" || cfg.TemplatesDir == "" {
		t.Errorf("derived paths must not be empty: %+v", cfg)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("DATA_DIR", "/tmp/hh")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.HistoryFile != "/tmp/hh/runs_history.json" {
		t.Errorf("HistoryFile = %q", cfg.HistoryFile)
	}
	if cfg.TemplatesDir != "/tmp/hh/templates" {
		t.Errorf("TemplatesDir = %q", cfg.TemplatesDir)
	}
}
