package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 2330 {
		t.Errorf("port = %d, want 2330", cfg.Port)
	}
	if cfg.BaseURL != "http://localhost:2330" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if cfg.DSN == "" {
		t.Error("DSN not derived from database defaults")
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := `
port: 9000
env: production
base_url: https://agrotech.example.com/
database:
  host: db.internal
  name: agro_prod
allowed_origins:
  - https://agrotech.example.com
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 || cfg.IsDev() {
		t.Errorf("port=%d env=%q", cfg.Port, cfg.Env)
	}
	if cfg.BaseURL != "https://agrotech.example.com" {
		t.Errorf("base url not trimmed: %q", cfg.BaseURL)
	}
	if cfg.DSN == "" || cfg.Database.Host != "db.internal" {
		t.Errorf("database config not applied: %+v", cfg.Database)
	}
	if len(cfg.AllowedOrigins) != 1 {
		t.Errorf("origins = %v", cfg.AllowedOrigins)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("AGRO_DSN", "user:pass@tcp(10.0.0.2:3306)/agro")
	t.Setenv("AGRO_ENV", "production")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DSN != "user:pass@tcp(10.0.0.2:3306)/agro" {
		t.Errorf("dsn = %q", cfg.DSN)
	}
	if cfg.IsDev() {
		t.Error("env override ignored")
	}
}
