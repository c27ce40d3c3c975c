package config_test

import (
	"testing"

	"weightlog/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DEFAULT_USER_ID", "")

	cfg := config.Load()
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q; want :8080", cfg.Addr)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q; want empty (no default)", cfg.DatabaseURL)
	}
	if cfg.UserID != config.DefaultUserID {
		t.Errorf("UserID = %q; want %q", cfg.UserID, config.DefaultUserID)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/weights")
	t.Setenv("DEFAULT_USER_ID", "123e4567-e89b-12d3-a456-426614174000")

	cfg := config.Load()
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q; want :9090", cfg.Addr)
	}
	if cfg.DatabaseURL != "postgres://localhost/weights" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.UserID != "123e4567-e89b-12d3-a456-426614174000" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
}
