package main

import (
	"path/filepath"
	"testing"
)

func TestRunReturnsConfigError(t *testing.T) {
	t.Setenv("APP_MODE", "staging")

	if err := run(); err == nil {
		t.Fatalf("expected an error for an unknown APP_MODE")
	}
}

func TestRunReturnsDatabaseError(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "missing-dir", "orders.db"))

	if err := run(); err == nil {
		t.Fatalf("expected an error when the database cannot be opened")
	}
}
