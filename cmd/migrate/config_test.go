package main

import (
	"testing"
)

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")

	if got := migrationsDir(); got != "db/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
}

func TestKnownCommand(t *testing.T) {
	for _, c := range []string{"up", "down", "status", "create"} {
		if !knownCommand(c) {
			t.Fatalf("expected %q to be known", c)
		}
	}
	if knownCommand("redo") {
		t.Fatal("expected redo to be rejected")
	}
}

func TestNeedsDatabase(t *testing.T) {
	if needsDatabase("create") {
		t.Fatal("create should not need a database")
	}
	if !needsDatabase("up") {
		t.Fatal("up should need a database")
	}
}
