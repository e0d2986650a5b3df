package main

import (
	"os"
)

const defaultMigrationsDir = "db/migrations"

var commands = []string{"up", "down", "status", "create"}

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return defaultMigrationsDir
}

// needsDatabase reports whether command talks to the database. create
// only writes a file.
func needsDatabase(command string) bool {
	return command != "create"
}

func knownCommand(command string) bool {
	for _, c := range commands {
		if c == command {
			return true
		}
	}
	return false
}
