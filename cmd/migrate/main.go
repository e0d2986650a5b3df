package main

import (
	"context"
	"flag"
	"strings"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"

	"ourshelves/internal/config"
	"ourshelves/internal/logger"
	"ourshelves/internal/platform/postgres"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: "+strings.Join(commands, ", "))
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.Configure(cfg.LogLevel, cfg.LogFormat)

	if !knownCommand(*command) {
		log.Fatalf("Unknown command: %s. Use: %s", *command, strings.Join(commands, ", "))
	}

	dir := migrationsDir()
	entry := log.WithFields(logrus.Fields{"command": *command, "dir": dir})

	if !needsDatabase(*command) {
		if *name == "" {
			log.Fatal("Name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			entry.WithError(err).Fatal("failed to create migration")
		}
		entry.WithField("name", *name).Info("migration created")
		return
	}

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		entry.WithError(err).WithField("dsn", cfg.RedactedDSN()).Fatal("failed to connect to database")
	}
	defer pool.Close()

	db := postgres.DB(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		entry.WithError(err).Fatal("failed to select dialect")
	}

	switch *command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "status":
		err = goose.Status(db, dir)
	}
	if err != nil {
		entry.WithError(err).Fatal("migration failed")
	}
	entry.Info("migration command finished")
}
