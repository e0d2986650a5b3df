package main

import (
	"context"
	"flag"

	"github.com/sirupsen/logrus"

	"ourshelves/internal/book"
	"ourshelves/internal/config"
	"ourshelves/internal/logger"
	"ourshelves/internal/platform/postgres"
)

func main() {
	var (
		reset = flag.Bool("reset", false, "Truncate the books table before seeding")
		count = flag.Int("count", 0, "Extra generated books to insert after the samples")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()
	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		log.WithError(err).WithField("dsn", cfg.RedactedDSN()).Fatal("failed to connect to database")
	}
	defer pool.Close()

	repo := book.NewPostgresRepo(pool, cfg.DBQueryTimeout)

	if *reset {
		if err := repo.Truncate(ctx); err != nil {
			log.WithError(err).Fatal("failed to reset books")
		}
		log.Info("books table reset")
	}

	inputs := append(sampleBooks(), generateBooks(*count)...)
	inserted, err := insertAll(ctx, repo, inputs, log)
	if err != nil {
		log.WithError(err).WithField("inserted", inserted).Fatal("failed to insert books")
	}

	books, err := repo.List(ctx)
	if err != nil {
		log.WithError(err).Fatal("failed to count books")
	}
	log.WithFields(logrus.Fields{
		"inserted": inserted,
		"total":    len(books),
	}).Info("seed complete")
}

type creator interface {
	Create(ctx context.Context, in book.Input) (book.Book, error)
}

func insertAll(ctx context.Context, repo creator, inputs []book.Input, log *logrus.Logger) (int, error) {
	for i, in := range inputs {
		if _, err := repo.Create(ctx, in); err != nil {
			return i, err
		}
		if (i+1)%1000 == 0 {
			log.Infof("Inserted %d/%d books", i+1, len(inputs))
		}
	}
	return len(inputs), nil
}
