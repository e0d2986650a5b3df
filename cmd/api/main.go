package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"ourshelves/internal/book"
	"ourshelves/internal/config"
	"ourshelves/internal/logger"
	"ourshelves/internal/platform/openlibrary"
	"ourshelves/internal/platform/postgres"
	"ourshelves/internal/search"
)

const shutdownTimeout = 10 * time.Second

//go:generate swag init -g main.go -d ./,../../internal -o ../../docs

// @title OurShelves API
// @version 1.0
// @description Personal book catalogue with an Open Library search proxy.
// @host localhost:3000
// @BasePath /
func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load("")
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	log := logger.Configure(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, log *logrus.Logger) error {
	repo, closeStore, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	client := openlibrary.NewClient(openlibrary.Config{
		BaseURL:   cfg.OpenLibrary.BaseURL,
		UserAgent: cfg.OpenLibrary.UserAgent,
		Timeout:   cfg.OpenLibrary.Timeout,
		RPS:       cfg.OpenLibrary.RPS,
	})

	bookService := book.NewService(repo)
	handler := newRouter(routerDeps{
		cfg:     cfg,
		books:   book.NewHTTPHandler(bookService),
		search:  search.NewHTTPHandler(search.NewService(client)),
		storage: bookService,
	})

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.OpenLibrary.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{
			"addr":  cfg.Addr,
			"store": cfg.StoreDriver,
		}).Info("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// openRepository returns the configured book store and a func releasing it.
func openRepository(ctx context.Context, cfg config.Config, log *logrus.Logger) (book.Repository, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		log.Warn("using in-memory store; data is lost on restart")
		return book.NewMemoryRepo(), func() {}, nil
	}

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, fmt.Errorf("open database (%s): %w", cfg.RedactedDSN(), err)
	}
	log.WithField("dsn", cfg.RedactedDSN()).Info("database connection OK")
	return book.NewPostgresRepo(pool, cfg.DBQueryTimeout), pool.Close, nil
}
