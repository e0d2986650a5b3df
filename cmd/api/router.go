package main

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"

	_ "ourshelves/docs"
	"ourshelves/internal/book"
	"ourshelves/internal/config"
	"ourshelves/internal/httpx"
	"ourshelves/internal/search"
)

const readinessTimeout = 500 * time.Millisecond

// pinger reports whether the backing store is reachable.
type pinger interface {
	Ping(ctx context.Context) error
}

type routerDeps struct {
	cfg     config.Config
	books   *book.HTTPHandler
	search  *search.HTTPHandler
	storage pinger
}

func newRouter(deps routerDeps) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()
		if err := deps.storage.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", promhttp.Handler())
	router.HandleFunc("GET /swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})

	router.HandleFunc("GET /books", deps.books.List)
	router.HandleFunc("GET /books/id/{id}", deps.books.GetByID)
	router.HandleFunc("POST /books", deps.books.Create)
	router.HandleFunc("PUT /books/{id}", deps.books.Update)
	router.HandleFunc("DELETE /books/{id}", deps.books.Delete)
	router.HandleFunc("GET /books/search/{term...}", deps.search.Search)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "Not found")
	})

	return httpx.Chain(router,
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware(deps.cfg.EnableHSTS),
		httpx.CORSMiddleware(deps.cfg.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(deps.cfg.MaxBodyBytes),
		httpx.MetricsMiddleware,
	)
}
