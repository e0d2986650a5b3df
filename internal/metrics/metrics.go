package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ourshelves_http_requests_total",
		Help: "Total number of HTTP requests handled, by route and status.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ourshelves_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	OpenLibraryRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ourshelves_openlibrary_requests_total",
		Help: "Outbound Open Library search calls, by outcome.",
	}, []string{"outcome"})
)

// Open Library call outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeStatus    = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)
