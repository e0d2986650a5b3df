package httpx

import (
	"net/http"
	"strconv"
	"time"

	"ourshelves/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route pattern.
// It must sit directly in front of the ServeMux: the mux stores the matched
// pattern on the request it receives, which is only visible here when no
// middleware in between replaces the request.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := wrapResponseWriter(w)

		next.ServeHTTP(rw, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.statusCode)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}
