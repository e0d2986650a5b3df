package httpx

import (
	"net/http"
	"runtime/debug"

	"ourshelves/internal/logger"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rw := wrapResponseWriter(w)
		defer func() {
			if err := recover(); err != nil {
				logger.For(r.Context()).
					WithField("panic", err).
					WithField("stack", string(debug.Stack())).
					Error("panic recovered")

				if !rw.wroteHeader() {
					JSONError(rw, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()
		next.ServeHTTP(rw, r)
	})
}
