package middleware

import (
	"net/http"
	"time"

	"budget-server/src/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestLogger assigns each request an id, attaches a request-scoped
// logger to the context and logs one line per handled request.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			reqLog := log.With().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Logger()

			w.Header().Set("X-Request-ID", requestID)
			ctx := logger.WithContext(r.Context(), reqLog)

			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))
			reqLog.Info().Dur("duration", time.Since(start)).Msg("request handled")
		})
	}
}
