package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/threadhub-dev/threadhub/internal/logger"
)

// RequestId tags every request with an id, echoes it in the X-Request-Id
// header and logs the request outcome.
func RequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", requestId)

		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		logger.Log.Info("request",
			"request_id", requestId,
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", time.Since(start),
		)
	})
}
