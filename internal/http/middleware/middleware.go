package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/gridiron-gm/internal/logging"
)

const headerRequestID = "X-Request-ID"

var requestIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

type requestIDKey struct{}

// Logging returns router middleware that tags each request with an id and logs its outcome.
// Scrapes are frequent, so completed requests log at debug level.
func Logging(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := sanitizeRequestID(r.Header.Get(headerRequestID))
			w.Header().Set(headerRequestID, reqID)

			var logger *slog.Logger
			if baseLogger != nil {
				logger = baseLogger.With(
					slog.String(logging.FieldRequestID, reqID),
					slog.String(logging.FieldMethod, r.Method),
					slog.String(logging.FieldPath, r.URL.Path),
				)
			}

			ctx := logging.WithLogger(r.Context(), logger)
			ctx = context.WithValue(ctx, requestIDKey{}, reqID)
			ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r.WithContext(ctx))

			logging.Debug(logger, "request complete",
				slog.Int(logging.FieldStatusCode, ww.status),
				slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
			)
		})
	}
}

// RequestIDFromContext extracts the request ID stored by Logging.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if val, ok := ctx.Value(requestIDKey{}).(string); ok {
		return val
	}
	return ""
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func sanitizeRequestID(incoming string) string {
	if incoming != "" && requestIDPattern.MatchString(incoming) {
		return incoming
	}
	return uuid.NewString()
}
