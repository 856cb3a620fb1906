package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mlefebvre/tasktrack-api/internal/api/shared"
)

// TraceMiddleware assigns each request a trace ID and stores it in the
// context. Apply it first so every downstream handler and log line can
// reference the same ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		slog.Debug("request started",
			slog.String("trace_id", traceID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
