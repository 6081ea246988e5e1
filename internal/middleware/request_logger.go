// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/oa-platform/room-booking-service/internal/logging"
)

// RequestLoggerMiddleware logs each HTTP request and its response status.
// The request attributes are attached to the context so every handler log
// line carries them. Probe endpoints (/livez, /readyz) are not logged.
func RequestLoggerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now().UTC()

			probe := r.URL.Path == "/livez" || r.URL.Path == "/readyz"

			ctx := r.Context()
			for _, attr := range []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", r.URL.RawQuery),
				slog.String("host", r.Host),
				slog.String("user_agent", r.UserAgent()),
				slog.String("remote_addr", r.RemoteAddr),
			} {
				ctx = logging.AppendCtx(ctx, attr)
			}
			r = r.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w}

			if !probe {
				slog.InfoContext(ctx, "HTTP request")
			}

			next.ServeHTTP(rec, r)

			if !probe {
				slog.InfoContext(ctx, "HTTP response",
					"status", rec.status,
					"duration", time.Since(start).String(),
				)
			}
		})
	}
}

// statusRecorder captures the response status code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
