package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// RequestLogger is the lifecycle interceptor replacing the legacy
// Application_BeginRequest/EndRequest logging. Health check paths are
// excluded to keep probe noise out of the logs.
type RequestLogger struct {
	SkipPaths []string
}

func NewRequestLogger(skipPaths ...string) *RequestLogger {
	return &RequestLogger{SkipPaths: skipPaths}
}

func (l *RequestLogger) skip(path string) bool {
	for _, p := range l.SkipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func (l *RequestLogger) Before(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context {
	if l.skip(r.URL.Path) {
		return ctx
	}

	slog.Debug("Request started",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("remote_addr", r.RemoteAddr),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
	return ctx
}

func (l *RequestLogger) After(ctx context.Context, r *http.Request, status int, duration time.Duration) {
	if l.skip(r.URL.Path) {
		return
	}

	slog.Info("Request completed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Duration("duration", duration),
		slog.String("correlation_id", GetCorrelationID(ctx)),
	)
}
