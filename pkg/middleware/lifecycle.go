package middleware

import (
	"context"
	"net/http"
	"time"
)

// Interceptor is a request-scoped lifecycle hook. The pair of methods
// replaces the legacy Global.asax event handlers (Application_BeginRequest,
// Application_EndRequest and friends) with explicit per-request state:
// Before runs in registration order ahead of the handler, After runs in
// reverse order once the response has been written.
type Interceptor interface {
	Before(ctx context.Context, w http.ResponseWriter, r *http.Request) context.Context
	After(ctx context.Context, r *http.Request, status int, duration time.Duration)
}

// Pipeline is an ordered list of interceptors applied as a single
// chi middleware.
type Pipeline struct {
	interceptors []Interceptor
}

func NewPipeline(interceptors ...Interceptor) *Pipeline {
	return &Pipeline{interceptors: interceptors}
}

// Use appends an interceptor to the pipeline
func (p *Pipeline) Use(i Interceptor) {
	p.interceptors = append(p.interceptors, i)
}

// Middleware returns the chi-compatible middleware wrapping the pipeline
func (p *Pipeline) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		for _, i := range p.interceptors {
			ctx = i.Before(ctx, w, r)
		}
		r = r.WithContext(ctx)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		for j := len(p.interceptors) - 1; j >= 0; j-- {
			p.interceptors[j].After(ctx, r, rw.statusCode, duration)
		}
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
