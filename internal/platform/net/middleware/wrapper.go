// Package middleware wraps chi and go-chi/cors middlewares behind plain
// net/http signatures and adds the in house logging and recovery layers
package middleware

import (
	"net/http"
	"time"

	pstrings "langid/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID propagates X-Request-ID or mints a new id
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// NoCache disables client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Timeout cancels the request context after d
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress compresses responses at level
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// Heartbeat answers GET path with 200 before routing
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// StripSlashes drops a trailing slash before routing
func StripSlashes() Middleware { return chimw.StripSlashes }

// Throttle caps in-flight requests, queueing up to backlog for at most wait
func Throttle(limit, backlog int, wait time.Duration) Middleware {
	return chimw.ThrottleBacklog(limit, backlog, wait)
}

// CORSOptions is the subset of go-chi/cors options the API sets
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// CORS applies go-chi/cors. Empty origins allow any origin
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: o.AllowedOrigins,
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         o.MaxAge,
	})
}
