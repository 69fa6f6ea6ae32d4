package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"langid/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack. Zero values pick the defaults
type StackOptions struct {
	// Origins allowed by CORS, empty allows any origin
	Origins []string
	// Timeout per request, 30s when zero
	Timeout time.Duration
	// Slow requests are logged at warn, 500ms when zero
	Slow time.Duration
	// MaxInFlight caps concurrent requests, 0 disables the cap
	MaxInFlight int
}

// CommonStack is the middleware every versioned API route runs behind
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.Slow <= 0 {
		o.Slow = 500 * time.Millisecond
	}

	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.RecoverJSON,
		middleware.NoCache(),
		middleware.LogContext(),
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
	}
	if o.MaxInFlight > 0 {
		stack = append(stack, middleware.Throttle(o.MaxInFlight, o.MaxInFlight*4, o.Timeout))
	}
	return append(stack, middleware.Timeout(o.Timeout))
}
