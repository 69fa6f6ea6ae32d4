package middleware

import (
	"net/http"
	"time"

	"langid/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLogOptions configures AccessLogZerolog
type AccessLogOptions struct {
	// Slow logs requests at warn once they take this long. Zero disables it
	Slow time.Duration
}

// statusWriter records the status code and body size of a response
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// AccessLogZerolog writes one line per request through logger.C, so request
// and run ids set upstream are included
func AccessLogZerolog(opt AccessLogOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			elapsed := time.Since(start)

			log := logger.C(r.Context())
			evt := log.Info()
			if opt.Slow > 0 && elapsed >= opt.Slow {
				evt = log.Warn().Bool("slow", true)
			}
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if pattern := rc.RoutePattern(); pattern != "" {
					evt = evt.Str("route", pattern)
				}
			}
			evt.Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Int("bytes", sw.bytes).
				Dur("elapsed", elapsed).
				Msg("request done")
		})
	}
}

// LogContext copies the chi request id into the logger context so logger.C
// tags every line written while serving the request, and echoes it in the
// X-Request-ID response header. Mount after RequestID
func LogContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := chimw.GetReqID(r.Context()); id != "" {
				w.Header().Set(chimw.RequestIDHeader, id)
				r = r.WithContext(logger.WithRequest(r.Context(), id, ""))
			}
			next.ServeHTTP(w, r)
		})
	}
}
