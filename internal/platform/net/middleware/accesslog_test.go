package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"langid/internal/platform/logger"
	"langid/internal/platform/net/middleware"

	"github.com/stretchr/testify/assert"
)

func TestAccessLogZerolog_PassesResponseThrough(t *testing.T) {
	cases := []struct {
		name string
		slow time.Duration
	}{
		{"no slow marking", 0},
		{"everything slow", time.Nanosecond},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: tc.slow})(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusUnprocessableEntity)
					_, _ = io.WriteString(w, `{"error":"no expert`)
					_, _ = io.WriteString(w, `"}`)
				}))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/langid/classify", nil))

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, `{"error":"no expert"}`, rec.Body.String())
		})
	}
}

func TestLogContext_CarriesRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := middleware.RequestID()(middleware.LogContext()(next))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestLogContext_WithoutRequestID(t *testing.T) {
	var seen = "unset"
	h := middleware.LogContext()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = logger.RequestID(r.Context())
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Empty(t, seen)
	assert.Empty(t, rec.Header().Get("X-Request-ID"))
}
