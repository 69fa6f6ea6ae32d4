package hfhub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langid/internal/platform/config"
	perr "langid/internal/platform/errors"
)

func configFor(prefix string) config.Conf { return config.New().Prefix(prefix) }

func statusServer(t *testing.T, codes ...int) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var n atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		i := int(n.Add(1)) - 1
		if i >= len(codes) {
			i = len(codes) - 1
		}
		w.WriteHeader(codes[i])
		_, _ = w.Write([]byte("body"))
	}))
	t.Cleanup(srv.Close)
	return srv, &n
}

func noSleep(c *Client) *Client {
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c
}

func TestClient_RetriesTransient(t *testing.T) {
	srv, calls := statusServer(t, http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusOK)
	c := noSleep(NewClient(ClientOptions{BaseURL: srv.URL + "/", MaxRetries: 3}))

	resp, err := c.Get(context.Background(), "/x")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUp(t *testing.T) {
	srv, calls := statusServer(t, http.StatusBadGateway)
	c := noSleep(NewClient(ClientOptions{BaseURL: srv.URL, MaxRetries: 2}))

	_, err := c.Get(context.Background(), "/x")
	require.Error(t, err)
	assert.Equal(t, perr.ErrorCodeUnavailable, perr.CodeOf(err))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_StatusMapping(t *testing.T) {
	cases := []struct {
		status int
		want   perr.ErrorCode
	}{
		{http.StatusUnauthorized, perr.ErrorCodeUnauthorized},
		{http.StatusForbidden, perr.ErrorCodeForbidden},
		{http.StatusNotFound, perr.ErrorCodeNotFound},
		{http.StatusTeapot, perr.ErrorCodeUnknown},
	}
	for _, tc := range cases {
		srv, calls := statusServer(t, tc.status)
		c := noSleep(NewClient(ClientOptions{BaseURL: srv.URL}))
		_, err := c.Get(context.Background(), "/x")
		assert.Equal(t, tc.want, perr.CodeOf(err), "status %d", tc.status)
		assert.Equal(t, int32(1), calls.Load(), "status %d must not retry", tc.status)
	}
}

func TestClient_CanceledWhileWaiting(t *testing.T) {
	srv, _ := statusServer(t, http.StatusServiceUnavailable)
	c := NewClient(ClientOptions{BaseURL: srv.URL, MaxRetries: 5, RetryBase: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Get(ctx, "/x")
	assert.Equal(t, perr.ErrorCodeCanceled, perr.CodeOf(err))
}

func TestRetryAfterAndBackoff(t *testing.T) {
	h := http.Header{}
	assert.Zero(t, retryAfter(h))
	h.Set("Retry-After", "7")
	assert.Equal(t, 7*time.Second, retryAfter(h))
	h.Set("Retry-After", "Wed, 21 Oct 2015 07:28:00 GMT")
	assert.Zero(t, retryAfter(h))

	c := NewClient(ClientOptions{RetryBase: time.Second})
	assert.Equal(t, time.Second, c.backoff(0))
	assert.Equal(t, 4*time.Second, c.backoff(2))
	assert.Equal(t, 30*time.Second, c.backoff(10))
}
