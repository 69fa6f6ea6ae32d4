package hfhub

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	perr "langid/internal/platform/errors"
	"langid/internal/platform/logger"
)

const (
	baseURLDefault   = "https://huggingface.co"
	defaultTimeout   = 10 * time.Minute
	defaultUA        = "langid-models"
	defaultMaxRetry  = 4
	defaultRetryBase = 500 * time.Millisecond
)

// ClientOptions configures the Client
type ClientOptions struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds a whole request including the body transfer
	Timeout time.Duration
	// Token is sent as a bearer token for private or gated repos
	Token string

	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal Hugging Face Hub HTTP client with retries
type Client struct {
	http  *http.Client
	opts  ClientOptions
	log   logger.Logger
	sleep func(context.Context, time.Duration) error
}

// NewClient creates a Client with defaults filled in
func NewClient(o ClientOptions) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("hfhub"),
		sleep: sleepCtx,
	}
}

// Get issues a GET for path relative to the hub base url. The caller owns the
// body of a successful response
func (c *Client) Get(ctx context.Context, path string) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeCanceled, "hub request canceled")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "hub new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		if c.opts.Token != "" {
			req.Header.Set("Authorization", "Bearer "+c.opts.Token)
		}

		start := time.Now()
		resp, err := c.http.Do(req)
		lat := time.Since(start)

		if err != nil {
			if ctx.Err() != nil || !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "hub request failed")
			}
			if err := c.wait(ctx, c.backoff(attempts), attempts, "hub transport error retrying"); err != nil {
				return nil, err
			}
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("hub http response")

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			code := perr.ErrorCodeUnavailable
			if resp.StatusCode == http.StatusTooManyRequests {
				code = perr.ErrorCodeTooManyRequests
			}
			wait := retryAfter(resp.Header)
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(code, "hub returned %d for %s", resp.StatusCode, path)
			}
			if err := c.wait(ctx, wait, attempts, "hub transient error retrying"); err != nil {
				return nil, err
			}
			attempts++
			continue
		case http.StatusUnauthorized:
			_ = drainAndClose(resp.Body)
			return nil, perr.Newf(perr.ErrorCodeUnauthorized, "hub rejected credentials for %s", path)
		case http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			return nil, perr.Newf(perr.ErrorCodeForbidden, "hub denied access to %s", path)
		case http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, perr.Newf(perr.ErrorCodeNotFound, "hub has no %s", path)
		default:
			// read a small tail for diagnostics then return
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "hub unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) wait(ctx context.Context, d time.Duration, attempt int, msg string) error {
	c.log.Warn().Dur("retry_in", d).Int("attempt", attempt).Msg(msg)
	if err := c.sleep(ctx, d); err != nil {
		return perr.Wrap(err, perr.ErrorCodeCanceled, "hub request canceled")
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	// simple exponential with cap
	d := c.opts.RetryBase << uint(attempt)
	if d > 30*time.Second || d <= 0 {
		d = 30 * time.Second
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

// retryAfter reads a Retry-After header given in seconds
func retryAfter(h http.Header) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(h.Get("Retry-After")))
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	return rc.Close()
}
