// Package httpkit is the routing and handler toolkit modules import instead
// of reaching into internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "langid/internal/platform/net/http"
	"langid/internal/platform/net/http/bind"
)

type (
	// Envelope is the response body shape, referenced by swagger annotations
	Envelope = phttp.Envelope

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// JSON binds and validates the body into T, then envelopes fn's result
func JSON[T any](fn func(*http.Request, T) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		in, err := bind.ParseJSON[T](r)
		if err != nil {
			return phttp.Error(err)
		}
		return result(fn(r, in))
	})
}

// Call envelopes the result of a handler that reads no body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.Handle(func(r *http.Request) phttp.Response {
		return result(fn(r))
	})
}

func result(out any, err error) phttp.Response {
	if err != nil {
		return phttp.Error(err)
	}
	if resp, ok := out.(phttp.Response); ok {
		return resp
	}
	return phttp.OK(out)
}
