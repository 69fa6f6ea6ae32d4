package httpkit

import "net/http"

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { r.Get(path, Call(h)) }

// PostJSON mounts a handler under POST that binds its body into T
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}
