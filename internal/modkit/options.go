package modkit

import (
	"net/http"

	"langid/internal/modkit/httpkit"
)

// Option adjusts how a module is built
type Option func(*Built)

// WithName sets the module name used in logs
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the path the module mounts under
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it depends on. The concrete type is
// owned by the receiving module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithRegister mounts extra routes next to the module's own
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Extra = fn } }
