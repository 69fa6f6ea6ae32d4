package modkit

import (
	"net/http"

	"langid/internal/modkit/httpkit"
	str "langid/internal/platform/strings"
)

// Built is the resolved wiring for one module
type Built struct {
	Name   string
	Prefix string
	Mw     []func(http.Handler) http.Handler
	Ports  any
	Extra  func(httpkit.Router)
}

// Build applies opts in order. Later options win
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Mount registers routes under b.Prefix behind b.Mw, followed by any routes
// added with WithRegister
func (b Built) Mount(r httpkit.Router, routes func(httpkit.Router)) {
	r.Route(str.MustPrefix(b.Prefix), func(sub httpkit.Router) {
		if len(b.Mw) > 0 {
			sub.Use(b.Mw...)
		}
		routes(sub)
		if b.Extra != nil {
			b.Extra(sub)
		}
	})
}
