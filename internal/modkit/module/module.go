// Package module defines the contract api.Mount composes modules through
package module

import (
	phttp "langid/internal/platform/net/http"
)

// Module mounts routes and exposes ports for cross wiring
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}
