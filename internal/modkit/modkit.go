// Package modkit wires API modules: shared deps, build options and mounting
package modkit

import "langid/internal/modkit/module"

// Module is the surface api.Mount composes
type Module = module.Module
