// Package module wires the meta endpoints into the API
package module

import (
	"time"

	"langid/internal/core/version"
	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"

	metahttp "langid/internal/services/api/meta/http"
)

// Module serves health, readiness and build info
type Module struct {
	b     modkit.Built
	ports Ports
	deps  metahttp.Deps
}

// Ports are the dependencies the meta endpoints report on
type Ports struct {
	Checks   []metahttp.Check
	Pipeline metahttp.PipelineResponse
}

// New builds the meta module. Pass Ports with modkit.WithPorts
func New(_ modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	ports, _ := b.Ports.(Ports)
	return &Module{
		b:     b,
		ports: ports,
		deps: metahttp.Deps{
			ServiceName: version.Service,
			StartedAt:   time.Now(),
			Checks:      ports.Checks,
			Pipeline:    ports.Pipeline,
		},
	}
}

// MountRoutes mounts the meta routes under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { metahttp.Register(rr, m.deps) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }

// Ports returns the checks the module reports on
func (m *Module) Ports() any { return m.ports }
