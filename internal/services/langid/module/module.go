// Package module wires the langid pipeline into the API using modkit
package module

import (
	"langid/internal/core/script"
	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	"langid/internal/platform/logger"

	lidhttp "langid/internal/services/langid/http"
	lidrepo "langid/internal/services/langid/repo"
	lidsvc "langid/internal/services/langid/service"
)

// Module owns the detector, expert repository and pipeline service
type Module struct {
	b     modkit.Built
	svc   lidsvc.Service
	ports Ports
}

// New constructs the langid module. It fails when the detector config is
// invalid or the model directory is missing
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("langid"),
		modkit.WithPrefix("/langid"),
	}, mopts...)...)

	log := logger.Named(b.Name)

	det, err := script.New(opts.Script)
	if err != nil {
		return nil, err
	}
	repo, err := lidrepo.New(opts.Repo, lidrepo.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("script", opts.Script.String()).
		Str("repo", opts.Repo.String()).
		Msg("langid configured")

	svc := lidsvc.New(det, repo)
	return &Module{
		b:     b,
		svc:   svc,
		ports: Ports{Service: svc, Experts: repo},
	}, nil
}

// Service returns the pipeline for in process callers such as the CLI
func (m *Module) Service() lidsvc.Service { return m.svc }

// MountRoutes mounts /classify, /detect and /experts under the module prefix
func (m *Module) MountRoutes(r httpkit.Router) {
	m.b.Mount(r, func(rr httpkit.Router) { lidhttp.Register(rr, m.svc) })
}

// Name returns the module name
func (m *Module) Name() string { return m.b.Name }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return m.b.Prefix }
