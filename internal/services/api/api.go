// Package api composes the langid and meta modules into the versioned HTTP API
package api

import (
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	phttp "langid/internal/platform/net/http"

	"langid/internal/modkit"
	"langid/internal/modkit/httpkit"
	"langid/internal/modkit/module"
	"langid/internal/modkit/swaggerkit"

	metahttp "langid/internal/services/api/meta/http"
	metamod "langid/internal/services/api/meta/module"
	langidmod "langid/internal/services/langid/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	LangID         langidmod.Options
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
	// Checks are extra readiness dependencies reported by /meta/ready
	Checks []metahttp.Check
}

// Mount mounts the API onto r. It fails when the langid pipeline cannot be
// built from opt.LangID
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.Deps{Cfg: opt.Config}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	lid, err := langidmod.New(deps, opt.LangID)
	if err != nil {
		return err
	}

	checks := opt.Checks
	if experts, ok := module.PortsOf[metahttp.Pinger](lid); ok {
		checks = append([]metahttp.Check{{Name: "experts", Pinger: experts}}, checks...)
	}
	meta := metamod.New(deps, modkit.WithPorts(metamod.Ports{
		Checks: checks,
		Pipeline: metahttp.PipelineResponse{
			Script: opt.LangID.Script.String(),
			Repo:   opt.LangID.Repo.String(),
		},
	}))

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	log := logger.Named("api")
	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Stack), func(api httpkit.Router) {
		for _, m := range []modkit.Module{meta, lid} {
			log.Debug().Str("module", m.Name()).Str("prefix", m.Prefix()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
	return nil
}
