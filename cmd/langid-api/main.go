// @title         langid API
// @version       0.1.0
// @description   Writing system detection and per script language identification

package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"langid/internal/adapters/hfhub"
	"langid/internal/modkit/httpkit"
	"langid/internal/platform/config"
	"langid/internal/platform/logger"
	phttp "langid/internal/platform/net/http"

	"langid/internal/services/api"
	langidmod "langid/internal/services/langid/module"
)

var defaultOrigins = []string{
	"http://localhost:8000",
	"https://localhost:8000",
	"https://toberocat.github.io",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// .env must be merged before anything reads the environment, logger included
	envErr := config.LoadDotEnv()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	coreCfg := root.Prefix("CORE_")
	hfCfg := hfhub.FromConfig(root.Prefix("SERVICE_")) // SERVICE_HF_*

	// bring up logging early
	l := logger.Get()
	if envErr != nil {
		l.Fatal().Err(envErr).Msg("load .env")
	}

	// optionally fetch expert models before serving
	if hfCfg.SyncOnStart {
		syncer, err := hfhub.New(hfCfg)
		if err != nil {
			l.Panic().Err(err).Msg("hfhub.New failed")
		}
		if _, err := syncer.Ensure(ctx); err != nil {
			l.Panic().Err(err).Str("hub", hfCfg.String()).Msg("model sync failed")
		}
	}

	// http server (CORE_API_ADDR, CORE_API_READ_HEADER_TIMEOUT, CORE_API_SHUTDOWN_GRACE)
	srv := phttp.NewServer(apiCfg)

	err := api.Mount(
		srv.Router(),
		api.Options{
			Config:         coreCfg,
			Logger:         l,
			LangID:         langidmod.FromConfig(coreCfg),
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				Origins:     apiCfg.MayCSV("CORS_ORIGINS", defaultOrigins),
				Timeout:     apiCfg.MayDuration("TIMEOUT", 30*time.Second),
				Slow:        apiCfg.MayDuration("SLOW", 500*time.Millisecond),
				MaxInFlight: apiCfg.MayInt("MAX_IN_FLIGHT", 0),
			},
		},
	)
	if err != nil {
		l.Panic().Err(err).Msg("api.Mount failed")
	}

	// serves until SIGINT or SIGTERM, then drains
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
