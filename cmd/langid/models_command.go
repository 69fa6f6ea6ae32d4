package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"langid/internal/adapters/hfhub"
	"langid/internal/platform/logger"
)

func newModelsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage expert model artifacts",
	}
	cmd.AddCommand(newModelsSyncCommand(ctx))
	return cmd
}

func newModelsSyncCommand(ctx *commandContext) *cobra.Command {
	var timeout time.Duration
	var dir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Download expert models from the Hugging Face hub unless already present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.hubConfig()
			if timeout > 0 {
				cfg.LockTimeout = timeout
			}
			if d := strings.TrimSpace(dir); d != "" {
				cfg.Dir = d
			}
			syncer, err := hfhub.New(cfg)
			if err != nil {
				return err
			}

			runCtx := cmd.Context()
			logger.C(runCtx).Info().Str("hub", cfg.String()).Msg("syncing models")

			res, err := syncer.Ensure(runCtx)
			if err != nil {
				return err
			}
			return write(cmd, ctx.output, res, nil)
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "How long to wait for another sync holding the lock (default SERVICE_HF_LOCK_TIMEOUT)")
	cmd.Flags().StringVar(&dir, "dir", "", "Target directory (default SERVICE_HF_DIR)")
	return cmd
}
