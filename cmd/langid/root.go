package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"langid/internal/platform/logger"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "langid",
		Short:         "Writing system detection and language identification",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// stdout carries results, logs go to stderr
			opts := logger.FromEnv()
			opts.Writer = os.Stderr
			if os.Getenv("LOG_LEVEL") == "" {
				opts.Level = "warn"
			}
			logger.Init(opts)

			// tag every log line of this invocation
			cmd.SetContext(logger.WithRequest(cmd.Context(), "", uuid.NewString()))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.modelPath, "model-path", "", "Expert model directory (overrides CORE_LANGID_MODEL_PATH)")
	rootCmd.PersistentFlags().StringVarP(&ctx.output, "output", "o", outputAuto, "Output format: auto, json or table")

	rootCmd.AddCommand(newDetectCommand(ctx))
	rootCmd.AddCommand(newClassifyCommand(ctx))
	rootCmd.AddCommand(newExpertsCommand(ctx))
	rootCmd.AddCommand(newModelsCommand(ctx))

	return rootCmd
}
