package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"langid/internal/services/langid/domain"
)

func newExpertsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "experts",
		Short: "List installed expert models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}
			experts, err := m.Service().Experts(cmd.Context())
			if err != nil {
				return err
			}
			return write(cmd, ctx.output, experts, func() tableView { return expertsTable(experts) })
		},
	}
}

func expertsTable(experts []domain.Expert) tableView {
	tv := tableView{headers: []string{"Writing system", "Quantized", "Path"}}
	for _, e := range experts {
		tv.rows = append(tv.rows, []string{e.WritingSystem, strconv.FormatBool(e.Quantized), e.Path})
	}
	return tv
}
