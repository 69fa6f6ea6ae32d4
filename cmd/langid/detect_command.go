package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"langid/internal/services/langid/domain"
	"langid/internal/services/langid/service"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "detect TEXT...",
		Short: "Detect the writing system of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			det, err := ctx.detector()
			if err != nil {
				return err
			}
			res, err := service.Detect(det, strings.Join(args, " "))
			if err != nil {
				return err
			}
			tv := func() tableView { return detectTable(res) }
			if verbose {
				return write(cmd, ctx.output, res, tv)
			}
			return write(cmd, ctx.output, map[string]string{"writing_system": res.WritingSystem}, tv)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include per script vote counts")
	return cmd
}

func detectTable(res domain.DetectionResult) tableView {
	tv := tableView{
		headers: []string{"Script", "Votes"},
		right:   map[int]bool{1: true},
		caption: fmt.Sprintf("writing system: %s (%d useful chars)", res.WritingSystem, res.UsefulChars),
	}
	for _, v := range res.Votes {
		tv.rows = append(tv.rows, []string{v.Script, strconv.Itoa(v.Count)})
	}
	return tv
}
