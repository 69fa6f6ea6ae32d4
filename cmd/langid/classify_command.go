package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"langid/internal/services/langid/domain"
)

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Identify the language of a text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := ctx.ensurePipeline()
			if err != nil {
				return err
			}
			res, err := m.Service().Classify(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			view := res.View(domain.NewNamer(locale))
			return write(cmd, ctx.output, view, func() tableView { return classifyTable(view) })
		},
	}
	cmd.Flags().StringVarP(&locale, "locale", "l", domain.DefaultLocale, "Locale for language names")
	return cmd
}

func classifyTable(v domain.ClassifyOutput) tableView {
	tv := tableView{
		headers: []string{"Language", "Name", "Probability"},
		right:   map[int]bool{2: true},
		caption: "writing system: " + v.WritingSystem,
	}
	for _, p := range v.Predictions {
		tv.rows = append(tv.rows, []string{p.LanguageID, p.LanguageName, strconv.FormatFloat(p.Probability, 'f', 4, 64)})
	}
	return tv
}
