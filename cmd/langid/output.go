package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	outputAuto  = "auto"
	outputJSON  = "json"
	outputTable = "table"
)

// tableView is the human readable rendering of a result
type tableView struct {
	headers []string
	rows    [][]string
	right   map[int]bool // right aligned column indexes
	caption string
}

// write renders v as JSON, or as tv when the table format is selected.
// auto picks the table for terminals and JSON for pipes and files
func write(cmd *cobra.Command, format string, v any, tv func() tableView) error {
	out := cmd.OutOrStdout()
	switch format {
	case outputTable:
	case outputAuto, "":
		if !isTerminal(out) {
			return writeJSON(out, v)
		}
	case outputJSON:
		return writeJSON(out, v)
	default:
		return fmt.Errorf("unknown output format %q (want auto, json or table)", format)
	}
	if tv == nil {
		return writeJSON(out, v)
	}
	_, err := fmt.Fprintln(out, renderTable(tv()))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func renderTable(tv tableView) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(tv.headers))
	for i, h := range tv.headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range tv.rows {
		r := make(table.Row, len(tv.headers))
		for i := range r {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	configs := make([]table.ColumnConfig, 0, len(tv.headers))
	for i := range tv.headers {
		align := text.AlignLeft
		if tv.right[i] {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft})
	}
	tw.SetColumnConfigs(configs)
	if tv.caption != "" {
		tw.SetCaption(tv.caption)
	}
	return tw.Render()
}
