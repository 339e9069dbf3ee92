// Package cli provides table helpers for human-readable output.
package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const (
	tablePadding = 2
	emptyCell    = "--"
)

// writeTable aligns rows under headers. Blank cells print as "--" so
// columns stay readable, and short rows are padded.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(tableCells(row, len(headers)), "\t"))
	}
	return writer.Flush()
}

func tableCells(row []string, width int) []string {
	if width < len(row) {
		width = len(row)
	}
	cells := make([]string, width)
	for i := range cells {
		cell := ""
		if i < len(row) {
			cell = strings.TrimSpace(row[i])
		}
		if cell == "" {
			cell = emptyCell
		}
		cells[i] = cell
	}
	return cells
}
