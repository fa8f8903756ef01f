package main

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// table lays out rows in left-aligned columns by display width.
type table struct {
	rows [][]string
}

func (t *table) add(cells ...string) { t.rows = append(t.rows, cells) }

func (t *table) write(w io.Writer) error {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	var b strings.Builder
	for _, row := range t.rows {
		line := make([]string, len(row))
		for i, cell := range row {
			if i == len(row)-1 {
				line[i] = cell
				continue
			}
			line[i] = runewidth.FillRight(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(line, "  "), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
