package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nexhub-io/nexctl/pkg/field"
)

// RenderDetail renders a single projected record atomically: a
// Field/Value table in table mode, one ordered JSON object in json
// mode, and "Name: value" lines in simple mode.
func RenderDetail(w io.Writer, row field.ProjectedRow, format Format, cfg Config) error {
	if cfg.NullText == "" {
		cfg.NullText = NullText
	}
	switch format {
	case FormatTable:
		return renderDetailTable(w, row, cfg)
	case FormatSimple:
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "%s: %s\n", cell.Spec.DisplayName, cellText(cell, cfg.NullText)); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		if err := writeOrderedObject(w, row); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	default:
		return fmt.Errorf("unsupported output format %q (use %s)", format, joinFormats())
	}
}

func renderDetailTable(w io.Writer, row field.ProjectedRow, cfg Config) error {
	rows := make([][]string, len(row))
	for i, cell := range row {
		rows[i] = []string{cell.Spec.DisplayName, Truncate(cellText(cell, cfg.NullText), maxTableCell)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Field", "Value").
		Rows(rows...)
	if cfg.Color {
		t = t.BorderStyle(tableBorderStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == 0 {
					return tableHeaderStyle
				}
				if row%2 == 0 {
					return tableEvenRowStyle
				}
				return tableOddRowStyle
			})
	} else {
		t = t.StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
