package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nexhub-io/nexctl/pkg/field"
)

// maxTableCell bounds a single cell's display width so one oversized
// value cannot blow up the whole table.
const maxTableCell = 50

// tableFormatter buffers rows and renders a styled table in the footer,
// once the column widths are known.
type tableFormatter struct {
	w       io.Writer
	cfg     Config
	headers []string
	rows    [][]string
}

func newTableFormatter(w io.Writer, cfg Config) *tableFormatter {
	return &tableFormatter{w: w, cfg: cfg}
}

func (f *tableFormatter) Header(fs field.FieldSet) error {
	f.headers = fs.DisplayNames()
	return nil
}

func (f *tableFormatter) Row(row field.ProjectedRow) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = Truncate(cellText(cell, f.cfg.NullText), maxTableCell)
	}
	f.rows = append(f.rows, cells)
	return nil
}

func (f *tableFormatter) Footer(sum Summary) error {
	if len(f.rows) == 0 {
		_, err := fmt.Fprintln(f.w, "No matching items.")
		return err
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(f.headers...).
		Rows(f.rows...)
	if f.cfg.Color {
		t = t.BorderStyle(tableBorderStyle).
			StyleFunc(func(row, _ int) lipgloss.Style {
				// Header row (row 0 in lipgloss table is the header)
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
	if _, err := fmt.Fprintln(f.w, t.Render()); err != nil {
		return err
	}

	return writeFooterLine(f.w, f.cfg, sum)
}

// writeFooterLine prints the row-count summary under human output.
func writeFooterLine(w io.Writer, cfg Config, sum Summary) error {
	line := fmt.Sprintf("%d rows", sum.Rows)
	if sum.HasTotal {
		line = fmt.Sprintf("%d of %d rows", sum.Rows, sum.Total)
	}
	if sum.Truncated {
		line += " (more rows match; raise --max-items to fetch them)"
	}
	if cfg.Color {
		line = valueStyle.Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
