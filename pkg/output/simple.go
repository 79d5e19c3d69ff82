package output

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/nexhub-io/nexctl/pkg/field"
)

// minSimpleColumn is the floor for a streamed column's width.
const minSimpleColumn = 12

// simpleFormatter streams rows as they arrive, padding cells to fixed
// widths derived from the headers. The first chunk appears before the
// listing is complete, which matters when paging through a large
// resource set. Values wider than their column degrade alignment for
// that row only; nothing is truncated.
type simpleFormatter struct {
	w      io.Writer
	cfg    Config
	widths []int
	rows   int
}

func newSimpleFormatter(w io.Writer, cfg Config) *simpleFormatter {
	return &simpleFormatter{w: w, cfg: cfg}
}

func (f *simpleFormatter) Header(fs field.FieldSet) error {
	names := fs.DisplayNames()
	f.widths = make([]int, len(names))
	for i, name := range names {
		f.widths[i] = runewidth.StringWidth(name) + 2
		if f.widths[i] < minSimpleColumn {
			f.widths[i] = minSimpleColumn
		}
	}
	return f.writeLine(names)
}

func (f *simpleFormatter) Row(row field.ProjectedRow) error {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = cellText(cell, f.cfg.NullText)
	}
	f.rows++
	return f.writeLine(cells)
}

func (f *simpleFormatter) Footer(sum Summary) error {
	if f.rows == 0 {
		_, err := fmt.Fprintln(f.w, "No matching items.")
		return err
	}
	if sum.Truncated {
		return writeFooterLine(f.w, f.cfg, sum)
	}
	return nil
}

func (f *simpleFormatter) writeLine(cells []string) error {
	line := ""
	for i, cell := range cells {
		if i == len(cells)-1 {
			line += cell
			continue
		}
		width := minSimpleColumn
		if i < len(f.widths) {
			width = f.widths[i]
		}
		line += Pad(cell, width)
	}
	_, err := fmt.Fprintln(f.w, line)
	return err
}
