// Package output renders projected rows under a caller-chosen format.
// A formatter is selected once per command and never mixed mid-stream;
// list output flows through it incrementally, detail output is rendered
// atomically by RenderDetail.
package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/nexhub-io/nexctl/pkg/field"
)

// Placeholders for cells that carry no renderable value. The null text
// is deliberately distinguishable from an empty string.
const (
	NullText  = "(null)"
	ErrorText = "(error)"
)

// Config carries per-invocation rendering settings.
type Config struct {
	// Color enables styled output; off when piping.
	Color bool

	// NullText overrides the placeholder for null/missing values in
	// human formats.
	NullText string
}

// Summary feeds the formatter's footer after the last row.
type Summary struct {
	Rows      int
	Total     int
	HasTotal  bool
	Truncated bool // listing stopped at the item cap, more rows match
}

// Formatter renders a header, a stream of rows, and a footer. The row
// stream may be long; implementations must not require the whole
// listing up front (buffering for column widths is fine).
type Formatter interface {
	Header(fs field.FieldSet) error
	Row(row field.ProjectedRow) error
	Footer(sum Summary) error
}

// New returns the formatter for the requested output mode, writing to
// w. Unsupported modes are a render failure, not a silent fallback.
func New(f Format, w io.Writer, cfg Config) (Formatter, error) {
	if cfg.NullText == "" {
		cfg.NullText = NullText
	}
	switch f {
	case FormatTable:
		return newTableFormatter(w, cfg), nil
	case FormatSimple:
		return newSimpleFormatter(w, cfg), nil
	case FormatJSON:
		return newJSONFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q (use %s)", f, joinFormats())
	}
}

func joinFormats() string {
	names := make([]string, len(allFormats))
	for i, f := range allFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// cellText renders one cell for human formats: the error placeholder
// for failed transforms, the null placeholder for missing values, and
// the formatted value otherwise.
func cellText(c field.Cell, nullText string) string {
	if c.Err != nil {
		return ErrorText
	}
	if c.Value == nil {
		return nullText
	}
	return formatValue(c.Value)
}

// formatValue converts a display-ready value to its textual form.
func formatValue(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %v", k, v[k])
		}
		return strings.Join(parts, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprintf("%v", item)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
