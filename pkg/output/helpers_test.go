package output

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexhub-io/nexctl/pkg/field"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "fits untouched", input: "hello", maxWidth: 10, want: "hello"},
		{name: "cut with ellipsis", input: "hello world", maxWidth: 8, want: "hello..."},
		{name: "tiny budget", input: "hello", maxWidth: 2, want: "he"},
		{name: "zero budget", input: "hello", maxWidth: 0, want: ""},
		{name: "newlines escaped", input: "a\nb", maxWidth: 10, want: "a\\nb"},
		{name: "wide runes count double", input: "日本語のテキスト", maxWidth: 8, want: "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", Pad("ab", 4))
	assert.Equal(t, "abcdef", Pad("abcdef", 4), "wider strings pass through")
}

func TestCellText(t *testing.T) {
	spec := &field.FieldSpec{Key: "x"}

	assert.Equal(t, "(error)", cellText(field.Cell{Spec: spec, Err: errors.New("boom")}, "(null)"))
	assert.Equal(t, "(null)", cellText(field.Cell{Spec: spec}, "(null)"))
	assert.Equal(t, "-", cellText(field.Cell{Spec: spec}, "-"))
	assert.Equal(t, "RUNNING", cellText(field.Cell{Spec: spec, Value: "RUNNING"}, "(null)"))
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{name: "string", input: "abc", want: "abc"},
		{name: "bool", input: true, want: "true"},
		{name: "float drops trailing zeros", input: 2048.0, want: "2048"},
		{name: "float keeps decimals", input: 1.5, want: "1.5"},
		{name: "int", input: 42, want: "42"},
		{name: "map sorted by key", input: map[string]any{"mem": "16g", "cpu": 4}, want: "cpu: 4, mem: 16g"},
		{name: "list joined", input: []any{"a", "b"}, want: "a, b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatValue(tt.input))
		})
	}
}
