package output

import (
	"fmt"
	"strings"
)

// Format represents a supported output format.
type Format string

const (
	FormatTable  Format = "table"
	FormatSimple Format = "simple"
	FormatJSON   Format = "json"
)

var allFormats = []Format{
	FormatTable,
	FormatSimple,
	FormatJSON,
}

// AllFormats returns a copy of all supported formats.
func AllFormats() []Format {
	out := make([]Format, len(allFormats))
	copy(out, allFormats)
	return out
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is supported.
func (f Format) IsValid() bool {
	for _, known := range allFormats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat parses a string into Format, validating it.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !f.IsValid() {
		names := make([]string, len(allFormats))
		for i, format := range allFormats {
			names[i] = string(format)
		}
		return "", fmt.Errorf("invalid output format: %s (use %s)", s, strings.Join(names, ", "))
	}
	return f, nil
}
