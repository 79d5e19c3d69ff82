package output

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens a string to maxWidth display cells, appending "..."
// when it had to cut. Width is measured in terminal cells so wide
// characters count double. Newlines are escaped first.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", "\\n")
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// Pad right-pads a string with spaces to the given display width.
// Strings already wider than the target are returned untouched.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}
