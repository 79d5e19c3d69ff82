package output

import (
	"fmt"
	"os"
)

// Out-of-band messages go to stderr so machine consumers of the data
// stream never have to parse them out.

// Info prints an info message.
func Info(msg string) {
	fmt.Fprintln(os.Stderr, valueStyle.Render("⋯ "+msg))
}

// Success prints a success message.
func Success(msg string) {
	fmt.Fprintln(os.Stderr, successStyle.Render("✓ "+msg))
}

// Error prints an error message.
func Error(msg string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+msg))
}

// Warning prints a warning message.
func Warning(msg string) {
	fmt.Fprintln(os.Stderr, warningStyle.Render("⚠ "+msg))
}

// PrintWarnings flushes a command's accumulated warnings, once, after
// the data stream.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		Warning(w)
	}
}
