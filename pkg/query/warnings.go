package query

import "fmt"

// Warnings accumulates the recoverable conditions of one command
// (dropped fields, cell transform failures, degraded sessions) so they
// can be surfaced once, apart from the data stream. Not safe for
// concurrent use; each command invocation owns its own collector.
type Warnings struct {
	entries []string
}

// Add records one formatted warning.
func (w *Warnings) Add(format string, args ...any) {
	w.entries = append(w.entries, fmt.Sprintf(format, args...))
}

// AddAll records a batch of preformatted warnings.
func (w *Warnings) AddAll(entries []string) {
	w.entries = append(w.entries, entries...)
}

// Entries returns the recorded warnings in order.
func (w *Warnings) Entries() []string {
	return w.entries
}
