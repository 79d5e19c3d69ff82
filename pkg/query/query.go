// Package query is the functional API of the projection engine: it
// binds field selections against the connected server, drives paginated
// enumeration, and projects raw records into renderable rows.
package query

import (
	"context"
	"fmt"

	"github.com/gobwas/glob"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/field"
)

// DefaultPageSize bounds one list request when the caller does not
// choose a page size.
const DefaultPageSize = 20

// Options configures one list or detail query.
type Options struct {
	// Fields selects the projection; empty means the kind's defaults.
	Fields []string

	// PageSize bounds each page request (list only).
	PageSize int

	// MaxItems caps the total records fetched; 0 means unbounded
	// (list only).
	MaxItems int

	// Strict fails on fields the server is too old for, instead of
	// dropping them with a warning.
	Strict bool

	// NamePattern is a glob matched client-side against each record's
	// name (falling back to its id). Empty matches everything.
	NamePattern string
}

// Rows is the lazy result of a list query: a cursor of projected rows
// plus the warnings accumulated along the way. Read the warnings after
// the cursor is drained.
type Rows struct {
	set     field.FieldSet
	enum    *Enumerator
	warn    *Warnings
	matcher glob.Glob
	rowIdx  int
}

// List starts a paginated list query. Field resolution and version
// gating happen up front, before the first page is fetched.
func List(t api.Transport, reg *field.Registry, kind string, filters map[string]string, opts Options) (*Rows, error) {
	warn := &Warnings{}
	compat := api.NewCompat(t.ServerVersion(), api.MinServerVersion)

	set, fieldWarnings, err := field.Resolve(reg, compat, kind, opts.Fields, field.ResolveOptions{
		Strict: opts.Strict,
	})
	if err != nil {
		return nil, err
	}
	warn.AddAll(fieldWarnings)

	var matcher glob.Glob
	if opts.NamePattern != "" {
		matcher, err = glob.Compile(opts.NamePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid name pattern %q: %w", opts.NamePattern, err)
		}
	}

	return &Rows{
		set:     set,
		enum:    NewEnumerator(t, kind, filters, set.WirePaths(), opts.PageSize, opts.MaxItems),
		warn:    warn,
		matcher: matcher,
	}, nil
}

// Next returns the next projected row, or ok=false at the end. Cell
// transform failures are recorded as warnings and never abort the row.
func (r *Rows) Next(ctx context.Context) (field.ProjectedRow, bool, error) {
	for {
		rec, ok, err := r.enum.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		if r.matcher != nil && !r.matchName(rec) {
			continue
		}
		row := Project(rec, r.set)
		r.rowIdx++
		for _, cell := range row {
			if cell.Err != nil {
				r.warn.Add("row %d, field %s: %v", r.rowIdx, cell.Spec.Key, cell.Err)
			}
		}
		return row, true, nil
	}
}

// FieldSet returns the resolved projection.
func (r *Rows) FieldSet() field.FieldSet {
	return r.set
}

// Warnings returns everything recorded so far.
func (r *Rows) Warnings() []string {
	return r.warn.Entries()
}

// Total returns the server-reported total count, if known.
func (r *Rows) Total() (int, bool) {
	return r.enum.Total()
}

// Fetched returns the number of raw records received so far.
func (r *Rows) Fetched() int {
	return r.enum.Fetched()
}

func (r *Rows) matchName(rec api.Record) bool {
	for _, key := range []string{"name", "id"} {
		if v, ok := rec[key]; ok {
			if s, ok := v.(string); ok {
				return r.matcher.Match(s)
			}
		}
	}
	return false
}

// Detail fetches and projects a single record. The pagination engine
// is bypassed entirely.
func Detail(ctx context.Context, t api.Transport, reg *field.Registry, kind, id string, opts Options) (field.ProjectedRow, field.FieldSet, []string, error) {
	warn := &Warnings{}
	compat := api.NewCompat(t.ServerVersion(), api.MinServerVersion)

	set, fieldWarnings, err := field.Resolve(reg, compat, kind, opts.Fields, field.ResolveOptions{
		Strict: opts.Strict,
		Detail: true,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	warn.AddAll(fieldWarnings)

	rec, err := t.FetchOne(ctx, kind, id, set.WirePaths())
	if err != nil {
		return nil, nil, nil, err
	}

	row := Project(rec, set)
	for _, cell := range row {
		if cell.Err != nil {
			warn.Add("field %s: %v", cell.Spec.Key, cell.Err)
		}
	}
	return row, set, warn.Entries(), nil
}
