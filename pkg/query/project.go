package query

import (
	"strings"

	"github.com/nexhub-io/nexctl/pkg/api"
	"github.com/nexhub-io/nexctl/pkg/field"
)

// Project applies a field set to one raw record, producing a row with
// one cell per spec in the set's order. A failing transform marks its
// cell with the error instead of aborting the row; the other cells are
// unaffected.
func Project(rec api.Record, fs field.FieldSet) field.ProjectedRow {
	row := make(field.ProjectedRow, len(fs))
	for i, spec := range fs {
		raw, ok := extract(rec, spec.WirePath)
		if !ok {
			raw = nil
		}
		val, err := spec.Apply(raw)
		row[i] = field.Cell{Spec: spec, Value: val, Err: err}
	}
	return row
}

// extract walks a dot-separated wire path through nested objects.
func extract(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = m
	for _, part := range parts {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = obj[part]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}
