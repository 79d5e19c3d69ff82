package field

import (
	"strings"

	"github.com/nexhub-io/nexctl/pkg/api"
)

// TransformFunc converts a raw wire value into a display-ready value.
// It may fail on malformed server data; the failure stays local to the
// cell it belongs to.
type TransformFunc func(raw any) (any, error)

// FieldSpec declares one renderable column of a resource kind: the
// stable key users type, where the raw value lives in a server record,
// how it is labeled, and how it becomes display-ready.
type FieldSpec struct {
	// Key is the stable identifier used in --fields input and JSON
	// output. Unique within a kind's registry.
	Key string

	// WirePath locates the raw value in a server record. Dots descend
	// into nested objects, e.g. "owner.email".
	WirePath string

	// DisplayName is the human table header.
	DisplayName string

	// MinVersion is the oldest server version exposing this field.
	// Zero means always available.
	MinVersion api.Version

	// Transform converts the raw value. Nil means use it as-is.
	Transform TransformFunc
}

// Apply runs the transform on a raw value. Nil input passes through
// untouched so formatters can render their null placeholder.
func (s *FieldSpec) Apply(raw any) (any, error) {
	if raw == nil || s.Transform == nil {
		return raw, nil
	}
	return s.Transform(raw)
}

// wireRoot returns the top-level wire key, used for server-side
// projection hints.
func (s *FieldSpec) wireRoot() string {
	if i := strings.IndexByte(s.WirePath, '.'); i >= 0 {
		return s.WirePath[:i]
	}
	return s.WirePath
}

// FieldSet is an ordered sequence of field specs with no duplicate
// keys: one projection request. Immutable after resolution.
type FieldSet []*FieldSpec

// Keys returns the field keys in order.
func (fs FieldSet) Keys() []string {
	keys := make([]string, len(fs))
	for i, s := range fs {
		keys[i] = s.Key
	}
	return keys
}

// DisplayNames returns the human headers in order.
func (fs FieldSet) DisplayNames() []string {
	names := make([]string, len(fs))
	for i, s := range fs {
		names[i] = s.DisplayName
	}
	return names
}

// WirePaths returns the deduplicated top-level wire keys the server
// must include for this projection.
func (fs FieldSet) WirePaths() []string {
	seen := make(map[string]struct{}, len(fs))
	paths := make([]string, 0, len(fs))
	for _, s := range fs {
		root := s.wireRoot()
		if _, ok := seen[root]; ok {
			continue
		}
		seen[root] = struct{}{}
		paths = append(paths, root)
	}
	return paths
}

// Cell is one rendered position of a projected row. Err marks a
// transform failure; the value is then unusable and formatters render
// an error placeholder instead.
type Cell struct {
	Spec  *FieldSpec
	Value any
	Err   error
}

// ProjectedRow is a record after projection: one cell per spec in the
// active field set, in the same order. Positions align across all rows
// of one output.
type ProjectedRow []Cell
