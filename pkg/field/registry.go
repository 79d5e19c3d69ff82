package field

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the field catalogs of every known resource kind. It
// is built once during initialization and read-only afterward, so
// concurrent reads need no locking. Callers receive it by reference
// rather than through a package-level singleton.
type Registry struct {
	kinds map[string]*kindEntry
}

type kindEntry struct {
	specs          map[string]*FieldSpec
	order          []string
	listDefaults   []string
	detailDefaults []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]*kindEntry)}
}

// MustAddKind registers a resource kind with its field specs and the
// default selections for list and detail queries. Panics on duplicate
// keys or defaults naming unregistered fields; catalogs are static
// data, so a mistake here is a programming error.
func (r *Registry) MustAddKind(kind string, specs []*FieldSpec, listDefaults, detailDefaults []string) {
	if _, ok := r.kinds[kind]; ok {
		panic(fmt.Sprintf("field: kind %q registered twice", kind))
	}
	entry := &kindEntry{
		specs:          make(map[string]*FieldSpec, len(specs)),
		order:          make([]string, 0, len(specs)),
		listDefaults:   listDefaults,
		detailDefaults: detailDefaults,
	}
	for _, s := range specs {
		if _, ok := entry.specs[s.Key]; ok {
			panic(fmt.Sprintf("field: duplicate key %q in kind %q", s.Key, kind))
		}
		entry.specs[s.Key] = s
		entry.order = append(entry.order, s.Key)
	}
	for _, key := range append(append([]string{}, listDefaults...), detailDefaults...) {
		if _, ok := entry.specs[key]; !ok {
			panic(fmt.Sprintf("field: default %q not registered for kind %q", key, kind))
		}
	}
	r.kinds[kind] = entry
}

// Kinds returns the registered resource kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Lookup resolves a field key for a kind. Unknown keys produce an
// UnknownFieldError carrying the closest valid keys.
func (r *Registry) Lookup(kind, key string) (*FieldSpec, error) {
	entry, err := r.entry(kind)
	if err != nil {
		return nil, err
	}
	if spec, ok := entry.specs[key]; ok {
		return spec, nil
	}
	return nil, &UnknownFieldError{
		Kind:        kind,
		Key:         key,
		Suggestions: closestKeys(key, entry.order),
		Valid:       append([]string{}, entry.order...),
	}
}

// All returns every field spec of a kind in registration order.
func (r *Registry) All(kind string) ([]*FieldSpec, error) {
	entry, err := r.entry(kind)
	if err != nil {
		return nil, err
	}
	specs := make([]*FieldSpec, len(entry.order))
	for i, key := range entry.order {
		specs[i] = entry.specs[key]
	}
	return specs, nil
}

// ListDefaults returns the default projection for list queries.
func (r *Registry) ListDefaults(kind string) (FieldSet, error) {
	return r.defaults(kind, false)
}

// DetailDefaults returns the default projection for detail queries.
func (r *Registry) DetailDefaults(kind string) (FieldSet, error) {
	return r.defaults(kind, true)
}

func (r *Registry) defaults(kind string, detail bool) (FieldSet, error) {
	entry, err := r.entry(kind)
	if err != nil {
		return nil, err
	}
	keys := entry.listDefaults
	if detail {
		keys = entry.detailDefaults
	}
	fs := make(FieldSet, len(keys))
	for i, key := range keys {
		fs[i] = entry.specs[key]
	}
	return fs, nil
}

func (r *Registry) entry(kind string) (*kindEntry, error) {
	entry, ok := r.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("unknown resource kind %q (known: %s)",
			kind, strings.Join(r.Kinds(), ", "))
	}
	return entry, nil
}

// closestKeys picks registered keys that look like typos of the input:
// shared prefixes first, then small edit distances.
func closestKeys(input string, keys []string) []string {
	var out []string
	for _, k := range keys {
		if strings.HasPrefix(k, input) || strings.HasPrefix(input, k) {
			out = append(out, k)
			continue
		}
		if editDistance(input, k) <= 2 {
			out = append(out, k)
		}
	}
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, min(cur[j-1]+1, prev[j-1]+cost))
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
