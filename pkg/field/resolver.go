package field

import (
	"fmt"
	"strings"

	"github.com/nexhub-io/nexctl/pkg/api"
)

// ResolveOptions controls field selection.
type ResolveOptions struct {
	// Strict fails the whole request when a selected field needs a
	// newer server, instead of dropping it with a warning.
	Strict bool

	// Detail selects the detail-mode default field set when the caller
	// supplies no keys.
	Detail bool
}

// Resolve turns caller-supplied field keys (or the kind's defaults)
// into a validated, ordered, deduplicated FieldSet. Fields above the
// connected server's version are dropped with a warning, or fail the
// request in strict mode. Version gating happens here, at selection
// time, so a bad request fails before any page is fetched.
func Resolve(reg *Registry, compat *api.Compat, kind string, keys []string, opts ResolveOptions) (FieldSet, []string, error) {
	var selected FieldSet
	if len(keys) == 0 {
		defaults, err := reg.defaults(kind, opts.Detail)
		if err != nil {
			return nil, nil, err
		}
		selected = defaults
	} else {
		seen := make(map[string]struct{}, len(keys))
		for _, key := range keys {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			spec, err := reg.Lookup(kind, key)
			if err != nil {
				return nil, nil, err
			}
			selected = append(selected, spec)
		}
	}

	var warnings []string
	resolved := make(FieldSet, 0, len(selected))
	for _, spec := range selected {
		if !spec.MinVersion.IsZero() && !compat.Supports(spec.MinVersion) {
			if opts.Strict {
				return nil, nil, &IncompatibleFieldError{
					Key:      spec.Key,
					Requires: spec.MinVersion,
					Server:   compat.Server,
				}
			}
			warnings = append(warnings,
				fmt.Sprintf("%s dropped: requires %s+", spec.Key, spec.MinVersion))
			continue
		}
		resolved = append(resolved, spec)
	}

	if len(resolved) == 0 {
		return nil, nil, &EmptyProjectionError{Kind: kind}
	}
	return resolved, warnings, nil
}
