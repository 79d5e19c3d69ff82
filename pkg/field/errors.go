package field

import (
	"fmt"
	"strings"

	"github.com/nexhub-io/nexctl/pkg/api"
)

// UnknownFieldError is returned when a caller references a field key
// that is not registered for the resource kind.
type UnknownFieldError struct {
	Kind        string
	Key         string
	Suggestions []string
	Valid       []string
}

func (e *UnknownFieldError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown field %q for %s", e.Key, e.Kind)
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	if len(e.Valid) > 0 {
		fmt.Fprintf(&b, "\nValid fields: %s", strings.Join(e.Valid, ", "))
	}
	return b.String()
}

// EmptyProjectionError is returned when field resolution yields zero
// columns. A projection with no columns is meaningless, so this is an
// error rather than an empty success.
type EmptyProjectionError struct {
	Kind string
}

func (e *EmptyProjectionError) Error() string {
	return fmt.Sprintf("no usable fields left for %s: the selection resolved to zero columns", e.Kind)
}

// IncompatibleFieldError is returned in strict mode when a requested
// field needs a newer server than the one connected.
type IncompatibleFieldError struct {
	Key      string
	Requires api.Version
	Server   api.Version
}

func (e *IncompatibleFieldError) Error() string {
	return fmt.Sprintf("field %q requires manager %s+ but the server reports %s",
		e.Key, e.Requires, e.Server)
}
