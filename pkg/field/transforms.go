package field

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Transforms shared by the builtin field catalog. Each one accepts the
// loosely-typed values produced by JSON decoding and fails on shapes
// the wire contract does not allow.

// MiB converts a byte count to mebibytes rounded to one decimal.
func MiB(raw any) (any, error) {
	b, err := asFloat(raw)
	if err != nil {
		return nil, err
	}
	return float64(int(b/(1<<20)*10+0.5)) / 10, nil
}

// HumanBytes renders a byte count with a binary unit suffix.
func HumanBytes(raw any) (any, error) {
	b, err := asFloat(raw)
	if err != nil {
		return nil, err
	}
	units := []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}
	i := 0
	for b >= 1024 && i < len(units)-1 {
		b /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", int64(b), units[i]), nil
	}
	return fmt.Sprintf("%.1f %s", b, units[i]), nil
}

// ShortTimestamp reduces an RFC 3339 timestamp to second precision.
func ShortTimestamp(raw any) (any, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("expected timestamp string, got %T", raw)
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, fmt.Errorf("malformed timestamp %q: %w", s, err)
	}
	return t.UTC().Format("2006-01-02 15:04:05"), nil
}

// Percent renders a numeric ratio value with a percent suffix.
func Percent(raw any) (any, error) {
	f, err := asFloat(raw)
	if err != nil {
		return nil, err
	}
	return fmt.Sprintf("%.1f%%", f), nil
}

// Slots renders a resource-slot mapping as "key=value" pairs in key
// order, the compact form used by list output.
func Slots(raw any) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected slot mapping, got %T", raw)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, m[k])
	}
	return strings.Join(parts, " "), nil
}

// JoinList renders a list of scalars comma-separated.
func JoinList(raw any) (any, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("expected list, got %T", raw)
	}
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%v", item)
	}
	return strings.Join(parts, ", "), nil
}

func asFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		return v.Float64()
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}
