package api

import (
	"fmt"
	"strconv"
	"strings"
)

// MinServerVersion is the oldest manager release this client is tested
// against. Older servers still answer most requests, so falling below
// it degrades the session with a warning instead of refusing to work.
var MinServerVersion = Version{Major: 20, Minor: 3}

// Version is a calendar-style manager release version such as "20.03".
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses a "YY.MM" version string.
func ParseVersion(s string) (Version, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 2)
	if len(parts) != 2 {
		return Version{}, fmt.Errorf("invalid version %q: expected YY.MM", s)
	}
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return Version{Major: major, Minor: minor}, nil
}

// MustVersion parses a version string, panicking on malformed input.
// Only for use with compile-time constants such as field minimums.
func MustVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the "YY.MM" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%02d", v.Major, v.Minor)
}

// IsZero reports whether the version is unset.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0
}

// Cmp returns -1, 0, or +1 comparing v against other.
func (v Version) Cmp(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	return 0
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool {
	return v.Cmp(other) >= 0
}

// CompatState describes the session-level compatibility gate.
type CompatState int

const (
	// Compatible means the server meets the minimum known-good version.
	Compatible CompatState = iota

	// DegradedWithWarning means the server is older than the minimum
	// known-good version. The session stays usable; a single warning is
	// emitted when it is established.
	DegradedWithWarning
)

// Compat holds the connected server's version and the client's minimum
// known-good version. Derived once per session, read-only afterward, so
// concurrent reads are safe.
type Compat struct {
	Server  Version
	Minimum Version
}

// NewCompat builds the compatibility context for a session.
func NewCompat(server, minimum Version) *Compat {
	return &Compat{Server: server, Minimum: minimum}
}

// State returns the session-level gate state.
func (c *Compat) State() CompatState {
	if !c.Server.IsZero() && c.Server.Cmp(c.Minimum) < 0 {
		return DegradedWithWarning
	}
	return Compatible
}

// Supports reports whether the server satisfies the given minimum
// version requirement. An unknown server version is assumed capable;
// the server itself rejects what it cannot answer.
func (c *Compat) Supports(minimum Version) bool {
	if c.Server.IsZero() {
		return true
	}
	return c.Server.AtLeast(minimum)
}
