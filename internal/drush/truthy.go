package drush

import "strings"

// ParseBool maps loosely typed build-file values onto a boolean. It never
// fails: anything that is not a recognised "yes" value is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "y", "yes", "t", "true", "on":
		return true
	}
	return false
}

// Toggle is a boolean that also remembers whether it was set at all. Several
// implicit options (color, assume) only appear when the user said something
// explicitly.
type Toggle int8

const (
	Unset Toggle = iota
	Off
	On
)

// ParseToggle returns Unset for an empty string and otherwise the ParseBool
// value of s.
func ParseToggle(s string) Toggle {
	if strings.TrimSpace(s) == "" {
		return Unset
	}
	return ToggleOf(ParseBool(s))
}

// ToggleOf converts a plain bool.
func ToggleOf(b bool) Toggle {
	if b {
		return On
	}
	return Off
}

// IsSet reports whether the toggle carries an explicit value.
func (t Toggle) IsSet() bool { return t != Unset }

// Enabled is true only for On.
func (t Toggle) Enabled() bool { return t == On }

// Or resolves the toggle, falling back to def when unset.
func (t Toggle) Or(def bool) bool {
	if t == Unset {
		return def
	}
	return t == On
}

// String implements fmt.Stringer.
func (t Toggle) String() string {
	switch t {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unset"
	}
}
