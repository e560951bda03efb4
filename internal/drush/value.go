package drush

import (
	"fmt"
	"strings"
)

// EscapeShellCmd backslash-escapes every byte a POSIX shell would treat as a
// metacharacter so the value can be embedded in a single command line.
// Quotes are escaped only when they have no partner further along the
// string; paired quotes are left alone. Whitespace is not touched.
func EscapeShellCmd(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 8)

	// closing is the index of the quote that ends the currently open pair.
	closing := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\'':
			switch {
			case closing < 0:
				if j := strings.IndexByte(s[i+1:], c); j >= 0 {
					closing = i + 1 + j
				} else {
					b.WriteByte('\\')
				}
			case s[closing] == c:
				closing = -1
			default:
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		case '#', '&', ';', '`', '|', '*', '?', '~', '<', '>', '^',
			'(', ')', '[', ']', '{', '}', '$', '\\', '\n', 0xFF:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Option is a named command-line flag, rendered as --name or
// --name="value".
type Option struct {
	Name  string
	Value string
}

// String renders the option. Non-empty values are always escaped and
// quoted.
func (o Option) String() string {
	if o.Value == "" {
		return "--" + o.Name
	}
	return fmt.Sprintf(`--%s="%s"`, o.Name, EscapeShellCmd(o.Value))
}

// Param is a positional argument.
type Param struct {
	Value  string
	Escape bool
	Quote  bool
}

// NewParam returns a param that is both escaped and quoted.
func NewParam(value string) Param {
	return Param{Value: value, Escape: true, Quote: true}
}

// String renders the param. Escaping happens before quoting so the quotes
// added here are never escaped themselves.
func (p Param) String() string {
	v := p.Value
	if p.Escape {
		v = EscapeShellCmd(v)
	}
	if p.Quote {
		v = `"` + v + `"`
	}
	return v
}
