package property

import (
	"fmt"
	"strings"
)

// ParseDefine splits a "-D name=value" definition. A definition without
// "=" defines the property with an empty value.
func ParseDefine(def string) (string, string, error) {
	name, value, _ := strings.Cut(def, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("invalid property definition %q: empty name", def)
	}
	return name, value, nil
}

// Defines collects repeated -D flags. It implements flag.Value.
type Defines []string

// String implements flag.Value.
func (d *Defines) String() string {
	return strings.Join(*d, ",")
}

// Set implements flag.Value.
func (d *Defines) Set(v string) error {
	if _, _, err := ParseDefine(v); err != nil {
		return err
	}
	*d = append(*d, v)
	return nil
}

// Apply sets every definition on s, overriding existing values.
func (d Defines) Apply(s Store) error {
	for _, def := range d {
		name, value, err := ParseDefine(def)
		if err != nil {
			return err
		}
		s.Set(name, value)
	}
	return nil
}
