package drush

import (
	"strings"
	"unicode"
)

// DefaultBin is used when no binary path was configured.
const DefaultBin = "drush"

// Settings are the top-level convenience values that Build turns into
// implicit options, so callers never spell out --root=... by hand.
type Settings struct {
	Root      string
	URI       string
	Config    string
	AliasPath string

	Color    Toggle
	Assume   Toggle
	Simulate Toggle
	Pipe     Toggle
	Verbose  Toggle

	Debug         Toggle
	Quiet         Toggle
	Backend       Toggle
	Druplicon     Toggle
	ShowPasswords Toggle
	Version       Toggle
	ShowInvoke    Toggle
	Xh            Toggle

	User           string
	Strict         string
	BackupLocation string
}

// Command is everything needed to render one Drush command line.
type Command struct {
	Bin      string
	Alias    string
	Settings Settings
	// Options declared explicitly by the user. They are rendered after the
	// implicit ones and never replace them.
	Options []Option
	// Name is the Drush sub-command, e.g. "status".
	Name   string
	Params []Param
}

// ImplicitOptions returns the options synthesized from s, in render order.
func (s Settings) ImplicitOptions() []Option {
	var opts []Option
	if s.Color == Off {
		opts = append(opts, Option{Name: "nocolor"})
	}

	valued := []Option{
		{Name: "root", Value: s.Root},
		{Name: "uri", Value: s.URI},
		{Name: "config", Value: s.Config},
		{Name: "alias-path", Value: s.AliasPath},
	}
	for _, o := range valued {
		if o.Value != "" {
			opts = append(opts, o)
		}
	}

	flags := []struct {
		name string
		t    Toggle
	}{
		{"simulate", s.Simulate},
		{"pipe", s.Pipe},
		{"verbose", s.Verbose},
	}
	for _, f := range flags {
		if f.t.Enabled() {
			opts = append(opts, Option{Name: f.name})
		}
	}

	switch s.Assume {
	case On:
		opts = append(opts, Option{Name: "yes"})
	case Off:
		opts = append(opts, Option{Name: "no"})
	}

	extra := []struct {
		name string
		t    Toggle
	}{
		{"debug", s.Debug},
		{"quiet", s.Quiet},
		{"backend", s.Backend},
		{"druplicon", s.Druplicon},
		{"show-passwords", s.ShowPasswords},
		{"version", s.Version},
		{"show-invoke", s.ShowInvoke},
		{"xh", s.Xh},
	}
	for _, f := range extra {
		if f.t.Enabled() {
			opts = append(opts, Option{Name: f.name})
		}
	}

	for _, o := range []Option{
		{Name: "user", Value: s.User},
		{Name: "strict", Value: s.Strict},
		{Name: "backup-location", Value: s.BackupLocation},
	} {
		if o.Value != "" {
			opts = append(opts, o)
		}
	}
	return opts
}

// Build renders c as a single command line: binary, alias, implicit
// options, user options, sub-command and params, separated by one space.
// It does not modify c.
func Build(c Command) string {
	tokens := []string{binToken(c.Bin)}
	if c.Alias != "" {
		tokens = append(tokens, c.Alias)
	}
	for _, o := range c.Settings.ImplicitOptions() {
		tokens = append(tokens, o.String())
	}
	for _, o := range c.Options {
		tokens = append(tokens, o.String())
	}
	if c.Name != "" {
		tokens = append(tokens, c.Name)
	}
	for _, p := range c.Params {
		tokens = append(tokens, p.String())
	}
	return strings.Join(tokens, " ")
}

func binToken(bin string) string {
	if bin == "" {
		return DefaultBin
	}
	if strings.IndexFunc(bin, unicode.IsSpace) >= 0 {
		return `"` + quotedBin.Replace(bin) + `"`
	}
	return bin
}

// quotedBin escapes what stays special inside double quotes.
var quotedBin = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
