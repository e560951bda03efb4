package property

import "github.com/specialistvlad/drushgo/internal/drush"

// Property keys read by DefaultsFrom.
const (
	KeyAlias     = "drush.alias"
	KeyRoot      = "drush.root"
	KeyURI       = "drush.uri"
	KeyBin       = "drush.bin"
	KeyConfig    = "drush.config"
	KeyAliasPath = "drush.alias-path"
	KeyColor     = "drush.color"
	KeyPipe      = "drush.pipe"
	KeySimulate  = "drush.simulate"
	KeyVerbose   = "drush.verbose"
	KeyAssume    = "drush.assume"
)

// DefaultsFrom resolves the drush.* properties of s. Empty properties are
// treated as undefined.
func DefaultsFrom(s Store) drush.Defaults {
	get := func(k string) string { return Lookup(s, k) }
	return drush.Defaults{
		Alias:     get(KeyAlias),
		Root:      get(KeyRoot),
		URI:       get(KeyURI),
		Bin:       get(KeyBin),
		Config:    get(KeyConfig),
		AliasPath: get(KeyAliasPath),
		Color:     drush.ParseToggle(get(KeyColor)),
		Pipe:      drush.ParseToggle(get(KeyPipe)),
		Simulate:  drush.ParseToggle(get(KeySimulate)),
		Verbose:   drush.ParseToggle(get(KeyVerbose)),
		Assume:    drush.ParseToggle(get(KeyAssume)),
	}
}
