package buildfile

import (
	"testing"

	"github.com/specialistvlad/drushgo/internal/property"
	"github.com/stretchr/testify/require"
)

func TestEvalContext_Functions(t *testing.T) {
	t.Setenv("DRUSHGO_TEST_SITE", "example")
	props := property.FromMap(map[string]string{"site.root": "/var/www"})

	f, err := Parse([]byte(`
		drush "st" {
			root    = prop("site.root")
			uri     = format("http://%s.test", env("DRUSHGO_TEST_SITE"))
			alias   = prop("site.alias", "@self")
			command = upper("st")
			config  = lower(env("DRUSHGO_TEST_UNSET", "/ETC/drush.yml"))
			param { value = join(",", ["a", "b"]) }
			param { value = trimspace("  x  ") }
		}
	`), "build.hcl")
	require.NoError(t, err)

	task, err := f.Tasks()[0].Task(NewEvalContext(props))
	require.NoError(t, err)
	require.Equal(t,
		`drush @self --root="/var/www" --uri="http://example.test" --config="/etc/drush.yml" ST a,b x`,
		task.Line())
}

func TestEvalContext_SeesLaterProperties(t *testing.T) {
	props := property.New()
	ectx := NewEvalContext(props)

	f, err := Parse([]byte(`drush "echo" { command = prop("out") }`), "build.hcl")
	require.NoError(t, err)

	_, err = f.Tasks()[0].Task(ectx)
	require.ErrorContains(t, err, `property "out" is not defined`)

	props.Set("out", "cr")
	task, err := f.Tasks()[0].Task(ectx)
	require.NoError(t, err)
	require.Equal(t, "drush cr", task.Line())
}

func TestEvalContext_RejectsExtraDefaults(t *testing.T) {
	f, err := Parse([]byte(`drush "st" { root = prop("site.root", "/a", "/b") }`), "build.hcl")
	require.NoError(t, err)

	_, err = f.Tasks()[0].Task(NewEvalContext(property.New()))
	require.ErrorContains(t, err, "prop() takes at most one default, got 2")

	f, err = Parse([]byte(`drush "st" { root = env("HOME", "/a", "/b") }`), "build.hcl")
	require.NoError(t, err)

	_, err = f.Tasks()[0].Task(NewEvalContext(property.New()))
	require.ErrorContains(t, err, "env() takes at most one default, got 2")
}
