package buildfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_KeepsBlockOrderAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.hcl"), []byte(`
		drush "second" { command = "cr" }
	`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), []byte(`
		property "drush.root" { value = "/srv" }
		drush "first" { command = "st" }
	`), 0o644))

	f, err := Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, f.Paths, 2)

	var got []string
	for _, b := range f.Blocks {
		got = append(got, b.Kind.String()+":"+b.Name)
	}
	require.Equal(t, []string{"property:drush.root", "drush:first", "drush:second"}, got)
	require.Len(t, f.Tasks(), 2)
	require.Equal(t, filepath.Join(dir, "a.hcl"), f.Blocks[0].File)
}

func TestLoad_JSONSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.hcl.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"drush": {
			"status": {
				"command": "status",
				"assume": "yes"
			}
		}
	}`), 0o644))

	f, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, f.Tasks(), 1)

	task, err := f.Tasks()[0].Task(nil)
	require.NoError(t, err)
	require.Equal(t, "drush --yes status", task.Line())
}

func TestLoad_InvalidHCL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`drush "x" {`), 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse build file")
}

func TestLoad_UnknownBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`target "x" {}`), 0o644))

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode build file")
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
