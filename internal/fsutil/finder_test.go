package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "b.hcl", "a.hcl", "nested/c.hcl", "notes.txt", "d.hcl.json")

	got, err := FindFilesByExtension(root, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "b.hcl"),
		filepath.Join(root, "nested/c.hcl"),
	}, got)

	got, err = FindFilesByExtension(root, ".hcl", ".hcl.json")
	require.NoError(t, err)
	require.Len(t, got, 4)
}

func TestFindFilesByExtension_PanicsWithoutExtension(t *testing.T) {
	require.Panics(t, func() { _, _ = FindFilesByExtension(t.TempDir()) })
}

func TestCollectFiles(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "dir/one.hcl", "dir/two.hcl", "build.drush")

	explicit := filepath.Join(root, "build.drush")
	dir := filepath.Join(root, "dir")

	got, err := CollectFiles([]string{explicit, dir, filepath.Join(dir, "one.hcl")}, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		explicit,
		filepath.Join(dir, "one.hcl"),
		filepath.Join(dir, "two.hcl"),
	}, got)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "missing")}, ".hcl")
	require.Error(t, err)
}
