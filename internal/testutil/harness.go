// Package testutil holds the shared harness used by the application's
// integration tests.
package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/drushgo/internal/app"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	Summary   *app.Summary
	App       *app.App
	// Dir is the temporary root the build files were written to.
	Dir string
}

// RunBuildTest writes files (relative path to content) into a temporary
// directory, points the app at it and runs the whole build. configure may
// adjust the config before the app is created.
func RunBuildTest(t *testing.T, files map[string]string, configure func(*app.Config), opts ...app.Option) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	cfg := &app.Config{
		BuildPaths: []string{tmpDir},
		LogLevel:   "debug",
		LogFormat:  "text",
	}
	if configure != nil {
		configure(cfg)
	}

	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, cfg, opts...)
	summary, err := testApp.Run(context.Background())

	if os.Getenv("DRUSHGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       err,
		Summary:   summary,
		App:       testApp,
		Dir:       tmpDir,
	}
}

// WriteScript creates an executable shell script in dir and returns its
// path. It stands in for the drush binary.
func WriteScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}
