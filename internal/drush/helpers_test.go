package drush

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/drushgo/internal/ctxlog"
)

// mapProps is a minimal PropertySetter for tests.
type mapProps map[string]string

func (m mapProps) Set(name, value string) { m[name] = value }

// fakeExecutor records what it was asked to run and returns a canned result.
type fakeExecutor struct {
	result Result
	calls  []string
	opts   []ExecOptions
}

func (f *fakeExecutor) Execute(_ context.Context, line string, opts ExecOptions) Result {
	f.calls = append(f.calls, line)
	f.opts = append(f.opts, opts)
	return f.result
}

func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}
