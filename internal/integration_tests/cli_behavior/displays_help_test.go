package cli_behavior

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/specialistvlad/drushgo/internal/cli"
)

// Test for: displays help
func TestCLI_DisplaysHelp_WhenNoBuildPathIsProvided(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	outW := &bytes.Buffer{}

	// --- Act ---
	// Simulate the user running the program without arguments.
	appConfig, shouldExit, err := cli.Parse([]string{}, outW)

	// --- Assert ---
	if err != nil {
		t.Fatalf("cli.Parse() returned an unexpected error: %v", err)
	}
	if !shouldExit {
		t.Fatal("cli.Parse() should have indicated an exit, but it did not")
	}
	for _, want := range []string{"Usage:", "-property-file", "-pretend"} {
		if !strings.Contains(outW.String(), want) {
			t.Errorf("expected output to contain %q, but got:\n%s", want, outW.String())
		}
	}
	if appConfig != nil {
		t.Errorf("expected a nil config when displaying help, but got a non-nil config")
	}
}

func TestCLI_RejectsMalformedDefine(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse([]string{"-D", "=value", "build.hcl"}, &bytes.Buffer{})

	if err == nil {
		t.Fatal("expected an error for a define without a name")
	}
	var exitErr *cli.ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != 2 {
		t.Fatalf("expected ExitError with code 2, got %v", err)
	}
}
