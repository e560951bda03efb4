package testutil

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertCommandLogged checks that the run logged the exact command line,
// which is how pretend mode reports what it would have run.
func AssertCommandLogged(t *testing.T, result *HarnessResult, commandLine string) {
	t.Helper()

	// The text handler quotes messages, escaping any quotes inside them.
	expected := "msg=" + strconv.Quote("Executing command: "+commandLine)
	require.True(t,
		strings.Contains(result.LogOutput, expected),
		"expected command line %q was not found in logs:\n%s", commandLine, result.LogOutput,
	)
}
