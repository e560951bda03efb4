package drush

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReport_LogsEveryLineInOrder(t *testing.T) {
	ctx, logs := testContext(t)

	failed, err := Report(ctx, Result{Lines: []string{"first", "second"}}, ReportOptions{}, nil)

	require.NoError(t, err)
	require.False(t, failed)
	out := logs.String()
	first := strings.Index(out, "msg=first")
	second := strings.Index(out, "msg=second")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	require.Contains(t, out, "level=INFO msg=first")
}

func TestReport_PublishesJoinedOutput(t *testing.T) {
	ctx, _ := testContext(t)
	props := mapProps{}
	res := Result{Lines: []string{"a", "b", "c"}}

	_, err := Report(ctx, res, ReportOptions{ReturnProperty: "out"}, props)
	require.NoError(t, err)
	require.Equal(t, "a\nb\nc", props["out"])

	_, err = Report(ctx, res, ReportOptions{ReturnProperty: "csv", ReturnGlue: ","}, props)
	require.NoError(t, err)
	require.Equal(t, "a,b,c", props["csv"])
}

func TestReport_PublishesEmptyOutput(t *testing.T) {
	ctx, _ := testContext(t)
	props := mapProps{}

	_, err := Report(ctx, Result{}, ReportOptions{ReturnProperty: "out"}, props)

	require.NoError(t, err)
	value, ok := props["out"]
	require.True(t, ok)
	require.Empty(t, value)
}

func TestReport_HaltOnErrorRaisesBuildError(t *testing.T) {
	ctx, _ := testContext(t)

	failed, err := Report(ctx, Result{ExitCode: 42}, ReportOptions{HaltOnError: true}, nil)

	require.True(t, failed)
	var buildErr *BuildError
	require.True(t, errors.As(err, &buildErr))
	require.Equal(t, 42, buildErr.ExitCode)
	require.Contains(t, err.Error(), "42")
	require.Equal(t, "drush exited with code 42", err.Error())
}

func TestReport_SoftFailure(t *testing.T) {
	ctx, _ := testContext(t)

	failed, err := Report(ctx, Result{ExitCode: 1}, ReportOptions{HaltOnError: false}, nil)

	require.NoError(t, err)
	require.True(t, failed)
}

func TestReport_SuccessWithHaltOnError(t *testing.T) {
	ctx, _ := testContext(t)

	failed, err := Report(ctx, Result{ExitCode: 0}, ReportOptions{HaltOnError: true}, nil)

	require.NoError(t, err)
	require.False(t, failed)
}

func TestReport_LaunchFailureIsFatal(t *testing.T) {
	ctx, _ := testContext(t)
	launchErr := errors.New("start: no such file or directory")

	_, err := Report(ctx, Result{ExitCode: LaunchFailureCode, Err: launchErr}, ReportOptions{HaltOnError: true}, nil)

	require.Error(t, err)
	require.ErrorIs(t, err, launchErr)
	require.Contains(t, err.Error(), "127")
}
