package drush

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/drushgo/internal/ctxlog"
)

// DefaultReturnGlue joins captured lines when publishing them.
const DefaultReturnGlue = "\n"

// PropertySetter is the slice of the host property store the reporter
// writes to.
type PropertySetter interface {
	Set(name, value string)
}

// ReportOptions decide what happens with a Result.
type ReportOptions struct {
	HaltOnError    bool
	ReturnProperty string
	// ReturnGlue joins the output lines. Empty means DefaultReturnGlue.
	ReturnGlue string
}

// BuildError is the fatal failure raised when HaltOnError is set and the
// command did not succeed.
type BuildError struct {
	ExitCode int
	// Err is the launch error, if the command never ran.
	Err error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("drush exited with code %d: %v", e.ExitCode, e.Err)
	}
	return fmt.Sprintf("drush exited with code %d", e.ExitCode)
}

// Unwrap returns the launch error.
func (e *BuildError) Unwrap() error { return e.Err }

// Report logs every captured line, publishes the joined output when a
// return property is configured and applies the failure policy. It returns
// a *BuildError for hard failures and otherwise whether the command failed.
func Report(ctx context.Context, res Result, opts ReportOptions, props PropertySetter) (bool, error) {
	logger := ctxlog.FromContext(ctx)

	for _, line := range res.Lines {
		logger.Info(line)
	}

	if opts.ReturnProperty != "" && props != nil {
		glue := opts.ReturnGlue
		if glue == "" {
			glue = DefaultReturnGlue
		}
		props.Set(opts.ReturnProperty, strings.Join(res.Lines, glue))
		logger.Debug("Published command output.", "property", opts.ReturnProperty)
	}

	if res.Err != nil {
		logger.Warn("Command did not run cleanly.", "exit_code", res.ExitCode, "error", res.Err)
	}

	failed := res.Failed()
	if failed && opts.HaltOnError {
		return true, &BuildError{ExitCode: res.ExitCode, Err: res.Err}
	}
	return failed, nil
}
