package drush

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/specialistvlad/drushgo/internal/ctxlog"
)

// DefaultShell runs the assembled command line.
const DefaultShell = "/bin/sh"

// LaunchFailureCode is reported when the shell could not be started at all,
// the same status a shell returns for a missing command.
const LaunchFailureCode = 127

// ExecOptions control how a command line is run.
type ExecOptions struct {
	// Dir is the working directory of the child process. Empty means the
	// current one.
	Dir string
	// Output and Error redirect the child's stdout and stderr to files.
	Output string
	Error  string
	// Spawn discards all output and backgrounds the command.
	Spawn bool
}

// Result is the outcome of one execution.
type Result struct {
	ExitCode int
	Lines    []string
	// Err is set only when the process could not be started or waited on.
	// A non-zero exit is not an error.
	Err error
}

// Failed reports whether the execution should count as a failure.
func (r Result) Failed() bool {
	return r.ExitCode != 0 || r.Err != nil
}

// Executor runs a fully assembled command line.
type Executor interface {
	Execute(ctx context.Context, line string, opts ExecOptions) Result
}

// ShellExecutor runs command lines through "<Shell> -c".
type ShellExecutor struct {
	Shell string
	// MaxLineBytes bounds a single captured line. Defaults to 8 MiB.
	MaxLineBytes int
}

// NewShellExecutor returns an executor using shell, or DefaultShell when
// shell is empty.
func NewShellExecutor(shell string) *ShellExecutor {
	if shell == "" {
		shell = DefaultShell
	}
	return &ShellExecutor{Shell: shell}
}

// ShellLine appends the redirections implied by opts to line. The line is
// wrapped in a brace group first so the redirections and the background
// operator cover every command in it, not just the last one. The newline
// before the closing brace also ends any trailing comment.
func ShellLine(line string, opts ExecOptions) string {
	var b strings.Builder
	b.WriteString("{ " + line + "\n}")
	if opts.Error != "" {
		b.WriteString(" 2> " + shellescape.Quote(opts.Error))
	}
	if opts.Output != "" {
		b.WriteString(" 1> " + shellescape.Quote(opts.Output))
	} else if opts.Spawn {
		b.WriteString(" 1>/dev/null")
	}
	// With no file for either stream, stderr joins the captured stdout.
	if opts.Output == "" && opts.Error == "" {
		b.WriteString(" 2>&1")
	}
	if opts.Spawn {
		b.WriteString(" &")
	}
	return b.String()
}

// Execute runs line and blocks until the shell exits. The working
// directory only applies to the child, so the caller's directory is the
// same afterwards on every path.
func (e *ShellExecutor) Execute(ctx context.Context, line string, opts ExecOptions) Result {
	logger := ctxlog.FromContext(ctx)

	shell := e.Shell
	if shell == "" {
		shell = DefaultShell
	}
	maxLine := e.MaxLineBytes
	if maxLine <= 0 {
		maxLine = 8 * 1024 * 1024
	}

	full := ShellLine(line, opts)
	cmd := exec.CommandContext(ctx, shell, "-c", full)
	cmd.Dir = opts.Dir
	cmd.Stderr = os.Stderr
	logger.Debug("Starting shell.", "shell", shell, "line", full, "dir", opts.Dir)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{ExitCode: LaunchFailureCode, Err: fmt.Errorf("stdout pipe: %w", err)}
	}
	if err := cmd.Start(); err != nil {
		logger.Debug("Shell failed to start.", "error", err)
		return Result{ExitCode: LaunchFailureCode, Err: fmt.Errorf("start: %w", err)}
	}

	var lines []string
	sc := bufio.NewScanner(stdout)
	sc.Buffer(make([]byte, min(64*1024, maxLine)), maxLine)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	scanErr := sc.Err()
	if scanErr != nil {
		// Keep the child from blocking on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	waitErr := cmd.Wait()
	res := Result{ExitCode: exitCode(waitErr), Lines: lines}
	if waitErr != nil && !isExitStatus(waitErr) {
		res.Err = fmt.Errorf("wait: %w", waitErr)
	} else if scanErr != nil {
		res.Err = fmt.Errorf("read output: %w", scanErr)
	}
	logger.Debug("Shell finished.", "exit_code", res.ExitCode, "lines", len(lines))
	return res
}

func isExitStatus(err error) bool {
	var ee *exec.ExitError
	return errors.As(err, &ee)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		if code := ee.ExitCode(); code >= 0 {
			return code
		}
	}
	return 1
}
