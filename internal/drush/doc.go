// Package drush turns a resolved Drush invocation into a single shell command
// line, runs it and reports the outcome.
//
// The package is split along the life of one invocation:
//
//   - Option and Param render individual tokens (value.go).
//   - Build assembles the ordered command line from a Command (build.go).
//   - ShellExecutor runs the line through a shell and captures stdout line by
//     line (exec.go).
//   - Report maps the captured output and exit code onto log records, an
//     optional output property and a soft or hard failure (report.go).
//
// Run ties the four steps together for a Task. Nothing in this package reads
// global state: property defaults are resolved by the caller and injected
// through Defaults and Task.ApplyDefaults.
package drush
