package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/drushgo/internal/app"
	"github.com/specialistvlad/drushgo/internal/property"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("drushgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
drushgo - Run Drush commands declared in HCL build files.

Usage:
  drushgo [options] [BUILD_PATH...]

Arguments:
  BUILD_PATH
    Path to a build file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var defines property.Defines
	fileFlag := flagSet.String("file", "", "Path to the build file or directory.")
	fFlag := flagSet.String("f", "", "Path to the build file or directory (shorthand).")
	propertyFileFlag := flagSet.String("property-file", "", "YAML file with project properties (e.g. drush.root).")
	flagSet.Var(&defines, "D", "Define a property as name=value. May be repeated.")
	pretendFlag := flagSet.Bool("pretend", false, "Only log the assembled command lines, never execute them.")
	shellFlag := flagSet.String("shell", "/bin/sh", "Shell used to run the command lines.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	if *fileFlag != "" {
		paths = append(paths, *fileFlag)
	} else if *fFlag != "" {
		paths = append(paths, *fFlag)
	}
	paths = append(paths, flagSet.Args()...)
	slog.Debug("Build paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No build path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		BuildPaths:   paths,
		PropertyFile: *propertyFileFlag,
		Defines:      defines,
		Pretend:      *pretendFlag,
		Shell:        *shellFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
