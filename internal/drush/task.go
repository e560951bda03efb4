package drush

import (
	"context"
	"strconv"

	"github.com/specialistvlad/drushgo/internal/ctxlog"
)

// Defaults are the project-wide values a task falls back to. They are
// resolved by the caller from its property store.
type Defaults struct {
	Alias     string
	Root      string
	URI       string
	Bin       string
	Config    string
	AliasPath string

	Color    Toggle
	Pipe     Toggle
	Simulate Toggle
	Verbose  Toggle
	Assume   Toggle
}

// Task is one fully resolved Drush invocation.
type Task struct {
	Name    string
	Command Command
	Exec    ExecOptions
	Report  ReportOptions
	// Pretend assembles and logs the command line but never runs it.
	Pretend bool
	// StatusProperty, when set, receives "true" or "false" depending on
	// whether the command failed.
	StatusProperty string
}

// ApplyDefaults fills every field the task left unset from d. Explicit
// task values always win.
func (t *Task) ApplyDefaults(d Defaults) {
	c := &t.Command
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fillToggle := func(dst *Toggle, v Toggle) {
		if *dst == Unset {
			*dst = v
		}
	}

	fill(&c.Alias, d.Alias)
	fill(&c.Bin, d.Bin)
	fill(&c.Settings.Root, d.Root)
	fill(&c.Settings.URI, d.URI)
	fill(&c.Settings.Config, d.Config)
	fill(&c.Settings.AliasPath, d.AliasPath)

	fillToggle(&c.Settings.Color, d.Color)
	fillToggle(&c.Settings.Pipe, d.Pipe)
	fillToggle(&c.Settings.Simulate, d.Simulate)
	fillToggle(&c.Settings.Verbose, d.Verbose)
	fillToggle(&c.Settings.Assume, d.Assume)
}

// Line renders the task's command line.
func (t *Task) Line() string {
	return Build(t.Command)
}

// Run builds the task's command line and, unless the task pretends,
// executes and reports it. The returned bool is the soft failure signal; a
// *BuildError is returned for hard failures.
func Run(ctx context.Context, t Task, ex Executor, props PropertySetter) (bool, error) {
	if t.Name != "" {
		ctx = ctxlog.With(ctx, "task", t.Name)
	}
	logger := ctxlog.FromContext(ctx)

	line := t.Line()
	logger.Info("Executing command: " + line)
	if t.Pretend {
		logger.Debug("Pretend mode, command not executed.")
		return false, nil
	}

	res := ex.Execute(ctx, line, t.Exec)
	failed, err := Report(ctx, res, t.Report, props)

	if t.StatusProperty != "" && props != nil {
		props.Set(t.StatusProperty, strconv.FormatBool(failed))
	}
	return failed, err
}
