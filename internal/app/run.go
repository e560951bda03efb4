package app

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/drushgo/internal/buildfile"
	"github.com/specialistvlad/drushgo/internal/ctxlog"
	"github.com/specialistvlad/drushgo/internal/drush"
	"github.com/specialistvlad/drushgo/internal/property"
)

// Summary counts what a run did.
type Summary struct {
	Tasks  int
	Failed int
}

// Run executes the build: properties first, then every block of the build
// files in order. A hard task failure stops the run and is returned; soft
// failures are logged and counted.
func (a *App) Run(ctx context.Context) (*Summary, error) {
	ctx = a.context(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if err := a.seedProperties(ctx); err != nil {
		return nil, err
	}

	file, err := buildfile.Load(ctx, a.config.BuildPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load build files: %w", err)
	}
	logger.Debug("Build files loaded.", "files", file.Paths, "blocks", len(file.Blocks))

	summary := &Summary{}
	evalCtx := buildfile.NewEvalContext(a.props)
	for _, block := range file.Blocks {
		switch block.Kind {
		case buildfile.KindProperty:
			if err := a.applyProperty(ctx, block, evalCtx); err != nil {
				return summary, err
			}
		case buildfile.KindTask:
			summary.Tasks++
			failed, err := a.runTask(ctx, block, evalCtx)
			if err != nil {
				summary.Failed++
				return summary, fmt.Errorf("task %q failed: %w", block.Name, err)
			}
			if failed {
				summary.Failed++
				logger.Warn("Task failed, continuing.", "task", block.Name)
			}
		}
	}

	logger.Info("🏁 Build finished.", "tasks", summary.Tasks, "failed", summary.Failed)
	return summary, nil
}

// seedProperties loads the property file and -D definitions. Definitions
// are applied last so they win.
func (a *App) seedProperties(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	if path := a.config.PropertyFile; path != "" {
		values, err := property.LoadYAML(path)
		if err != nil {
			return fmt.Errorf("failed to load properties: %w", err)
		}
		seeded := property.FromMap(values)
		for _, name := range seeded.Names() {
			a.props.Set(name, property.Lookup(seeded, name))
		}
		logger.Debug("Property file loaded.", "path", path, "count", len(values))
	}

	if err := a.config.Defines.Apply(a.props); err != nil {
		return err
	}
	return nil
}

func (a *App) applyProperty(ctx context.Context, block *buildfile.Block, evalCtx *hcl.EvalContext) error {
	p, err := block.Property(evalCtx)
	if err != nil {
		return err
	}
	if p.Override {
		a.props.Set(p.Name, p.Value)
		return nil
	}
	if !a.props.SetIfAbsent(p.Name, p.Value) {
		ctxlog.FromContext(ctx).Debug("Property already defined, keeping existing value.", "property", p.Name)
	}
	return nil
}

func (a *App) runTask(ctx context.Context, block *buildfile.Block, evalCtx *hcl.EvalContext) (bool, error) {
	task, err := block.Task(evalCtx)
	if err != nil {
		return false, err
	}
	task.ApplyDefaults(property.DefaultsFrom(a.props))
	if a.config.Pretend {
		task.Pretend = true
	}
	return drush.Run(ctx, *task, a.executor, a.props)
}
