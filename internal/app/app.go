package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/drushgo/internal/ctxlog"
	"github.com/specialistvlad/drushgo/internal/drush"
	"github.com/specialistvlad/drushgo/internal/property"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	props    property.Store
	executor drush.Executor
}

// Option customises an App, mostly for tests.
type Option func(*App)

// WithExecutor replaces the shell executor.
func WithExecutor(e drush.Executor) Option {
	return func(a *App) { a.executor = e }
}

// WithProperties starts the run from an existing property store.
func WithProperties(s property.Store) Option {
	return func(a *App) { a.props = s }
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and property store.
func NewApp(outW io.Writer, cfg *Config, opts ...Option) *App {
	a := &App{
		outW:   outW,
		logger: newLogger(cfg.LogLevel, cfg.LogFormat, outW),
		config: cfg,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.props == nil {
		a.props = property.New()
	}
	if a.executor == nil {
		a.executor = drush.NewShellExecutor(cfg.Shell)
	}
	a.logger.Debug("Logger configured successfully.")
	return a
}

// Properties returns the application's property store.
func (a *App) Properties() property.Store {
	return a.props
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
