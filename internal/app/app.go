// Package app wires spec loading, enumeration, rendering and file output
// into the operations exposed by the command line.
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/wesleyorama2/sweepgen/internal/ctxlog"
	"github.com/wesleyorama2/sweepgen/internal/output"
	"github.com/wesleyorama2/sweepgen/internal/spec"
)

// App encapsulates the application's dependencies and configuration.
type App struct {
	out     io.Writer
	logger  *slog.Logger
	config  *Config
	scheme  *output.ColorScheme
	noColor bool
}

// NewApp creates an App that prints results to out and logs to logW.
func NewApp(out, logW io.Writer, cfg *Config) *App {
	useColors := output.UseColors(out, cfg.NoColor)
	return &App{
		out:     out,
		logger:  ctxlog.New(cfg.LogLevel, cfg.LogFormat, logW),
		config:  cfg,
		scheme:  output.SchemeFor(useColors),
		noColor: !useColors,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) loadSpec(ctx context.Context) (*spec.Spec, error) {
	return spec.LoadSpec(ctx, a.config.SpecPath, spec.ParseOptions{Root: a.config.Root})
}
