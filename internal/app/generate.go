package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wesleyorama2/sweepgen/internal/ctxlog"
	"github.com/wesleyorama2/sweepgen/internal/output"
	"github.com/wesleyorama2/sweepgen/internal/render"
	"github.com/wesleyorama2/sweepgen/internal/stats"
	"github.com/wesleyorama2/sweepgen/internal/sweep"
)

// Result describes a generation run.
type Result struct {
	Combinations uint64
	Written      int
	Stats        stats.Snapshot
}

// Generate writes one file per parameter combination.
//
// Files are produced strictly in index order. If ctx is cancelled the loop
// stops before the next file and the partial Result is returned with the
// context error.
func (a *App) Generate(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config

	if cfg.Instance == "" {
		return nil, errors.New("instance name is required")
	}

	sp, err := a.loadSpec(ctx)
	if err != nil {
		return nil, err
	}

	renderer := render.Default()
	if cfg.TemplatePath != "" {
		renderer, err = render.FromFile(cfg.TemplatePath)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Using custom template.", "path", cfg.TemplatePath)
	}

	writer := output.NewWriter(output.WriterConfig{
		Dir:       cfg.OutputDir,
		Instance:  cfg.Instance,
		Extension: cfg.Extension,
		DryRun:    cfg.DryRun,
	})
	if err := writer.Prepare(); err != nil {
		return nil, err
	}

	variables, constants := sp.Split()
	seq := sweep.NewSequence(variables, constants)
	result := &Result{Combinations: seq.Len()}
	recorder := stats.NewRecorder()

	a.logger.Info("Starting generation.",
		"instance", cfg.Instance,
		"variables", len(variables),
		"constants", len(constants),
		"combinations", seq.Len(),
		"dry_run", cfg.DryRun,
	)

	for index, block := range seq.All() {
		if err := ctx.Err(); err != nil {
			result.Stats = recorder.Snapshot()
			return result, fmt.Errorf("generation interrupted after %d files: %w", result.Written, err)
		}
		if cfg.Limit > 0 && index >= cfg.Limit {
			a.logger.Info("Generation limit reached.", "limit", cfg.Limit)
			break
		}

		start := time.Now()
		content, err := renderer.Render(render.Data{
			Index:       index,
			Instance:    cfg.Instance,
			Iterations:  sp.Iterations,
			BucketCount: sp.BucketCount,
			TimeLimit:   sp.TimeLimit,
			Body:        block,
		})
		if err != nil {
			result.Stats = recorder.Snapshot()
			return result, fmt.Errorf("file %d: %w", index, err)
		}

		path, n, err := writer.Write(index, content)
		if err != nil {
			result.Stats = recorder.Snapshot()
			return result, err
		}
		recorder.Record(time.Since(start), n)
		result.Written++
		a.logger.Debug("Wrote config.", "index", index, "path", path, "bytes", n)
	}

	result.Stats = recorder.Snapshot()
	a.logger.Info("Generation finished.", "written", result.Written, "bytes", result.Stats.TotalBytes)

	if !cfg.Quiet {
		output.PrintSummary(a.out, output.Summary{
			Instance:     cfg.Instance,
			SpecPath:     cfg.SpecPath,
			OutputDir:    cfg.OutputDir,
			Combinations: result.Combinations,
			Written:      result.Written,
			DryRun:       cfg.DryRun,
			Stats:        result.Stats,
		}, a.scheme, a.noColor)
	}

	return result, nil
}
