package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/wesleyorama2/sweepgen/internal/ctxlog"
	"github.com/wesleyorama2/sweepgen/internal/output"
	"github.com/wesleyorama2/sweepgen/internal/spec"
	"github.com/wesleyorama2/sweepgen/internal/sweep"
)

// Validate loads the spec and prints a one-line verdict with the grid size.
func (a *App) Validate(ctx context.Context) (*spec.Spec, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	sp, err := a.loadSpec(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "%s %s\n", output.ErrorIcon(a.noColor), a.scheme.Error.Sprint(a.config.SpecPath))
		return nil, err
	}

	variables, constants := sp.Split()
	fmt.Fprintf(a.out, "%s %s: %d test, %d constant parameters, %s combinations\n",
		output.SuccessIcon(a.noColor),
		a.scheme.Path.Sprint(a.config.SpecPath),
		len(variables),
		len(constants),
		a.scheme.Count.Sprint(sp.Combinations()))
	return sp, nil
}

// Plan prints the parameter layout of the spec and, when Limit is set, the
// first Limit parameter blocks with the file names they would be written to.
// Nothing is written to disk.
func (a *App) Plan(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	cfg := a.config

	sp, err := a.loadSpec(ctx)
	if err != nil {
		return err
	}

	variables, constants := sp.Split()
	fmt.Fprintf(a.out, "%s\n", a.scheme.Title.Sprint("Sweep plan"))
	fmt.Fprintf(a.out, "  %s %d\n", a.scheme.Label.Sprint("Iterations:  "), sp.Iterations)
	fmt.Fprintf(a.out, "  %s %d\n", a.scheme.Label.Sprint("Buckets:     "), sp.BucketCount)
	fmt.Fprintf(a.out, "  %s %d\n", a.scheme.Label.Sprint("Time limit:  "), sp.TimeLimit)
	fmt.Fprintf(a.out, "  %s %s\n", a.scheme.Label.Sprint("Test:        "), joinOrNone(variables))
	fmt.Fprintf(a.out, "  %s %s\n", a.scheme.Label.Sprint("Constant:    "), joinParams(constants))
	fmt.Fprintf(a.out, "  %s %s\n", a.scheme.Label.Sprint("Combinations:"), a.scheme.Count.Sprint(sp.Combinations()))

	if cfg.Limit == 0 {
		return nil
	}

	instance := cfg.Instance
	if instance == "" {
		instance = "config"
	}
	writer := output.NewWriter(output.WriterConfig{
		Dir:       cfg.OutputDir,
		Instance:  instance,
		Extension: cfg.Extension,
		DryRun:    true,
	})

	fmt.Fprintln(a.out)
	seq := sweep.NewSequence(variables, constants)
	for index, block := range seq.All() {
		if index >= cfg.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		output.PrintBlock(a.out, index, writer.Path(index), block, a.scheme)
	}
	return nil
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

func joinParams(params []sweep.Param) string {
	if len(params) == 0 {
		return "(none)"
	}
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s=%t", p.Name, p.Value)
	}
	return strings.Join(parts, ", ")
}
