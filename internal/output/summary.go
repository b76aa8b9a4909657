package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/wesleyorama2/sweepgen/internal/stats"
)

// Summary describes a finished generation run.
type Summary struct {
	Instance     string
	SpecPath     string
	OutputDir    string
	Combinations uint64
	Written      int
	DryRun       bool
	Stats        stats.Snapshot
}

// PrintSummary writes a short report of a generation run.
func PrintSummary(w io.Writer, s Summary, scheme *ColorScheme, noColor bool) {
	dir := s.OutputDir
	if dir == "" {
		dir = "."
	}

	title := "Generated"
	if s.DryRun {
		title = "Planned (dry run)"
	}

	fmt.Fprintf(w, "%s %s %s files for %s\n",
		SuccessIcon(noColor),
		scheme.Title.Sprint(title),
		scheme.Count.Sprint(s.Written),
		scheme.Value.Sprint(s.Instance))
	fmt.Fprintf(w, "  %s %s\n", scheme.Label.Sprint("Spec:      "), scheme.Path.Sprint(s.SpecPath))
	fmt.Fprintf(w, "  %s %s\n", scheme.Label.Sprint("Output:    "), scheme.Path.Sprint(dir))
	fmt.Fprintf(w, "  %s %d\n", scheme.Label.Sprint("Grid size: "), s.Combinations)

	if uint64(s.Written) < s.Combinations {
		fmt.Fprintf(w, "%s %s\n", WarningIcon(noColor),
			scheme.Warning.Sprintf("stopped after %d of %d combinations", s.Written, s.Combinations))
	}

	if s.Stats.Files > 0 {
		fmt.Fprintf(w, "  %s %s total, %s largest\n",
			scheme.Label.Sprint("Size:      "),
			FormatBytes(s.Stats.TotalBytes),
			FormatBytes(s.Stats.MaxBytes))
		fmt.Fprintf(w, "  %s p50 %s, p95 %s, p99 %s, max %s\n",
			scheme.Label.Sprint("Per file:  "),
			FormatDuration(s.Stats.LatencyP50),
			FormatDuration(s.Stats.LatencyP95),
			FormatDuration(s.Stats.LatencyP99),
			FormatDuration(s.Stats.LatencyMax))
	}
}

// PrintBlock writes one parameter block under an index header.
func PrintBlock(w io.Writer, index int, name, block string, scheme *ColorScheme) {
	fmt.Fprintf(w, "%s %s\n", scheme.Count.Sprintf("[%d]", index), scheme.Path.Sprint(name))
	for _, line := range strings.SplitAfter(block, "\n") {
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			fmt.Fprint(w, "  ", scheme.Block.Sprint(line))
			continue
		}
		fmt.Fprint(w, "  ", line)
	}
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

// FormatDuration renders d rounded to a readable precision.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
	default:
		return d.Round(time.Millisecond).String()
	}
}
