package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Title   *color.Color
	Label   *color.Color
	Value   *color.Color
	Path    *color.Color
	Count   *color.Color
	Block   *color.Color
	Success *color.Color
	Warning *color.Color
	Error   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:   color.New(color.FgMagenta, color.Bold),
		Label:   color.New(color.FgYellow),
		Value:   color.New(color.FgWhite),
		Path:    color.New(color.FgCyan),
		Count:   color.New(color.FgBlue, color.Bold),
		Block:   color.New(color.FgHiBlack),
		Success: color.New(color.FgGreen),
		Warning: color.New(color.FgYellow, color.Bold),
		Error:   color.New(color.FgRed),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	for _, c := range []*color.Color{
		scheme.Title, scheme.Label, scheme.Value, scheme.Path, scheme.Count,
		scheme.Block, scheme.Success, scheme.Warning, scheme.Error,
	} {
		c.DisableColor()
	}

	return scheme
}

// SchemeFor picks the default scheme when colors are wanted and the
// colorless one otherwise.
func SchemeFor(useColors bool) *ColorScheme {
	if useColors {
		return DefaultColorScheme()
	}
	return NoColorScheme()
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// WarningIcon returns a warning symbol with appropriate color
func WarningIcon(noColor bool) string {
	if noColor {
		return "⚠"
	}
	return color.New(color.FgYellow).Sprint("⚠")
}
