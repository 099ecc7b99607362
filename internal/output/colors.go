package output

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorScheme defines the colors used for different elements in the summary
type ColorScheme struct {
	Header  *color.Color
	Passed  *color.Color
	Failed  *color.Color
	Skipped *color.Color
	Errored *color.Color
	Total   *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Header:  color.New(color.Bold),
		Passed:  color.New(color.FgGreen, color.Bold),
		Failed:  color.New(color.FgRed, color.Bold),
		Skipped: color.New(color.FgYellow),
		Errored: color.New(color.FgRed),
		Total:   color.New(color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	// Disable all colors
	scheme.Header.DisableColor()
	scheme.Passed.DisableColor()
	scheme.Failed.DisableColor()
	scheme.Skipped.DisableColor()
	scheme.Errored.DisableColor()
	scheme.Total.DisableColor()

	return scheme
}

// ColorEnabled reports whether colored output should be used: only when
// not explicitly disabled and stdout is a terminal.
func ColorEnabled(noColor bool) bool {
	if noColor {
		return false
	}
	return isTerminal(os.Stdout)
}

// isTerminal checks if the file is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
