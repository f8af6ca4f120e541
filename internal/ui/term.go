package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Ongoing task: bold green, the thing happening right now
	colorOngoing = color.New(color.FgGreen, color.Bold)

	// Upcoming task: cyan
	colorNext = color.New(color.FgCyan)

	// Completed tasks: dim/grey
	colorDone = color.New(color.FgWhite, color.Faint)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Warnings and conflicts: yellow
	colorWarn = color.New(color.FgYellow)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// formatOngoing formats text for the currently ongoing task.
func formatOngoing(s string) string {
	return colorOngoing.Sprint(s)
}

// formatNext formats text for the next upcoming task.
func formatNext(s string) string {
	return colorNext.Sprint(s)
}

// formatDone formats text for completed tasks.
func formatDone(s string) string {
	return colorDone.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatWarn formats warning/conflict text.
func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
