package main

import "github.com/charmbracelet/lipgloss"

// Output styles, shared by all subcommands.
var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}
	colorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f38ba8"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#6c7086"}

	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
)

// statusGlyph maps an outcome-ish label to a colored marker.
func statusGlyph(ok bool) string {
	if ok {
		return successStyle.Render("✓")
	}
	return errorStyle.Render("✗")
}
