package main

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#8BC34A") // Lime Green
	muted  = lipgloss.Color("#6A737D")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	timingStyle = lipgloss.NewStyle().Foreground(muted)
)

// highlightStyle styles highlighted grid symbols in color.
func highlightStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}
