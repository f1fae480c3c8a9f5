package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Shared lipgloss styles for the interactive surfaces.
var (
	// accent highlights the selected menu item (pink)
	accent color.Color = lipgloss.Color("212")

	// muted is used for hints and spinner text (gray)
	muted color.Color = lipgloss.Color("240")

	titleStyle = lipgloss.NewStyle().Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().Foreground(muted)
)
