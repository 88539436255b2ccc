package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for recommendation output.
var (
	recipeNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#06B6D4")) // Cyan

	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray
)
