package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - warm cheesecake tones (lighter for dark backgrounds)
var (
	primaryColor   = lipgloss.Color("#E8C4A0") // Light warm beige
	secondaryColor = lipgloss.Color("#7EBB81") // Light forest green
	accentColor    = lipgloss.Color("#A8C9A4") // Soft sage green
	successColor   = lipgloss.Color("#B5D99C") // Bright sage
	mutedColor     = lipgloss.Color("#B8A890") // Light taupe
	fgColor        = lipgloss.Color("#F5F3ED") // Warm white
	highlightColor = lipgloss.Color("#F0DEB4") // Cream highlight
	starColor      = lipgloss.Color("#F2C14E") // Gold
	errorColor     = lipgloss.Color("#E07B7B")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true).
			Align(lipgloss.Center)

	iconStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Foreground(highlightColor).
			Bold(true).
			Padding(1, 3)

	highlightStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	instructionStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true).
				Margin(1, 0)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Background(lipgloss.Color("#3A4A3A")).
			Bold(true).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			Align(lipgloss.Center)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Background(lipgloss.Color("#5C4A37")).
			Padding(0, 1)

	assistantBubbleStyle = lipgloss.NewStyle().
				Foreground(fgColor).
				Background(lipgloss.Color("#3A4A3A")).
				Padding(0, 1)

	errorBubbleStyle = assistantBubbleStyle.
				Foreground(errorColor)

	productTitleStyle = lipgloss.NewStyle().
				Foreground(highlightColor).
				Bold(true)

	starStyle = lipgloss.NewStyle().
			Foreground(starColor)

	linkStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Underline(true)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)
)

// panelBorder picks the border color for the transition being played
func panelBorder(closing, entering bool) lipgloss.Style {
	switch {
	case entering:
		return panelStyle.BorderForeground(successColor)
	case closing:
		return panelStyle.BorderForeground(mutedColor).Faint(true)
	}
	return panelStyle
}
