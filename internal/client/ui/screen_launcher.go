package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

// updateLauncher handles keys while the panel is hidden. The launcher icon
// stands in for the page's floating chat button.
func (m Model) updateLauncher(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		if m.panel.Visible() {
			// still animating out
			return m, nil
		}
		return m, tea.Quit

	case "enter", " ", "c":
		return m.handlePanelEvent(widget.EventIconClick)
	}
	return m, nil
}

// viewLauncher renders the page with only the chat icon showing
func (m Model) viewLauncher() string {
	title := titleStyle.Render("🍰 CHEESECAKE SHOP")
	subtitle := subtitleStyle.Render("Products from the Amazon SNAP co-purchase graph")

	var icon string
	if m.panel.IconVisible() {
		icon = iconStyle.Render(botAvatar + " Chat")
	}

	mainContent := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		subtitle,
	)

	instructions := instructionStyle.Render(
		"Press " + highlightStyle.Render("ENTER") + " to chat  •  " +
			mutedStyle.Render("Q to quit"))

	// Layout: page in the middle, chat icon in the bottom right corner
	centeredMain := lipgloss.Place(m.width, m.height-8, lipgloss.Center, lipgloss.Center, mainContent)
	corner := lipgloss.Place(m.width, 5, lipgloss.Right, lipgloss.Bottom, icon)
	bottomInstructions := lipgloss.Place(m.width, 3, lipgloss.Center, lipgloss.Bottom, instructions)

	return centeredMain + "\n" + corner + "\n" + bottomInstructions
}
