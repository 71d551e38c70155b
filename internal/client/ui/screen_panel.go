package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

const poweredBy = "Powered by Amazon SNAP - Graph Database"

// updatePanel handles keys while the chat panel is open
func (m Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.handlePanelEvent(widget.EventMinimize)

	case "ctrl+w":
		return m.handlePanelEvent(widget.EventClose)

	case "enter":
		return m.send()

	case "up":
		m.viewport.LineUp(1)
		return m, nil
	case "down":
		m.viewport.LineDown(1)
		return m, nil
	case "pgup":
		m.viewport.HalfViewUp()
		return m, nil
	case "pgdown":
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Everything else is typing
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// viewPanel renders the floating chat panel in the bottom right corner
func (m Model) viewPanel() string {
	w, _ := panelSize(m.width, m.height)
	inner := w - 2

	header := m.renderHeader(inner)
	inputBox := inputBoxStyle.Width(inner - 2).Render(m.input.View())
	footer := footerStyle.Width(inner).Render(poweredBy)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.viewport.View(),
		inputBox,
		footer,
	)

	panel := panelBorder(m.panel.Closing(), m.panel.Animation() == widget.AnimEnter).Render(body)
	if m.panel.Animation() == widget.AnimMinimize {
		// shrink towards the icon while minimizing
		panel = panelBorder(true, false).Render(header)
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Right, lipgloss.Bottom, panel)
}

// renderHeader renders the title bar with the minimize and close hints
func (m Model) renderHeader(width int) string {
	title := botAvatar + " " + widget.AssistantName

	status := ""
	if n := m.connMgr.InFlight(); n > 0 {
		status = mutedStyle.Render(fmt.Sprintf(" (%d waiting)", n))
	}

	actions := mutedStyle.Render("– esc  × ctrl+w")
	gap := width - lipgloss.Width(title) - lipgloss.Width(status) - lipgloss.Width(actions) - 2
	if gap < 1 {
		gap = 1
	}

	return headerStyle.Width(width).Render(title + status + lipgloss.NewStyle().Width(gap).Render("") + actions)
}
