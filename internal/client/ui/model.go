package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/cheesecake-chat/internal/client/connection"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

// inputLimit caps the length of a single message
const inputLimit = 500

// Model is the main Bubble Tea model
type Model struct {
	panel        *widget.Panel
	conversation *widget.Conversation
	connMgr      *connection.Manager   // Sends every turn to /chat
	eventChan    chan connection.Event // Channel for connection events
	chatPanel    *ChatPanel

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	width  int
	height int
}

// NewModel creates a new Bubble Tea model around a connection manager
func NewModel(connMgr *connection.Manager) Model {
	// Create event channel for connection events
	eventChan := make(chan connection.Event, 16)

	// When a request resolves, push the outcome to the channel
	connMgr.OnEvent(func(event connection.Event) {
		eventChan <- event
	})

	input := textinput.New()
	input.Placeholder = "Type your message..."
	input.CharLimit = inputLimit
	input.Prompt = "> "

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = spinnerStyle

	m := Model{
		panel:        widget.NewPanel(),
		conversation: widget.NewConversation(),
		connMgr:      connMgr,
		eventChan:    eventChan,
		chatPanel:    NewChatPanel(connMgr.Endpoint()),
		input:        input,
		viewport:     viewport.New(40, 10),
		spinner:      sp,
		width:        80,
		height:       24,
	}
	m.resize()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		greetCmd(),
		listenForEventsCmd(m.eventChan),
		m.spinner.Tick,
	)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.panel.Visible() && !m.panel.Closing() {
			return m.updatePanel(msg)
		}
		return m.updateLauncher(msg)

	case greetMsg:
		m.conversation.Greet()
		m.refresh()
		return m, nil

	case settleMsg:
		m.panel.Settle(msg.generation)
		return m, nil

	case connectionEventMsg:
		return m.handleConnectionEvent(msg.event)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.conversation.Pending() > 0 {
			m.refresh()
		}
		return m, cmd
	}

	return m, nil
}

// View renders the current view
func (m Model) View() string {
	if m.panel.Visible() {
		return m.viewPanel()
	}
	return m.viewLauncher()
}

// handleConnectionEvent resolves the turn an event belongs to
func (m Model) handleConnectionEvent(event connection.Event) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case connection.ReplyEvent:
		m.conversation.Complete(e.PlaceholderID, e.Response)
	case connection.FailedEvent:
		m.conversation.Fail(e.PlaceholderID, e.Err)
	}
	m.refresh()
	return m, listenForEventsCmd(m.eventChan)
}

// handlePanelEvent applies a panel event and schedules its settle timer
func (m Model) handlePanelEvent(ev widget.PanelEvent) (tea.Model, tea.Cmd) {
	tr, ok := m.panel.Handle(ev)
	if !ok {
		return m, nil
	}

	cmds := []tea.Cmd{settleCmd(tr)}
	if tr.Animation == widget.AnimEnter {
		cmds = append(cmds, m.input.Focus())
		m.refresh()
	} else {
		m.input.Blur()
	}
	return m, tea.Batch(cmds...)
}

// send starts a turn for whatever is in the input box
func (m Model) send() (tea.Model, tea.Cmd) {
	turn, ok := m.conversation.Begin(m.input.Value())
	if !ok {
		return m, nil
	}
	m.input.SetValue("")
	m.connMgr.Send(turn.PlaceholderID, turn.Query)
	m.refresh()
	return m, nil
}

// refresh re-renders the log and scrolls to the newest message
func (m *Model) refresh() {
	m.chatPanel.SetTyping(m.spinner.View())
	m.viewport.SetContent(m.chatPanel.Render(m.conversation.Messages()))
	m.viewport.GotoBottom()
}

// resize lays the panel out for the current terminal size
func (m *Model) resize() {
	w, h := panelSize(m.width, m.height)
	// header, input box and footer take 6 rows, borders 2
	m.viewport.Width = w - 2
	m.viewport.Height = max(h-8, 3)
	m.input.Width = w - 8
	m.chatPanel.SetWidth(m.viewport.Width)
}

// panelSize returns the floating panel's outer size
func panelSize(width, height int) (int, int) {
	w := min(width-4, 60)
	h := min(height-2, 30)
	return max(w, 24), max(h, 12)
}
