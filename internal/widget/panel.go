package widget

import "time"

// SettleDelay is how long an enter/exit/minimize transition runs before
// visibility is swapped
const SettleDelay = 500 * time.Millisecond

// PanelState is the visibility of the chat panel
type PanelState int

const (
	PanelHidden PanelState = iota
	PanelVisible
)

func (s PanelState) String() string {
	if s == PanelVisible {
		return "visible"
	}
	return "hidden"
}

// Animation is the transition currently playing on the panel
type Animation int

const (
	AnimNone Animation = iota
	AnimEnter
	AnimExit
	AnimMinimize
)

func (a Animation) String() string {
	switch a {
	case AnimEnter:
		return "chat-enter"
	case AnimExit:
		return "chat-exit"
	case AnimMinimize:
		return "chat-minimize"
	}
	return ""
}

// PanelEvent names a user or timer action on the panel
type PanelEvent int

const (
	EventIconClick PanelEvent = iota
	EventClose
	EventMinimize
	EventToggle
)

// Transition describes what the frontend must do after an event:
// play Animation and deliver Settle(Generation) after Delay.
type Transition struct {
	Animation  Animation
	Generation uint64
	Delay      time.Duration
}

// Panel is the chat panel controller. The zero value is a hidden panel
// with the launcher icon showing.
type Panel struct {
	state      PanelState
	anim       Animation
	iconHidden bool
	generation uint64
}

// NewPanel creates a hidden panel
func NewPanel() *Panel {
	return &Panel{}
}

func (p *Panel) State() PanelState { return p.state }
func (p *Panel) Animation() Animation { return p.anim }
func (p *Panel) IconVisible() bool { return !p.iconHidden }

// Visible reports whether the panel is on screen, including while an
// exit transition is still playing
func (p *Panel) Visible() bool { return p.state == PanelVisible }

// Closing reports whether an exit or minimize transition is playing
func (p *Panel) Closing() bool {
	return p.anim == AnimExit || p.anim == AnimMinimize
}

// Handle applies a named event. ok is false when the event does not apply
// in the current state and nothing changed.
func (p *Panel) Handle(ev PanelEvent) (tr Transition, ok bool) {
	switch ev {
	case EventIconClick:
		return p.Open()
	case EventClose:
		return p.Close()
	case EventMinimize:
		return p.Minimize()
	case EventToggle:
		return p.Toggle()
	}
	return Transition{}, false
}

// Open shows the panel and hides the launcher icon
func (p *Panel) Open() (Transition, bool) {
	if p.state == PanelVisible && !p.Closing() {
		return Transition{}, false
	}
	p.state = PanelVisible
	p.iconHidden = true
	return p.begin(AnimEnter), true
}

// Close starts the exit transition; the panel hides on settle
func (p *Panel) Close() (Transition, bool) {
	return p.leave(AnimExit)
}

// Minimize starts the minimize transition; the panel hides on settle
func (p *Panel) Minimize() (Transition, bool) {
	return p.leave(AnimMinimize)
}

// Toggle opens a hidden panel and closes a visible one
func (p *Panel) Toggle() (Transition, bool) {
	if p.state == PanelHidden || p.Closing() {
		return p.Open()
	}
	return p.Close()
}

// Settle finishes the transition started with the given generation.
// Settles from superseded transitions are ignored.
func (p *Panel) Settle(generation uint64) bool {
	if generation != p.generation || p.anim == AnimNone {
		return false
	}
	if p.Closing() {
		p.state = PanelHidden
		p.iconHidden = false
	}
	p.anim = AnimNone
	return true
}

func (p *Panel) leave(anim Animation) (Transition, bool) {
	if p.state == PanelHidden || p.Closing() {
		return Transition{}, false
	}
	return p.begin(anim), true
}

func (p *Panel) begin(anim Animation) Transition {
	p.anim = anim
	p.generation++
	return Transition{Animation: anim, Generation: p.generation, Delay: SettleDelay}
}
