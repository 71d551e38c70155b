package widget

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPanel_StartsHidden(t *testing.T) {
	p := NewPanel()
	require.Equal(t, PanelHidden, p.State())
	require.True(t, p.IconVisible())
	require.Equal(t, AnimNone, p.Animation())
}

func TestPanel_OpenThenSettle(t *testing.T) {
	p := NewPanel()

	tr, ok := p.Handle(EventIconClick)
	require.True(t, ok)
	require.Equal(t, AnimEnter, tr.Animation)
	require.Equal(t, SettleDelay, tr.Delay)
	require.Equal(t, PanelVisible, p.State())
	require.False(t, p.IconVisible())

	require.True(t, p.Settle(tr.Generation))
	require.Equal(t, AnimNone, p.Animation())
	require.Equal(t, PanelVisible, p.State())
}

func TestPanel_CloseHidesOnlyAfterSettle(t *testing.T) {
	for _, ev := range []PanelEvent{EventClose, EventMinimize} {
		p := NewPanel()
		open, _ := p.Open()
		p.Settle(open.Generation)

		tr, ok := p.Handle(ev)
		require.True(t, ok)
		require.True(t, p.Closing())
		require.Equal(t, PanelVisible, p.State(), "still on screen while animating")
		require.False(t, p.IconVisible())

		require.True(t, p.Settle(tr.Generation))
		require.Equal(t, PanelHidden, p.State())
		require.True(t, p.IconVisible())
		require.Equal(t, AnimNone, p.Animation())
	}
}

func TestPanel_MinimizeAnimation(t *testing.T) {
	p := NewPanel()
	p.Open()
	tr, ok := p.Minimize()
	require.True(t, ok)
	require.Equal(t, AnimMinimize, tr.Animation)
	require.Equal(t, "chat-minimize", tr.Animation.String())
}

func TestPanel_NoOpEvents(t *testing.T) {
	p := NewPanel()
	_, ok := p.Close()
	require.False(t, ok, "closing a hidden panel")
	_, ok = p.Minimize()
	require.False(t, ok, "minimizing a hidden panel")

	p.Open()
	_, ok = p.Open()
	require.False(t, ok, "opening a visible panel")

	p.Close()
	_, ok = p.Close()
	require.False(t, ok, "closing twice")
}

func TestPanel_StaleSettleIgnored(t *testing.T) {
	p := NewPanel()
	open, _ := p.Open()
	closing, _ := p.Close()

	// the enter timer fires after close already started
	require.False(t, p.Settle(open.Generation))
	require.True(t, p.Closing())

	require.True(t, p.Settle(closing.Generation))
	require.Equal(t, PanelHidden, p.State())
	require.False(t, p.Settle(closing.Generation), "settling twice")
}

func TestPanel_ReopenWhileClosing(t *testing.T) {
	p := NewPanel()
	p.Open()
	closing, _ := p.Close()

	reopen, ok := p.Handle(EventIconClick)
	require.True(t, ok)
	require.Equal(t, AnimEnter, reopen.Animation)

	require.False(t, p.Settle(closing.Generation))
	require.Equal(t, PanelVisible, p.State())
	require.True(t, p.Settle(reopen.Generation))
	require.Equal(t, PanelVisible, p.State())
}

func TestPanel_Toggle(t *testing.T) {
	p := NewPanel()
	tr, ok := p.Handle(EventToggle)
	require.True(t, ok)
	require.Equal(t, AnimEnter, tr.Animation)
	p.Settle(tr.Generation)

	tr, ok = p.Handle(EventToggle)
	require.True(t, ok)
	require.Equal(t, AnimExit, tr.Animation)
	p.Settle(tr.Generation)
	require.Equal(t, PanelHidden, p.State())
}
