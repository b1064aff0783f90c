package ui

import tea "github.com/charmbracelet/bubbletea"

// focusTarget names the element inside the ComboBox that holds focus.
// The closed display and the search input never exist at the same time.
type focusTarget int

const (
	focusNone focusTarget = iota
	focusDisplay
	focusInput
)

// focusMsg is a deferred focus request. It is returned as a command so it is
// handled only after the program has rendered the state of the update that
// scheduled it; by then the target element exists.
type focusMsg struct {
	id     int
	seq    int
	target focusTarget
}

// focusLater drops focus from the element being replaced and schedules focus
// for target. A newer request or an explicit Blur invalidates older ones.
func (c *ComboBox[V, I]) focusLater(target focusTarget) tea.Cmd {
	c.focusSeq++
	c.focus = focusNone
	c.pendingFocus = target
	msg := focusMsg{id: c.id, seq: c.focusSeq, target: target}
	return func() tea.Msg {
		return msg
	}
}

func (c ComboBox[V, I]) applyFocus(msg focusMsg) (ComboBox[V, I], tea.Cmd) {
	if msg.id != c.id || msg.seq != c.focusSeq || !c.mounted {
		return c, nil
	}
	c.pendingFocus = focusNone

	switch msg.target {
	case focusInput:
		if !c.open {
			return c, nil
		}
		c.focus = focusInput
		return c, c.textInput.Focus()
	case focusDisplay:
		if c.open {
			return c, nil
		}
		c.focus = focusDisplay
	}
	return c, nil
}

// claimPendingFocus applies a scheduled focus right away. The queued focusMsg
// is then stale and ignored.
func (c *ComboBox[V, I]) claimPendingFocus() tea.Cmd {
	if c.focus != focusNone || c.pendingFocus == focusNone {
		return nil
	}
	target := c.pendingFocus
	c.focusSeq++
	c.pendingFocus = focusNone
	switch {
	case target == focusInput && c.open:
		c.focus = focusInput
		return c.textInput.Focus()
	case target == focusDisplay && !c.open:
		c.focus = focusDisplay
	}
	return nil
}

// Focus gives the ComboBox keyboard focus. The element that exists right now
// (display when closed, input when open) is focused immediately.
func (c *ComboBox[V, I]) Focus() tea.Cmd {
	if !c.mounted {
		return nil
	}
	c.focusSeq++
	c.pendingFocus = focusNone
	if c.open {
		c.focus = focusInput
		return c.textInput.Focus()
	}
	c.focus = focusDisplay
	return nil
}

// Blur removes focus. An open ComboBox commits the typed text first (exact
// label match, otherwise recovery) and closes; the returned command carries
// the resulting ComboBoxChangeMsg, if any.
func (c *ComboBox[V, I]) Blur() tea.Cmd {
	cmd := c.onBlur()
	c.focusSeq++
	c.focus = focusNone
	c.pendingFocus = focusNone
	c.textInput.Blur()
	return cmd
}

// Focused reports whether the ComboBox holds focus or is about to.
func (c ComboBox[V, I]) Focused() bool {
	return c.focus != focusNone || c.pendingFocus != focusNone
}
