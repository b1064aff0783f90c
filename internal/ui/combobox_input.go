package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (c ComboBox[V, I]) handleKeyMsg(msg tea.KeyMsg) (ComboBox[V, I], tea.Cmd) {
	if c.open {
		return c.handleOpenKey(msg)
	}
	return c.handleClosedKey(msg)
}

// handleClosedKey handles keys on the closed display.
func (c ComboBox[V, I]) handleClosedKey(msg tea.KeyMsg) (ComboBox[V, I], tea.Cmd) {
	switch {
	case key.Matches(msg, c.KeyMap.Open):
		cmd := c.onOpenRequest()
		return c, cmd

	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0:
		// Typing on the display starts a search with what was typed
		cmd := c.openWith(string(msg.Runes))
		return c, cmd
	}
	return c, nil
}

// handleOpenKey handles keys in the search input.
func (c ComboBox[V, I]) handleOpenKey(msg tea.KeyMsg) (ComboBox[V, I], tea.Cmd) {
	switch {
	case key.Matches(msg, c.KeyMap.Up):
		c.moveHighlight(-1)
		return c, nil

	case key.Matches(msg, c.KeyMap.Down):
		c.moveHighlight(1)
		return c, nil

	case key.Matches(msg, c.KeyMap.Select):
		cmd := c.onEnter()
		return c, cmd

	case key.Matches(msg, c.KeyMap.Close):
		cmd := c.onEscape()
		return c, cmd
	}

	before := c.textInput.Value()
	var inputCmd tea.Cmd
	c.textInput, inputCmd = c.textInput.Update(msg)
	if after := c.textInput.Value(); after != before {
		typeCmd := c.onType(after)
		return c, tea.Batch(inputCmd, typeCmd)
	}
	return c, inputCmd
}

// onType records new search text and looks it up. The previous result
// stays on screen until the new one is accepted.
func (c *ComboBox[V, I]) onType(text string) tea.Cmd {
	c.open = true
	c.searchText = text
	return c.fetch(text)
}

// onOpenRequest opens an empty search from the closed display.
func (c *ComboBox[V, I]) onOpenRequest() tea.Cmd {
	return c.openWith("")
}

func (c *ComboBox[V, I]) openWith(text string) tea.Cmd {
	c.open = true
	c.searchText = text
	c.textInput.SetValue(text)
	c.textInput.CursorEnd()
	c.result = nil
	c.highlightIndex = -1
	c.scrollOffset = 0
	return tea.Batch(c.fetch(text), c.focusLater(focusInput))
}

// onEnter commits the highlighted candidate, or recovers from the typed
// text, then closes and returns focus to the display.
func (c *ComboBox[V, I]) onEnter() tea.Cmd {
	commitCmd := c.commitHighlighted(TriggerEnter)
	c.close()
	return tea.Batch(commitCmd, c.focusLater(focusDisplay))
}

// onEscape closes without touching the committed value.
func (c *ComboBox[V, I]) onEscape() tea.Cmd {
	c.close()
	return c.focusLater(focusDisplay)
}

// onBlur commits the candidate whose label equals the typed text, or
// recovers, then closes. A closed ComboBox has nothing to commit.
func (c *ComboBox[V, I]) onBlur() tea.Cmd {
	if !c.open {
		return nil
	}
	var cmd tea.Cmd
	if i := c.matchLabel(c.searchText); i >= 0 {
		info, ok := c.result.InfoAt(i)
		cmd = c.commit(c.result.Values[i], info, ok, TriggerBlur)
	} else {
		cmd = c.tryRecover(TriggerBlur)
	}
	c.close()
	return cmd
}

// matchLabel returns the first candidate whose label is exactly text, or -1.
func (c ComboBox[V, I]) matchLabel(text string) int {
	if c.result == nil {
		return -1
	}
	for i, v := range c.result.Values {
		info, ok := c.result.InfoAt(i)
		if c.labelOf(v, info, ok) == text {
			return i
		}
	}
	return -1
}

func (c *ComboBox[V, I]) close() {
	c.open = false
	c.result = nil
	c.highlightIndex = -1
	c.scrollOffset = 0
	c.textInput.Blur()
}
