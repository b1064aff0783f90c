package ui

import tea "github.com/charmbracelet/bubbletea"

// inputBoxHeight is the height of the bordered display/input box; menu rows
// start right below it.
const inputBoxHeight = 3

func (c ComboBox[V, I]) handleMouseMsg(msg tea.MouseMsg) (ComboBox[V, I], tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		// Hovering a row highlights it; moving off the menu clears it
		if c.open && c.result != nil {
			c.highlightIndex = c.rowAt(msg.X, msg.Y)
		}
		return c, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return c, nil
		}
		if idx := c.rowAt(msg.X, msg.Y); idx >= 0 {
			cmd := c.onItemClick(idx)
			return c, cmd
		}
		if !c.open && c.boxContains(msg.X, msg.Y) {
			cmd := c.onOpenRequest()
			return c, cmd
		}
	}
	return c, nil
}

// onItemClick closes the menu, commits the clicked candidate and schedules
// focus back to the display.
func (c *ComboBox[V, I]) onItemClick(idx int) tea.Cmd {
	value := c.result.Values[idx]
	info, ok := c.result.InfoAt(idx)
	commitCmd := c.commit(value, info, ok, TriggerClick)
	c.close()
	return tea.Batch(commitCmd, c.focusLater(focusDisplay))
}

func (c ComboBox[V, I]) boxContains(x, y int) bool {
	return x >= c.originX && x < c.originX+c.Width &&
		y >= c.originY && y < c.originY+inputBoxHeight
}

// rowAt maps a screen position to a candidate index, or -1 when the position
// is not on a visible menu row.
func (c ComboBox[V, I]) rowAt(x, y int) int {
	if !c.open || c.result == nil {
		return -1
	}
	if x < c.originX || x >= c.originX+c.Width {
		return -1
	}
	row := y - c.originY - inputBoxHeight
	if c.scrollOffset > 0 {
		row-- // "more above" indicator
	}
	start, end := c.visibleRange()
	idx := start + row
	if row < 0 || idx >= end {
		return -1
	}
	return idx
}
