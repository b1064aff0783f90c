package ui

// scrollIntoView moves the menu window so the highlighted row is visible.
func (c *ComboBox[V, I]) scrollIntoView() {
	if c.result == nil || c.highlightIndex < 0 {
		return
	}
	if c.highlightIndex < c.scrollOffset {
		c.scrollOffset = c.highlightIndex
	}
	if c.highlightIndex >= c.scrollOffset+c.MaxVisible {
		c.scrollOffset = c.highlightIndex - c.MaxVisible + 1
	}
	c.clampScroll()
}

func (c *ComboBox[V, I]) clampScroll() {
	maxOffset := 0
	if c.result != nil {
		maxOffset = c.result.Len() - c.MaxVisible
	}
	if maxOffset < 0 {
		maxOffset = 0
	}
	if c.scrollOffset > maxOffset {
		c.scrollOffset = maxOffset
	}
	if c.scrollOffset < 0 {
		c.scrollOffset = 0
	}
}

// visibleRange returns the [start, end) candidate indexes shown in the menu.
func (c ComboBox[V, I]) visibleRange() (int, int) {
	if c.result == nil {
		return 0, 0
	}
	end := c.scrollOffset + c.MaxVisible
	if end > c.result.Len() {
		end = c.result.Len()
	}
	return c.scrollOffset, end
}
