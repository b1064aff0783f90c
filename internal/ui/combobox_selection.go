package ui

import tea "github.com/charmbracelet/bubbletea"

// moveHighlight steps the highlight through the candidates, wrapping at both
// ends, and scrolls the highlighted row into view.
func (c *ComboBox[V, I]) moveHighlight(step int) {
	if c.result == nil || c.result.Len() == 0 {
		return
	}
	n := c.result.Len()
	next := c.highlightIndex + step
	if next < 0 {
		next = n - 1
	}
	if next >= n {
		next = 0
	}
	c.highlightIndex = next
	c.scrollIntoView()
}

// commitHighlighted commits the highlighted candidate or falls through to
// recovery when nothing valid is highlighted.
func (c *ComboBox[V, I]) commitHighlighted(trigger ChangeTrigger) tea.Cmd {
	if c.result != nil && c.highlightIndex >= 0 && c.highlightIndex < c.result.Len() {
		i := c.highlightIndex
		info, ok := c.result.InfoAt(i)
		return c.commit(c.result.Values[i], info, ok, trigger)
	}
	return c.tryRecover(trigger)
}

// tryRecover asks the recovery rule for a value built from the search text.
// No rule, or a rule that yields nothing, commits nothing.
func (c *ComboBox[V, I]) tryRecover(trigger ChangeTrigger) tea.Cmd {
	text := c.searchText

	var (
		outcome Recovery[V, I]
		ok      bool
	)
	switch {
	case c.recover != nil:
		outcome, ok = c.recover(text)
	case c.recoverVerbatim:
		if v, isV := any(text).(V); isV {
			outcome, ok = Recovery[V, I]{Value: v}, true
		}
	}

	if !ok {
		c.remembered = nil
		return nil
	}
	c.remembered = &outcome
	return c.commit(outcome.Value, outcome.Info, outcome.HasInfo, trigger)
}

// commit finalizes value. Uncontrolled instances adopt it; every commit is
// reported to the owner, duplicates included.
func (c *ComboBox[V, I]) commit(value V, info I, hasInfo bool, trigger ChangeTrigger) tea.Cmd {
	if hasInfo {
		c.remembered = &Recovery[V, I]{Value: value, Info: info, HasInfo: true}
	}

	var loadCmd tea.Cmd
	if !c.controlled {
		loadCmd = c.resetItem(value, info, hasInfo)
	}

	comboLog.Logf("id=%d commit via %s (controlled=%t)", c.id, trigger, c.controlled)
	id := c.id
	notify := func() tea.Msg {
		return ComboBoxChangeMsg[V]{ID: id, Value: value, Trigger: trigger}
	}
	return tea.Batch(loadCmd, notify)
}

// resetItem makes value the committed value and resolves its info from the
// cheapest place that has it: the caller, the current info when the value is
// unchanged, the remembered commit, the last result, and finally the loader.
func (c *ComboBox[V, I]) resetItem(value V, info I, hasInfo bool) tea.Cmd {
	sameValue := c.hasValue && c.value == value
	c.value, c.hasValue = value, true

	switch {
	case hasInfo:
		c.info, c.hasInfo = info, true
		return nil
	case sameValue && c.hasInfo:
		return nil
	}

	if r := c.remembered; r != nil && r.HasInfo && r.Value == value {
		c.info, c.hasInfo = r.Info, true
		return nil
	}
	if c.result != nil {
		if found, ok := c.result.InfoAt(c.result.IndexOf(value)); ok {
			c.info, c.hasInfo = found, true
			return nil
		}
	}

	var zero I
	c.info, c.hasInfo = zero, false
	return c.loadInfo(value)
}
