package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// searchResultMsg carries a Source response back to the ComboBox that
// asked for it, tagged with the search text it was issued for.
type searchResultMsg[V comparable, I any] struct {
	id     int
	key    string
	result SearchResult[V, I]
	err    error
}

// infoMsg carries an InfoLoader response for a committed value.
type infoMsg[V comparable, I any] struct {
	id    int
	value V
	info  I
	err   error
}

func lookupContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.WithCancel(context.Background())
}

// fetch dispatches a lookup for text. Lookups are never cancelled; stale
// responses are filtered out in applyResult instead.
func (c ComboBox[V, I]) fetch(text string) tea.Cmd {
	if c.source == nil {
		return nil
	}
	id, source, timeout := c.id, c.source, c.lookupTimeout
	return func() tea.Msg {
		ctx, cancel := lookupContext(timeout)
		defer cancel()
		result, err := source(ctx, text)
		return searchResultMsg[V, I]{id: id, key: text, result: result, err: err}
	}
}

// applyResult accepts a response only if it was issued for the search text
// that is current now. An older keystroke's response never replaces the
// result of a newer one, whatever order they complete in.
func (c *ComboBox[V, I]) applyResult(msg searchResultMsg[V, I]) {
	if msg.id != c.id {
		return
	}
	if !c.mounted {
		comboLog.Logf("id=%d dropped result for %q: unmounted", c.id, msg.key)
		return
	}
	if msg.err != nil {
		comboLog.Logf("id=%d lookup %q failed: %v", c.id, msg.key, msg.err)
		return
	}
	if !c.open || msg.key != c.searchText {
		comboLog.Logf("id=%d dropped stale result for %q (current %q, open=%t)", c.id, msg.key, c.searchText, c.open)
		return
	}
	result := msg.result
	c.result = &result
	c.highlightIndex = -1
	c.scrollOffset = 0
}

// loadInfo dispatches an info lookup for value, or returns nil when no
// loader is configured.
func (c ComboBox[V, I]) loadInfo(value V) tea.Cmd {
	if c.infoLoader == nil {
		return nil
	}
	id, loader, timeout := c.id, c.infoLoader, c.lookupTimeout
	return func() tea.Msg {
		ctx, cancel := lookupContext(timeout)
		defer cancel()
		info, err := loader(ctx, value)
		return infoMsg[V, I]{id: id, value: value, info: info, err: err}
	}
}

// applyInfo stores loaded info only while its value is still the committed one.
func (c *ComboBox[V, I]) applyInfo(msg infoMsg[V, I]) {
	if msg.id != c.id || !c.mounted {
		return
	}
	if msg.err != nil {
		comboLog.Logf("id=%d info load failed: %v", c.id, msg.err)
		return
	}
	if !c.hasValue || c.value != msg.value {
		comboLog.Logf("id=%d dropped info for superseded value", c.id)
		return
	}
	c.info, c.hasInfo = msg.info, true
}
