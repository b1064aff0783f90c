package ui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type testComboBox = ComboBox[string, string]

// fakeSource answers lookups from a fixed table and records every call.
type fakeSource struct {
	results map[string]SearchResult[string, string]
	calls   []string
	err     error
}

func newFakeSource() *fakeSource {
	return &fakeSource{results: map[string]SearchResult[string, string]{
		"": {
			Values: []string{"apple", "apricot", "banana"},
			Infos:  []string{"Apple", "Apricot", "Banana"},
		},
		"a": {
			Values: []string{"apple", "apricot", "banana"},
			Infos:  []string{"Apple", "Apricot", "Banana"},
		},
		"ab": {Values: []string{"abc", "abd"}},
		"abc": {
			Values: []string{"abc"},
			Infos:  []string{"ABC"},
		},
		"abd": {Values: []string{"abc", "abd"}},
	}}
}

func (f *fakeSource) Search(_ context.Context, text string) (SearchResult[string, string], error) {
	f.calls = append(f.calls, text)
	if f.err != nil {
		return SearchResult[string, string]{}, f.err
	}
	return f.results[text], nil
}

// fakeInfoLoader resolves info as "info:<value>" and records calls.
type fakeInfoLoader struct {
	calls []string
	err   error
}

func (f *fakeInfoLoader) Load(_ context.Context, value string) (string, error) {
	f.calls = append(f.calls, value)
	if f.err != nil {
		return "", f.err
	}
	return "info:" + value, nil
}

var errLookup = errors.New("lookup failed")

// newTestComboBox builds a ComboBox with a static cursor so focusing the
// input does not schedule blink timers.
func newTestComboBox(src *fakeSource) testComboBox {
	return NewComboBox[string, string](src.Search).WithCursorMode(cursor.CursorStatic)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// collect runs cmd, expanding batches, and returns the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collect(c)...)
		}
		return msgs
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds the ComboBox's own messages produced by cmd back into it until
// none are left, and returns the change notifications seen on the way.
func settle(t *testing.T, cb testComboBox, cmd tea.Cmd) (testComboBox, []ComboBoxChangeMsg[string]) {
	t.Helper()
	var changes []ComboBoxChangeMsg[string]
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		switch m := msg.(type) {
		case ComboBoxChangeMsg[string]:
			changes = append(changes, m)
		case searchResultMsg[string, string], infoMsg[string, string], focusMsg:
			var next tea.Cmd
			cb, next = cb.Update(m)
			queue = append(queue, collect(next)...)
		}
	}
	return cb, changes
}

// send delivers msg and settles the resulting commands.
func send(t *testing.T, cb testComboBox, msg tea.Msg) (testComboBox, []ComboBoxChangeMsg[string]) {
	t.Helper()
	cb, cmd := cb.Update(msg)
	return settle(t, cb, cmd)
}

// openAndType focuses cb, opens it from the display and types text one rune
// at a time, settling after each key.
func openAndType(t *testing.T, cb testComboBox, text string) testComboBox {
	t.Helper()
	cb.Focus()
	cb, _ = send(t, cb, keyType(tea.KeyDown))
	if !cb.IsOpen() {
		t.Fatal("expected ComboBox to open on Down")
	}
	for _, r := range text {
		cb, _ = send(t, cb, keyRunes(string(r)))
	}
	if cb.SearchText() != text {
		t.Fatalf("expected search text %q, got %q", text, cb.SearchText())
	}
	return cb
}

// resultMsgs extracts searchResultMsg values from a command.
func resultMsgs(cmd tea.Cmd) []searchResultMsg[string, string] {
	var out []searchResultMsg[string, string]
	for _, msg := range collect(cmd) {
		if m, ok := msg.(searchResultMsg[string, string]); ok {
			out = append(out, m)
		}
	}
	return out
}
