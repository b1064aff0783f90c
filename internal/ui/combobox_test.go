package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewComboBox(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource())
		if cb.Width != 40 {
			t.Errorf("expected default width 40, got %d", cb.Width)
		}
		if cb.MaxVisible != 5 {
			t.Errorf("expected default MaxVisible 5, got %d", cb.MaxVisible)
		}
		if cb.IsOpen() {
			t.Error("expected ComboBox to start closed")
		}
		if cb.HighlightIndex() != -1 {
			t.Errorf("expected highlight -1, got %d", cb.HighlightIndex())
		}
		if _, ok := cb.Value(); ok {
			t.Error("expected no committed value")
		}
		if cb.Controlled() {
			t.Error("expected uncontrolled by default")
		}
		if cb.Focused() {
			t.Error("expected focused to be false initially")
		}
	})

	t.Run("DistinctIDs", func(t *testing.T) {
		a := newTestComboBox(newFakeSource())
		b := newTestComboBox(newFakeSource())
		if a.ID() == b.ID() {
			t.Errorf("expected distinct ids, both were %d", a.ID())
		}
	})
}

func TestComboBoxBuilders(t *testing.T) {
	t.Run("WithPlaceholder", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithPlaceholder("Pick one")
		if cb.Placeholder != "Pick one" {
			t.Errorf("expected placeholder 'Pick one', got %s", cb.Placeholder)
		}
	})

	t.Run("WithWidth", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithWidth(60)
		if cb.Width != 60 {
			t.Errorf("expected width 60, got %d", cb.Width)
		}
	})

	t.Run("WithMaxVisibleIgnoresNonPositive", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithMaxVisible(0)
		if cb.MaxVisible != 5 {
			t.Errorf("expected MaxVisible to stay 5, got %d", cb.MaxVisible)
		}
	})

	t.Run("WithValueIsControlled", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithValue("abc")
		if !cb.Controlled() {
			t.Error("expected WithValue to make the ComboBox controlled")
		}
		if v, ok := cb.Value(); !ok || v != "abc" {
			t.Errorf("expected value abc, got %q (%t)", v, ok)
		}
	})

	t.Run("WithDefaultValueIsUncontrolled", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithDefaultValue("abc")
		if cb.Controlled() {
			t.Error("expected WithDefaultValue to stay uncontrolled")
		}
	})
}

func TestComboBoxInit(t *testing.T) {
	t.Run("SeededValueLoadsInfo", func(t *testing.T) {
		loader := &fakeInfoLoader{}
		cb := newTestComboBox(newFakeSource()).
			WithDefaultValue("abc").
			WithInfoLoader(loader.Load)

		cb, _ = settle(t, cb, cb.Init())

		if info, ok := cb.Info(); !ok || info != "info:abc" {
			t.Errorf("expected loaded info, got %q (%t)", info, ok)
		}
	})

	t.Run("KnownInfoSkipsLoad", func(t *testing.T) {
		loader := &fakeInfoLoader{}
		cb := newTestComboBox(newFakeSource()).
			WithDefaultValue("abc").
			WithInfo("ABC").
			WithInfoLoader(loader.Load)

		if cmd := cb.Init(); cmd != nil {
			t.Error("expected no command when info is already known")
		}
	})
}

func TestComboBoxOpenRequest(t *testing.T) {
	openKeys := map[string]tea.KeyMsg{
		"Enter": keyType(tea.KeyEnter),
		"Space": {Type: tea.KeySpace, Runes: []rune{' '}},
		"Up":    keyType(tea.KeyUp),
		"Down":  keyType(tea.KeyDown),
	}
	for name, msg := range openKeys {
		t.Run(name, func(t *testing.T) {
			src := newFakeSource()
			cb := newTestComboBox(src)
			cb.Focus()

			cb, cmd := cb.Update(msg)

			if !cb.IsOpen() {
				t.Fatal("expected ComboBox to open")
			}
			if cb.SearchText() != "" {
				t.Errorf("expected empty search text, got %q", cb.SearchText())
			}
			if _, ok := cb.Result(); ok {
				t.Error("expected result to be cleared on open")
			}
			// Focus moves to the input only after the open state is rendered
			if cb.textInput.Focused() {
				t.Error("expected input focus to be deferred")
			}

			cb, _ = settle(t, cb, cmd)

			if !cb.textInput.Focused() {
				t.Error("expected input to be focused after the deferred focus ran")
			}
			if len(src.calls) != 1 || src.calls[0] != "" {
				t.Errorf("expected one lookup for empty text, got %v", src.calls)
			}
			result, ok := cb.Result()
			if !ok || result.Len() != 3 {
				t.Errorf("expected 3 candidates, got %v (%t)", result.Values, ok)
			}
		})
	}
}

func TestComboBoxTypingOnDisplay(t *testing.T) {
	src := newFakeSource()
	cb := newTestComboBox(src)
	cb.Focus()

	cb, _ = send(t, cb, keyRunes("a"))

	if !cb.IsOpen() {
		t.Fatal("expected typing to open the ComboBox")
	}
	if cb.SearchText() != "a" || cb.textInput.Value() != "a" {
		t.Errorf("expected search text 'a', got %q / %q", cb.SearchText(), cb.textInput.Value())
	}
	if len(src.calls) != 1 || src.calls[0] != "a" {
		t.Errorf("expected a single lookup for 'a', got %v", src.calls)
	}
}

func TestComboBoxKeysIgnoredWithoutFocus(t *testing.T) {
	cb := newTestComboBox(newFakeSource())

	cb, cmd := cb.Update(keyType(tea.KeyDown))

	if cb.IsOpen() || cmd != nil {
		t.Error("expected unfocused ComboBox to ignore keys")
	}
}

func TestComboBoxEscape(t *testing.T) {
	cb := newTestComboBox(newFakeSource()).WithDefaultValue("apple").WithInfo("Apple")
	cb = openAndType(t, cb, "a")
	cb.moveHighlight(1)

	cb, cmd := cb.Update(keyType(tea.KeyEsc))

	if cb.IsOpen() {
		t.Fatal("expected Escape to close")
	}
	if _, ok := cb.Result(); ok {
		t.Error("expected result to be cleared on close")
	}
	if cb.focus != focusNone {
		t.Error("expected display focus to be deferred")
	}

	cb, changes := settle(t, cb, cmd)

	if len(changes) != 0 {
		t.Errorf("expected no commit on Escape, got %v", changes)
	}
	if v, _ := cb.Value(); v != "apple" {
		t.Errorf("expected value to stay apple, got %q", v)
	}
	if cb.focus != focusDisplay {
		t.Errorf("expected focus back on the display, got %v", cb.focus)
	}
}

func TestComboBoxFocus(t *testing.T) {
	t.Run("BlurInvalidatesPendingFocus", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource())
		cb = openAndType(t, cb, "a")

		cb, cmd := cb.Update(keyType(tea.KeyEsc))
		cb.Blur()
		cb, _ = settle(t, cb, cmd)

		if cb.Focused() {
			t.Error("expected stale focus request to be ignored after Blur")
		}
	})

	t.Run("KeyBeforeDeferredFocusIsKept", func(t *testing.T) {
		src := newFakeSource()
		cb := newTestComboBox(src)
		cb.Focus()

		cb, openCmd := cb.Update(keyType(tea.KeyEnter))
		cb, typeCmd := cb.Update(keyRunes("a"))

		if cb.SearchText() != "a" || cb.textInput.Value() != "a" {
			t.Fatalf("expected key typed before focus landed to reach the input, got %q / %q",
				cb.SearchText(), cb.textInput.Value())
		}
		if !cb.textInput.Focused() || cb.focus != focusInput {
			t.Error("expected the first key to focus the input")
		}

		cb, _ = settle(t, cb, openCmd)
		cb, _ = settle(t, cb, typeCmd)

		if !cb.textInput.Focused() {
			t.Error("expected input to stay focused after the stale focus request")
		}
		result, ok := cb.Result()
		if !ok || result.Len() != 3 {
			t.Errorf("expected the 'a' candidates, got %v (%t)", result.Values, ok)
		}
	})

	t.Run("FocusWhileOpenFocusesInput", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource())
		cb = openAndType(t, cb, "a")
		cb.textInput.Blur()

		cb.Focus()

		if !cb.textInput.Focused() || cb.focus != focusInput {
			t.Error("expected Focus on an open ComboBox to focus the input")
		}
	})

	t.Run("BlurWhenClosedCommitsNothing", func(t *testing.T) {
		cb := newTestComboBox(newFakeSource()).WithRecoverVerbatim(true)
		cb.Focus()

		if cmd := cb.Blur(); cmd != nil {
			t.Error("expected no command from blurring a closed ComboBox")
		}
	})
}

func TestComboBoxUnmount(t *testing.T) {
	loader := &fakeInfoLoader{}
	cb := newTestComboBox(newFakeSource()).WithInfoLoader(loader.Load)
	cb = openAndType(t, cb, "a")

	cb, cmd := cb.Update(keyRunes("b"))
	pending := resultMsgs(cmd)
	cb.Unmount()

	for _, msg := range pending {
		cb, _ = cb.Update(msg)
	}
	cb, _ = cb.Update(infoMsg[string, string]{id: cb.ID(), value: "x", info: "late"})

	if result, _ := cb.Result(); result.Len() == 2 {
		t.Error("expected result to be dropped after unmount")
	}
	if _, ok := cb.Info(); ok {
		t.Error("expected info to be dropped after unmount")
	}
	if cb.Focused() {
		t.Error("expected unmount to release focus")
	}
	if cb, cmd = cb.Update(keyType(tea.KeyEnter)); cmd != nil {
		t.Error("expected unmounted ComboBox to ignore keys")
	}
}

func TestComboBoxLookupTimeout(t *testing.T) {
	var hasDeadline bool
	source := func(ctx context.Context, _ string) (SearchResult[string, string], error) {
		_, hasDeadline = ctx.Deadline()
		return SearchResult[string, string]{}, nil
	}
	cb := NewComboBox[string, string](source).WithLookupTimeout(time.Minute)

	collect(cb.fetch("x"))

	if !hasDeadline {
		t.Error("expected lookup context to carry a deadline")
	}
}
