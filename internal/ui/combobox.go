package ui

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"seekbox/internal/debug"
)

var comboLog = debug.Scope("combobox")

// SearchResult is one page of candidates returned by a Source.
// Infos, when present, is parallel to Values.
type SearchResult[V comparable, I any] struct {
	Values []V
	Infos  []I
	Total  int // Total matches known to the source; 0 means unknown
}

// Len returns the number of candidates.
func (r SearchResult[V, I]) Len() int {
	return len(r.Values)
}

// InfoAt returns the info for candidate i. A short Infos slice is treated
// as "not available yet" rather than an error.
func (r SearchResult[V, I]) InfoAt(i int) (I, bool) {
	var zero I
	if i < 0 || i >= len(r.Values) || i >= len(r.Infos) {
		return zero, false
	}
	return r.Infos[i], true
}

// IndexOf returns the index of v in Values, or -1.
func (r SearchResult[V, I]) IndexOf(v V) int {
	for i, candidate := range r.Values {
		if candidate == v {
			return i
		}
	}
	return -1
}

// Recovery is a value produced from raw search text when nothing was picked.
type Recovery[V comparable, I any] struct {
	Value   V
	Info    I
	HasInfo bool
}

// Source looks up candidates for the given search text.
type Source[V comparable, I any] func(ctx context.Context, text string) (SearchResult[V, I], error)

// InfoLoader resolves display info for a committed value.
type InfoLoader[V comparable, I any] func(ctx context.Context, value V) (I, error)

// RecoverFunc turns unmatched search text into a value. Returning false
// means no value could be recovered and nothing is committed.
type RecoverFunc[V comparable, I any] func(text string) (Recovery[V, I], bool)

// LabelFunc renders a value (and its info, when known) as plain text.
type LabelFunc[V comparable, I any] func(value V, info I, hasInfo bool) string

// ChangeTrigger identifies what caused a commit.
type ChangeTrigger int

const (
	TriggerEnter ChangeTrigger = iota
	TriggerBlur
	TriggerClick
)

func (t ChangeTrigger) String() string {
	switch t {
	case TriggerEnter:
		return "enter"
	case TriggerBlur:
		return "blur"
	case TriggerClick:
		return "click"
	}
	return "unknown"
}

// ComboBoxChangeMsg is sent on every commit, including repeated commits of
// the same value. In controlled mode the owner decides whether to adopt it
// through SetValue.
type ComboBoxChangeMsg[V comparable] struct {
	ID      int
	Value   V
	Trigger ChangeTrigger
}

var lastComboBoxID int64

func nextComboBoxID() int {
	return int(atomic.AddInt64(&lastComboBoxID, 1))
}

// ComboBox is a searchable value picker. While closed it shows the committed
// value; typing or activating it opens an editable search field backed by an
// asynchronous Source, and a commit (Enter, blur, click) resolves the final
// value from the highlighted candidate or the recovery rule.
type ComboBox[V comparable, I any] struct {
	// Configuration (set at creation)
	Placeholder string // Shown while no value is committed
	Width       int    // Display width
	MaxVisible  int    // Max rows in the menu (default 5)
	KeyMap      ComboBoxKeyMap

	id              int
	source          Source[V, I]
	infoLoader      InfoLoader[V, I]
	recover         RecoverFunc[V, I]
	recoverVerbatim bool
	label           LabelFunc[V, I]
	renderValue     LabelFunc[V, I]
	renderItem      LabelFunc[V, I]
	lookupTimeout   time.Duration
	controlled      bool

	// Current state
	open           bool
	searchText     string
	value          V
	hasValue       bool
	info           I
	hasInfo        bool
	result         *SearchResult[V, I]
	highlightIndex int
	scrollOffset   int
	textInput      textinput.Model

	// remembered is the last commit outcome, reused when the same value
	// comes back through SetValue so its info is not loaded again.
	remembered *Recovery[V, I]

	focus        focusTarget
	pendingFocus focusTarget
	focusSeq     int
	mounted      bool
	originX      int
	originY      int
}

// NewComboBox creates an uncontrolled, empty ComboBox that searches source.
func NewComboBox[V comparable, I any](source Source[V, I]) ComboBox[V, I] {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Prompt = "> "

	c := ComboBox[V, I]{
		Placeholder:    "Empty",
		Width:          40,
		MaxVisible:     5,
		KeyMap:         DefaultComboBoxKeyMap(),
		id:             nextComboBoxID(),
		source:         source,
		highlightIndex: -1,
		textInput:      ti,
		mounted:        true,
	}
	c.textInput.Width = c.Width - 6 // Border, padding and prompt
	return c
}

// WithPlaceholder sets the text shown while no value is committed.
func (c ComboBox[V, I]) WithPlaceholder(s string) ComboBox[V, I] {
	c.Placeholder = s
	return c
}

// WithWidth sets the display width.
func (c ComboBox[V, I]) WithWidth(w int) ComboBox[V, I] {
	c.Width = w
	c.textInput.Width = w - 6
	return c
}

// WithMaxVisible sets the maximum visible rows in the menu.
func (c ComboBox[V, I]) WithMaxVisible(n int) ComboBox[V, I] {
	if n > 0 {
		c.MaxVisible = n
	}
	return c
}

// WithValue pins the value. The ComboBox becomes controlled: commits are
// reported through ComboBoxChangeMsg but only SetValue changes the value.
func (c ComboBox[V, I]) WithValue(v V) ComboBox[V, I] {
	c.controlled = true
	c.value, c.hasValue = v, true
	return c
}

// WithDefaultValue seeds the value of an uncontrolled ComboBox.
func (c ComboBox[V, I]) WithDefaultValue(v V) ComboBox[V, I] {
	c.value, c.hasValue = v, true
	return c
}

// WithInfo sets the already-known info for the seeded value.
func (c ComboBox[V, I]) WithInfo(info I) ComboBox[V, I] {
	c.info, c.hasInfo = info, true
	return c
}

// WithInfoLoader sets the asynchronous info lookup used when a committed
// value arrives without info.
func (c ComboBox[V, I]) WithInfoLoader(loader InfoLoader[V, I]) ComboBox[V, I] {
	c.infoLoader = loader
	return c
}

// WithRecovery sets the rule applied to unmatched search text on commit.
func (c ComboBox[V, I]) WithRecovery(fn RecoverFunc[V, I]) ComboBox[V, I] {
	c.recover = fn
	return c
}

// WithRecoverVerbatim commits the raw search text as the value when nothing
// matches. It only has an effect when V is string.
func (c ComboBox[V, I]) WithRecoverVerbatim(enable bool) ComboBox[V, I] {
	c.recoverVerbatim = enable
	return c
}

// WithLabel sets the plain-text label of a candidate. Labels are what typed
// text is compared against on blur.
func (c ComboBox[V, I]) WithLabel(fn LabelFunc[V, I]) ComboBox[V, I] {
	c.label = fn
	return c
}

// WithRenderValue customizes the closed display.
func (c ComboBox[V, I]) WithRenderValue(fn LabelFunc[V, I]) ComboBox[V, I] {
	c.renderValue = fn
	return c
}

// WithRenderItem customizes menu rows.
func (c ComboBox[V, I]) WithRenderItem(fn LabelFunc[V, I]) ComboBox[V, I] {
	c.renderItem = fn
	return c
}

// WithLookupTimeout bounds each Source and InfoLoader call.
func (c ComboBox[V, I]) WithLookupTimeout(d time.Duration) ComboBox[V, I] {
	c.lookupTimeout = d
	return c
}

// WithCursorMode sets the search input's cursor mode.
func (c ComboBox[V, I]) WithCursorMode(mode cursor.Mode) ComboBox[V, I] {
	_ = c.textInput.Cursor.SetMode(mode)
	return c
}

// WithKeyMap replaces the key bindings.
func (c ComboBox[V, I]) WithKeyMap(km ComboBoxKeyMap) ComboBox[V, I] {
	c.KeyMap = km
	return c
}

// Init implements tea.Model. A seeded value without info triggers an info load.
func (c ComboBox[V, I]) Init() tea.Cmd {
	if c.hasValue && !c.hasInfo {
		return c.loadInfo(c.value)
	}
	return nil
}

// Update implements tea.Model.
func (c ComboBox[V, I]) Update(msg tea.Msg) (ComboBox[V, I], tea.Cmd) {
	switch msg := msg.(type) {
	case searchResultMsg[V, I]:
		c.applyResult(msg)
		return c, nil

	case infoMsg[V, I]:
		c.applyInfo(msg)
		return c, nil

	case focusMsg:
		return c.applyFocus(msg)

	case tea.KeyMsg:
		if !c.mounted {
			return c, nil
		}
		// A key can arrive before a scheduled focus lands
		focusCmd := c.claimPendingFocus()
		if c.focus == focusNone {
			return c, nil
		}
		var keyCmd tea.Cmd
		c, keyCmd = c.handleKeyMsg(msg)
		return c, tea.Batch(focusCmd, keyCmd)

	case tea.MouseMsg:
		if !c.mounted {
			return c, nil
		}
		return c.handleMouseMsg(msg)
	}

	// Cursor blink and similar messages belong to the text input
	if c.open {
		var cmd tea.Cmd
		c.textInput, cmd = c.textInput.Update(msg)
		return c, cmd
	}
	return c, nil
}

// Value returns the committed value.
func (c ComboBox[V, I]) Value() (V, bool) {
	return c.value, c.hasValue
}

// Info returns the info of the committed value, if known.
func (c ComboBox[V, I]) Info() (I, bool) {
	return c.info, c.hasInfo
}

// SetValue is the owner's way to update a controlled value. It also works on
// uncontrolled instances.
func (c *ComboBox[V, I]) SetValue(v V) tea.Cmd {
	var zero I
	return c.resetItem(v, zero, false)
}

// Clear removes the committed value.
func (c *ComboBox[V, I]) Clear() {
	var (
		zeroV V
		zeroI I
	)
	c.value, c.hasValue = zeroV, false
	c.info, c.hasInfo = zeroI, false
}

// Controlled reports whether the owner pins the value.
func (c ComboBox[V, I]) Controlled() bool {
	return c.controlled
}

// ID identifies this instance in the messages it emits.
func (c ComboBox[V, I]) ID() int {
	return c.id
}

// IsOpen reports whether the search field is shown.
func (c ComboBox[V, I]) IsOpen() bool {
	return c.open
}

// SearchText returns the current search text.
func (c ComboBox[V, I]) SearchText() string {
	return c.searchText
}

// Result returns the last accepted search result while open.
func (c ComboBox[V, I]) Result() (SearchResult[V, I], bool) {
	if c.result == nil {
		return SearchResult[V, I]{}, false
	}
	return *c.result, true
}

// HighlightIndex returns the highlighted candidate, or -1.
func (c ComboBox[V, I]) HighlightIndex() int {
	return c.highlightIndex
}

// Highlighted returns the highlighted candidate and its info, if any.
func (c ComboBox[V, I]) Highlighted() (V, I, bool) {
	var (
		zeroV V
		zeroI I
	)
	if c.result == nil || c.highlightIndex < 0 || c.highlightIndex >= c.result.Len() {
		return zeroV, zeroI, false
	}
	info, _ := c.result.InfoAt(c.highlightIndex)
	return c.result.Values[c.highlightIndex], info, true
}

// SetOrigin tells the ComboBox where its top-left corner is drawn so pointer
// events can be mapped to menu rows.
func (c *ComboBox[V, I]) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
}

// Unmount detaches the ComboBox. Results, info and focus messages that
// arrive afterwards are dropped.
func (c *ComboBox[V, I]) Unmount() {
	c.mounted = false
	c.focus = focusNone
	c.pendingFocus = focusNone
	c.textInput.Blur()
}

// labelOf renders a value with the label function, falling back to fmt.
func (c ComboBox[V, I]) labelOf(value V, info I, hasInfo bool) string {
	if c.label != nil {
		return c.label(value, info, hasInfo)
	}
	return fmt.Sprint(value)
}
