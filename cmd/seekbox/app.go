package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"seekbox/internal/catalog"
	"seekbox/internal/config"
	"seekbox/internal/debug"
	"seekbox/internal/ui"
	"seekbox/internal/ui/theme"
)

var appLog = debug.Scope("app")

const (
	// pickerRow is the line the picker's box starts on; see View.
	pickerRow = 3

	statusDuration = 3 * time.Second
)

type appKeyMap struct {
	Quit  key.Binding
	Focus key.Binding
	Copy  key.Binding
	Theme key.Binding
	Clear key.Binding
	Purge key.Binding
}

func defaultAppKeyMap() appKeyMap {
	return appKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^y", "copy"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("^t", "theme"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("^u", "clear"),
		),
		Purge: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^r", "drop cache"),
		),
	}
}

type statusClearMsg struct{ seq int }

// pickerApp mounts one picker over the configured catalog with a preview of
// the highlighted or committed item.
type pickerApp struct {
	picker  picker
	preview ui.InfoPreview
	help    help.Model
	keys    appKeyMap

	width  int
	height int

	status    string
	statusErr bool
	statusSeq int
	statusTTL time.Duration

	lastTrigger ui.ChangeTrigger
	commits     int

	closeStore func() error
	purgeCache func()
	copyFn     func(string) error
	saveTheme  func(string) error
}

func newPickerApp(runtime runtimeOptions) (*pickerApp, error) {
	served, raw, closeStore, err := buildStore(runtime)
	if err != nil {
		return nil, err
	}
	cb, err := buildPicker(context.Background(), runtime, served, raw)
	if err != nil {
		_ = closeStore()
		return nil, err
	}
	cb.SetOrigin(0, pickerRow)
	cb.Focus()

	appLog.Logf("picker ready: source=%s recover=%s latency=%s", runtime.sourceKind, runtime.recover, runtime.latency)
	return &pickerApp{
		picker:     cb,
		preview:    ui.NewInfoPreview(runtime.previewFormat, runtime.width),
		help:       help.New(),
		keys:       defaultAppKeyMap(),
		statusTTL:  statusDuration,
		closeStore: closeStore,
		purgeCache: served.Purge,
		copyFn:     clipboard.WriteAll,
		saveTheme:  config.SaveTheme,
	}, nil
}

func (a *pickerApp) Init() tea.Cmd {
	return a.picker.Init()
}

func (a *pickerApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.preview.SetWidth(min(msg.Width-a.picker.Width-2, 80))
		return a, nil

	case ui.ComboBoxChangeMsg[string]:
		if msg.ID != a.picker.ID() {
			return a, nil
		}
		a.lastTrigger = msg.Trigger
		a.commits++
		appLog.Logf("commit %q via %s", msg.Value, msg.Trigger)
		return a, a.setStatus(fmt.Sprintf("Picked %s (%s)", msg.Value, msg.Trigger), false)

	case statusClearMsg:
		if msg.seq == a.statusSeq {
			a.status, a.statusErr = "", false
		}
		return a, nil

	case tea.KeyMsg:
		if model, cmd, handled := a.handleKey(msg); handled {
			return model, cmd
		}
	}

	var cmd tea.Cmd
	a.picker, cmd = a.picker.Update(msg)
	return a, cmd
}

// handleKey processes app-level shortcuts. Keys it does not claim go to the
// picker.
func (a *pickerApp) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return a, tea.Quit, true

	case key.Matches(msg, a.keys.Quit) && !a.picker.IsOpen():
		return a, tea.Quit, true

	case key.Matches(msg, a.keys.Focus):
		if a.picker.Focused() {
			return a, a.picker.Blur(), true
		}
		return a, a.picker.Focus(), true

	case key.Matches(msg, a.keys.Copy):
		return a, a.copyCurrent(), true

	case key.Matches(msg, a.keys.Theme):
		name := theme.CycleTheme()
		if err := a.saveTheme(name); err != nil {
			appLog.Logf("save theme %s: %v", name, err)
			return a, a.setStatus(fmt.Sprintf("Theme %s (not saved: %v)", name, err), true), true
		}
		return a, a.setStatus("Theme "+name, false), true

	case key.Matches(msg, a.keys.Purge):
		a.purgeCache()
		appLog.Log("lookup cache purged")
		return a, a.setStatus("Lookup cache cleared", false), true

	case key.Matches(msg, a.keys.Clear) && !a.picker.IsOpen():
		a.picker.Clear()
		return a, a.setStatus("Cleared", false), true
	}
	return a, nil, false
}

// copyCurrent copies the highlighted candidate while searching, otherwise the
// committed value.
func (a *pickerApp) copyCurrent() tea.Cmd {
	id, _, ok := a.picker.Highlighted()
	if !ok {
		id, ok = a.picker.Value()
	}
	if !ok {
		return a.setStatus("Nothing to copy", true)
	}
	if err := a.copyFn(id); err != nil {
		appLog.Logf("copy %q: %v", id, err)
		return a.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return a.setStatus(fmt.Sprintf("Copied '%s' to clipboard.", id), false)
}

func (a *pickerApp) setStatus(text string, isErr bool) tea.Cmd {
	a.statusSeq++
	a.status, a.statusErr = text, isErr
	seq := a.statusSeq
	return tea.Tick(a.statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// previewItem is the item shown in the preview pane.
func (a *pickerApp) previewItem() (catalog.Item, bool) {
	if a.picker.IsOpen() {
		if _, item, ok := a.picker.Highlighted(); ok {
			return item, true
		}
		return catalog.Item{}, false
	}
	return a.picker.Info()
}

func previewMarkdown(item catalog.Item) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n`%s`\n", item.Name, item.ID)
	if desc := strings.TrimSpace(item.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}
	return b.String()
}

func (a *pickerApp) View() string {
	t := theme.Current()
	title := lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("seekbox")
	label := lipgloss.NewStyle().Foreground(t.TextMuted).Render("Value")

	// Rows above the box must add up to pickerRow.
	body := lipgloss.JoinVertical(lipgloss.Left, label, a.picker.BoxView())
	if item, ok := a.previewItem(); ok {
		if rendered := strings.TrimRight(a.preview.Render(previewMarkdown(item)), "\n"); rendered != "" {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", rendered)
		}
	}
	sections := []string{title, "", body}

	if a.status != "" {
		style := lipgloss.NewStyle().Foreground(t.Accent)
		if a.statusErr {
			style = lipgloss.NewStyle().Foreground(t.Error)
		}
		sections = append(sections, "", style.Render(a.status))
	}

	bindings := append(a.picker.KeyMap.ShortHelp(), a.keys.Focus, a.keys.Copy, a.keys.Theme, a.keys.Quit)
	sections = append(sections, "", a.help.ShortHelpView(bindings))
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	// The menu floats over whatever sits below the box.
	menu := a.picker.MenuView()
	if menu == "" {
		return base
	}
	menu = lipgloss.NewStyle().Width(a.picker.Width).Render(menu)
	return ui.Overlay(base, menu, 0, pickerRow+a.picker.MenuOffset())
}

// Result returns the committed value, or "" when nothing is committed.
func (a *pickerApp) Result() string {
	v, ok := a.picker.Value()
	if !ok {
		return ""
	}
	return v
}

// Close releases the stores.
func (a *pickerApp) Close() {
	if a.closeStore == nil {
		return
	}
	if err := a.closeStore(); err != nil {
		appLog.Logf("close store: %v", err)
	}
}
