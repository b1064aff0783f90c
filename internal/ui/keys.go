package ui

import "github.com/charmbracelet/bubbles/key"

// ComboBoxKeyMap defines the keyboard shortcuts of the ComboBox.
// Open applies to the closed display; the rest apply while searching.
type ComboBoxKeyMap struct {
	Open   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultComboBoxKeyMap returns the default bindings.
func DefaultComboBoxKeyMap() ComboBoxKeyMap {
	return ComboBoxKeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter", " ", "up", "down"),
			key.WithHelp("⏎/space", "search"),
		),
		// Up/Down share help text (displayed as single row)
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓", "move"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k ComboBoxKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Up, k.Select, k.Close}
}

// FullHelp implements help.KeyMap.
func (k ComboBoxKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open},
		{k.Up, k.Down, k.Select, k.Close},
	}
}
