package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines keyboard shortcuts for the calculator
type KeyMap struct {
	Quit  key.Binding
	Clear key.Binding
	Help  key.Binding

	// Field navigation
	Tab      key.Binding
	ShiftTab key.Binding

	// Option fields (order type, leverage)
	PrevOption key.Binding
	NextOption key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "enter"),
			key.WithHelp("tab/enter", "next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		PrevOption: key.NewBinding(
			key.WithKeys("left", "up"),
			key.WithHelp("←", "prev option"),
		),
		NextOption: key.NewBinding(
			key.WithKeys("right", "down", " "),
			key.WithHelp("→/space", "next option"),
		),
	}
}

// ShortHelp returns key help text for the compact help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Clear, k.Help, k.Quit}
}

// FullHelp returns extended help text
func (k KeyMap) FullHelp() []key.Binding {
	return []key.Binding{k.Tab, k.ShiftTab, k.PrevOption, k.NextOption, k.Clear, k.Help, k.Quit}
}
