package layout

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the layout key bindings.
type KeyMap struct {
	Toggle        key.Binding
	ToggleCompact key.Binding
	Expand        key.Binding
	Collapse      key.Binding
	Responsive    key.Binding
	Placement     key.Binding
	Fixed         key.Binding
	Up            key.Binding
	Down          key.Binding
	Activate      key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle"),
		),
		ToggleCompact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle compact"),
		),
		Expand: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "collapse"),
		),
		Responsive: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "responsive"),
		),
		Placement: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "move side"),
		),
		Fixed: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fixed"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.ToggleCompact, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.ToggleCompact, k.Expand, k.Collapse},
		{k.Responsive, k.Placement, k.Fixed},
		{k.Up, k.Down, k.Activate},
		{k.Help, k.Quit},
	}
}
