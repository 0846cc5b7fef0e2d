package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	LineUp     key.Binding
	LineDown   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	GotoTop    key.Binding
	GotoBottom key.Binding
	Enter      key.Binding
}

// Navigation returns key bindings for moving within a list.
var Navigation = navigation{
	LineUp: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑/^p", "up"),
	),
	LineDown: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓/^n", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	GotoTop: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "go to start"),
	),
	GotoBottom: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "go to end"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
}
