package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

var Global = global{
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
}
