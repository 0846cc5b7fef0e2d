package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type tabs struct {
	Next             key.Binding
	Prev             key.Binding
	Close            key.Binding
	New              key.Binding
	Popup            key.Binding
	ToggleLayout     key.Binding
	ToggleComponents key.Binding
	Reset            key.Binding
}

// Tabs is the key map for a tabbed pane.
var Tabs = tabs{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next tab"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous tab"),
	),
	Close: key.NewBinding(
		key.WithKeys("ctrl+w"),
		key.WithHelp("^w", "close tab"),
	),
	New: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("^t", "new tab"),
	),
	Popup: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("^o", "list tabs"),
	),
	ToggleLayout: key.NewBinding(
		key.WithKeys("alt+s"),
		key.WithHelp("alt+s", "scroll/wrap"),
	),
	ToggleComponents: key.NewBinding(
		key.WithKeys("alt+t"),
		key.WithHelp("alt+t", "closable tabs"),
	),
	Reset: key.NewBinding(
		key.WithKeys("alt+r"),
		key.WithHelp("alt+r", "reset"),
	),
}
