package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicateBindings(t *testing.T) {
	a := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "first"))
	b := key.NewBinding(key.WithKeys("b"))
	dup := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "second"))

	got := RemoveDuplicateBindings([]key.Binding{a, b, dup})

	assert.Equal(t, []key.Binding{a, b}, got)
}
