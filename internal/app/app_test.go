package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabstrip/internal/tabs"
)

func TestApp_Tabs(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "This is tab Test 0") &&
			strings.Contains(s, "Test 1") &&
			strings.Contains(s, "◂")
	})
}

func TestApp_NextTab(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "This is tab Test 1")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyShiftTab})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "This is tab Test 19")
	})
}

func TestApp_Popup(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlO})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "filter")
	})

	tm.Type("17")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "This is tab Test 17")
	})
}

func TestApp_NewTab(t *testing.T) {
	t.Parallel()

	tm := setup(t, withTabs(2))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlT})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "opened tab Test 2") &&
			strings.Contains(s, "This is tab Test 2")
	})
}

func TestApp_CloseTab(t *testing.T) {
	t.Parallel()

	tm := setup(t, withTabs(3))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "closed tab") &&
			strings.Contains(s, "This is tab Test 1")
	})
}

func TestApp_ToggleLayout(t *testing.T) {
	t.Parallel()

	tm := setup(t, withLayout(tabs.Wrap))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}, Alt: true})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "changed layout mode")
	})
}

func TestApp_Reset(t *testing.T) {
	t.Parallel()

	tm := setup(t, withTabs(3))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlW})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "closed tab")
	})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}, Alt: true})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "reset tabs")
	})
}

func TestApp_Help(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Type("?")
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "NAVIGATION") && strings.Contains(s, "scroll/wrap")
	})

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})
	waitFor(t, tm, func(s string) bool {
		return strings.Contains(s, "This is tab Test 0")
	})
}

func TestApp_Quit(t *testing.T) {
	t.Parallel()

	tm := setup(t)

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})

	tm.WaitFinished(t, teatest.WithFinalTimeout(time.Second))
}
