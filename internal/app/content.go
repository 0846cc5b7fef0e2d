package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/tui"
)

// contentLines is the number of lines of filler in each tab's content, enough
// to be scrolled on most terminals.
const contentLines = 100

// content is the body of a demo tab: a scrollable viewport describing the tab.
type content struct {
	viewport viewport.Model
	body     string
}

func newContent(title string) *content {
	lines := make([]string, contentLines)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s: line %d", title, i+1)
	}
	lines[0] = tui.Bold.Render("This is tab " + title)
	return &content{
		viewport: viewport.New(0, 0),
		body:     strings.Join(lines, "\n"),
	}
}

func (m *content) Init() tea.Cmd {
	return nil
}

func (m *content) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height
		// Setting the content after the size has changed keeps the view
		// offset within range.
		m.viewport.SetContent(m.body)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *content) View() string {
	return m.viewport.View()
}
