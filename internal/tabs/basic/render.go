package basic

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/leg100/tabstrip/internal/tui"
)

var (
	activeTabStyle   = tui.Bold.Copy().Underline(true).Foreground(tui.ActiveTabColor)
	inactiveTabStyle = tui.Regular.Copy().Foreground(tui.InactiveTabColor)
)

// renderTab renders a tab header to the width of its bounds. A tab with a
// custom component renders the component within the component's bounds;
// otherwise the title is centred between the insets.
func renderTab(c Container, index int, selected bool) string {
	r, ok := c.TabBounds(index)
	if !ok || r.Width <= 0 {
		return ""
	}
	insets := c.TabInsets()
	inner := max(0, r.Width-insets.Left-insets.Right)

	style := inactiveTabStyle
	if selected {
		style = activeTabStyle
	}
	if fg := c.ForegroundAt(index); fg != nil {
		style = style.Copy().Foreground(fg)
	}
	if bg := c.BackgroundAt(index); bg != nil {
		style = style.Copy().Background(bg)
	}

	var content string
	if comp := c.TabComponentAt(index); comp != nil {
		width := comp.Bounds().Width
		if width <= 0 {
			width = comp.PreferredSize().Width
		}
		content = tui.Fit(comp.View(), min(width, inner))
	} else {
		title := ansi.Truncate(c.TitleAt(index), inner, "…")
		content = lipgloss.PlaceHorizontal(inner, lipgloss.Center, title)
	}
	return style.Render(
		strings.Repeat(" ", insets.Left) +
			tui.Fit(content, inner) +
			strings.Repeat(" ", insets.Right),
	)
}
