package basic

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/tui"
)

var defaultButtonSize = geom.Size{Width: 3, Height: 1}

var buttonStyle = tui.Bold.Copy().Foreground(tui.ScrollButtonColor)

var arrows = map[geom.Direction]string{
	geom.North: "▴",
	geom.South: "▾",
	geom.East:  "▸",
	geom.West:  "◂",
}

// Button is an arrow button occupying a fixed area of the tab strip. A button
// with empty bounds is hidden.
type Button struct {
	direction geom.Direction
	bounds    geom.Rect
	// preferred overrides the default size when non-nil.
	preferred *geom.Size
}

// NewButton constructs an arrow button. It panics if direction is not one of
// the four cardinal directions.
func NewButton(direction geom.Direction) *Button {
	if err := direction.Validate(); err != nil {
		panic(err)
	}
	return &Button{direction: direction}
}

func (b *Button) Direction() geom.Direction { return b.direction }

func (b *Button) PreferredSize() geom.Size {
	if b.preferred != nil {
		return *b.preferred
	}
	return defaultButtonSize
}

// SetPreferredSize overrides the preferred size until ResetPreferredSize is
// called.
func (b *Button) SetPreferredSize(size geom.Size) {
	b.preferred = &size
}

func (b *Button) ResetPreferredSize() {
	b.preferred = nil
}

func (b *Button) Bounds() geom.Rect          { return b.bounds }
func (b *Button) SetBounds(r geom.Rect)      { b.bounds = r }
func (b *Button) Visible() bool              { return !b.bounds.Empty() }
func (b *Button) Contains(p geom.Point) bool { return b.Visible() && b.bounds.Contains(p) }

func (b *Button) View() string {
	if !b.Visible() {
		return ""
	}
	return buttonStyle.Render(
		lipgloss.PlaceHorizontal(b.bounds.Width, lipgloss.Center, arrows[b.direction]),
	)
}
