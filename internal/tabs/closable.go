package tabs

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/tabs/basic"
	"github.com/leg100/tabstrip/internal/tui"
)

const closeGlyph = " ×"

var closeStyle = tui.Bold.Copy().Foreground(tui.CloseControlColor)

// Titler looks up the title of the tab a component belongs to.
type Titler interface {
	TitleOf(c basic.Component) (string, bool)
}

// RemoveTabFunc removes the tab with the given ID.
type RemoveTabFunc func(id uuid.UUID) error

// ClosableTab is a tab component rendering the tab's title followed by a close
// control. In scroll mode a gap separates the two.
type ClosableTab struct {
	TabID uuid.UUID

	titler Titler
	remove RemoveTabFunc
	gap    int
	bounds geom.Rect
}

func NewClosableTab(id uuid.UUID, titler Titler, remove RemoveTabFunc) *ClosableTab {
	return &ClosableTab{TabID: id, titler: titler, remove: remove}
}

func (t *ClosableTab) title() string {
	title, _ := t.titler.TitleOf(t)
	return title
}

func (t *ClosableTab) closeWidth() int {
	return ansi.StringWidth(closeGlyph) + t.gap
}

func (t *ClosableTab) PreferredSize() geom.Size {
	return geom.Size{
		Width:  ansi.StringWidth(t.title()) + t.closeWidth(),
		Height: 1,
	}
}

func (t *ClosableTab) Bounds() geom.Rect     { return t.bounds }
func (t *ClosableTab) SetBounds(r geom.Rect) { t.bounds = r }

// LayoutModeChanged adds a gap before the close control in scroll mode.
func (t *ClosableTab) LayoutModeChanged(mode LayoutMode) {
	if mode == Scroll {
		t.gap = 1
	} else {
		t.gap = 0
	}
}

// Gap is the number of cells between the title and the close control.
func (t *ClosableTab) Gap() int { return t.gap }

// OverClose reports whether p, relative to the component's origin, lies on the
// close control.
func (t *ClosableTab) OverClose(p geom.Point) bool {
	width := t.bounds.Width
	if width <= 0 {
		width = t.PreferredSize().Width
	}
	return p.Y == 0 && p.X == width-1
}

// Close removes the tab.
func (t *ClosableTab) Close() error {
	return t.remove(t.TabID)
}

func (t *ClosableTab) View() string {
	width := t.bounds.Width
	if width <= 0 {
		width = t.PreferredSize().Width
	}
	label := max(0, width-t.closeWidth())
	return tui.Fit(ansi.Truncate(t.title(), label, "…"), label) +
		strings.Repeat(" ", t.gap) +
		closeStyle.Render(closeGlyph)
}
