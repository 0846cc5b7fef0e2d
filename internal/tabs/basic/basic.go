// Package basic provides the stock tab layout algorithms: a wrapping layout
// that flows tabs onto further runs, and a scrolling layout that keeps tabs in
// a single run behind a viewport with a pair of scroll buttons.
//
// The algorithms know nothing of closable tabs or of the tab list popup. They
// are intended to be decorated rather than modified.
package basic

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/geom"
)

// Container is a tabbed pane that a layout manager lays out.
type Container interface {
	TabCount() int
	TitleAt(index int) string
	ForegroundAt(index int) lipgloss.TerminalColor
	BackgroundAt(index int) lipgloss.TerminalColor
	TabComponentAt(index int) Component
	// TabSize is the preferred size of the tab header, including insets.
	TabSize(index int) geom.Size
	TabInsets() geom.Insets
	Size() geom.Size
	Placement() geom.Placement
	// TabBounds returns the bounds of a tab as reported by the layout manager
	// currently installed on the container.
	TabBounds(index int) (geom.Rect, bool)
}

// LayoutManager computes the geometry of a container.
type LayoutManager interface {
	LayoutContainer(c Container)
	TabBounds(index int) (geom.Rect, bool)
}

// Strategy is a layout manager that can also hit-test and paint the tabs it
// has laid out.
type Strategy interface {
	LayoutManager

	// Rects returns the tab rectangles computed by the most recent layout, in
	// the strategy's own coordinate space.
	Rects() []geom.Rect
	// StripBounds is the area of the container occupied by the tab strip.
	StripBounds() geom.Rect
	// TabAt returns the index of the tab at p, in container coordinates, or
	// -1.
	TabAt(c Container, p geom.Point) int
	// RenderTab renders the header of a tab, sized to its bounds.
	RenderTab(c Container, index int, selected bool) string
}

// Component is a custom renderer embedded within a tab header.
type Component interface {
	PreferredSize() geom.Size
	Bounds() geom.Rect
	SetBounds(geom.Rect)
	View() string
}

// layoutTabComponents positions custom tab components at their preferred
// width, left-aligned within the tab insets. Bounds are relative to origin.
func layoutTabComponents(c Container, origin geom.Point) {
	insets := c.TabInsets()
	for i := range c.TabCount() {
		comp := c.TabComponentAt(i)
		if comp == nil {
			continue
		}
		r, ok := c.TabBounds(i)
		if !ok {
			continue
		}
		pref := comp.PreferredSize()
		comp.SetBounds(geom.Rect{
			X:      r.X + insets.Left - origin.X,
			Y:      r.Y + insets.Top - origin.Y,
			Width:  pref.Width,
			Height: max(1, r.Height-insets.Top-insets.Bottom),
		})
	}
}

func boundsOf(rects []geom.Rect, index int) (geom.Rect, bool) {
	if index < 0 || index >= len(rects) {
		return geom.Rect{}, false
	}
	return rects[index], true
}
