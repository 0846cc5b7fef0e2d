package basic

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContainer struct {
	sizes     []geom.Size
	size      geom.Size
	placement geom.Placement
	layout    LayoutManager
	comps     map[int]Component
}

func newFakeContainer(n int, tab, size geom.Size, placement geom.Placement) *fakeContainer {
	c := &fakeContainer{
		sizes:     make([]geom.Size, n),
		size:      size,
		placement: placement,
		comps:     make(map[int]Component),
	}
	for i := range c.sizes {
		c.sizes[i] = tab
	}
	return c
}

func (f *fakeContainer) TabCount() int                           { return len(f.sizes) }
func (f *fakeContainer) TitleAt(index int) string                { return "tab" }
func (f *fakeContainer) ForegroundAt(int) lipgloss.TerminalColor { return nil }
func (f *fakeContainer) BackgroundAt(int) lipgloss.TerminalColor { return nil }
func (f *fakeContainer) TabComponentAt(index int) Component      { return f.comps[index] }
func (f *fakeContainer) TabSize(index int) geom.Size             { return f.sizes[index] }
func (f *fakeContainer) TabInsets() geom.Insets                  { return geom.Insets{Left: 1, Right: 1} }
func (f *fakeContainer) Size() geom.Size                         { return f.size }
func (f *fakeContainer) Placement() geom.Placement               { return f.placement }
func (f *fakeContainer) TabBounds(index int) (geom.Rect, bool)   { return f.layout.TabBounds(index) }

type fakeComponent struct {
	pref   geom.Size
	bounds geom.Rect
}

func (f *fakeComponent) PreferredSize() geom.Size { return f.pref }
func (f *fakeComponent) Bounds() geom.Rect        { return f.bounds }
func (f *fakeComponent) SetBounds(r geom.Rect)    { f.bounds = r }
func (f *fakeComponent) View() string             { return "x" }

func TestScrollLayout_Overflow(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Top)
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)

	require.Len(t, l.Rects(), 10)
	assert.Equal(t, geom.Rect{X: 720, Width: 80, Height: 1}, l.Rects()[9])
	assert.Equal(t, geom.Size{Width: 800, Height: 1}, l.Viewport().ViewSize())
	assert.Equal(t, geom.Size{Width: 594, Height: 1}, l.Viewport().ExtentSize())
	assert.Equal(t, geom.Rect{X: 594, Width: 3, Height: 1}, l.BackwardButton().Bounds())
	assert.Equal(t, geom.Rect{X: 597, Width: 3, Height: 1}, l.ForwardButton().Bounds())
	assert.Equal(t, geom.West, l.BackwardButton().Direction())
	assert.Equal(t, geom.East, l.ForwardButton().Direction())
}

func TestScrollLayout_Fits(t *testing.T) {
	c := newFakeContainer(3, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Bottom)
	l := NewScrollLayout(geom.Bottom)
	c.layout = l
	l.Viewport().SetViewPosition(geom.Point{X: 80})
	l.LayoutContainer(c)

	assert.False(t, l.ForwardButton().Visible())
	assert.False(t, l.BackwardButton().Visible())
	assert.Equal(t, geom.Point{}, l.Viewport().ViewPosition())
	assert.Equal(t, geom.Rect{Y: 39, Width: 600, Height: 1}, l.StripBounds())
	assert.Equal(t, geom.Point{Y: 39}, l.Viewport().Location())
}

func TestScrollLayout_ButtonsShareForwardSize(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Top)
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.ForwardButton().SetPreferredSize(geom.Size{Width: 5, Height: 1})
	l.LayoutContainer(c)

	assert.Equal(t, geom.Rect{X: 590, Width: 5, Height: 1}, l.BackwardButton().Bounds())
	assert.Equal(t, geom.Rect{X: 595, Width: 5, Height: 1}, l.ForwardButton().Bounds())

	l.ForwardButton().ResetPreferredSize()
	assert.Equal(t, geom.Size{Width: 3, Height: 1}, l.ForwardButton().PreferredSize())
}

func TestScrollLayout_ScrollButtons(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Top)
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)

	l.ScrollBackward(c)
	assert.Equal(t, geom.Point{}, l.Viewport().ViewPosition())

	l.ScrollForward(c)
	assert.Equal(t, geom.Point{X: 80}, l.Viewport().ViewPosition())
	l.ScrollForward(c)
	l.ScrollForward(c)
	assert.Equal(t, geom.Point{X: 240}, l.Viewport().ViewPosition())

	// Remaining 560 cells fit within the 594 cell extent.
	l.ScrollForward(c)
	assert.Equal(t, geom.Point{X: 240}, l.Viewport().ViewPosition())

	l.ScrollBackward(c)
	assert.Equal(t, geom.Point{X: 160}, l.Viewport().ViewPosition())
}

func TestScrollLayout_TabAt(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Top)
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)
	l.Viewport().SetViewPosition(geom.Point{X: 160})

	assert.Equal(t, 2, l.TabAt(c, geom.Point{X: 0}))
	assert.Equal(t, 3, l.TabAt(c, geom.Point{X: 85}))
	// Scroll buttons are outside the viewport.
	assert.Equal(t, -1, l.TabAt(c, geom.Point{X: 598}))
	assert.Equal(t, -1, l.TabAt(c, geom.Point{X: 5, Y: 1}))
}

func TestScrollLayout_ClampsPositionAfterRemoval(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 1}, geom.Size{Width: 600, Height: 40}, geom.Top)
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)
	l.Viewport().SetViewPosition(geom.Point{X: 720})

	c.sizes = c.sizes[:8]
	l.LayoutContainer(c)

	assert.Equal(t, geom.Point{X: 560}, l.Viewport().ViewPosition())
}

func TestScrollLayout_Vertical(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 12, Height: 2}, geom.Size{Width: 80, Height: 15}, geom.Right)
	l := NewScrollLayout(geom.Right)
	c.layout = l
	l.LayoutContainer(c)

	assert.Equal(t, geom.Rect{Y: 4, Width: 12, Height: 2}, l.Rects()[2])
	assert.Equal(t, geom.Rect{X: 68, Width: 12, Height: 15}, l.StripBounds())
	assert.Equal(t, geom.Size{Width: 12, Height: 13}, l.Viewport().ExtentSize())
	assert.Equal(t, geom.Rect{X: 68, Y: 13, Width: 3, Height: 1}, l.BackwardButton().Bounds())
	assert.Equal(t, geom.Rect{X: 68, Y: 14, Width: 3, Height: 1}, l.ForwardButton().Bounds())
	assert.Equal(t, geom.North, l.BackwardButton().Direction())
}

func TestScrollLayout_ComponentsAtPreferredWidth(t *testing.T) {
	c := newFakeContainer(3, geom.Size{Width: 10, Height: 1}, geom.Size{Width: 100, Height: 10}, geom.Top)
	comp := &fakeComponent{pref: geom.Size{Width: 6, Height: 1}}
	c.comps[1] = comp
	l := NewScrollLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)

	assert.Equal(t, geom.Rect{X: 11, Width: 6, Height: 1}, comp.Bounds())
}

func TestWrapLayout_Runs(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 20}, geom.Size{Width: 200, Height: 400}, geom.Bottom)
	l := NewWrapLayout(geom.Bottom)
	c.layout = l
	l.LayoutContainer(c)

	assert.Equal(t, 5, l.RunCount())
	assert.Equal(t, geom.Rect{Y: 300, Width: 200, Height: 100}, l.StripBounds())
	// Each run of two tabs is padded out to the full width.
	assert.Equal(t, geom.Rect{X: 0, Y: 320, Width: 100, Height: 20}, l.Rects()[2])
	assert.Equal(t, geom.Rect{X: 100, Y: 320, Width: 100, Height: 20}, l.Rects()[3])
}

func TestWrapLayout_SingleRunNotPadded(t *testing.T) {
	c := newFakeContainer(2, geom.Size{Width: 10, Height: 1}, geom.Size{Width: 100, Height: 10}, geom.Top)
	l := NewWrapLayout(geom.Top)
	c.layout = l
	l.LayoutContainer(c)

	assert.Equal(t, 1, l.RunCount())
	assert.Equal(t, geom.Rect{X: 10, Width: 10, Height: 1}, l.Rects()[1])
	assert.Equal(t, 1, l.TabAt(c, geom.Point{X: 15}))
	assert.Equal(t, -1, l.TabAt(c, geom.Point{X: 25}))
}

func TestWrapLayout_Vertical(t *testing.T) {
	c := newFakeContainer(5, geom.Size{Width: 8, Height: 1}, geom.Size{Width: 80, Height: 3}, geom.Left)
	l := NewWrapLayout(geom.Left)
	c.layout = l
	l.LayoutContainer(c)

	assert.Equal(t, 2, l.RunCount())
	assert.Equal(t, geom.Rect{Width: 16, Height: 3}, l.StripBounds())
	assert.Equal(t, geom.Rect{X: 8, Y: 1, Width: 8, Height: 1}, l.Rects()[4])
}

func TestWrapLayout_ComponentsRelativeToContainer(t *testing.T) {
	c := newFakeContainer(10, geom.Size{Width: 80, Height: 20}, geom.Size{Width: 200, Height: 400}, geom.Bottom)
	comp := &fakeComponent{pref: geom.Size{Width: 30, Height: 20}}
	c.comps[3] = comp
	l := NewWrapLayout(geom.Bottom)
	c.layout = l
	l.LayoutContainer(c)

	// Left-aligned at its preferred width, even though the tab was padded.
	assert.Equal(t, geom.Rect{X: 101, Y: 20, Width: 30, Height: 20}, comp.Bounds())
}

func TestNewButton_InvalidDirection(t *testing.T) {
	assert.PanicsWithError(t, "direction must be one of: north, south, east or west: got 0", func() {
		NewButton(geom.Direction(0))
	})
}
