package basic

import "github.com/leg100/tabstrip/internal/geom"

// ScrollLayout lays tabs out in a single run. When the run is longer than the
// container the run is shown through a viewport, and a pair of scroll buttons
// is placed at the trailing end of the strip.
type ScrollLayout struct {
	axis     Axis
	rects    []geom.Rect
	strip    geom.Rect
	viewport *Viewport
	forward  *Button
	backward *Button
}

func NewScrollLayout(placement geom.Placement) *ScrollLayout {
	l := &ScrollLayout{
		axis:     AxisOf(placement),
		viewport: &Viewport{},
	}
	if placement.Horizontal() {
		l.backward = NewButton(geom.West)
		l.forward = NewButton(geom.East)
	} else {
		l.backward = NewButton(geom.North)
		l.forward = NewButton(geom.South)
	}
	return l
}

func (l *ScrollLayout) Viewport() *Viewport     { return l.viewport }
func (l *ScrollLayout) ForwardButton() *Button  { return l.forward }
func (l *ScrollLayout) BackwardButton() *Button { return l.backward }
func (l *ScrollLayout) Rects() []geom.Rect      { return l.rects }
func (l *ScrollLayout) StripBounds() geom.Rect  { return l.strip }

// TabBounds returns the bounds of a tab in view coordinates, i.e. untranslated
// by the viewport.
func (l *ScrollLayout) TabBounds(index int) (geom.Rect, bool) {
	return boundsOf(l.rects, index)
}

func (l *ScrollLayout) LayoutContainer(c Container) {
	var (
		n    = c.TabCount()
		size = c.Size()
		// Both scroll buttons take the size of the forward button.
		button = l.forward.PreferredSize()
	)
	l.rects = make([]geom.Rect, n)

	var (
		run    int
		extent geom.Size
	)
	if l.axis.Horizontal() {
		height := button.Height
		for i := range n {
			height = max(height, c.TabSize(i).Height)
		}
		for i := range n {
			width := c.TabSize(i).Width
			l.rects[i] = geom.Rect{X: run, Width: width, Height: height}
			run += width
		}
		l.strip = geom.Rect{Width: size.Width, Height: height}
		if c.Placement() == geom.Bottom {
			l.strip.Y = size.Height - height
		}
		extent = geom.Size{Width: size.Width, Height: height}
	} else {
		width := button.Width
		for i := range n {
			width = max(width, c.TabSize(i).Width)
		}
		for i := range n {
			height := c.TabSize(i).Height
			l.rects[i] = geom.Rect{Y: run, Width: width, Height: height}
			run += height
		}
		l.strip = geom.Rect{Width: width, Height: size.Height}
		if c.Placement() == geom.Right {
			l.strip.X = size.Width - width
		}
		extent = geom.Size{Width: width, Height: size.Height}
	}

	available := l.axis.Length(extent)
	if run > available {
		// Shorten the viewport to make room for the buttons at the trailing
		// end of the strip.
		visible := max(0, available-2*l.axis.Length(button))
		extent = l.axis.WithLength(extent, visible)

		b := geom.Rect{
			X:      l.strip.X,
			Y:      l.strip.Y,
			Width:  button.Width,
			Height: button.Height,
		}
		b = l.axis.Shift(b, visible)
		l.backward.SetBounds(b)
		l.forward.SetBounds(l.axis.Shift(b, l.axis.Length(button)))
	} else {
		l.backward.SetBounds(geom.Rect{})
		l.forward.SetBounds(geom.Rect{})
	}

	l.viewport.location = l.strip.Origin()
	l.viewport.viewSize = l.axis.WithLength(extent, run)
	l.viewport.extent = extent
	l.clampPosition(run <= available)

	layoutTabComponents(c, geom.Point{})
}

// clampPosition keeps the view position on an existing tab, resetting it
// when every tab fits.
func (l *ScrollLayout) clampPosition(fits bool) {
	if fits || len(l.rects) == 0 {
		l.viewport.position = geom.Point{}
		return
	}
	last := l.axis.Start(l.rects[len(l.rects)-1])
	if l.axis.Coord(l.viewport.position) > last {
		l.viewport.position = l.axis.Point(last)
	}
}

func (l *ScrollLayout) TabAt(c Container, p geom.Point) int {
	if !l.viewport.Bounds().Contains(p) {
		return -1
	}
	vp := p.Sub(l.viewport.location).Add(l.viewport.position)
	for i := range c.TabCount() {
		if r, ok := c.TabBounds(i); ok && r.Contains(vp) {
			return i
		}
	}
	return -1
}

// leadingIndex is the first tab starting at or after the view position.
func (l *ScrollLayout) leadingIndex(c Container) int {
	pos := l.axis.Coord(l.viewport.position)
	for i := range c.TabCount() {
		if r, ok := c.TabBounds(i); ok && l.axis.Start(r) >= pos {
			return i
		}
	}
	return max(0, c.TabCount()-1)
}

// ScrollForward moves the view on by one tab, provided there are tabs hidden
// beyond the trailing edge of the viewport.
func (l *ScrollLayout) ScrollForward(c Container) {
	lead := l.leadingIndex(c)
	hidden := l.axis.Length(l.viewport.viewSize) - l.axis.Coord(l.viewport.position)
	if lead >= c.TabCount()-1 || hidden <= l.axis.Length(l.viewport.extent) {
		return
	}
	if r, ok := c.TabBounds(lead + 1); ok {
		l.viewport.position = l.axis.Point(l.axis.Start(r))
	}
}

// ScrollBackward moves the view back by one tab.
func (l *ScrollLayout) ScrollBackward(c Container) {
	lead := l.leadingIndex(c)
	if lead <= 0 {
		return
	}
	if r, ok := c.TabBounds(lead - 1); ok {
		l.viewport.position = l.axis.Point(l.axis.Start(r))
	}
}

func (l *ScrollLayout) RenderTab(c Container, index int, selected bool) string {
	return renderTab(c, index, selected)
}
