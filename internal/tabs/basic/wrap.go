package basic

import "github.com/leg100/tabstrip/internal/geom"

// WrapLayout lays tabs out in as many runs as are needed to show every tab.
// When there is more than one run of horizontal tabs, each run is padded out
// to fill the width of the strip.
type WrapLayout struct {
	axis      Axis
	rects     []geom.Rect
	runs      [][]int
	container *TabContainer
}

// TabContainer is the area of the container holding the tab runs. Custom tab
// components are positioned relative to its origin.
type TabContainer struct {
	bounds geom.Rect
}

func (t *TabContainer) Bounds() geom.Rect  { return t.bounds }
func (t *TabContainer) Origin() geom.Point { return t.bounds.Origin() }

func NewWrapLayout(placement geom.Placement) *WrapLayout {
	return &WrapLayout{
		axis:      AxisOf(placement),
		container: &TabContainer{},
	}
}

func (l *WrapLayout) TabContainer() *TabContainer { return l.container }
func (l *WrapLayout) Rects() []geom.Rect          { return l.rects }
func (l *WrapLayout) StripBounds() geom.Rect      { return l.container.bounds }
func (l *WrapLayout) RunCount() int               { return len(l.runs) }

// TabBounds returns the bounds of a tab in container coordinates.
func (l *WrapLayout) TabBounds(index int) (geom.Rect, bool) {
	return boundsOf(l.rects, index)
}

func (l *WrapLayout) LayoutContainer(c Container) {
	var (
		n    = c.TabCount()
		size = c.Size()
	)
	l.rects = make([]geom.Rect, n)
	l.runs = nil

	var strip geom.Rect
	if l.axis.Horizontal() {
		height := 1
		for i := range n {
			height = max(height, c.TabSize(i).Height)
		}
		x := 0
		for i := range n {
			width := c.TabSize(i).Width
			if len(l.runs) == 0 || (x > 0 && x+width > size.Width) {
				l.runs = append(l.runs, nil)
				x = 0
			}
			run := len(l.runs) - 1
			l.runs[run] = append(l.runs[run], i)
			l.rects[i] = geom.Rect{X: x, Y: run * height, Width: width, Height: height}
			x += width
		}
		if len(l.runs) > 1 {
			for _, run := range l.runs {
				l.padRun(run, size.Width)
			}
		}
		strip = geom.Rect{Width: size.Width, Height: max(1, len(l.runs)) * height}
		if c.Placement() == geom.Bottom {
			strip.Y = size.Height - strip.Height
		}
	} else {
		width := 1
		for i := range n {
			width = max(width, c.TabSize(i).Width)
		}
		y := 0
		for i := range n {
			height := c.TabSize(i).Height
			if len(l.runs) == 0 || (y > 0 && y+height > size.Height) {
				l.runs = append(l.runs, nil)
				y = 0
			}
			run := len(l.runs) - 1
			l.runs[run] = append(l.runs[run], i)
			l.rects[i] = geom.Rect{X: run * width, Y: y, Width: width, Height: height}
			y += height
		}
		strip = geom.Rect{Width: max(1, len(l.runs)) * width, Height: size.Height}
		if c.Placement() == geom.Right {
			strip.X = size.Width - strip.Width
		}
	}
	for i := range l.rects {
		l.rects[i] = l.rects[i].Translate(strip.Origin())
	}
	l.container.bounds = strip

	layoutTabComponents(c, l.container.Origin())
}

// padRun stretches the tabs in a run in proportion to their width so that the
// run spans total cells.
func (l *WrapLayout) padRun(run []int, total int) {
	used := 0
	for _, i := range run {
		used += l.rects[i].Width
	}
	extra := total - used
	if extra <= 0 || used == 0 {
		return
	}
	x := 0
	for k, i := range run {
		width := l.rects[i].Width + extra*l.rects[i].Width/used
		if k == len(run)-1 {
			width = total - x
		}
		l.rects[i].X = x
		l.rects[i].Width = width
		x += width
	}
}

func (l *WrapLayout) TabAt(c Container, p geom.Point) int {
	for i := range c.TabCount() {
		if r, ok := c.TabBounds(i); ok && r.Contains(p) {
			return i
		}
	}
	return -1
}

func (l *WrapLayout) RenderTab(c Container, index int, selected bool) string {
	return renderTab(c, index, selected)
}
