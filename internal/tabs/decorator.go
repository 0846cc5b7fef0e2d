package tabs

import (
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/tabs/basic"
)

// triggerGap is the space between the forward scroll button and the overflow
// trigger button.
const triggerGap = 1

// scrollDecorator wraps the scroll delegate, making room at the end of the
// strip for the overflow trigger button, and reporting tab bounds translated
// by the viewport.
type scrollDecorator struct {
	engine   *Engine
	delegate *basic.ScrollLayout
	trigger  *basic.Button
}

func (d *scrollDecorator) LayoutContainer(c basic.Container) {
	var (
		e       = d.engine
		axis    = basic.AxisOf(c.Placement())
		forward = d.delegate.ForwardButton()
	)
	// The delegate lays out two buttons, both sized after the forward button.
	// Temporarily widen it so the pair spans enough room for three.
	forward.ResetPreferredSize()
	size := forward.PreferredSize()
	length := axis.Length(size)
	forward.SetPreferredSize(axis.WithLength(size, (3*length+triggerGap)/2))

	e.bridge.RunWithDelegate(func(s basic.Strategy) {
		s.LayoutContainer(c)
	}, true)

	forward.ResetPreferredSize()
	e.store.RecordLayout(d.delegate.Rects())
	e.syncViewport()

	if !forward.Visible() {
		d.trigger.SetBounds(geom.Rect{})
		return
	}
	// Carve the trigger out of the trailing end of the widened forward
	// button, then shift forward and backward up against it.
	bounds := forward.Bounds()
	bounds = axis.Shift(bounds, axis.Length(bounds.Size())-length)
	bounds = axis.WithExtent(bounds, length)
	d.trigger.SetBounds(bounds)

	bounds = axis.Shift(bounds, -(length + triggerGap))
	forward.SetBounds(bounds)
	bounds = axis.Shift(bounds, -length)
	d.delegate.BackwardButton().SetBounds(bounds)
}

// TabBounds returns the bounds of a tab in container coordinates, i.e.
// translated from view coordinates by the viewport's location and position.
func (d *scrollDecorator) TabBounds(index int) (geom.Rect, bool) {
	vp := d.delegate.Viewport()
	r, err := d.engine.store.TranslateForViewport(index, vp.Location(), vp.ViewPosition())
	return r, err == nil
}

// wrapDecorator wraps the wrap delegate, stretching closable tab components to
// span the full inner width of their tab.
type wrapDecorator struct {
	engine   *Engine
	delegate *basic.WrapLayout
}

func (d *wrapDecorator) LayoutContainer(c basic.Container) {
	e := d.engine
	e.bridge.RunWithDelegate(func(s basic.Strategy) {
		s.LayoutContainer(c)
	}, true)
	e.store.RecordLayout(d.delegate.Rects())

	var (
		insets = c.TabInsets()
		origin = d.delegate.TabContainer().Origin()
	)
	for i := range c.TabCount() {
		comp, ok := c.TabComponentAt(i).(*ClosableTab)
		if !ok {
			continue
		}
		r, err := e.store.BoundsOf(i)
		if err != nil {
			continue
		}
		bounds := comp.Bounds()
		bounds.X = r.X + insets.Left - origin.X
		bounds.Width = r.Width - insets.Left - insets.Right
		comp.SetBounds(bounds)
	}
}

func (d *wrapDecorator) TabBounds(index int) (geom.Rect, bool) {
	r, err := d.engine.store.BoundsOf(index)
	return r, err == nil
}
