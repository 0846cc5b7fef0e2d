package tabs

import (
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs/basic"
	"github.com/leg100/tabstrip/internal/tui"
)

// Host is a tabbed container whose layout manager can be swapped at runtime.
type Host interface {
	basic.Container

	// Layout returns the active layout manager.
	Layout() basic.LayoutManager
	// SetLayout installs a layout manager, invalidating the container's
	// layout unless invalidate is false.
	SetLayout(l basic.LayoutManager, invalidate bool)
	// Validate lays out the container if its layout is invalid.
	Validate()
	// Invalidate requests a layout before the container is next rendered.
	Invalidate()

	LayoutPolicy() LayoutMode
	// SetLayoutPolicy changes the layout policy, notifying the engine via
	// LayoutPolicyChanged.
	SetLayoutPolicy(mode LayoutMode)
}

// Margins are the distances from either end of the strip within which a
// selected tab is considered too close to the edge and is scrolled further
// into view.
type Margins struct {
	Horizontal int
	Vertical   int
}

var DefaultMargins = Margins{Horizontal: 50, Vertical: 30}

type Options struct {
	Margins Margins
	Logger  logging.Interface
}

// Engine decorates the stock layouts of a tabbed container with closable tab
// support, selection driven scrolling, and an overflow popup trigger.
type Engine struct {
	host    Host
	store   Store
	bridge  Bridge
	mode    *ModeController
	margins Margins
	logger  logging.Interface

	// extent is the viewport extent computed by the most recent layout, before
	// any trimming to the remaining run of tabs.
	extent geom.Size
}

// NewEngine constructs an engine for the container c, which must implement
// Host. No layout mode is installed until LayoutPolicyChanged is called.
func NewEngine(c basic.Container, opts Options) *Engine {
	host, ok := c.(Host)
	if !ok {
		panic(ErrWrongHostType)
	}
	if opts.Margins == (Margins{}) {
		opts.Margins = DefaultMargins
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	e := &Engine{
		host:    host,
		margins: opts.Margins,
		logger:  opts.Logger,
	}
	e.bridge.host = host
	e.mode = &ModeController{engine: e, logger: opts.Logger}
	return e
}

func (e *Engine) Store() *Store                   { return &e.store }
func (e *Engine) Bridge() *Bridge                 { return &e.bridge }
func (e *Engine) ModeController() *ModeController { return e.mode }
func (e *Engine) Mode() LayoutMode                { return e.mode.Mode() }

// LayoutPolicyChanged installs the layout mode matching the host's layout
// policy.
func (e *Engine) LayoutPolicyChanged() {
	e.mode.Install(e.host.LayoutPolicy())
}

// ToggleLayoutMode flips between scroll and wrap mode.
func (e *Engine) ToggleLayoutMode() {
	e.mode.Toggle()
}

// TabBounds returns the bounds of a tab in container coordinates.
func (e *Engine) TabBounds(index int) (geom.Rect, error) {
	if vs := e.store.Viewport(); vs != nil && e.mode.scroll != nil {
		return e.store.TranslateForViewport(index, e.mode.scroll.Viewport().Location(), vs.Offset)
	}
	return e.store.BoundsOf(index)
}

// StripBounds is the area of the container occupied by the tab strip.
func (e *Engine) StripBounds() geom.Rect {
	if d := e.bridge.Delegate(); d != nil {
		return d.StripBounds()
	}
	return geom.Rect{}
}

// TabAt returns the index of the tab at p, or -1, using the delegate's own hit
// testing.
func (e *Engine) TabAt(p geom.Point) int {
	index := -1
	e.bridge.RunWithDelegate(func(s basic.Strategy) {
		if s != nil {
			index = s.TabAt(e.host, p)
		}
	}, true)
	return index
}

// ButtonKind identifies one of the buttons on the strip in scroll mode.
type ButtonKind int

const (
	NoButton ButtonKind = iota
	BackwardButton
	ForwardButton
	TriggerButton
)

// ButtonAt returns the button at p.
func (e *Engine) ButtonAt(p geom.Point) ButtonKind {
	l := e.mode.scroll
	if l == nil {
		return NoButton
	}
	switch {
	case l.BackwardButton().Contains(p):
		return BackwardButton
	case l.ForwardButton().Contains(p):
		return ForwardButton
	case e.mode.trigger != nil && e.mode.trigger.Contains(p):
		return TriggerButton
	}
	return NoButton
}

// ScrollForward moves the viewport on by one tab.
func (e *Engine) ScrollForward() {
	e.scrollButton(func(l *basic.ScrollLayout) { l.ScrollForward(e.host) })
}

// ScrollBackward moves the viewport back by one tab.
func (e *Engine) ScrollBackward() {
	e.scrollButton(func(l *basic.ScrollLayout) { l.ScrollBackward(e.host) })
}

func (e *Engine) scrollButton(fn func(*basic.ScrollLayout)) {
	l := e.mode.scroll
	if l == nil {
		return
	}
	e.host.Validate()
	e.bridge.RunWithDelegate(func(basic.Strategy) { fn(l) }, false)
	// The delegate knows nothing of the leading tab, so derive it afresh from
	// where the delegate left the view.
	e.syncViewport()
}

// syncViewport derives the viewport state from the scroll delegate's viewport.
func (e *Engine) syncViewport() {
	var (
		l  = e.mode.scroll
		vs = e.store.Viewport()
	)
	if l == nil || vs == nil {
		return
	}
	var (
		vp   = l.Viewport()
		axis = basic.AxisOf(e.host.Placement())
		pos  = axis.Coord(vp.ViewPosition())
		lead int
	)
	for i, r := range l.Rects() {
		if axis.Start(r) > pos {
			break
		}
		lead = i
	}
	e.extent = vp.ExtentSize()
	vs.LeadingVisibleIndex = lead
	e.trimExtent()
}

// trimExtent shrinks the viewport extent when the tabs remaining from the view
// position on are shorter than the extent, keeping the view aligned on a tab
// boundary rather than leaving blank space after the last tab.
func (e *Engine) trimExtent() {
	var (
		vp        = e.mode.scroll.Viewport()
		vs        = e.store.Viewport()
		axis      = basic.AxisOf(e.host.Placement())
		extent    = e.extent
		remaining = axis.Length(vp.ViewSize()) - axis.Coord(vp.ViewPosition())
	)
	if remaining < axis.Length(extent) {
		extent = axis.WithLength(extent, max(0, remaining))
	}
	vp.SetExtentSize(extent)
	vs.Offset = vp.ViewPosition()
	vs.ExtentSize = extent
}

// RenderStrip renders the tab strip, sized to StripBounds.
func (e *Engine) RenderStrip(selected int) string {
	e.host.Validate()
	strip := e.StripBounds()
	canvas := tui.NewCanvas(strip.Width, strip.Height)

	var clip geom.Rect
	if l := e.mode.scroll; l != nil {
		clip = l.Viewport().Bounds()
	}
	axis := basic.AxisOf(e.host.Placement())
	for i := range e.host.TabCount() {
		r, err := e.TabBounds(i)
		if err != nil {
			continue
		}
		width := r.Width
		if !clip.Empty() {
			// Skip tabs outside the viewport and crop the trailing tab.
			if axis.End(r) <= axis.Start(clip) || axis.Start(r) >= axis.End(clip) {
				continue
			}
			if axis.Horizontal() {
				width = min(width, clip.Right()-r.X)
			}
		}
		var header string
		e.bridge.RunWithDelegate(func(s basic.Strategy) {
			if s != nil {
				header = s.RenderTab(e.host, i, i == selected)
			}
		}, true)
		canvas.Place(r.X-strip.X, r.Y-strip.Y, tui.Fit(header, width))
	}
	if l := e.mode.scroll; l != nil {
		for _, b := range []*basic.Button{l.BackwardButton(), l.ForwardButton(), e.mode.trigger} {
			if b == nil || !b.Visible() {
				continue
			}
			canvas.Place(b.Bounds().X-strip.X, b.Bounds().Y-strip.Y, b.View())
		}
	}
	return canvas.Render()
}
