package tabs

import (
	"fmt"

	"github.com/leg100/tabstrip/internal/tabs/basic"
)

// ScrollTabIntoView brings the tab at index into view, moving the leading tab
// one tab at a time until the target is clear of the margin at either end of
// the strip, or until the target becomes the leading tab.
//
// It is a no-op before the container has been sized and outside of scroll
// mode.
func (e *Engine) ScrollTabIntoView(index int) error {
	if index < 0 || index >= e.host.TabCount() {
		return fmt.Errorf("scrolling tab into view: %w: %d", ErrOutOfRange, index)
	}
	size := e.host.Size()
	if size.Width == 0 || size.Height == 0 {
		return nil
	}
	if e.mode.Mode() != Scroll || e.mode.scroll == nil {
		return nil
	}
	e.host.Validate()

	var (
		vs     = e.store.Viewport()
		vp     = e.mode.scroll.Viewport()
		axis   = basic.AxisOf(e.host.Placement())
		margin = e.margins.Horizontal
		// The visible run of tabs spans from the viewport's leading edge to
		// the trailing edge of its untrimmed extent.
		start = axis.Coord(vp.Location())
		end   = start + axis.Length(e.extent)
	)
	if !axis.Horizontal() {
		margin = e.margins.Vertical
	}
	bounds, err := e.TabBounds(index)
	if err != nil {
		return err
	}
	last := e.host.TabCount() - 1

	if axis.Start(bounds) < start+margin {
		for vs.LeadingVisibleIndex != index && vs.LeadingVisibleIndex > 0 && axis.Start(bounds) < start+margin {
			e.setLeadingTabIndex(vs.LeadingVisibleIndex - 1)
			if bounds, err = e.TabBounds(index); err != nil {
				return err
			}
		}
	} else if axis.End(bounds) > end-margin {
		for vs.LeadingVisibleIndex != index && vs.LeadingVisibleIndex < last && axis.End(bounds) > end-margin {
			e.setLeadingTabIndex(vs.LeadingVisibleIndex + 1)
			if bounds, err = e.TabBounds(index); err != nil {
				return err
			}
		}
	}
	e.logger.Debug("scrolled tab into view", "index", index, "leading", vs.LeadingVisibleIndex)
	e.host.Invalidate()
	return nil
}

// setLeadingTabIndex aligns the view position with the origin of the tab at
// index.
func (e *Engine) setLeadingTabIndex(index int) {
	var (
		vs   = e.store.Viewport()
		vp   = e.mode.scroll.Viewport()
		axis = basic.AxisOf(e.host.Placement())
		pos  int
	)
	vs.LeadingVisibleIndex = index
	if index > 0 {
		r, err := e.store.BoundsOf(index)
		if err != nil {
			return
		}
		pos = axis.Start(r)
	}
	vp.SetViewPosition(axis.Point(pos))
	e.trimExtent()
}
