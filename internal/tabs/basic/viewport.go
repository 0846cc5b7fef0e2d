package basic

import "github.com/leg100/tabstrip/internal/geom"

// Viewport is a window onto the run of tabs laid out by ScrollLayout. The view
// is the full run of tabs; the extent is the portion of it that is visible.
type Viewport struct {
	location geom.Point
	viewSize geom.Size
	extent   geom.Size
	position geom.Point
}

// Location is the position of the viewport within the container.
func (v *Viewport) Location() geom.Point { return v.location }

// ViewSize is the size of the full run of tabs.
func (v *Viewport) ViewSize() geom.Size { return v.viewSize }

func (v *Viewport) ExtentSize() geom.Size        { return v.extent }
func (v *Viewport) SetExtentSize(size geom.Size) { v.extent = size }

// ViewPosition is the point in view coordinates that appears at the viewport's
// location.
func (v *Viewport) ViewPosition() geom.Point     { return v.position }
func (v *Viewport) SetViewPosition(p geom.Point) { v.position = p }

// ViewRect is the visible portion of the view, in view coordinates.
func (v *Viewport) ViewRect() geom.Rect {
	return geom.Rect{
		X:      v.position.X,
		Y:      v.position.Y,
		Width:  v.extent.Width,
		Height: v.extent.Height,
	}
}

// Bounds is the area of the container the viewport occupies.
func (v *Viewport) Bounds() geom.Rect {
	return geom.Rect{
		X:      v.location.X,
		Y:      v.location.Y,
		Width:  v.extent.Width,
		Height: v.extent.Height,
	}
}
