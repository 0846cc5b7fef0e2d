package basic

import "github.com/leg100/tabstrip/internal/geom"

// Axis projects geometry onto the direction in which tabs run: X for tabs
// placed on the top or bottom, Y for tabs placed on the left or right.
type Axis struct {
	horizontal bool
}

func AxisOf(p geom.Placement) Axis {
	return Axis{horizontal: p.Horizontal()}
}

func (a Axis) Horizontal() bool { return a.horizontal }

// Start is the leading edge of r along the axis.
func (a Axis) Start(r geom.Rect) int {
	if a.horizontal {
		return r.X
	}
	return r.Y
}

// End is the trailing edge of r along the axis.
func (a Axis) End(r geom.Rect) int {
	if a.horizontal {
		return r.Right()
	}
	return r.Bottom()
}

func (a Axis) Length(s geom.Size) int {
	if a.horizontal {
		return s.Width
	}
	return s.Height
}

func (a Axis) Coord(p geom.Point) int {
	if a.horizontal {
		return p.X
	}
	return p.Y
}

// Point returns a point positioned at v along the axis and zero across it.
func (a Axis) Point(v int) geom.Point {
	if a.horizontal {
		return geom.Point{X: v}
	}
	return geom.Point{Y: v}
}

// WithLength returns s with its length along the axis set to v.
func (a Axis) WithLength(s geom.Size, v int) geom.Size {
	if a.horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// Shift returns r moved by d along the axis.
func (a Axis) Shift(r geom.Rect, d int) geom.Rect {
	return r.Translate(a.Point(d))
}

// WithExtent returns r with its length along the axis set to v.
func (a Axis) WithExtent(r geom.Rect, v int) geom.Rect {
	if a.horizontal {
		r.Width = v
	} else {
		r.Height = v
	}
	return r
}
