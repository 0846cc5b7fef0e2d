// Package geom provides the integer geometry, measured in terminal cells, that
// tab layouts are computed with.
package geom

import (
	"errors"
	"fmt"
)

type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle. The zero value is an empty rectangle at
// the origin.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }
func (r Rect) Size() Size    { return Size{Width: r.Width, Height: r.Height} }
func (r Rect) Right() int    { return r.X + r.Width }
func (r Rect) Bottom() int   { return r.Y + r.Height }

// Empty is true if the rectangle has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Translate returns the rectangle shifted by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether p lies within the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

type Insets struct {
	Top, Left, Bottom, Right int
}

// Placement is the side of a tabbed pane along which the tab strip runs.
type Placement int

const (
	Top Placement = iota
	Bottom
	Left
	Right
)

// Horizontal is true if tabs run from left to right, i.e. the strip is on the
// top or bottom of the pane.
func (p Placement) Horizontal() bool {
	return p == Top || p == Bottom
}

func (p Placement) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Placement(%d)", int(p))
	}
}

// ValidPlacements returns the valid strings for choosing a placement.
func ValidPlacements() []string {
	return []string{"top", "bottom", "left", "right"}
}

// ParsePlacement parses one of the strings returned by ValidPlacements.
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return 0, fmt.Errorf("invalid placement: %q", s)
	}
}

// Direction is the direction an arrow button points in.
type Direction int

const (
	North Direction = iota + 1
	South
	East
	West
)

var ErrInvalidDirection = errors.New("direction must be one of: north, south, east or west")

// Validate returns ErrInvalidDirection unless d is one of the four cardinal
// directions.
func (d Direction) Validate() error {
	switch d {
	case North, South, East, West:
		return nil
	default:
		return fmt.Errorf("%w: got %d", ErrInvalidDirection, int(d))
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}
