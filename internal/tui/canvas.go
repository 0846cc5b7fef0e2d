package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas composes single-line fragments at arbitrary cell positions. Fragments
// on the same line are expected not to overlap; the later of two overlapping
// fragments is cropped.
type Canvas struct {
	width int
	lines [][]fragment
}

type fragment struct {
	x int
	s string
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width: max(0, width),
		lines: make([][]fragment, max(0, height)),
	}
}

// Place puts s on line y starting at column x. Anything falling outside the
// canvas is discarded.
func (c *Canvas) Place(x, y int, s string) {
	if y < 0 || y >= len(c.lines) || x >= c.width {
		return
	}
	if x < 0 {
		return
	}
	c.lines[y] = append(c.lines[y], fragment{x: x, s: s})
}

func (c *Canvas) Render() string {
	rendered := make([]string, len(c.lines))
	for y, frags := range c.lines {
		slices.SortStableFunc(frags, func(a, b fragment) int { return a.x - b.x })

		var (
			b   strings.Builder
			col int
		)
		for _, f := range frags {
			if f.x < col {
				continue
			}
			b.WriteString(strings.Repeat(" ", f.x-col))
			s := Fit(f.s, min(ansi.StringWidth(f.s), c.width-f.x))
			b.WriteString(s)
			col = f.x + ansi.StringWidth(s)
		}
		b.WriteString(strings.Repeat(" ", max(0, c.width-col)))
		rendered[y] = b.String()
	}
	return strings.Join(rendered, "\n")
}

// Fit truncates or pads the single line s to exactly width cells, respecting
// ANSI escape codes.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
