package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay composites top over base with its top-left corner at column x, line
// y.
func Overlay(base, top string, x, y int) string {
	var (
		baseLines = strings.Split(base, "\n")
		topLines  = strings.Split(top, "\n")
		width     = 0
	)
	for _, line := range baseLines {
		width = max(width, ansi.StringWidth(line))
	}
	for i, line := range topLines {
		row := y + i
		if row < 0 || row >= len(baseLines) {
			continue
		}
		target := baseLines[row]
		left := Fit(target, max(0, x))
		right := cutLeft(target, x+ansi.StringWidth(line))
		baseLines[row] = Fit(left+line+right, width)
	}
	return strings.Join(baseLines, "\n")
}

// cutLeft removes the first n cells of s. Escape sequences are kept so the
// remainder retains its styling. A wide rune straddling the cut is replaced
// with spaces.
func cutLeft(s string, n int) string {
	var (
		b     strings.Builder
		state byte
		cells int
	)
	for len(s) > 0 {
		seq, width, size, next := ansi.DecodeSequence(s, state, nil)
		state = next
		s = s[size:]
		switch {
		case width == 0, cells >= n:
			b.WriteString(seq)
		case cells+width > n:
			b.WriteString(strings.Repeat(" ", cells+width-n))
		}
		cells += width
	}
	return b.String()
}
