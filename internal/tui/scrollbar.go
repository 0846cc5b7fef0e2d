package tui

import (
	"math"
	"strings"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

var scrollbarStyle = Regular.Copy().Foreground(ScrollButtonColor)

// Scrollbar renders a vertical scrollbar of the given height for a list of
// total items, of which visible items are shown starting at offset.
func Scrollbar(height, total, visible, offset int) string {
	if height <= 0 {
		return ""
	}
	if total <= 0 {
		total = 1
	}
	ratio := float64(height) / float64(total)
	thumbHeight := max(1, min(height, int(math.Round(float64(visible)*ratio))))
	thumbOffset := max(0, min(height-thumbHeight, int(math.Round(float64(offset)*ratio))))

	cells := make([]string, 0, height)
	for i := range height {
		if i >= thumbOffset && i < thumbOffset+thumbHeight {
			cells = append(cells, scrollbarThumb)
		} else {
			cells = append(cells, scrollbarTrack)
		}
	}
	return scrollbarStyle.Render(strings.Join(cells, "\n"))
}
