package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestOverlay(t *testing.T) {
	base := "aaaaa\nbbbbb\nccccc"

	tests := []struct {
		name string
		top  string
		x, y int
		want string
	}{
		{"middle", "XY", 1, 1, "aaaaa\nbXYbb\nccccc"},
		{"two lines", "XY\nZW", 3, 0, "aaaXY\nbbbZW\nccccc"},
		{"clipped below", "XY\nZW", 0, 2, "aaaaa\nbbbbb\nXYccc"},
		{"clipped right", "XYZ", 4, 0, "aaaaX\nbbbbb\nccccc"},
		{"wide runes", "日", 0, 0, "日aaa\nbbbbb\nccccc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(base, tt.top, tt.x, tt.y))
		})
	}
}

func TestOverlay_KeepsStyling(t *testing.T) {
	const red = "\x1b[31m"
	const reset = "\x1b[0m"
	base := red + "abcdef" + reset

	got := Overlay(base, "XY", 1, 0)

	assert.Equal(t, "aXYdef", ansi.Strip(got))
	// The remainder to the right of the overlay is still red.
	assert.Contains(t, got, red+"def"+reset)
}

func Test_cutLeft(t *testing.T) {
	assert.Equal(t, "def", cutLeft("abcdef", 3))
	assert.Equal(t, "", cutLeft("abc", 5))
	assert.Equal(t, "\x1b[1mcd\x1b[0m", cutLeft("\x1b[1mabcd\x1b[0m", 2))
	// The cut falls halfway through the wide rune.
	assert.Equal(t, " b", cutLeft("a日b", 2))
}
