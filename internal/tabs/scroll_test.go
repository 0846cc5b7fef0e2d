package tabs

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollTabIntoView_TrailingEdge(t *testing.T) {
	// 10 tabs of 80 cells (800 in total) in a 600 cell strip.
	p := setupPane(t, 10, 80, geom.Size{Width: 600, Height: 40})
	require.Equal(t, 0, leading(p))

	p.SetSelected(9)

	assert.Equal(t, 4, leading(p))
	r, err := p.Engine().TabBounds(9)
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 400, Width: 80, Height: 1}, r)
	assert.LessOrEqual(t, r.Right(), 600-DefaultMargins.Horizontal)

	// The view stays aligned on the leading tab after a layout pass.
	p.Validate()
	vs := p.Engine().Store().Viewport()
	assert.Equal(t, 4, vs.LeadingVisibleIndex)
	assert.Equal(t, geom.Point{X: 320}, vs.Offset)
	// The extent is trimmed to the tabs remaining from the leading tab on.
	assert.Equal(t, geom.Size{Width: 480, Height: 1}, vs.ExtentSize)
}

func TestScrollTabIntoView_LeadingEdge(t *testing.T) {
	p := setupPane(t, 10, 80, geom.Size{Width: 600, Height: 40})
	p.SetSelected(9)
	require.Equal(t, 4, leading(p))

	p.SetSelected(3)

	// Tab 3 becomes the leading tab since stepping back one tab at a time
	// leaves it at the very start of the strip.
	assert.Equal(t, 3, leading(p))

	p.SetSelected(5)
	// Tab 5 is clear of both margins so there is no need to scroll.
	assert.Equal(t, 3, leading(p))
}

func TestScrollTabIntoView_Vertical(t *testing.T) {
	// 10 tabs, each a single row, in a strip 8 rows tall, with margins of 2
	// rows.
	p := NewPane(PaneOptions{
		Placement: geom.Right,
		Policy:    Scroll,
		Margins:   Margins{Horizontal: 5, Vertical: 2},
	})
	for range 10 {
		p.AddTab(Tab{Title: "tab", Content: stubContent("")})
	}
	p.Update(tea.WindowSizeMsg{Width: 30, Height: 8})

	p.SetSelected(9)

	// The buttons occupy the last four rows, leaving four rows of tabs, and
	// the tab is scrolled until it is clear of the bottom margin.
	assert.Equal(t, 8, leading(p))
	r, err := p.Engine().TabBounds(9)
	require.NoError(t, err)
	assert.Equal(t, geom.Rect{X: 25, Y: 1, Width: 5, Height: 1}, r)
}

func TestScrollTabIntoView_WideTab(t *testing.T) {
	// A single tab wider than the strip can never be fully in view.
	p := setupPane(t, 3, 700, geom.Size{Width: 600, Height: 40})

	p.SetSelected(2)
	assert.Equal(t, 2, leading(p))

	p.SetSelected(0)
	assert.Equal(t, 0, leading(p))
}

func TestScrollTabIntoView_OutOfRange(t *testing.T) {
	p := setupPane(t, 3, 80, geom.Size{Width: 600, Height: 40})

	assert.ErrorIs(t, p.ScrollTabIntoView(3), ErrOutOfRange)
	assert.ErrorIs(t, p.ScrollTabIntoView(-1), ErrOutOfRange)
}

func TestScrollTabIntoView_Unsized(t *testing.T) {
	p := NewPane(PaneOptions{Policy: Scroll})
	p.AddTab(Tab{Title: "tab"})

	assert.NoError(t, p.ScrollTabIntoView(0))
	assert.Equal(t, 0, leading(p))
}

func TestScrollTabIntoView_WrapMode(t *testing.T) {
	p := setupPane(t, 10, 80, geom.Size{Width: 600, Height: 40}, withPolicy(Wrap))

	assert.NoError(t, p.ScrollTabIntoView(9))
	assert.Nil(t, p.Engine().Store().Viewport())
}

func TestScrollTabIntoView_Properties(t *testing.T) {
	const width = 600
	rng := rand.New(rand.NewSource(1))

	for n := 0; n <= 12; n++ {
		p := setupPane(t, n, 80, geom.Size{Width: width, Height: 40})

		for range 50 {
			if n == 0 {
				break
			}
			i := rng.Intn(n)
			p.SetSelected(i)
			p.Validate()

			lead := leading(p)
			assert.GreaterOrEqual(t, lead, 0)
			assert.LessOrEqual(t, lead, max(0, n-1))

			if lead == i {
				continue
			}
			r, err := p.Engine().TabBounds(i)
			require.NoError(t, err)
			// The tab lies within the viewport, clear of the scroll buttons.
			vp := p.Engine().ModeController().scroll.Viewport()
			assert.GreaterOrEqual(t, r.X, vp.Location().X, "n=%d i=%d lead=%d", n, i, lead)
			assert.LessOrEqual(t, r.Right(), vp.Location().X+p.Engine().extent.Width, "n=%d i=%d lead=%d", n, i, lead)
		}
	}
}

func TestScrollButtons(t *testing.T) {
	p := setupPane(t, 10, 80, geom.Size{Width: 600, Height: 40})

	p.Engine().ScrollForward()
	assert.Equal(t, 1, leading(p))
	assert.Equal(t, geom.Point{X: 80}, p.Engine().Store().Viewport().Offset)

	p.Engine().ScrollBackward()
	p.Engine().ScrollBackward()
	assert.Equal(t, 0, leading(p))

	// Scrolling stops once the last tab is in view.
	for range 20 {
		p.Engine().ScrollForward()
	}
	assert.Equal(t, 3, leading(p))
}

func TestScrollButtons_Bounds(t *testing.T) {
	p := setupPane(t, 10, 80, geom.Size{Width: 600, Height: 40})
	l := p.Engine().ModeController().scroll

	assert.Equal(t, geom.Rect{X: 590, Width: 3, Height: 1}, l.BackwardButton().Bounds())
	assert.Equal(t, geom.Rect{X: 593, Width: 3, Height: 1}, l.ForwardButton().Bounds())
	assert.Equal(t, geom.Rect{X: 597, Width: 3, Height: 1}, p.Engine().ModeController().Trigger().Bounds())

	assert.Equal(t, BackwardButton, p.Engine().ButtonAt(geom.Point{X: 591}))
	assert.Equal(t, ForwardButton, p.Engine().ButtonAt(geom.Point{X: 595}))
	assert.Equal(t, NoButton, p.Engine().ButtonAt(geom.Point{X: 596}))
	assert.Equal(t, TriggerButton, p.Engine().ButtonAt(geom.Point{X: 599}))
	assert.Equal(t, NoButton, p.Engine().ButtonAt(geom.Point{X: 10}))

	// The forward button reverts to its usual size after each layout.
	assert.Equal(t, geom.Size{Width: 3, Height: 1}, l.ForwardButton().PreferredSize())
}

func TestScrollButtons_HiddenWhenTabsFit(t *testing.T) {
	p := setupPane(t, 3, 80, geom.Size{Width: 600, Height: 40})

	assert.False(t, p.Engine().ModeController().Trigger().Visible())
	assert.Equal(t, NoButton, p.Engine().ButtonAt(geom.Point{X: 599}))
}
