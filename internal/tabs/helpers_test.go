package tabs

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/geom"
)

// fixedComponent is a tab component of a fixed preferred size.
type fixedComponent struct {
	size   geom.Size
	bounds geom.Rect
}

func (f *fixedComponent) PreferredSize() geom.Size { return f.size }
func (f *fixedComponent) Bounds() geom.Rect        { return f.bounds }
func (f *fixedComponent) SetBounds(r geom.Rect)    { f.bounds = r }
func (f *fixedComponent) View() string             { return "" }

type stubContent string

func (s stubContent) Init() tea.Cmd                       { return nil }
func (s stubContent) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s stubContent) View() string                        { return string(s) }

type paneOption func(*PaneOptions)

func withPlacement(p geom.Placement) paneOption {
	return func(o *PaneOptions) { o.Placement = p }
}

func withPolicy(m LayoutMode) paneOption {
	return func(o *PaneOptions) { o.Policy = m }
}

// setupPane constructs a pane of the given size, with n tabs each of the given
// width, titled "Test 0", "Test 1", etc.
func setupPane(t *testing.T, n, tabWidth int, size geom.Size, opts ...paneOption) *Pane {
	t.Helper()

	paneOpts := PaneOptions{Placement: geom.Top, Policy: Scroll}
	for _, fn := range opts {
		fn(&paneOpts)
	}
	p := NewPane(paneOpts)
	insets := p.TabInsets()
	for i := range n {
		p.AddTab(Tab{
			Title:   fmt.Sprintf("Test %d", i),
			Content: stubContent(fmt.Sprintf("content %d", i)),
			Component: &fixedComponent{size: geom.Size{
				Width:  tabWidth - insets.Left - insets.Right,
				Height: 1,
			}},
		})
	}
	p.Update(tea.WindowSizeMsg{Width: size.Width, Height: size.Height})
	return p
}

// setupTitledPane constructs a pane of the given size with n tabs titled
// "Test 0", "Test 1", etc.
func setupTitledPane(t *testing.T, n int, size geom.Size, opts ...paneOption) *Pane {
	t.Helper()

	paneOpts := PaneOptions{Placement: geom.Top, Policy: Scroll}
	for _, fn := range opts {
		fn(&paneOpts)
	}
	p := NewPane(paneOpts)
	for i := range n {
		p.AddTab(Tab{
			Title:   fmt.Sprintf("Test %d", i),
			Content: stubContent(fmt.Sprintf("content %d", i)),
		})
	}
	p.Update(tea.WindowSizeMsg{Width: size.Width, Height: size.Height})
	return p
}

func leading(p *Pane) int {
	return p.Engine().Store().Viewport().LeadingVisibleIndex
}
