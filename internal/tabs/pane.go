package tabs

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs/basic"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/tui/keys"
)

// A Tab is one of the tabs of a Pane. Its content is rendered beneath the
// strip when the tab is selected.
type Tab struct {
	ID      uuid.UUID
	Title   string
	Content tea.Model
	// Component optionally replaces the title in the tab header.
	Component basic.Component
	// Foreground and Background override the colors of the tab header. Nil
	// inherits the default.
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

func (t *Tab) String() string { return t.Title }

type PaneOptions struct {
	Placement geom.Placement
	Policy    LayoutMode
	Margins   Margins
	PopupRows int
	Logger    logging.Interface
}

// Pane is a tabbed container. It owns the tabs and the selection, and lays the
// tabs out according to its layout policy, either wrapping or scrolling the
// tabs when there are more than fit in a single run.
type Pane struct {
	tabs      []*Tab
	selected  int
	placement geom.Placement
	policy    LayoutMode

	layout basic.LayoutManager
	valid  bool

	width       int
	height      int
	contentSize geom.Size

	engine    *Engine
	popup     *Popup
	popupRows int
	logger    logging.Interface
}

// NewPane constructs a pane with no tabs.
func NewPane(opts PaneOptions) *Pane {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	if opts.PopupRows <= 0 {
		opts.PopupRows = DefaultPopupRows
	}
	p := &Pane{
		selected:  -1,
		placement: opts.Placement,
		policy:    opts.Policy,
		popupRows: opts.PopupRows,
		logger:    opts.Logger,
	}
	p.engine = NewEngine(p, Options{Margins: opts.Margins, Logger: opts.Logger})
	p.engine.LayoutPolicyChanged()
	return p
}

func (p *Pane) Engine() *Engine { return p.engine }
func (p *Pane) Popup() *Popup   { return p.popup }

//
// basic.Container implementation
//

func (p *Pane) TabCount() int             { return len(p.tabs) }
func (p *Pane) TitleAt(index int) string  { return p.tabs[index].Title }
func (p *Pane) Size() geom.Size           { return geom.Size{Width: p.width, Height: p.height} }
func (p *Pane) Placement() geom.Placement { return p.placement }
func (p *Pane) TabInsets() geom.Insets    { return geom.Insets{Left: 1, Right: 1} }

func (p *Pane) ForegroundAt(index int) lipgloss.TerminalColor {
	return p.tabs[index].Foreground
}

func (p *Pane) BackgroundAt(index int) lipgloss.TerminalColor {
	return p.tabs[index].Background
}

func (p *Pane) TabComponentAt(index int) basic.Component {
	return p.tabs[index].Component
}

func (p *Pane) TabSize(index int) geom.Size {
	var (
		insets = p.TabInsets()
		width  int
	)
	if c := p.tabs[index].Component; c != nil {
		width = c.PreferredSize().Width
	} else {
		width = ansi.StringWidth(p.tabs[index].Title)
	}
	return geom.Size{
		Width:  width + insets.Left + insets.Right,
		Height: 1 + insets.Top + insets.Bottom,
	}
}

// TabBounds returns the bounds of a tab as reported by the active layout
// manager.
func (p *Pane) TabBounds(index int) (geom.Rect, bool) {
	if p.layout == nil {
		return geom.Rect{}, false
	}
	return p.layout.TabBounds(index)
}

//
// Host implementation
//

func (p *Pane) Layout() basic.LayoutManager { return p.layout }

func (p *Pane) SetLayout(l basic.LayoutManager, invalidate bool) {
	p.layout = l
	if invalidate {
		p.Invalidate()
	}
}

func (p *Pane) Invalidate() { p.valid = false }

func (p *Pane) Validate() {
	if p.valid || p.layout == nil {
		return
	}
	p.layout.LayoutContainer(p)
	p.valid = true
}

func (p *Pane) LayoutPolicy() LayoutMode { return p.policy }

// SetLayoutPolicy switches between wrapping and scrolling tabs. On switching
// to scrolling, the selected tab is scrolled into view.
func (p *Pane) SetLayoutPolicy(mode LayoutMode) {
	if mode == p.policy {
		return
	}
	p.policy = mode
	p.engine.LayoutPolicyChanged()
	for _, t := range p.tabs {
		if l, ok := t.Component.(ModeListener); ok {
			l.LayoutModeChanged(mode)
		}
	}
	p.Invalidate()
	p.logger.Info("changed layout mode", "mode", mode)

	if mode == Scroll {
		p.Validate()
		p.SetSelected(p.selected)
	}
}

// ToggleLayoutMode flips between scroll and wrap mode.
func (p *Pane) ToggleLayoutMode() {
	p.engine.ToggleLayoutMode()
}

// ScrollTabIntoView brings the tab at index into view in scroll mode.
func (p *Pane) ScrollTabIntoView(index int) error {
	return p.engine.ScrollTabIntoView(index)
}

//
// Tabs
//

func (p *Pane) Tabs() []*Tab { return p.tabs }

// Get retrieves a tab by ID.
func (p *Pane) Get(id uuid.UUID) (*Tab, bool) {
	for _, t := range p.tabs {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// TitleOf returns the title of the tab with the component c.
func (p *Pane) TitleOf(c basic.Component) (string, bool) {
	for _, t := range p.tabs {
		if t.Component == c {
			return t.Title, true
		}
	}
	return "", false
}

func (p *Pane) Selected() int { return p.selected }

// SelectedTab returns the selected tab, or nil if there are no tabs.
func (p *Pane) SelectedTab() *Tab {
	if p.selected < 0 || p.selected >= len(p.tabs) {
		return nil
	}
	return p.tabs[p.selected]
}

// SetSelected selects the tab at index, scrolling it into view in scroll mode.
// An index out of range is ignored.
func (p *Pane) SetSelected(index int) {
	if index < 0 || index >= len(p.tabs) {
		return
	}
	if index != p.selected {
		p.selected = index
		p.logger.Debug("selected tab", "tab_id", p.tabs[index].ID)
	}
	if p.policy == Scroll {
		if err := p.engine.ScrollTabIntoView(index); err != nil {
			p.logger.Error("scrolling tab into view", "error", err)
		}
		p.Invalidate()
	}
}

// AddTab appends a tab. If the tab has no ID one is assigned. The first tab to
// be added is selected.
func (p *Pane) AddTab(tab Tab) *Tab {
	if tab.ID == uuid.Nil {
		tab.ID = uuid.New()
	}
	t := &tab
	p.tabs = append(p.tabs, t)
	if l, ok := t.Component.(ModeListener); ok {
		l.LayoutModeChanged(p.policy)
	}
	if p.selected < 0 {
		p.selected = 0
	}
	p.tabsChanged()
	p.logger.Debug("added tab", "tab_id", t.ID)
	return t
}

// RemoveTab removes the tab with the given ID. The selection stays on the same
// tab if it remains, otherwise it moves to the tab at the same position, or the
// new last tab.
func (p *Pane) RemoveTab(id uuid.UUID) error {
	index := slices.IndexFunc(p.tabs, func(t *Tab) bool { return t.ID == id })
	if index < 0 {
		return fmt.Errorf("removing tab: %w: no tab with id %s", ErrOutOfRange, id)
	}
	p.logger.Info("closed tab", "tab_id", id)
	p.tabs = slices.Delete(p.tabs, index, index+1)
	switch {
	case len(p.tabs) == 0:
		p.selected = -1
	case index < p.selected:
		p.selected--
	case p.selected >= len(p.tabs):
		p.selected = len(p.tabs) - 1
	}
	p.tabsChanged()
	if p.selected >= 0 {
		p.Validate()
		p.SetSelected(p.selected)
	}
	return nil
}

// SetTabComponent sets the component rendered in the header of the tab at
// index. A nil component reverts to rendering the title.
func (p *Pane) SetTabComponent(index int, c basic.Component) error {
	if index < 0 || index >= len(p.tabs) {
		return fmt.Errorf("setting tab component: %w: %d", ErrOutOfRange, index)
	}
	p.tabs[index].Component = c
	if l, ok := c.(ModeListener); ok {
		l.LayoutModeChanged(p.policy)
	}
	p.Invalidate()
	return nil
}

// tabsChanged is called whenever tabs are added or removed. The popup holds a
// snapshot of the tabs and is closed rather than left to go stale. Contents
// are resized on the next update, which includes any newly added tab.
func (p *Pane) tabsChanged() {
	p.popup = nil
	p.contentSize = geom.Size{}
	p.Invalidate()
}

//
// Popup
//

// OpenPopup opens the overflow popup listing every tab.
func (p *Pane) OpenPopup() {
	if len(p.tabs) == 0 {
		return
	}
	p.Validate()
	content := p.contentBounds()
	p.popup = NewPopup(p, p.selected, PopupOptions{
		// Leave room for the border and filter.
		MaxRows:  min(p.popupRows, max(1, content.Height-3)),
		MaxWidth: p.width,
		Logger:   p.logger,
	})
	p.popup.SetOrigin(p.popupOrigin(p.popup.Size()))
}

// ClosePopup closes the overflow popup.
func (p *Pane) ClosePopup() { p.popup = nil }

// popupOrigin positions the popup against the trigger button if visible,
// otherwise against the trailing end of the strip, keeping it within the pane.
func (p *Pane) popupOrigin(size geom.Size) geom.Point {
	var (
		strip  = p.engine.StripBounds()
		anchor = strip
		origin geom.Point
	)
	if t := p.engine.ModeController().Trigger(); t != nil && t.Visible() {
		anchor = t.Bounds()
	}
	switch p.placement {
	case geom.Top:
		origin = geom.Point{X: anchor.Right() - size.Width, Y: strip.Bottom()}
	case geom.Bottom:
		origin = geom.Point{X: anchor.Right() - size.Width, Y: strip.Y - size.Height}
	case geom.Left:
		origin = geom.Point{X: strip.Right(), Y: anchor.Y}
	case geom.Right:
		origin = geom.Point{X: strip.X - size.Width, Y: anchor.Y}
	}
	origin.X = clamp(origin.X, 0, max(0, p.width-size.Width))
	origin.Y = clamp(origin.Y, 0, max(0, p.height-size.Height))
	return origin
}

//
// bubbletea model
//

func (p *Pane) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range p.tabs {
		if t.Content != nil {
			cmds = append(cmds, t.Content.Init())
		}
	}
	return tea.Batch(cmds...)
}

func (p *Pane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		p.Invalidate()
		// Keep the selected tab in view now the strip has changed size.
		p.Validate()
		p.SetSelected(p.selected)
	case PickedMsg:
		p.popup = nil
		p.SetSelected(msg.Index)
	case ClosedMsg:
		p.popup = nil
	case tea.KeyMsg:
		if p.popup != nil {
			return p, p.popup.Update(msg)
		}
		switch {
		case key.Matches(msg, keys.Tabs.Next):
			if n := len(p.tabs); n > 0 {
				p.SetSelected((p.selected + 1) % n)
			}
		case key.Matches(msg, keys.Tabs.Prev):
			if n := len(p.tabs); n > 0 {
				p.SetSelected((p.selected - 1 + n) % n)
			}
		case key.Matches(msg, keys.Tabs.Popup):
			p.OpenPopup()
			return p, textinput.Blink
		case key.Matches(msg, keys.Tabs.ToggleLayout):
			p.ToggleLayoutMode()
		case key.Matches(msg, keys.Tabs.Close):
			if c, ok := p.selectedClosable(); ok {
				if err := c.Close(); err != nil {
					return p, tui.ReportError(err, "closing tab")
				}
			}
		default:
			cmds = append(cmds, p.updateSelected(msg))
		}
	case tea.MouseMsg:
		if p.popup != nil {
			return p, p.popup.Update(msg)
		}
		if cmd, handled := p.handleMouse(msg); handled {
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, p.updateSelected(msg))
		}
	default:
		// Send remaining msg types to all tab contents.
		for _, t := range p.tabs {
			if t.Content != nil {
				var cmd tea.Cmd
				t.Content, cmd = t.Content.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}
	cmds = append(cmds, p.resizeContents())
	return p, tea.Batch(cmds...)
}

func (p *Pane) selectedClosable() (*ClosableTab, bool) {
	t := p.SelectedTab()
	if t == nil {
		return nil, false
	}
	c, ok := t.Component.(*ClosableTab)
	return c, ok
}

func (p *Pane) updateSelected(msg tea.Msg) tea.Cmd {
	t := p.SelectedTab()
	if t == nil || t.Content == nil {
		return nil
	}
	var cmd tea.Cmd
	t.Content, cmd = t.Content.Update(msg)
	return cmd
}

// handleMouse handles mouse presses and wheel scrolling on the strip.
func (p *Pane) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if msg.Action != tea.MouseActionPress {
		return nil, false
	}
	p.Validate()
	pt := geom.Point{X: msg.X, Y: msg.Y}
	if !p.engine.StripBounds().Contains(pt) {
		return nil, false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		p.engine.ScrollBackward()
		return nil, true
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		p.engine.ScrollForward()
		return nil, true
	case tea.MouseButtonLeft:
	default:
		return nil, true
	}
	switch p.engine.ButtonAt(pt) {
	case BackwardButton:
		p.engine.ScrollBackward()
		return nil, true
	case ForwardButton:
		p.engine.ScrollForward()
		return nil, true
	case TriggerButton:
		p.OpenPopup()
		return textinput.Blink, true
	}
	index := p.engine.TabAt(pt)
	if index < 0 {
		return nil, true
	}
	if c, ok := p.tabs[index].Component.(*ClosableTab); ok {
		if r, err := p.engine.TabBounds(index); err == nil {
			insets := p.TabInsets()
			local := pt.Sub(geom.Point{X: r.X + insets.Left, Y: r.Y + insets.Top})
			if c.OverClose(local) {
				if err := c.Close(); err != nil {
					return tui.ReportError(err, "closing tab"), true
				}
				return nil, true
			}
		}
	}
	p.SetSelected(index)
	return nil, true
}

// contentBounds is the area of the pane beneath the strip.
func (p *Pane) contentBounds() geom.Rect {
	strip := p.engine.StripBounds()
	switch p.placement {
	case geom.Bottom:
		return geom.Rect{Width: p.width, Height: max(0, p.height-strip.Height)}
	case geom.Left:
		return geom.Rect{X: strip.Width, Width: max(0, p.width-strip.Width), Height: p.height}
	case geom.Right:
		return geom.Rect{Width: max(0, p.width-strip.Width), Height: p.height}
	default:
		return geom.Rect{Y: strip.Height, Width: p.width, Height: max(0, p.height-strip.Height)}
	}
}

// resizeContents informs tab contents of the size available to them whenever
// it changes or tabs have been added or removed.
func (p *Pane) resizeContents() tea.Cmd {
	if p.width == 0 || p.height == 0 {
		return nil
	}
	p.Validate()
	size := p.contentBounds().Size()
	if size == p.contentSize {
		return nil
	}
	p.contentSize = size
	msg := tea.WindowSizeMsg{Width: size.Width, Height: size.Height}
	var cmds []tea.Cmd
	for _, t := range p.tabs {
		if t.Content != nil {
			var cmd tea.Cmd
			t.Content, cmd = t.Content.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

func (p *Pane) View() string {
	if p.width == 0 || p.height == 0 {
		return ""
	}
	p.Validate()

	var (
		strip   = p.engine.RenderStrip(p.selected)
		bounds  = p.contentBounds()
		content string
	)
	if t := p.SelectedTab(); t != nil && t.Content != nil {
		content = t.Content.View()
	}
	content = tui.Regular.Copy().
		Width(bounds.Width).
		Height(bounds.Height).
		MaxWidth(bounds.Width).
		MaxHeight(bounds.Height).
		Render(content)

	var view string
	switch p.placement {
	case geom.Bottom:
		view = lipgloss.JoinVertical(lipgloss.Left, content, strip)
	case geom.Left:
		view = lipgloss.JoinHorizontal(lipgloss.Top, strip, content)
	case geom.Right:
		view = lipgloss.JoinHorizontal(lipgloss.Top, content, strip)
	default:
		view = lipgloss.JoinVertical(lipgloss.Left, strip, content)
	}
	if p.popup != nil {
		origin := p.popup.Bounds().Origin()
		view = tui.Overlay(view, p.popup.View(), origin.X, origin.Y)
	}
	return view
}
