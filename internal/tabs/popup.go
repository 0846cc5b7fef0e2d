package tabs

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/go-runewidth"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs/basic"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/tui/keys"
)

// DefaultPopupRows is the maximum number of entries shown before the list
// scrolls.
const DefaultPopupRows = 30

// entryPadding is the number of cells either side of an entry's title.
const entryPadding = 2

var (
	popupStyle = tui.RoundedBorders.Copy().BorderForeground(tui.PopupBorderColor)
	entryStyle = tui.Regular.Copy().Padding(0, entryPadding)
)

// PopupEntry is a tab as it was when the popup was opened.
type PopupEntry struct {
	Index      int
	Title      string
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

// PickedMsg is sent when an entry is picked from the popup.
type PickedMsg struct {
	Index int
}

// ClosedMsg is sent when the popup is dismissed without a pick.
type ClosedMsg struct{}

type PopupOptions struct {
	// MaxRows is the maximum number of visible entries. Defaults to
	// DefaultPopupRows.
	MaxRows int
	// MaxWidth bounds the width of the popup, including its border.
	MaxWidth int
	Logger   logging.Interface
}

// Popup lists every tab by title, letting the user jump to a tab regardless of
// whether it is scrolled into view. It holds a snapshot of the tabs taken when
// it was opened and should be closed if tabs are added or removed.
type Popup struct {
	entries []PopupEntry
	// matches are positions in entries that match the filter, in display
	// order.
	matches []int
	// cursor is a position in matches.
	cursor int
	// offset is the position in matches of the first visible row.
	offset int
	rows   int
	width  int
	// scrollbar is shown when there are more tabs than rows.
	scrollbar bool
	origin    geom.Point
	filter    textinput.Model
	logger    logging.Interface
}

// NewPopup snapshots the tabs of c, with the entry for the selected tab under
// the cursor.
func NewPopup(c basic.Container, selected int, opts PopupOptions) *Popup {
	if opts.MaxRows <= 0 {
		opts.MaxRows = DefaultPopupRows
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	p := &Popup{
		entries: make([]PopupEntry, c.TabCount()),
		matches: make([]int, c.TabCount()),
		rows:    min(opts.MaxRows, c.TabCount()),
		logger:  opts.Logger,
	}
	p.scrollbar = c.TabCount() > p.rows
	longest := 0
	for i := range c.TabCount() {
		p.entries[i] = PopupEntry{
			Index:      i,
			Title:      c.TitleAt(i),
			Foreground: c.ForegroundAt(i),
			Background: c.BackgroundAt(i),
		}
		p.matches[i] = i
		longest = max(longest, runewidth.StringWidth(p.entries[i].Title))
	}
	p.width = longest + 2*entryPadding
	if opts.MaxWidth > 0 {
		// Leave room for the border and scrollbar.
		p.width = max(1, min(p.width, opts.MaxWidth-2-p.scrollbarWidth()))
	}

	p.filter = textinput.New()
	p.filter.Prompt = "/"
	p.filter.Placeholder = "filter"
	p.filter.Width = max(1, p.width-2)
	p.filter.Focus()

	if selected >= 0 && selected < len(p.entries) {
		p.cursor = selected
	}
	p.ensureCursorVisible()
	return p
}

// Entries returns the entries currently listed, in display order.
func (p *Popup) Entries() []PopupEntry {
	entries := make([]PopupEntry, len(p.matches))
	for i, m := range p.matches {
		entries[i] = p.entries[m]
	}
	return entries
}

// Cursor returns the entry under the cursor.
func (p *Popup) Cursor() (PopupEntry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return PopupEntry{}, false
	}
	return p.entries[p.matches[p.cursor]], true
}

// Offset is the position of the first visible entry.
func (p *Popup) Offset() int { return p.offset }
func (p *Popup) Rows() int   { return p.rows }

func (p *Popup) scrollbarWidth() int {
	if p.scrollbar {
		return tui.ScrollbarWidth
	}
	return 0
}

// Size is the size of the popup including its border.
func (p *Popup) Size() geom.Size {
	// Filter line plus entries, plus top and bottom border.
	return geom.Size{
		Width:  p.width + p.scrollbarWidth() + 2,
		Height: 1 + p.rows + 2,
	}
}

func (p *Popup) SetOrigin(origin geom.Point) { p.origin = origin }

// Bounds is the area the popup occupies within the pane.
func (p *Popup) Bounds() geom.Rect {
	size := p.Size()
	return geom.Rect{X: p.origin.X, Y: p.origin.Y, Width: size.Width, Height: size.Height}
}

// Pick picks the entry at position pos in the list as displayed.
func (p *Popup) Pick(pos int) tea.Cmd {
	if pos < 0 || pos >= len(p.matches) {
		return nil
	}
	entry := p.entries[p.matches[pos]]
	p.logger.Debug("picked tab from popup", "index", entry.Index, "title", entry.Title)
	return tui.CmdHandler(PickedMsg{Index: entry.Index})
}

func (p *Popup) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Global.Escape):
			return tui.CmdHandler(ClosedMsg{})
		case key.Matches(msg, keys.Navigation.Enter):
			return p.Pick(p.cursor)
		case key.Matches(msg, keys.Navigation.LineUp):
			p.moveCursor(-1)
		case key.Matches(msg, keys.Navigation.LineDown):
			p.moveCursor(1)
		case key.Matches(msg, keys.Navigation.PageUp):
			p.moveCursor(-p.rows)
		case key.Matches(msg, keys.Navigation.PageDown):
			p.moveCursor(p.rows)
		case key.Matches(msg, keys.Navigation.GotoTop):
			p.moveCursor(-len(p.matches))
		case key.Matches(msg, keys.Navigation.GotoBottom):
			p.moveCursor(len(p.matches))
		default:
			var cmd tea.Cmd
			before := p.filter.Value()
			p.filter, cmd = p.filter.Update(msg)
			if p.filter.Value() != before {
				p.applyFilter()
			}
			return cmd
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			p.moveCursor(-1)
			return nil
		case tea.MouseButtonWheelDown:
			p.moveCursor(1)
			return nil
		case tea.MouseButtonLeft:
		default:
			return nil
		}
		pt := geom.Point{X: msg.X, Y: msg.Y}
		if !p.Bounds().Contains(pt) {
			return tui.CmdHandler(ClosedMsg{})
		}
		// Entries start below the top border and the filter line.
		row := pt.Y - p.origin.Y - 2
		if row < 0 || row >= p.rows {
			return nil
		}
		return p.Pick(p.offset + row)
	}
	return nil
}

func (p *Popup) moveCursor(delta int) {
	if len(p.matches) == 0 {
		return
	}
	p.cursor = clamp(p.cursor+delta, 0, len(p.matches)-1)
	p.ensureCursorVisible()
}

func (p *Popup) ensureCursorVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	} else if p.cursor >= p.offset+p.rows {
		p.offset = p.cursor - p.rows + 1
	}
	p.offset = clamp(p.offset, 0, max(0, len(p.matches)-p.rows))
}

// applyFilter lists the entries whose title contains the filter, closest
// matches first. The entry under the cursor stays under the cursor if it still
// matches.
func (p *Popup) applyFilter() {
	var current = -1
	if p.cursor < len(p.matches) {
		current = p.matches[p.cursor]
	}
	query := strings.ToLower(p.filter.Value())
	p.matches = p.matches[:0]
	for i, e := range p.entries {
		if strings.Contains(strings.ToLower(e.Title), query) {
			p.matches = append(p.matches, i)
		}
	}
	if query != "" {
		slices.SortStableFunc(p.matches, func(a, b int) int {
			return levenshtein.ComputeDistance(query, strings.ToLower(p.entries[a].Title)) -
				levenshtein.ComputeDistance(query, strings.ToLower(p.entries[b].Title))
		})
	}
	p.cursor = max(0, slices.Index(p.matches, current))
	p.offset = 0
	p.ensureCursorVisible()
}

func (p *Popup) View() string {
	lines := make([]string, 0, p.rows)
	for r := range p.rows {
		pos := p.offset + r
		if pos >= len(p.matches) {
			lines = append(lines, strings.Repeat(" ", p.width))
			continue
		}
		lines = append(lines, p.renderEntry(p.entries[p.matches[pos]], pos == p.cursor))
	}
	list := strings.Join(lines, "\n")
	if p.scrollbar {
		list = lipgloss.JoinHorizontal(lipgloss.Top,
			list,
			tui.Scrollbar(p.rows, len(p.matches), p.rows, p.offset),
		)
	}
	filter := tui.Fit(p.filter.View(), p.width+p.scrollbarWidth())
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Left, filter, list))
}

func (p *Popup) renderEntry(e PopupEntry, cursor bool) string {
	style := entryStyle.Copy().Width(p.width)
	if e.Foreground != nil {
		style = style.Foreground(e.Foreground)
	}
	if e.Background != nil {
		style = style.Background(e.Background)
	}
	if cursor {
		style = style.Bold(true)
	}
	title := runewidth.Truncate(e.Title, max(0, p.width-2*entryPadding), "…")
	return style.Render(title)
}
