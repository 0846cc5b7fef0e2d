package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/uuid"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/pubsub"
	"github.com/leg100/tabstrip/internal/tabs"
	"github.com/leg100/tabstrip/internal/tabs/basic"
	"github.com/leg100/tabstrip/internal/tui"
	"github.com/leg100/tabstrip/internal/tui/keys"
)

// footerHeight is the height of the footer beneath the pane.
const footerHeight = 1

var footerStyle = tui.Padded.Copy().Foreground(tui.HelpDesc)

// levelColors colors log messages in the footer according to their level.
var levelColors = map[string]lipgloss.TerminalColor{
	"DEBUG": tui.DebugLogLevel,
	"INFO":  tui.InfoLogLevel,
	"WARN":  tui.WarnLogLevel,
	"ERROR": tui.ErrorLogLevel,
}

// model is the top-level model of the demo program: a tabbed pane of closable
// tabs, with a footer reporting the latest log message.
type model struct {
	pane   *tabs.Pane
	opts   tabs.PaneOptions
	logger logging.Interface

	// initial is the number of tabs opened on startup and upon reset.
	initial int
	// created is the number of tabs created so far and is used to title new
	// tabs.
	created     int
	closable    bool
	showHelp    bool
	width       int
	height      int
	footer      string
	footerColor lipgloss.TerminalColor

	dump io.Writer
}

type modelOptions struct {
	Tabs   int
	Pane   tabs.PaneOptions
	Logger logging.Interface
	// Dump, if non-nil, receives a dump of every message.
	Dump io.Writer
}

func newModel(opts modelOptions) *model {
	if opts.Logger == nil {
		opts.Logger = logging.Discard
	}
	opts.Pane.Logger = opts.Logger
	m := &model{
		opts:     opts.Pane,
		logger:   opts.Logger,
		initial:  opts.Tabs,
		closable: true,
		dump:     opts.Dump,
	}
	m.logger.AddArgsUpdater(&logging.ReferenceUpdater[*tabs.Tab]{
		Getter: m,
		Name:   "tab",
		Field:  "TabID",
	})
	m.reset()
	return m
}

// Get retrieves a tab from the current pane by ID.
func (m *model) Get(id uuid.UUID) (*tabs.Tab, bool) {
	if m.pane == nil {
		return nil, false
	}
	return m.pane.Get(id)
}

// reset discards every tab and opens the initial tabs afresh.
func (m *model) reset() {
	m.pane = tabs.NewPane(m.opts)
	m.created = 0
	for range m.initial {
		m.newTab()
	}
	if m.width > 0 {
		m.pane.Update(m.paneSize())
	}
}

func (m *model) newTab() *tabs.Tab {
	title := fmt.Sprintf("Test %d", m.created)
	m.created++
	tab := m.pane.AddTab(tabs.Tab{
		Title:   title,
		Content: newContent(title),
	})
	if m.closable {
		// The tab was just appended so its index is always in range.
		_ = m.pane.SetTabComponent(len(m.pane.Tabs())-1, tabs.NewClosableTab(tab.ID, m.pane, m.pane.RemoveTab))
	}
	return tab
}

// toggleComponents swaps between closable tabs and plain titles.
func (m *model) toggleComponents() error {
	m.closable = !m.closable
	var errs []error
	for i, tab := range m.pane.Tabs() {
		var c basic.Component
		if m.closable {
			c = tabs.NewClosableTab(tab.ID, m.pane, m.pane.RemoveTab)
		}
		errs = append(errs, m.pane.SetTabComponent(i, c))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	m.logger.Info("toggled tab components", "closable", m.closable)
	return nil
}

func (m *model) paneSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  m.width,
		Height: max(0, m.height-footerHeight),
	}
}

func (m *model) Init() tea.Cmd {
	return m.pane.Init()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.dump != nil {
		spew.Fdump(m.dump, msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		_, cmd := m.pane.Update(m.paneSize())
		return m, cmd
	case tea.KeyMsg:
		if key.Matches(msg, keys.Global.Quit) {
			return m, tea.Quit
		}
		// Keys are for the popup's filter while it is open.
		if m.pane.Popup() != nil {
			break
		}
		if m.showHelp {
			if key.Matches(msg, keys.Global.Help, keys.Global.Escape) {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Global.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, keys.Tabs.New):
			tab := m.newTab()
			m.pane.SetSelected(len(m.pane.Tabs()) - 1)
			_, cmd := m.pane.Update(m.paneSize())
			return m, tea.Batch(cmd, tui.ReportInfo("opened tab %s", tab.Title))
		case key.Matches(msg, keys.Tabs.ToggleComponents):
			if err := m.toggleComponents(); err != nil {
				return m, tui.ReportError(err, "toggling tab components")
			}
			return m, nil
		case key.Matches(msg, keys.Tabs.Reset):
			m.closable = true
			m.reset()
			return m, tui.ReportInfo("reset tabs")
		}
	case pubsub.Event[logging.Message]:
		m.footer = msg.Payload.Message
		m.footerColor = levelColors[msg.Payload.Level]
		return m, nil
	// Status reports are logged rather than written to the footer directly.
	// The footer then follows the order of the log, and a log record relayed
	// late cannot overwrite a newer report.
	case tui.InfoMsg:
		m.logger.Info(string(msg))
		return m, nil
	case tui.ErrorMsg:
		m.logger.Error(fmt.Sprintf(msg.Message, msg.Args...) + ": " + msg.Error.Error())
		return m, nil
	}
	_, cmd := m.pane.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var body string
	size := m.paneSize()
	if m.showHelp {
		help := fullHelpView(
			keys.KeyMapToSlice(keys.Tabs),
			keys.KeyMapToSlice(keys.Global),
			tui.RemoveDuplicateBindings(append(
				keys.KeyMapToSlice(keys.Navigation),
				keys.Global.Escape,
			)),
		)
		body = lipgloss.Place(size.Width, size.Height, lipgloss.Center, lipgloss.Center, help)
	} else {
		body = m.pane.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.footerView())
}

func (m *model) footerView() string {
	var (
		hint  = shortHelpView([]key.Binding{keys.Global.Help, keys.Global.Quit}, m.width)
		avail = max(0, m.width-tui.Width(hint))
		style = footerStyle.Copy()
	)
	if m.footerColor != nil {
		style = style.Foreground(m.footerColor)
	}
	msg := style.
		Width(avail).
		MaxWidth(avail).
		MaxHeight(footerHeight).
		Render(m.footer)
	return lipgloss.JoinHorizontal(lipgloss.Top, msg, hint)
}
