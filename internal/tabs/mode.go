package tabs

import (
	"fmt"

	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs/basic"
)

// LayoutMode is the strategy used when there are more tabs than fit in a
// single run.
type LayoutMode int

const (
	// Wrap flows tabs onto further runs.
	Wrap LayoutMode = iota
	// Scroll keeps tabs in a single run, scrolled with a pair of buttons.
	Scroll
)

func (m LayoutMode) String() string {
	switch m {
	case Wrap:
		return "wrap"
	case Scroll:
		return "scroll"
	default:
		return fmt.Sprintf("LayoutMode(%d)", int(m))
	}
}

func ValidLayoutModes() []string {
	return []string{Scroll.String(), Wrap.String()}
}

func ParseLayoutMode(s string) (LayoutMode, error) {
	switch s {
	case "wrap":
		return Wrap, nil
	case "scroll":
		return Scroll, nil
	default:
		return 0, fmt.Errorf("invalid layout mode: %q", s)
	}
}

// ModeListener is implemented by tab components that change their appearance
// depending on the layout mode.
type ModeListener interface {
	LayoutModeChanged(mode LayoutMode)
}

// ModeController installs the supporting elements of whichever layout mode is
// in force: the delegate layout, the decorating layout manager wrapping it,
// and in scroll mode the overflow trigger button and the viewport state.
type ModeController struct {
	engine    *Engine
	installed bool
	mode      LayoutMode

	scroll  *basic.ScrollLayout
	wrap    *basic.WrapLayout
	trigger *basic.Button
	logger  logging.Interface
}

func (mc *ModeController) Mode() LayoutMode { return mc.mode }

// Trigger returns the overflow popup trigger button, or nil outside of scroll
// mode.
func (mc *ModeController) Trigger() *basic.Button { return mc.trigger }

// Install switches to mode. Installing the current mode is a no-op.
func (mc *ModeController) Install(mode LayoutMode) {
	if mc.installed && mc.mode == mode {
		return
	}
	if mc.installed {
		mc.uninstall()
	}
	e := mc.engine
	placement := e.host.Placement()
	switch mode {
	case Scroll:
		mc.scroll = basic.NewScrollLayout(placement)
		mc.trigger = basic.NewButton(geom.South)
		e.bridge.delegate = mc.scroll
		e.store.resetViewport()
		e.host.SetLayout(&scrollDecorator{engine: e, delegate: mc.scroll, trigger: mc.trigger}, true)
	case Wrap:
		mc.wrap = basic.NewWrapLayout(placement)
		e.bridge.delegate = mc.wrap
		e.host.SetLayout(&wrapDecorator{engine: e, delegate: mc.wrap}, true)
	}
	mc.mode = mode
	mc.installed = true
	mc.logger.Debug("installed layout mode", "mode", mode, "placement", placement)
}

func (mc *ModeController) uninstall() {
	e := mc.engine
	// Restore the undecorated delegate before discarding it.
	if d := e.bridge.delegate; d != nil {
		e.host.SetLayout(d, false)
	}
	e.bridge.delegate = nil
	switch mc.mode {
	case Scroll:
		mc.scroll = nil
		mc.trigger = nil
		e.store.discardViewport()
	case Wrap:
		mc.wrap = nil
	}
	mc.installed = false
}

// Toggle flips between scroll and wrap mode. The flip is made on the host's
// layout policy, the change notification of which installs the new mode.
func (mc *ModeController) Toggle() {
	next := Scroll
	if mc.mode == Scroll {
		next = Wrap
	}
	mc.engine.host.SetLayoutPolicy(next)
}
