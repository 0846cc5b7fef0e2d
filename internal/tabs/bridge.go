package tabs

import "github.com/leg100/tabstrip/internal/tabs/basic"

// Bridge lets the delegate layout strategy run as if it were the container's
// own layout manager.
type Bridge struct {
	host     Host
	delegate basic.Strategy
}

// RunWithDelegate runs action with the delegate installed as the host's layout
// manager, so that any geometry queried through the host within action is in
// the delegate's untranslated coordinate space. The prior layout manager is
// restored afterwards, including when action panics.
//
// Swapping layout managers invalidates the host unless suppressInvalidation is
// true. With no delegate installed, action runs directly with a nil strategy.
func (b *Bridge) RunWithDelegate(action func(basic.Strategy), suppressInvalidation bool) {
	if b.delegate == nil {
		action(nil)
		return
	}
	prior := b.host.Layout()
	b.host.SetLayout(b.delegate, !suppressInvalidation)
	defer b.host.SetLayout(prior, !suppressInvalidation)

	action(b.delegate)
}

// Delegate returns the installed delegate, or nil.
func (b *Bridge) Delegate() basic.Strategy { return b.delegate }
