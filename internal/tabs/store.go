package tabs

import (
	"fmt"

	"github.com/leg100/tabstrip/internal/geom"
)

// ViewportState is the visible window onto the run of tabs in scroll mode.
type ViewportState struct {
	// Offset is the view position. It is always aligned to the origin of the
	// leading tab.
	Offset     geom.Point
	ExtentSize geom.Size
	// LeadingVisibleIndex is the first visible tab, or 0 when there are no
	// tabs.
	LeadingVisibleIndex int
}

// Store records the tab rectangles computed by the most recent layout pass,
// along with the viewport state when in scroll mode.
type Store struct {
	rects    []geom.Rect
	viewport *ViewportState
}

// RecordLayout replaces the recorded rectangles. Rectangles are in the
// untranslated coordinate space of the layout that computed them.
func (s *Store) RecordLayout(rects []geom.Rect) {
	s.rects = append(s.rects[:0], rects...)
	if s.viewport != nil {
		s.viewport.LeadingVisibleIndex = clamp(s.viewport.LeadingVisibleIndex, 0, max(0, len(s.rects)-1))
	}
}

func (s *Store) Len() int { return len(s.rects) }

func (s *Store) BoundsOf(index int) (geom.Rect, error) {
	if index < 0 || index >= len(s.rects) {
		return geom.Rect{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, index, len(s.rects))
	}
	return s.rects[index], nil
}

// TranslateForViewport returns the bounds of a tab shifted from view
// coordinates into container coordinates by (origin - offset).
func (s *Store) TranslateForViewport(index int, origin, offset geom.Point) (geom.Rect, error) {
	r, err := s.BoundsOf(index)
	if err != nil {
		return geom.Rect{}, err
	}
	return r.Translate(origin.Sub(offset)), nil
}

// Viewport returns the viewport state, or nil when not in scroll mode.
func (s *Store) Viewport() *ViewportState { return s.viewport }

func (s *Store) resetViewport() {
	s.viewport = &ViewportState{}
}

func (s *Store) discardViewport() {
	s.viewport = nil
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
