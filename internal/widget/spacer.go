package widget

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
)

// Spacer takes up room in a layout and draws nothing.
type Spacer struct {
	prefs layout.Preferences
}

var _ layout.Drawable = (*Spacer)(nil)

// NewSpacer creates a spacer with per-axis sizes and flexibility.
func NewSpacer(width, height int, flexibleW, flexibleH bool) *Spacer {
	return &Spacer{prefs: layout.Preferences{
		Horizontal: layout.SizePreference{Size: width, Flexible: flexibleW},
		Vertical:   layout.SizePreference{Size: height, Flexible: flexibleH},
	}}
}

// NewFlexibleSpacer creates a spacer of the same size on both axes that
// grows into leftover space.
func NewFlexibleSpacer(size int) *Spacer {
	return NewSpacer(size, size, true, true)
}

func (s *Spacer) Render(*core.Canvas, core.Rect) {}

func (s *Spacer) SizePreferred() layout.Preferences {
	return s.prefs
}
