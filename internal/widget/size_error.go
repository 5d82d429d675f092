package widget

import (
	"fmt"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
)

const sizeErrorHeader = "Terminal window is too small"

// SizeError is shown instead of the editor when the terminal cannot hold it.
// It reports the current terminal size against the minimum required.
type SizeError struct {
	MinWidth  int
	MinHeight int
}

var _ layout.Drawable = (*SizeError)(nil)

func NewSizeError(minWidth, minHeight int) *SizeError {
	return &SizeError{MinWidth: minWidth, MinHeight: minHeight}
}

// Render fills target with a black banner and centers the message lines in it.
// The current size is taken from dst, which is the whole frame.
func (e *SizeError) Render(dst *core.Canvas, target core.Rect) {
	background := core.NewStyle(core.ColorNone, core.ColorBlack, core.Modifiers{})
	fill(dst, target, core.NewCell(' ', background))

	y := target.Y
	drawText(dst, target, centerX(target, runeLen(sizeErrorHeader)), y, sizeErrorHeader, background)

	e.renderDimension(dst, target, y+1, "Width", dst.Width(), e.MinWidth, background)
	e.renderDimension(dst, target, y+2, "Height", dst.Height(), e.MinHeight, background)
}

func (e *SizeError) renderDimension(dst *core.Canvas, target core.Rect, y int, label string, current, needed int, background core.Style) {
	prefix := label + ": "
	value := fmt.Sprint(current)
	suffix := fmt.Sprintf(" needed %d", needed)

	valueStyle := background
	valueStyle.Fg = core.ColorGreen
	if current < needed {
		valueStyle.Fg = core.ColorRed
	}

	x := centerX(target, runeLen(prefix)+runeLen(value)+runeLen(suffix))
	x += drawText(dst, target, x, y, prefix, background)
	x += drawText(dst, target, x, y, value, valueStyle)
	drawText(dst, target, x, y, suffix, background)
}

func (e *SizeError) SizePreferred() layout.Preferences {
	return layout.Preferences{
		Horizontal: layout.Flexible(len(sizeErrorHeader) + 4),
		Vertical:   layout.Flexible(3 + 4),
	}
}
