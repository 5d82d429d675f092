package widget

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
)

// cursorOverlay marks the cursor cell: reverse video over the cell's own style.
var cursorOverlay = core.Modifiers{Reverse: true}

// CanvasView draws a canvas at its natural size.
type CanvasView struct {
	canvas    *core.Canvas
	cursorX   int
	cursorY   int
	hasCursor bool
}

var _ layout.Drawable = (*CanvasView)(nil)

// NewCanvasView creates a view of canvas without a cursor.
func NewCanvasView(canvas *core.Canvas) *CanvasView {
	return &CanvasView{canvas: canvas}
}

// WithCursor highlights the cell at (x, y).
func (v *CanvasView) WithCursor(x, y int) *CanvasView {
	v.cursorX, v.cursorY = x, y
	v.hasCursor = true
	return v
}

// Canvas returns the viewed canvas.
func (v *CanvasView) Canvas() *core.Canvas {
	return v.canvas
}

// Render copies the canvas into target, clipping whatever does not fit.
func (v *CanvasView) Render(dst *core.Canvas, target core.Rect) {
	w := core.Min(v.canvas.Width(), target.W)
	h := core.Min(v.canvas.Height(), target.H)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := v.canvas.Cell(x, y)
			if v.hasCursor && x == v.cursorX && y == v.cursorY {
				cell.Style.Modifiers = cell.Style.Modifiers.Combine(cursorOverlay)
			}
			dst.DrawCell(target.X+x, target.Y+y, cell, core.BlendOverwrite)
		}
	}
}

// SizePreferred is the canvas size, fixed on both axes.
func (v *CanvasView) SizePreferred() layout.Preferences {
	return layout.Preferences{
		Horizontal: layout.Fixed(v.canvas.Width()),
		Vertical:   layout.Fixed(v.canvas.Height()),
	}
}
