// Package widget provides the concrete drawables of the editor screen:
// the canvas view, the status bar and its parts, spacers and the
// size-error banner.
package widget

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
)

// drawText writes text at (x, y) without leaving target.
func drawText(dst *core.Canvas, target core.Rect, x, y int, text string, style core.Style) int {
	i := 0
	for _, r := range text {
		if target.Contains(x+i, y) {
			dst.DrawCell(x+i, y, core.NewCell(r, style), core.BlendOverwrite)
		}
		i++
	}
	return i
}

// fill paints every cell of target with cell.
func fill(dst *core.Canvas, target core.Rect, cell core.Cell) {
	for y := target.Y; y < target.Bottom(); y++ {
		for x := target.X; x < target.Right(); x++ {
			dst.DrawCell(x, y, cell, core.BlendOverwrite)
		}
	}
}

// centerX returns the column at which text of the given length is centered in target.
func centerX(target core.Rect, length int) int {
	return target.X + core.Max((target.W-length)/2, 0)
}

// runeLen counts the cells a string occupies.
func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
