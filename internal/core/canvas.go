package core

import (
	"fmt"
	"strings"
)

// Canvas is a rectangular grid of styled cells.
// Every row has the same length; constructors that adopt external rows
// reject buffers that would break this.
type Canvas struct {
	cells [][]Cell
}

// NewCanvas creates a canvas of default cells.
// Zero dimensions are legal and yield an empty canvas.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasFilled(width, height, DefaultCell())
}

// NewCanvasFilled creates a canvas with every cell set to fill.
func NewCanvasFilled(width, height int, fill Cell) *Canvas {
	c := &Canvas{}
	c.cells = allocate(Max(width, 0), Max(height, 0), fill)
	return c
}

// NewCanvasWithBuffer creates a canvas holding a copy of rows.
// Returns ErrNonRectangularBuffer if any row length differs from the first.
func NewCanvasWithBuffer(rows [][]Cell) (*Canvas, error) {
	if err := checkRectangular(rows); err != nil {
		return nil, err
	}
	return &Canvas{cells: copyRows(rows)}, nil
}

// allocate creates a width x height grid filled with fill.
func allocate(width, height int, fill Cell) [][]Cell {
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = fill
		}
		cells[y] = row
	}
	return cells
}

func copyRows(rows [][]Cell) [][]Cell {
	out := make([][]Cell, len(rows))
	for y, row := range rows {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

func checkRectangular(rows [][]Cell) error {
	if len(rows) == 0 {
		return nil
	}
	want := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != want {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrNonRectangularBuffer, i+1, len(row), want)
		}
	}
	return nil
}

// Width returns the canvas width in cells. A canvas without rows has width 0.
func (c *Canvas) Width() int {
	if len(c.cells) == 0 {
		return 0
	}
	return len(c.cells[0])
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return len(c.cells)
}

// Bounds returns the canvas area anchored at the origin.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.Width(), c.Height())
}

// Buffer returns a copy of the rows.
func (c *Canvas) Buffer() [][]Cell {
	return copyRows(c.cells)
}

// Cell returns the cell at the given position.
// Returns the default cell for out-of-bounds coordinates.
func (c *Canvas) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return DefaultCell()
	}
	return c.cells[y][x]
}

func (c *Canvas) inBounds(x, y int) bool {
	return y >= 0 && y < len(c.cells) && x >= 0 && x < len(c.cells[y])
}

// DrawCell blends cell into the position (x, y).
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) DrawCell(x, y int, cell Cell, mode BlendMode) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y][x] = c.cells[y][x].Blend(cell, mode)
}

// DrawText writes a string horizontally starting at (x, y), one cell per rune.
// Characters that extend beyond canvas bounds are clipped.
func (c *Canvas) DrawText(x, y int, text string, style Style, mode BlendMode) {
	i := 0
	for _, r := range text {
		c.DrawCell(x+i, y, NewCell(r, style), mode)
		i++
	}
}

// Fill sets every cell to fill.
func (c *Canvas) Fill(fill Cell) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = fill
		}
	}
}

// Clear resets every cell to the default cell.
func (c *Canvas) Clear() {
	c.Fill(DefaultCell())
}

// Resize changes the canvas dimensions.
// The overlapping top-left region is kept; every other cell is the default cell.
func (c *Canvas) Resize(width, height int) {
	width, height = Max(width, 0), Max(height, 0)
	if width == c.Width() && height == c.Height() {
		return
	}

	old := c.cells
	oldW, oldH := c.Width(), c.Height()
	c.cells = allocate(width, height, DefaultCell())

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(c.cells[y][:copyW], old[y][:copyW])
	}
}

// Load replaces the whole buffer with a copy of rows.
// The canvas is left untouched if rows are not rectangular.
func (c *Canvas) Load(rows [][]Cell) error {
	if err := checkRectangular(rows); err != nil {
		return err
	}
	c.cells = copyRows(rows)
	return nil
}

// String returns the glyphs of each row joined with newlines.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.Width()*c.Height() + c.Height())

	for y, row := range c.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Char)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.Height() {
		return strings.Repeat(" ", c.Width())
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Char)
	}
	return sb.String()
}
