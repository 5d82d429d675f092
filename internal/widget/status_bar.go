package widget

import (
	"fmt"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
)

// Mode is the editing mode shown in the status bar.
type Mode int

const (
	ModeNormal Mode = iota
	ModeReplace
)

// Modes lists every mode in display order.
var Modes = []Mode{ModeNormal, ModeReplace}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeReplace:
		return "Replace"
	default:
		return "Unknown"
	}
}

// Next returns the mode that follows m, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

func (m Mode) color() core.Color {
	if m == ModeReplace {
		return core.ColorBlue
	}
	return core.ColorWhite
}

// ModeBar shows the current mode as a reversed label.
type ModeBar struct {
	Mode Mode
}

var _ layout.Drawable = (*ModeBar)(nil)

func NewModeBar(mode Mode) *ModeBar {
	return &ModeBar{Mode: mode}
}

func (b *ModeBar) Render(dst *core.Canvas, target core.Rect) {
	label := fmt.Sprintf(" %s ", b.Mode)
	style := core.NewStyle(b.Mode.color(), core.ColorNone, core.Modifiers{Reverse: true})
	drawText(dst, target, centerX(target, runeLen(label)), target.Y, label, style)
}

// SizePreferred fits the longest mode name plus one cell of padding per side.
func (b *ModeBar) SizePreferred() layout.Preferences {
	longest := 0
	for _, m := range Modes {
		longest = core.Max(longest, len(m.String()))
	}
	return layout.Preferences{
		Horizontal: layout.Fixed(longest + 2),
		Vertical:   layout.Fixed(1),
	}
}

// cursorBarTemplate sizes the cursor bar for three-digit coordinates.
const cursorBarTemplate = " 000:000 "

// CursorBar shows the cursor position.
type CursorBar struct {
	X, Y int
}

var _ layout.Drawable = (*CursorBar)(nil)

func NewCursorBar(x, y int) *CursorBar {
	return &CursorBar{X: x, Y: y}
}

func (b *CursorBar) Render(dst *core.Canvas, target core.Rect) {
	label := fmt.Sprintf(" %d:%d", b.X, b.Y)
	style := core.NewStyle(core.ColorLightGray, core.ColorNone, core.Modifiers{Reverse: true})
	drawText(dst, target, centerX(target, runeLen(label)), target.Y, label, style)
}

func (b *CursorBar) SizePreferred() layout.Preferences {
	return layout.Preferences{
		Horizontal: layout.Fixed(len(cursorBarTemplate)),
		Vertical:   layout.Fixed(1),
	}
}

// StatusBar lays out the mode on the left and the cursor on the right.
type StatusBar struct {
	mode   *ModeBar
	cursor *CursorBar
	row    *layout.Allocator
}

var _ layout.Drawable = (*StatusBar)(nil)

// NewStatusBar creates a status bar for the given mode and cursor position.
func NewStatusBar(mode Mode, x, y int) *StatusBar {
	mb := NewModeBar(mode)
	cb := NewCursorBar(x, y)
	return &StatusBar{
		mode:   mb,
		cursor: cb,
		row:    layout.New(layout.Horizontal, 1, mb, NewFlexibleSpacer(1), cb),
	}
}

func (s *StatusBar) SetMode(mode Mode) {
	s.mode.Mode = mode
}

func (s *StatusBar) SetCursor(x, y int) {
	s.cursor.X, s.cursor.Y = x, y
}

func (s *StatusBar) Render(dst *core.Canvas, target core.Rect) {
	s.row.Render(dst, target)
}

func (s *StatusBar) SizePreferred() layout.Preferences {
	return s.row.SizePreferred()
}
