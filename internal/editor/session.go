// Package editor holds the editing session: the canvas being drawn, the
// cursor, the current mode and brush, and the drawable tree that shows them.
// It contains no terminal code; the platform feeds it actions and renders
// the frames it composes.
package editor

import (
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/layout"
	"github.com/vovakirdan/tui-sketch/internal/widget"
)

// Effect is something Apply asks the driver to do outside the session.
type Effect int

const (
	EffectNone   Effect = iota
	EffectSave          // Persist the canvas
	EffectExport        // Write a text snapshot
	EffectQuit          // Session ended
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectSave:
		return "save"
	case EffectExport:
		return "export"
	case EffectQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// DefaultPalette is the brush color cycle used when none is configured.
var DefaultPalette = []core.Color{
	core.ColorWhite,
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
}

// Options configure a new session.
type Options struct {
	Margin  int          // Gap between the canvas and the status bar
	Palette []core.Color // Brush colors cycled by ActionNextColor
	Bold    bool         // Initial brush modifiers
	Italic  bool
}

// DefaultOptions returns the options of a plain session.
func DefaultOptions() Options {
	return Options{
		Margin:  1,
		Palette: DefaultPalette,
	}
}

// Brush is the style applied by typing and painting.
type Brush struct {
	palette   []core.Color
	index     int
	modifiers core.Modifiers
}

// Style returns the brush as a cell style.
func (b Brush) Style() core.Style {
	return core.NewStyle(b.Color(), core.ColorNone, b.modifiers)
}

// Color returns the current brush color.
func (b Brush) Color() core.Color {
	if len(b.palette) == 0 {
		return core.ColorNone
	}
	return b.palette[b.index]
}

func (b *Brush) nextColor() {
	if len(b.palette) > 0 {
		b.index = (b.index + 1) % len(b.palette)
	}
}

// Session is one editing session over a canvas.
type Session struct {
	name    string
	canvas  *core.Canvas
	cursorX int
	cursorY int
	mode    widget.Mode
	brush   Brush
	margin  int
	dirty   bool
	ended   bool
}

// New creates a session editing canvas. A nil canvas starts empty.
func New(name string, canvas *core.Canvas, opts Options) *Session {
	if canvas == nil {
		canvas = core.NewCanvas(0, 0)
	}
	palette := opts.Palette
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Session{
		name:   name,
		canvas: canvas,
		mode:   widget.ModeNormal,
		brush: Brush{
			palette:   palette,
			modifiers: core.Modifiers{Bold: opts.Bold, Italic: opts.Italic},
		},
		margin: core.Max(opts.Margin, 0),
	}
}

// Name returns the name the sketch is stored under.
func (s *Session) Name() string {
	return s.name
}

// SetName renames the sketch.
func (s *Session) SetName(name string) {
	s.name = name
}

// Canvas returns the canvas being edited.
func (s *Session) Canvas() *core.Canvas {
	return s.canvas
}

func (s *Session) Mode() widget.Mode {
	return s.mode
}

func (s *Session) Brush() Brush {
	return s.brush
}

// Cursor returns the cursor position in canvas coordinates.
func (s *Session) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// Ended reports whether the session received a quit action.
func (s *Session) Ended() bool {
	return s.ended
}

// Dirty reports whether the canvas changed since it was loaded or saved.
func (s *Session) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag.
func (s *Session) MarkSaved() {
	s.dirty = false
}

// Apply performs one input and reports what the driver must do about it.
func (s *Session) Apply(in core.Input) Effect {
	switch in.Action {
	case core.ActionQuit:
		s.ended = true
		return EffectQuit
	case core.ActionUp:
		s.moveCursor(0, -1)
	case core.ActionDown:
		s.moveCursor(0, 1)
	case core.ActionLeft:
		s.moveCursor(-1, 0)
	case core.ActionRight:
		s.moveCursor(1, 0)
	case core.ActionToggleMode:
		s.mode = s.mode.Next()
	case core.ActionType:
		if s.mode != widget.ModeReplace {
			return EffectNone
		}
		s.draw(core.NewCell(in.Rune, s.brush.Style()), core.BlendOverwrite)
		s.moveCursor(1, 0)
	case core.ActionPaint:
		s.draw(core.NewCell(' ', s.brush.Style()), core.BlendOnlyStyle)
	case core.ActionErase:
		s.draw(core.NewCell(' ', core.DefaultStyle()), core.BlendOnlyCharacter)
	case core.ActionNextColor:
		s.brush.nextColor()
	case core.ActionToggleBold:
		s.brush.modifiers.Bold = !s.brush.modifiers.Bold
	case core.ActionToggleItalic:
		s.brush.modifiers.Italic = !s.brush.modifiers.Italic
	case core.ActionSave:
		return EffectSave
	case core.ActionExport:
		return EffectExport
	}
	return EffectNone
}

func (s *Session) draw(cell core.Cell, mode core.BlendMode) {
	s.canvas.DrawCell(s.cursorX, s.cursorY, cell, mode)
	s.dirty = true
}

// moveCursor shifts the cursor, keeping it on the canvas.
func (s *Session) moveCursor(dx, dy int) {
	s.cursorX = core.Clamp(s.cursorX+dx, 0, core.Max(s.canvas.Width()-1, 0))
	s.cursorY = core.Clamp(s.cursorY+dy, 0, core.Max(s.canvas.Height()-1, 0))
}

// Resize changes the canvas size and pulls the cursor back onto it.
func (s *Session) Resize(width, height int) {
	s.canvas.Resize(width, height)
	s.moveCursor(0, 0)
	s.dirty = true
}

// Load replaces the canvas contents and resets the cursor.
func (s *Session) Load(rows [][]core.Cell) error {
	if err := s.canvas.Load(rows); err != nil {
		return err
	}
	s.cursorX, s.cursorY = 0, 0
	s.dirty = false
	return nil
}

// Tree builds the drawable tree for the current state: the canvas above
// the status bar.
func (s *Session) Tree() layout.Drawable {
	return layout.New(layout.Vertical, s.margin,
		widget.NewCanvasView(s.canvas).WithCursor(s.cursorX, s.cursorY),
		widget.NewStatusBar(s.mode, s.cursorX, s.cursorY),
	)
}

// Compose renders a width x height frame. When the tree does not fit, the
// frame shows a size error naming the minimum size instead.
func (s *Session) Compose(width, height int) *core.Canvas {
	frame := core.NewCanvas(width, height)
	tree := s.Tree()

	if prefs := tree.SizePreferred(); !prefs.Fits(width, height) {
		widget.NewSizeError(prefs.Horizontal.Size, prefs.Vertical.Size).Render(frame, frame.Bounds())
		return frame
	}

	tree.Render(frame, frame.Bounds())
	return frame
}
