package tui

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-sketch/internal/config"
	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/editor"
)

// NewSession creates an editor session configured by cfg. A nil canvas
// starts a new sketch of the configured size and fill.
func NewSession(name string, canvas *core.Canvas, cfg config.Config) (*editor.Session, error) {
	palette, err := cfg.Brush.Colors()
	if err != nil {
		return nil, err
	}

	if canvas == nil {
		canvas = core.NewCanvasFilled(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.FillCell())
	}
	if name == "" {
		name = NewSketchName()
	}

	return editor.New(name, canvas, editor.Options{
		Margin:  cfg.Layout.Margin,
		Palette: palette,
		Bold:    cfg.Brush.Bold,
		Italic:  cfg.Brush.Italic,
	}), nil
}

// NewSketchName returns a fresh name for an unnamed sketch.
func NewSketchName() string {
	return "sketch-" + uuid.NewString()[:8]
}
