// Package config provides YAML-based configuration loading for the
// sketch editor: canvas defaults, layout, brush palette, storage and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the editor.
type Config struct {
	Canvas  CanvasConfig  `yaml:"canvas" toml:"canvas"`
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	Brush   BrushConfig   `yaml:"brush" toml:"brush"`
	Storage StorageConfig `yaml:"storage" toml:"storage"`
	Log     LogConfig     `yaml:"log" toml:"log"`
}

// CanvasConfig defines the canvas a new sketch starts with.
type CanvasConfig struct {
	Width  int    `yaml:"width" toml:"width"`
	Height int    `yaml:"height" toml:"height"`
	Fill   string `yaml:"fill" toml:"fill"` // Single glyph, defaults to a space
}

// LayoutConfig defines the editor screen layout.
type LayoutConfig struct {
	Margin int `yaml:"margin" toml:"margin"` // Gap between the canvas and the status bar
}

// BrushConfig defines the brush colors and initial modifiers.
type BrushConfig struct {
	Palette []string `yaml:"palette" toml:"palette"` // Color names, "index:N" or "#rrggbb"
	Bold    bool     `yaml:"bold" toml:"bold"`
	Italic  bool     `yaml:"italic" toml:"italic"`
}

// StorageConfig defines where sketches and exports live.
type StorageConfig struct {
	Path      string `yaml:"path" toml:"path"`             // SQLite database file
	ExportDir string `yaml:"export_dir" toml:"export_dir"` // Target of quick text exports
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"` // debug, info, warn, error
	File  string `yaml:"file" toml:"file"`   // Log file for interactive sessions
}

// Validate checks that the configuration can be used as is.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d must be positive", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if n := utf8.RuneCountInString(c.Canvas.Fill); n > 1 {
		return fmt.Errorf("%w: canvas fill %q must be a single glyph", ErrInvalidConfig, c.Canvas.Fill)
	}
	if c.Layout.Margin < 0 {
		return fmt.Errorf("%w: layout margin %d is negative", ErrInvalidConfig, c.Layout.Margin)
	}
	if _, err := c.Brush.Colors(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// FillCell returns the cell new canvases are filled with.
func (c CanvasConfig) FillCell() core.Cell {
	r, _ := utf8.DecodeRuneInString(c.Fill)
	if c.Fill == "" || r == utf8.RuneError {
		return core.DefaultCell()
	}
	return core.NewCell(r, core.DefaultStyle())
}

// Colors parses the palette.
func (b BrushConfig) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(b.Palette))
	for _, s := range b.Palette {
		c, err := core.ParseColor(s)
		if err != nil {
			return nil, fmt.Errorf("brush palette: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
