package config

import (
	_ "embed"
)

//go:embed defaults/sketch.yaml
var defaultSketchYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  60,
			Height: 16,
			Fill:   " ",
		},
		Layout: LayoutConfig{
			Margin: 1,
		},
		Brush: BrushConfig{
			Palette: []string{"white", "red", "green", "yellow", "blue", "magenta", "cyan"},
		},
		Storage: StorageConfig{
			Path:      "~/.sketch/sketches.db",
			ExportDir: "~/.sketch/exports",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.sketch/sketch.log",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSketchYAML
}
