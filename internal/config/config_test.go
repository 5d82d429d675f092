package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() is invalid: %v", err)
	}
}

func TestLoadCustomYAMLKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "canvas:\n  width: 10\nbrush:\n  palette: [\"#ff0000\", index:3]\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Canvas.Width != 10 {
		t.Errorf("width = %d, expected 10", cfg.Canvas.Width)
	}
	if cfg.Canvas.Height != Default().Canvas.Height {
		t.Errorf("height = %d, expected default %d", cfg.Canvas.Height, Default().Canvas.Height)
	}

	colors, err := cfg.Brush.Colors()
	if err != nil {
		t.Fatalf("Colors() failed: %v", err)
	}
	expected := []core.Color{core.RGBColor(0xff, 0, 0), core.IndexedColor(3)}
	if !reflect.DeepEqual(colors, expected) {
		t.Errorf("palette = %v, expected %v", colors, expected)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, "[layout]\nmargin = 3\n\n[log]\nlevel = \"debug\"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Layout.Margin != 3 {
		t.Errorf("margin = %d, expected 3", cfg.Layout.Margin)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, expected debug", cfg.Log.Level)
	}
	if cfg.Canvas.Width != Default().Canvas.Width {
		t.Error("unset TOML keys should keep defaults")
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "canvas: [\n")
	if _, err := Load(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "brush:\n  palette: [mauve]\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSearchesUserDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("without user config Load() = %+v, expected defaults", cfg)
	}

	writeFile(t, filepath.Join(home, ".sketch", "config.yaml"), "canvas:\n  height: 4\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Canvas.Height != 4 {
		t.Errorf("height = %d, expected 4 from user config", cfg.Canvas.Height)
	}

	// An invalid user config is skipped rather than fatal
	writeFile(t, filepath.Join(home, ".sketch", "config.yaml"), "canvas:\n  height: -1\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Canvas.Height != Default().Canvas.Height {
		t.Errorf("height = %d, expected default after invalid user config", cfg.Canvas.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }, false},
		{"negative height", func(c *Config) { c.Canvas.Height = -2 }, false},
		{"long fill", func(c *Config) { c.Canvas.Fill = "ab" }, false},
		{"empty fill", func(c *Config) { c.Canvas.Fill = "" }, true},
		{"negative margin", func(c *Config) { c.Layout.Margin = -1 }, false},
		{"bad color", func(c *Config) { c.Brush.Palette = []string{"red", "nope"} }, false},
		{"empty palette", func(c *Config) { c.Brush.Palette = nil }, true},
	}

	for _, tt := range tests {
		cfg := Default()
		tt.modify(&cfg)
		err := cfg.Validate()
		if (err == nil) != tt.valid {
			t.Errorf("%s: Validate() = %v, expected valid=%v", tt.name, err, tt.valid)
		}
	}
}

func TestFillCell(t *testing.T) {
	tests := []struct {
		fill     string
		expected rune
	}{
		{"", ' '},
		{" ", ' '},
		{".", '.'},
		{"█", '█'},
	}

	for _, tt := range tests {
		got := CanvasConfig{Fill: tt.fill}.FillCell()
		if got.Char != tt.expected || !got.Style.IsDefault() {
			t.Errorf("FillCell(%q) = %+v, expected %q", tt.fill, got, tt.expected)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		input    string
		expected string
	}{
		{"~/.sketch/a.db", filepath.Join(home, ".sketch", "a.db")},
		{"~", home},
		{"/abs/path", "/abs/path"},
		{"rel/~path", "rel/~path"},
	}

	for _, tt := range tests {
		got, err := ExpandPath(tt.input)
		if err != nil {
			t.Fatalf("ExpandPath(%q) failed: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ExpandPath(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
