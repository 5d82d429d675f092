package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// plainRenderer returns a renderer that emits no escape sequences.
func plainRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return r
}

func colorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return r
}

func TestTranslateColor(t *testing.T) {
	tests := []struct {
		name     string
		color    core.Color
		expected lipgloss.TerminalColor
	}{
		{"none", core.ColorNone, lipgloss.NoColor{}},
		{"black", core.ColorBlack, lipgloss.Color("0")},
		{"red", core.ColorRed, lipgloss.Color("9")},
		{"dark red", core.ColorDarkRed, lipgloss.Color("1")},
		{"light gray", core.ColorLightGray, lipgloss.Color("7")},
		{"dark gray", core.ColorDarkGray, lipgloss.Color("8")},
		{"white", core.ColorWhite, lipgloss.Color("15")},
		{"indexed", core.IndexedColor(42), lipgloss.Color("42")},
		{"rgb", core.RGBColor(255, 136, 0), lipgloss.Color("#ff8800")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateColor(tt.color); got != tt.expected {
				t.Errorf("TranslateColor(%s) = %#v, expected %#v", tt.color, got, tt.expected)
			}
		})
	}
}

func TestRenderCanvasPlain(t *testing.T) {
	c := core.NewCanvas(3, 2)
	c.DrawText(0, 0, "Hi", core.NewStyle(core.ColorRed, core.ColorNone, core.Modifiers{}), core.BlendOverwrite)
	c.DrawCell(1, 1, core.NewCell('\t', core.DefaultStyle()), core.BlendOverwrite)

	got := RenderCanvas(plainRenderer(), c)
	expected := "Hi \n   "
	if got != expected {
		t.Errorf("RenderCanvas = %q, expected %q", got, expected)
	}
}

func TestRenderCanvasBlanksControlCharacters(t *testing.T) {
	tests := []struct {
		name  string
		style core.Style
	}{
		{"default style", core.DefaultStyle()},
		{"styled run", core.NewStyle(core.ColorGreen, core.ColorNone, core.Modifiers{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := core.NewCanvas(5, 1)
			for x, r := range []rune{'\u009b', '\u0085', '\x1b', '\x7f', 'A'} {
				c.DrawCell(x, 0, core.NewCell(r, tt.style), core.BlendOverwrite)
			}

			got := RenderCanvas(plainRenderer(), c)
			if got != "    A" {
				t.Errorf("RenderCanvas = %q, expected %q", got, "    A")
			}
		})
	}
}

func TestRenderCanvasColored(t *testing.T) {
	c := core.NewCanvas(4, 1)
	c.DrawText(0, 0, "ab", core.NewStyle(core.ColorRed, core.ColorBlue, core.Modifiers{Bold: true}), core.BlendOverwrite)
	c.DrawText(2, 0, "cd", core.DefaultStyle(), core.BlendOverwrite)

	got := RenderCanvas(colorRenderer(), c)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.HasSuffix(got, "cd") {
		t.Errorf("default-styled run should be written raw, got %q", got)
	}
}

func TestRenderCanvasDefaultStyleHasNoEscapes(t *testing.T) {
	c := core.NewCanvas(5, 3)
	c.DrawText(0, 1, "plain", core.DefaultStyle(), core.BlendOverwrite)

	got := RenderCanvas(colorRenderer(), c)
	if strings.Contains(got, "\x1b") {
		t.Errorf("unexpected escape sequence in %q", got)
	}
	if got != "     \nplain\n     " {
		t.Errorf("RenderCanvas = %q", got)
	}
}

func TestRenderCanvasEmpty(t *testing.T) {
	if got := RenderCanvas(plainRenderer(), core.NewCanvas(0, 0)); got != "" {
		t.Errorf("RenderCanvas of empty canvas = %q, expected empty", got)
	}
}
