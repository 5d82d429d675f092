package tui

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// namedColors maps named colors to ANSI palette indices. The plain names
// take the bright half of the palette and the Dark* names the normal half.
var namedColors = map[core.Color]string{
	core.ColorBlack:       "0",
	core.ColorRed:         "9",
	core.ColorGreen:       "10",
	core.ColorYellow:      "11",
	core.ColorBlue:        "12",
	core.ColorMagenta:     "13",
	core.ColorCyan:        "14",
	core.ColorLightGray:   "7",
	core.ColorDarkGray:    "8",
	core.ColorDarkRed:     "1",
	core.ColorDarkGreen:   "2",
	core.ColorDarkYellow:  "3",
	core.ColorDarkBlue:    "4",
	core.ColorDarkMagenta: "5",
	core.ColorDarkCyan:    "6",
	core.ColorWhite:       "15",
}

// TranslateColor converts a cell color to a lipgloss terminal color.
// ColorNone becomes lipgloss.NoColor, leaving the terminal default.
func TranslateColor(c core.Color) lipgloss.TerminalColor {
	if code, ok := namedColors[c]; ok {
		return lipgloss.Color(code)
	}
	if i, ok := c.Index(); ok {
		return lipgloss.Color(strconv.Itoa(int(i)))
	}
	if _, _, _, ok := c.RGB(); ok {
		return lipgloss.Color(c.String())
	}
	return lipgloss.NoColor{}
}

// TranslateStyle converts a cell style to a lipgloss style created by r.
// A nil renderer uses the lipgloss default renderer.
func TranslateStyle(r *lipgloss.Renderer, s core.Style) lipgloss.Style {
	var style lipgloss.Style
	if r != nil {
		style = r.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}

	return style.
		Foreground(TranslateColor(s.Fg)).
		Background(TranslateColor(s.Bg)).
		Bold(s.Modifiers.Bold).
		Italic(s.Modifiers.Italic).
		Reverse(s.Modifiers.Reverse)
}

// RenderCanvas converts a canvas to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
// Control characters are drawn as spaces so they cannot move the terminal cursor.
func RenderCanvas(r *lipgloss.Renderer, c *core.Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	styles := make(map[core.Style]lipgloss.Style)

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same style for efficiency
		x := 0
		for x < c.Width() {
			startStyle := c.Cell(x, y).Style

			// Collect consecutive cells with same style
			var run strings.Builder
			for x < c.Width() {
				cell := c.Cell(x, y)
				if cell.Style != startStyle {
					break
				}
				run.WriteRune(printable(cell.Char))
				x++
			}

			if startStyle.IsDefault() {
				sb.WriteString(run.String())
				continue
			}

			style, ok := styles[startStyle]
			if !ok {
				style = TranslateStyle(r, startStyle)
				styles[startStyle] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func printable(r rune) rune {
	if unicode.IsControl(r) {
		return ' '
	}
	return r
}
