package codec

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// Text is plain glyphs, one line per row. Styles are dropped on export and
// default on import.
type Text struct{}

func init() {
	Register(Text{})
}

func (Text) Name() string {
	return "txt"
}

func (Text) Description() string {
	return "plain text, glyphs only"
}

func (Text) Extensions() []string {
	return []string{".txt"}
}

// Encode writes the glyphs of each row joined with newlines, without a
// trailing newline.
func (Text) Encode(w io.Writer, rows [][]core.Cell) error {
	var sb strings.Builder
	for y, row := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cell := range row {
			sb.WriteRune(cell.Char)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// Decode reads lines and pads every line to the longest one with default
// cells. Line endings may be "\n" or "\r\n"; a single final line ending is
// not a row of its own.
func (Text) Decode(r io.Reader) ([][]core.Cell, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	lines := splitLines(string(data))
	if len(lines) == 0 {
		return nil, nil
	}

	width := 0
	for _, line := range lines {
		width = core.Max(width, utf8.RuneCountInString(line))
	}

	rows := make([][]core.Cell, len(lines))
	for y, line := range lines {
		row := make([]core.Cell, 0, width)
		for _, r := range line {
			row = append(row, core.NewCell(r, core.DefaultStyle()))
		}
		for len(row) < width {
			row = append(row, core.DefaultCell())
		}
		rows[y] = row
	}

	return rows, nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
