package codec

import (
	"fmt"
	"io"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// YAML is a human-editable format: glyph rows plus a sparse list of the
// cells whose style differs from the default.
type YAML struct{}

func init() {
	Register(YAML{})
}

func (YAML) Name() string {
	return "yaml"
}

func (YAML) Description() string {
	return "editable YAML, glyph rows plus styled cells"
}

func (YAML) Extensions() []string {
	return []string{".yaml", ".yml"}
}

type yamlDocument struct {
	Width  int          `yaml:"width"`
	Height int          `yaml:"height"`
	Rows   []string     `yaml:"rows"`
	Styles []yamlStyled `yaml:"styles,omitempty"`
}

type yamlStyled struct {
	X          int `yaml:"x"`
	Y          int `yaml:"y"`
	core.Style `yaml:",inline"`
}

func (YAML) Encode(w io.Writer, rows [][]core.Cell) error {
	doc := yamlDocument{
		Height: len(rows),
		Rows:   make([]string, len(rows)),
	}
	if len(rows) > 0 {
		doc.Width = len(rows[0])
	}

	for y, row := range rows {
		glyphs := make([]rune, len(row))
		for x, cell := range row {
			glyphs[x] = cell.Char
			if !cell.Style.IsDefault() {
				doc.Styles = append(doc.Styles, yamlStyled{X: x, Y: y, Style: cell.Style})
			}
		}
		doc.Rows[y] = string(glyphs)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codec: encoding yaml: %w", err)
	}
	return enc.Close()
}

func (YAML) Decode(r io.Reader) ([][]core.Cell, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}

	if len(doc.Rows) != doc.Height {
		return nil, fmt.Errorf("%w: height %d but %d rows", ErrMalformedData, doc.Height, len(doc.Rows))
	}

	rows := make([][]core.Cell, len(doc.Rows))
	for y, line := range doc.Rows {
		if n := utf8.RuneCountInString(line); n != doc.Width {
			return nil, fmt.Errorf("%w: row %d has %d glyphs, expected %d", ErrMalformedData, y, n, doc.Width)
		}
		row := make([]core.Cell, 0, doc.Width)
		for _, r := range line {
			row = append(row, core.NewCell(r, core.DefaultStyle()))
		}
		rows[y] = row
	}

	for _, s := range doc.Styles {
		if s.Y < 0 || s.Y >= len(rows) || s.X < 0 || s.X >= doc.Width {
			return nil, fmt.Errorf("%w: styled cell %d,%d outside %dx%d", ErrMalformedData, s.X, s.Y, doc.Width, doc.Height)
		}
		rows[s.Y][s.X].Style = s.Style
	}

	if len(rows) == 0 {
		return nil, nil
	}
	return rows, nil
}
