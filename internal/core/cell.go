package core

// BlendMode selects which parts of an incoming cell replace the existing one.
type BlendMode int

const (
	BlendOverwrite     BlendMode = iota // glyph and style
	BlendOnlyCharacter                  // glyph only
	BlendOnlyStyle                      // style only
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendOverwrite:
		return "Overwrite"
	case BlendOnlyCharacter:
		return "OnlyCharacter"
	case BlendOnlyStyle:
		return "OnlyStyle"
	default:
		return "Unknown"
	}
}

// Cell is one character position: a glyph plus its style.
type Cell struct {
	Char  rune
	Style Style
}

// NewCell creates a cell from a glyph and a style.
func NewCell(ch rune, style Style) Cell {
	return Cell{Char: ch, Style: style}
}

// DefaultCell returns a space with the default style.
func DefaultCell() Cell {
	return Cell{Char: ' '}
}

// Blend returns c with src merged in according to mode.
func (c Cell) Blend(src Cell, mode BlendMode) Cell {
	switch mode {
	case BlendOnlyCharacter:
		c.Char = src.Char
	case BlendOnlyStyle:
		c.Style = src.Style
	default:
		c = src
	}
	return c
}
