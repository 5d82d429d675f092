package core

// Modifiers are the emphasis flags of a cell.
type Modifiers struct {
	Bold    bool `yaml:"bold,omitempty"`
	Italic  bool `yaml:"italic,omitempty"`
	Reverse bool `yaml:"reverse,omitempty"`
}

// Combine ORs two modifier sets together.
func (m Modifiers) Combine(other Modifiers) Modifiers {
	return Modifiers{
		Bold:    m.Bold || other.Bold,
		Italic:  m.Italic || other.Italic,
		Reverse: m.Reverse || other.Reverse,
	}
}

// Style is the visual appearance of a cell.
type Style struct {
	Fg        Color     `yaml:"fg,omitempty"`
	Bg        Color     `yaml:"bg,omitempty"`
	Modifiers Modifiers `yaml:",inline"`
}

// NewStyle creates a style from its parts.
func NewStyle(fg, bg Color, mods Modifiers) Style {
	return Style{Fg: fg, Bg: bg, Modifiers: mods}
}

// DefaultStyle returns the style with both colors unset and no modifiers.
func DefaultStyle() Style {
	return Style{}
}

// Combine layers overlay on top of s.
// Colors are replaced by the overlay's; modifiers accumulate.
func (s Style) Combine(overlay Style) Style {
	return Style{
		Fg:        overlay.Fg,
		Bg:        overlay.Bg,
		Modifiers: s.Modifiers.Combine(overlay.Modifiers),
	}
}

// IsDefault reports whether s equals DefaultStyle().
func (s Style) IsDefault() bool {
	return s == Style{}
}
