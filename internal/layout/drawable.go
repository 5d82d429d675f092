// Package layout arranges drawable elements along one axis.
// Each element reports a fixed or flexible size preference per axis; the
// Allocator splits a parent rectangle between its children from those
// preferences and derives its own preference from theirs.
package layout

import "github.com/vovakirdan/tui-sketch/internal/core"

// Axis is a layout direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the other axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// String returns a human-readable name for the axis.
func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// SizePreference is the size an element asks for along one axis.
// A flexible element grows into leftover space; a fixed one gets exactly Size.
type SizePreference struct {
	Size     int
	Flexible bool
}

// Fixed returns a non-negotiable preference.
func Fixed(size int) SizePreference {
	return SizePreference{Size: size}
}

// Flexible returns a preference that grows to fill leftover space.
func Flexible(size int) SizePreference {
	return SizePreference{Size: size, Flexible: true}
}

// Preferences holds an element's preference on both axes.
type Preferences struct {
	Horizontal SizePreference
	Vertical   SizePreference
}

// In returns the preference along axis.
func (p Preferences) In(axis Axis) SizePreference {
	if axis == Horizontal {
		return p.Horizontal
	}
	return p.Vertical
}

// Fits reports whether the preferred sizes fit into a w x h area.
func (p Preferences) Fits(w, h int) bool {
	return p.Horizontal.Size <= w && p.Vertical.Size <= h
}

// Drawable is anything that can be laid out and rendered into a frame.
type Drawable interface {
	// Render writes the element into dst. Implementations must stay
	// inside target.
	Render(dst *core.Canvas, target core.Rect)

	// SizePreferred reports the element's preferred size on both axes.
	// It is recomputed every frame.
	SizePreferred() Preferences
}

// SizePreferredIn returns d's preference along axis.
func SizePreferredIn(d Drawable, axis Axis) SizePreference {
	return d.SizePreferred().In(axis)
}
