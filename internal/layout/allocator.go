package layout

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// ErrInsufficientSpace is returned when the fixed children and margins
// do not fit into the parent along the allocation axis.
var ErrInsufficientSpace = errors.New("layout: insufficient space")

// Placement is the rectangle assigned to one child.
type Placement struct {
	Child Drawable
	Rect  core.Rect
}

// Allocator lays out its children in a row or column separated by a fixed
// margin. It is itself a Drawable, so allocators nest.
type Allocator struct {
	children []Drawable
	axis     Axis
	margin   int
}

var _ Drawable = (*Allocator)(nil)

// New creates an allocator. Negative margins are treated as zero.
func New(axis Axis, margin int, children ...Drawable) *Allocator {
	return &Allocator{
		children: children,
		axis:     axis,
		margin:   core.Max(margin, 0),
	}
}

// Axis returns the allocation axis.
func (a *Allocator) Axis() Axis {
	return a.axis
}

// Children returns the children in layout order.
func (a *Allocator) Children() []Drawable {
	return a.children
}

// marginTotal is the space taken by margins between children.
func (a *Allocator) marginTotal() int {
	return core.Max(len(a.children)-1, 0) * a.margin
}

// Align assigns a rectangle to every child.
//
// Fixed children get exactly their preferred size. The remaining space is
// shared by the flexible children in order, each taking an equal share of
// what is left, so earlier children absorb the remainder one unit at a time.
// Every child spans the full cross-axis extent of area.
//
// If the fixed children and margins overflow area, the flexible space is
// clamped to zero and the placements are returned together with an error
// wrapping ErrInsufficientSpace.
func (a *Allocator) Align(area core.Rect) ([]Placement, error) {
	prefs := make([]SizePreference, len(a.children))
	fixedTotal := 0
	flexCount := 0
	for i, child := range a.children {
		prefs[i] = SizePreferredIn(child, a.axis)
		if prefs[i].Flexible {
			flexCount++
		} else {
			fixedTotal += prefs[i].Size
		}
	}

	var err error
	extent := extentOf(area, a.axis)
	flexSpace := extent - fixedTotal - a.marginTotal()
	if flexSpace < 0 {
		err = fmt.Errorf("%w: %s extent %d, need %d", ErrInsufficientSpace, a.axis, extent, extent-flexSpace)
		flexSpace = 0
	}

	position := startOf(area, a.axis)
	placements := make([]Placement, len(a.children))
	for i, child := range a.children {
		size := prefs[i].Size
		if prefs[i].Flexible {
			size = flexSpace / flexCount
			flexCount--
			flexSpace -= size
		}

		placements[i] = Placement{Child: child, Rect: a.rect(area, position, size)}

		position += size
		if i < len(a.children)-1 {
			position += a.margin
		}
	}

	return placements, err
}

// rect builds a child rectangle at position along the allocation axis,
// spanning the whole cross axis of area.
func (a *Allocator) rect(area core.Rect, position, size int) core.Rect {
	if a.axis == Horizontal {
		return core.NewRect(position, area.Y, size, area.H)
	}
	return core.NewRect(area.X, position, area.W, size)
}

// Render aligns the children inside target and renders each into its slot.
// Children are still rendered when space is insufficient; their slots are
// clipped to target.
func (a *Allocator) Render(dst *core.Canvas, target core.Rect) {
	placements, _ := a.Align(target)
	for _, p := range placements {
		r := p.Rect.Intersect(target)
		if r.Empty() {
			continue
		}
		p.Child.Render(dst, r)
	}
}

// SizePreferred derives the allocator's preference from its children:
// sizes add up (plus margins) along the allocation axis and take the maximum
// across it. An axis is flexible if any child is flexible on it.
// An allocator without children prefers 0x0, fixed.
func (a *Allocator) SizePreferred() Preferences {
	var along, across SizePreference
	for _, child := range a.children {
		p := child.SizePreferred()
		main, cross := p.In(a.axis), p.In(a.axis.Cross())

		along.Size += main.Size
		along.Flexible = along.Flexible || main.Flexible

		across.Size = core.Max(across.Size, cross.Size)
		across.Flexible = across.Flexible || cross.Flexible
	}
	along.Size += a.marginTotal()

	if a.axis == Horizontal {
		return Preferences{Horizontal: along, Vertical: across}
	}
	return Preferences{Horizontal: across, Vertical: along}
}

func extentOf(r core.Rect, axis Axis) int {
	if axis == Horizontal {
		return r.W
	}
	return r.H
}

func startOf(r core.Rect, axis Axis) int {
	if axis == Horizontal {
		return r.X
	}
	return r.Y
}
