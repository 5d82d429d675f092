package layout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-sketch/internal/core"
)

// box is a test drawable with a fixed preference that fills its target with a glyph.
type box struct {
	prefs    Preferences
	glyph    rune
	rendered []core.Rect
}

func newBox(h, v SizePreference, glyph rune) *box {
	return &box{prefs: Preferences{Horizontal: h, Vertical: v}, glyph: glyph}
}

func (b *box) Render(dst *core.Canvas, target core.Rect) {
	b.rendered = append(b.rendered, target)
	for y := target.Y; y < target.Bottom(); y++ {
		for x := target.X; x < target.Right(); x++ {
			dst.DrawCell(x, y, core.NewCell(b.glyph, core.DefaultStyle()), core.BlendOverwrite)
		}
	}
}

func (b *box) SizePreferred() Preferences {
	return b.prefs
}

func rects(placements []Placement) []core.Rect {
	out := make([]core.Rect, len(placements))
	for i, p := range placements {
		out[i] = p.Rect
	}
	return out
}

func TestAlignFixedAndFlexibleHorizontal(t *testing.T) {
	l := New(Horizontal, 1,
		newBox(Fixed(10), Fixed(1), 'a'),
		newBox(Flexible(0), Fixed(1), 'b'),
		newBox(Flexible(0), Fixed(1), 'c'),
	)

	placements, err := l.Align(core.NewRect(0, 0, 100, 5))
	if err != nil {
		t.Fatalf("Align() failed: %v", err)
	}

	expected := []core.Rect{
		core.NewRect(0, 0, 10, 5),
		core.NewRect(11, 0, 44, 5),
		core.NewRect(56, 0, 44, 5),
	}
	got := rects(placements)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("child %d: rect = %+v, expected %+v", i, got[i], expected[i])
		}
	}

	// The last child ends exactly at the parent edge: no trailing margin
	if got[2].Right() != 100 {
		t.Errorf("last child should end at 100, ends at %d", got[2].Right())
	}
}

func TestAlignRemainderGoesToEarlierChildren(t *testing.T) {
	l := New(Vertical, 0,
		newBox(Fixed(1), Flexible(0), 'a'),
		newBox(Fixed(1), Flexible(0), 'b'),
		newBox(Fixed(1), Flexible(0), 'c'),
	)

	placements, err := l.Align(core.NewRect(3, 7, 20, 100))
	if err != nil {
		t.Fatalf("Align() failed: %v", err)
	}

	sizes := []int{34, 33, 33}
	y := 7
	for i, p := range placements {
		if p.Rect.H != sizes[i] {
			t.Errorf("child %d: height = %d, expected %d", i, p.Rect.H, sizes[i])
		}
		if p.Rect.Y != y {
			t.Errorf("child %d: y = %d, expected %d", i, p.Rect.Y, y)
		}
		// Cross axis spans the parent
		if p.Rect.X != 3 || p.Rect.W != 20 {
			t.Errorf("child %d: cross axis = x %d w %d, expected x 3 w 20", i, p.Rect.X, p.Rect.W)
		}
		y += p.Rect.H
	}
}

func TestAlignSharesAreNonIncreasing(t *testing.T) {
	for extent := 0; extent < 40; extent++ {
		children := make([]Drawable, 0, 7)
		for i := 0; i < 7; i++ {
			children = append(children, newBox(Flexible(0), Fixed(1), 'x'))
		}
		l := New(Horizontal, 0, children...)

		placements, err := l.Align(core.NewRect(0, 0, extent, 1))
		if err != nil {
			t.Fatalf("extent %d: Align() failed: %v", extent, err)
		}

		total := 0
		for i, p := range placements {
			total += p.Rect.W
			if i > 0 && p.Rect.W > placements[i-1].Rect.W {
				t.Errorf("extent %d: share %d (%d) larger than previous (%d)", extent, i, p.Rect.W, placements[i-1].Rect.W)
			}
			if i > 0 && placements[i-1].Rect.W-p.Rect.W > 1 {
				t.Errorf("extent %d: shares differ by more than one", extent)
			}
		}
		if total != extent {
			t.Errorf("extent %d: flexible children consumed %d", extent, total)
		}
	}
}

func TestAlignInsufficientSpace(t *testing.T) {
	l := New(Horizontal, 2,
		newBox(Fixed(10), Fixed(1), 'a'),
		newBox(Flexible(3), Fixed(1), 'b'),
		newBox(Fixed(10), Fixed(1), 'c'),
	)

	placements, err := l.Align(core.NewRect(0, 0, 20, 1))
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements on error, got %d", len(placements))
	}
	if placements[1].Rect.W != 0 {
		t.Errorf("flexible child should be clamped to 0, got %d", placements[1].Rect.W)
	}
}

func TestAlignNoChildren(t *testing.T) {
	l := New(Horizontal, 3)

	placements, err := l.Align(core.NewRect(0, 0, 10, 10))
	if err != nil {
		t.Fatalf("Align() failed: %v", err)
	}
	if len(placements) != 0 {
		t.Errorf("expected no placements, got %d", len(placements))
	}
}

func TestSizePreferredAggregation(t *testing.T) {
	children := []Drawable{
		newBox(Fixed(10), Fixed(3), 'a'),
		newBox(Flexible(4), Fixed(7), 'b'),
		newBox(Fixed(6), Fixed(1), 'c'),
	}

	h := New(Horizontal, 2, children...).SizePreferred()
	if h.Horizontal != (SizePreference{Size: 10 + 4 + 6 + 2*2, Flexible: true}) {
		t.Errorf("horizontal main axis = %+v", h.Horizontal)
	}
	if h.Vertical != (SizePreference{Size: 7, Flexible: false}) {
		t.Errorf("horizontal cross axis = %+v", h.Vertical)
	}

	v := New(Vertical, 1, children...).SizePreferred()
	if v.Vertical != (SizePreference{Size: 3 + 7 + 1 + 2, Flexible: false}) {
		t.Errorf("vertical main axis = %+v", v.Vertical)
	}
	if v.Horizontal != (SizePreference{Size: 10, Flexible: true}) {
		t.Errorf("vertical cross axis = %+v", v.Horizontal)
	}
}

func TestSizePreferredEmpty(t *testing.T) {
	p := New(Vertical, 5).SizePreferred()
	if p != (Preferences{}) {
		t.Errorf("empty allocator preference = %+v, expected zero", p)
	}
}

func TestNestedAllocators(t *testing.T) {
	inner := New(Horizontal, 1,
		newBox(Fixed(3), Fixed(1), 'x'),
		newBox(Flexible(1), Fixed(1), 'y'),
	)
	top := newBox(Fixed(8), Fixed(2), 't')
	root := New(Vertical, 0, top, inner)

	p := root.SizePreferred()
	if p.Horizontal != (SizePreference{Size: 8, Flexible: true}) {
		t.Errorf("root horizontal = %+v", p.Horizontal)
	}
	if p.Vertical != (SizePreference{Size: 3, Flexible: false}) {
		t.Errorf("root vertical = %+v", p.Vertical)
	}

	dst := core.NewCanvas(10, 3)
	root.Render(dst, dst.Bounds())

	expected := "tttttttttt\ntttttttttt\nxxx yyyyyy"
	if dst.String() != expected {
		t.Errorf("rendered:\n%s\nexpected:\n%s", dst.String(), expected)
	}
}

func TestRenderClipsToTarget(t *testing.T) {
	a := newBox(Fixed(6), Fixed(1), 'a')
	b := newBox(Fixed(6), Fixed(1), 'b')
	l := New(Horizontal, 0, a, b)

	dst := core.NewCanvas(12, 1)
	l.Render(dst, core.NewRect(0, 0, 8, 1))

	if dst.String() != "aaaaaabb    " {
		t.Errorf("rendered %q, expected clipped output", dst.String())
	}
	if len(b.rendered) != 1 || b.rendered[0] != core.NewRect(6, 0, 2, 1) {
		t.Errorf("second child target = %+v, expected clipped rect", b.rendered)
	}
}

func TestSizePreferredIn(t *testing.T) {
	b := newBox(Fixed(4), Flexible(9), 'z')
	if SizePreferredIn(b, Horizontal) != Fixed(4) {
		t.Error("horizontal preference mismatch")
	}
	if SizePreferredIn(b, Vertical) != Flexible(9) {
		t.Error("vertical preference mismatch")
	}
	if !b.SizePreferred().Fits(4, 9) || b.SizePreferred().Fits(3, 9) {
		t.Error("Fits() mismatch")
	}
}

func TestNegativeMarginIsZero(t *testing.T) {
	l := New(Horizontal, -4,
		newBox(Fixed(2), Fixed(1), 'a'),
		newBox(Fixed(2), Fixed(1), 'b'),
	)
	if got := l.SizePreferred().Horizontal.Size; got != 4 {
		t.Errorf("preferred width = %d, expected 4", got)
	}
}
