package core

import "testing"

func TestModifiersCombine(t *testing.T) {
	all := []Modifiers{
		{}, {Bold: true}, {Italic: true}, {Reverse: true},
		{Bold: true, Italic: true}, {Bold: true, Reverse: true},
		{Italic: true, Reverse: true}, {Bold: true, Italic: true, Reverse: true},
	}

	got := Modifiers{Bold: true, Reverse: true}.Combine(Modifiers{Italic: true, Reverse: true})
	if got != (Modifiers{Bold: true, Italic: true, Reverse: true}) {
		t.Errorf("Combine() = %+v, expected all flags", got)
	}

	for _, a := range all {
		if a.Combine(a) != a {
			t.Errorf("Combine should be idempotent for %+v", a)
		}
		for _, b := range all {
			if a.Combine(b) != b.Combine(a) {
				t.Errorf("Combine should be commutative for %+v, %+v", a, b)
			}
			for _, c := range all {
				if a.Combine(b).Combine(c) != a.Combine(b.Combine(c)) {
					t.Errorf("Combine should be associative for %+v, %+v, %+v", a, b, c)
				}
			}
		}
	}
}

func TestStyleCombine(t *testing.T) {
	base := NewStyle(ColorRed, ColorBlue, Modifiers{Bold: true, Reverse: true})
	overlay := NewStyle(ColorGreen, ColorYellow, Modifiers{Reverse: true})

	got := base.Combine(overlay)
	expected := NewStyle(ColorGreen, ColorYellow, Modifiers{Bold: true, Reverse: true})
	if got != expected {
		t.Errorf("Combine() = %+v, expected %+v", got, expected)
	}

	// Overlay colors win even when they are unset
	got = base.Combine(Style{Modifiers: Modifiers{Italic: true}})
	if got.Fg != ColorNone || got.Bg != ColorNone {
		t.Errorf("overlay colors should replace base colors, got fg=%s bg=%s", got.Fg, got.Bg)
	}
	if got.Modifiers != (Modifiers{Bold: true, Italic: true, Reverse: true}) {
		t.Errorf("modifiers should accumulate, got %+v", got.Modifiers)
	}
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if s.Fg != ColorNone || s.Bg != ColorNone || s.Modifiers != (Modifiers{}) {
		t.Errorf("DefaultStyle() = %+v, expected zero style", s)
	}
	if !s.IsDefault() {
		t.Error("IsDefault() should be true for DefaultStyle()")
	}
}
