package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestPickerListsNewSketchFirst(t *testing.T) {
	m := NewPickerModel(newMemoryStore("beta", "alpha"), 80, 24, plainRenderer())

	if len(m.items) != 3 {
		t.Fatalf("got %d items, expected 3", len(m.items))
	}
	if m.items[0].Name != "" {
		t.Errorf("first item = %q, expected the new sketch entry", m.items[0].Name)
	}
	if m.items[1].Name != "alpha" || m.items[2].Name != "beta" {
		t.Errorf("items = %v", m.items)
	}

	view := m.View()
	for _, want := range []string{"S K E T C H", "+ New sketch", "alpha", "4x2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestPickerNilCatalog(t *testing.T) {
	m := NewPickerModel(nil, 80, 24, plainRenderer())

	if len(m.items) != 1 {
		t.Fatalf("got %d items, expected only the new sketch entry", len(m.items))
	}

	next, cmd := m.Update(keyOf(tea.KeyEnter))
	m = next.(PickerModel)
	if !isQuit(cmd) {
		t.Error("select should end the picker program")
	}
	if m.Selected() == nil || m.Selected().Name != "" {
		t.Errorf("selected = %v, expected the new sketch entry", m.Selected())
	}
}

func TestPickerNavigationAndSelect(t *testing.T) {
	var m tea.Model = NewPickerModel(newMemoryStore("a", "b"), 80, 24, plainRenderer())

	m, _ = m.Update(keyOf(tea.KeyUp)) // already at top
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("j")) // already at bottom
	m, _ = m.Update(keyOf(tea.KeyEnter))

	picker := m.(PickerModel)
	if picker.Selected() == nil || picker.Selected().Name != "b" {
		t.Fatalf("selected = %v, expected b", picker.Selected())
	}
	if picker.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestPickerDelete(t *testing.T) {
	store := newMemoryStore("a", "b")
	var m tea.Model = NewPickerModel(store, 80, 24, plainRenderer())

	// The new sketch entry cannot be deleted
	m, _ = m.Update(runes("d"))
	if len(store.deleted) != 0 {
		t.Fatalf("deleted = %v, expected nothing", store.deleted)
	}

	m, _ = m.Update(runes("j"))
	m, _ = m.Update(runes("d"))
	if len(store.deleted) != 1 || store.deleted[0] != "a" {
		t.Fatalf("deleted = %v, expected [a]", store.deleted)
	}

	picker := m.(PickerModel)
	if len(picker.items) != 2 || picker.items[1].Name != "b" {
		t.Errorf("items after delete = %v", picker.items)
	}
}

func TestPickerQuit(t *testing.T) {
	var m tea.Model = NewPickerModel(nil, 80, 24, plainRenderer())

	m, cmd := m.Update(runes("q"))

	if !isQuit(cmd) || !m.(PickerModel).IsQuitting() {
		t.Error("q should quit the picker")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestPickerResize(t *testing.T) {
	var m tea.Model = NewPickerModel(nil, 80, 24, plainRenderer())

	m, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	w, h := m.(PickerModel).Size()
	if w != 100 || h != 40 {
		t.Errorf("size = %dx%d, expected 100x40", w, h)
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
