package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sketch/internal/core"
	"github.com/vovakirdan/tui-sketch/internal/widget"
)

// KeyMap holds the editor key bindings. It implements help.KeyMap.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	ToggleMode key.Binding
	Paint      key.Binding
	Erase      key.Binding
	NextColor  key.Binding
	Bold       key.Binding
	Italic     key.Binding
	Save       key.Binding
	Export     key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default editor bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		ToggleMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),
		Paint:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "paint")),
		Erase:      key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "erase")),
		NextColor:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "color")),
		Bold:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bold")),
		Italic:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "italic")),
		Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "save")),
		Export:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("^e", "export")),
		Quit:       key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.Paint, k.Erase, k.NextColor, k.Save, k.Export, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ToggleMode, k.Paint, k.Erase},
		{k.NextColor, k.Bold, k.Italic},
		{k.Save, k.Export, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to editor inputs.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to editor inputs for the given mode.
// A pasted run of characters yields one input per rune; unmapped keys yield none.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, mode widget.Mode) []core.Input {
	// Global keys, valid in every mode
	switch {
	case key.Matches(msg, km.keys.Quit):
		return single(core.ActionQuit)
	case key.Matches(msg, km.keys.Save):
		return single(core.ActionSave)
	case key.Matches(msg, km.keys.Export):
		return single(core.ActionExport)
	case key.Matches(msg, km.keys.ToggleMode):
		return single(core.ActionToggleMode)
	}

	if mode == widget.ModeReplace {
		return km.mapReplace(msg)
	}

	switch {
	case key.Matches(msg, km.keys.Up):
		return single(core.ActionUp)
	case key.Matches(msg, km.keys.Down):
		return single(core.ActionDown)
	case key.Matches(msg, km.keys.Left):
		return single(core.ActionLeft)
	case key.Matches(msg, km.keys.Right):
		return single(core.ActionRight)
	case key.Matches(msg, km.keys.Paint):
		return single(core.ActionPaint)
	case key.Matches(msg, km.keys.Erase):
		return single(core.ActionErase)
	case key.Matches(msg, km.keys.NextColor):
		return single(core.ActionNextColor)
	case key.Matches(msg, km.keys.Bold):
		return single(core.ActionToggleBold)
	case key.Matches(msg, km.keys.Italic):
		return single(core.ActionToggleItalic)
	}

	return nil
}

// mapReplace handles Replace mode: arrows move, printable keys type.
func (km *KeyMapper) mapReplace(msg tea.KeyMsg) []core.Input {
	switch msg.Type {
	case tea.KeyUp:
		return single(core.ActionUp)
	case tea.KeyDown:
		return single(core.ActionDown)
	case tea.KeyLeft:
		return single(core.ActionLeft)
	case tea.KeyRight:
		return single(core.ActionRight)
	case tea.KeySpace:
		return []core.Input{{Action: core.ActionType, Rune: ' '}}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		inputs := make([]core.Input, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			inputs = append(inputs, core.Input{Action: core.ActionType, Rune: r})
		}
		return inputs
	}
	return nil
}

func single(a core.Action) []core.Input {
	return []core.Input{{Action: a}}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionDelete
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "d", "delete":
		return MenuActionDelete
	}

	return MenuActionNone
}
