package core

// Action is a semantic editor action, abstracted from physical key presses.
// This lets the editor work with intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow, k (Normal mode) - move cursor up
	ActionDown              // Down arrow, j (Normal mode) - move cursor down
	ActionLeft              // Left arrow, h (Normal mode) - move cursor left
	ActionRight             // Right arrow, l (Normal mode) - move cursor right
	ActionToggleMode        // Tab - switch between Normal and Replace
	ActionType              // Printable rune in Replace mode - write glyph with brush
	ActionPaint             // Space (Normal mode) - apply brush style to cell
	ActionErase             // x, Backspace - blank the glyph, keep the style
	ActionNextColor         // c (Normal mode) - cycle brush color
	ActionToggleBold        // b (Normal mode) - toggle brush bold
	ActionToggleItalic      // i (Normal mode) - toggle brush italic
	ActionSave              // Ctrl+S - persist the canvas
	ActionExport            // Ctrl+E - export a text snapshot
	ActionQuit              // Esc, Ctrl+C - end the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleMode:
		return "ToggleMode"
	case ActionType:
		return "Type"
	case ActionPaint:
		return "Paint"
	case ActionErase:
		return "Erase"
	case ActionNextColor:
		return "NextColor"
	case ActionToggleBold:
		return "ToggleBold"
	case ActionToggleItalic:
		return "ToggleItalic"
	case ActionSave:
		return "Save"
	case ActionExport:
		return "Export"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded key press: an action and, for ActionType, its rune.
type Input struct {
	Action Action
	Rune   rune
}
