package editor

import "unicode"

// KeyCode separates printable keys from the named keys the editor handles
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEscape
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyOther
)

// Key is a key press with its modifier state
type Key struct {
	Code KeyCode
	Rune rune
	Ctrl bool
	Meta bool
}

// Action is an editor command bound to a key
type Action int

const (
	ActionNone Action = iota
	ActionUndo
	ActionClear
	ActionCancel
	ActionFinalize
)

// String returns the action name for logs
func (a Action) String() string {
	switch a {
	case ActionUndo:
		return "undo"
	case ActionClear:
		return "clear"
	case ActionCancel:
		return "cancel"
	case ActionFinalize:
		return "finalize"
	default:
		return "none"
	}
}

// ResolveKey maps a key press to an editor action. Delete, Backspace and
// Enter act on the canvas only when no text input has focus.
func ResolveKey(k Key, textFocused bool) Action {
	switch k.Code {
	case KeyRune:
		if (k.Ctrl || k.Meta) && k.Rune == 'z' {
			return ActionUndo
		}
	case KeyDelete, KeyBackspace:
		if !textFocused {
			return ActionClear
		}
	case KeyEscape:
		return ActionCancel
	case KeyEnter:
		if !textFocused {
			return ActionFinalize
		}
	}
	return ActionNone
}

// IsPrintable reports whether the key inserts a character into text input
func (k Key) IsPrintable() bool {
	return k.Code == KeyRune && !k.Ctrl && !k.Meta && unicode.IsPrint(k.Rune)
}
