package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveKey(t *testing.T) {
	tests := []struct {
		name        string
		key         Key
		textFocused bool
		want        Action
	}{
		{"ctrl+z", Key{Code: KeyRune, Rune: 'z', Ctrl: true}, false, ActionUndo},
		{"cmd+z", Key{Code: KeyRune, Rune: 'z', Meta: true}, false, ActionUndo},
		{"ctrl+z while typing", Key{Code: KeyRune, Rune: 'z', Ctrl: true}, true, ActionUndo},
		{"shifted Z is not undo", Key{Code: KeyRune, Rune: 'Z', Ctrl: true}, false, ActionNone},
		{"plain z", Key{Code: KeyRune, Rune: 'z'}, false, ActionNone},
		{"delete", Key{Code: KeyDelete}, false, ActionClear},
		{"backspace", Key{Code: KeyBackspace}, false, ActionClear},
		{"backspace while typing", Key{Code: KeyBackspace}, true, ActionNone},
		{"delete while typing", Key{Code: KeyDelete}, true, ActionNone},
		{"escape", Key{Code: KeyEscape}, false, ActionCancel},
		{"enter", Key{Code: KeyEnter}, false, ActionFinalize},
		{"enter while typing", Key{Code: KeyEnter}, true, ActionNone},
		{"other", Key{Code: KeyOther}, false, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveKey(tt.key, tt.textFocused))
		})
	}
}

func TestKeyIsPrintable(t *testing.T) {
	assert.True(t, Key{Code: KeyRune, Rune: 'a'}.IsPrintable())
	assert.False(t, Key{Code: KeyRune, Rune: 'a', Ctrl: true}.IsPrintable())
	assert.False(t, Key{Code: KeyEscape}.IsPrintable())
}
