package curses

import "testing"

func TestKeyCodes(t *testing.T) {
	tests := []struct {
		name string
		got  Key
		want Key
	}{
		{"code yes", KeyCodeYes, 0400},
		{"down", KeyDown, 0402},
		{"backspace", KeyBackspace, 0407},
		{"f0", KeyF0, 0410},
		{"f1", KeyF(1), 0411},
		{"dl", KeyDL, 0510},
		{"npage", KeyNPage, 0522},
		{"ppage", KeyPPage, 0523},
		{"enter", KeyEnter, 0527},
		{"a1", KeyA1, 0534},
		{"c3", KeyC3, 0540},
		{"btab", KeyBTab, 0541},
		{"end", KeyEnd, 0550},
		{"exit", KeyExit, 0551},
		{"undo", KeyUndo, 0630},
		{"max", KeyMax, KeyUndo},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %#o want %#o", tt.name, tt.got, tt.want)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyDown, "KEY_DOWN"},
		{KeyNPage, "KEY_NPAGE"},
		{KeyEnter, "KEY_ENTER"},
		{KeyB2, "KEY_B2"},
		{KeyUndo, "KEY_UNDO"},
		{KeyF(5), "KEY_F(5)"},
		{KeyF(63), "KEY_F(63)"},
		{'a', "a"},
		{3, "^C"},
		{0, "^@"},
		{0x7f, "^?"},
		{KeyErr, "UNKNOWN KEY"},
		{KeyMax + 1, "UNKNOWN KEY"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%d) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
