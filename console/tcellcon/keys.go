package tcellcon

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wincurses/console"
)

type keySpec struct {
	vk console.VirtualKey
	ch rune
}

// keyTable gives the virtual key and character of tcell's named keys.
var keyTable = map[tcell.Key]keySpec{
	tcell.KeyEnter:      {console.VKReturn, '\r'},
	tcell.KeyTab:        {console.VKTab, '\t'},
	tcell.KeyBackspace:  {console.VKBack, '\b'},
	tcell.KeyBackspace2: {console.VKBack, '\b'},
	tcell.KeyEscape:     {console.VKEscape, 0x1b},
	tcell.KeyBacktab:    {console.VKTab, 0},
	tcell.KeyUp:         {console.VKUp, 0},
	tcell.KeyDown:       {console.VKDown, 0},
	tcell.KeyLeft:       {console.VKLeft, 0},
	tcell.KeyRight:      {console.VKRight, 0},
	tcell.KeyHome:       {console.VKHome, 0},
	tcell.KeyEnd:        {console.VKEnd, 0},
	tcell.KeyPgUp:       {console.VKPrior, 0},
	tcell.KeyPgDn:       {console.VKNext, 0},
	tcell.KeyInsert:     {console.VKInsert, 0},
	tcell.KeyDelete:     {console.VKDelete, 0},
	tcell.KeyHelp:       {console.VKHelp, 0},
	tcell.KeyClear:      {console.VKClear, 0},
	tcell.KeyCancel:     {console.VKCancel, 0},
	tcell.KeyPrint:      {console.VKPrint, 0},
	tcell.KeyPause:      {console.VKPause, 0},
	tcell.KeyUpLeft:     {console.VKNumpad7, 0},
	tcell.KeyUpRight:    {console.VKNumpad9, 0},
	tcell.KeyDownLeft:   {console.VKNumpad1, 0},
	tcell.KeyDownRight:  {console.VKNumpad3, 0},
	tcell.KeyCenter:     {console.VKNumpad5, 0},
}

func init() {
	for n := 1; n <= 24; n++ {
		keyTable[tcell.KeyF1+tcell.Key(n-1)] = keySpec{console.VKFunction(n), 0}
	}
}

func convertEvent(ev tcell.Event) console.InputEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return console.InputEvent{Type: console.EventKey, Key: convertKey(e)}
	case *tcell.EventResize:
		w, h := e.Size()
		return console.InputEvent{Type: console.EventResize, Size: console.Coord{X: w, Y: h}}
	case *tcell.EventMouse:
		return console.InputEvent{Type: console.EventMouse}
	case *tcell.EventFocus:
		return console.InputEvent{Type: console.EventFocus}
	default:
		return console.InputEvent{Type: console.EventNone}
	}
}

// convertKey builds a key press record. Terminals report no releases.
func convertKey(e *tcell.EventKey) console.KeyEvent {
	ke := console.KeyEvent{Down: true, Repeat: 1, Control: convertMod(e.Modifiers())}

	k := e.Key()
	switch spec, ok := keyTable[k]; {
	case ok:
		ke.VirtualKey, ke.Char = spec.vk, spec.ch
		if k == tcell.KeyBacktab {
			ke.Control |= console.ShiftPressed
		}
	case k == tcell.KeyRune:
		ke.Char = e.Rune()
		ke.VirtualKey = runeKey(ke.Char)
	case k >= tcell.KeyCtrlSpace && k <= tcell.KeyCtrlUnderscore:
		code := k - tcell.KeyCtrlSpace
		ke.Char = rune(code)
		ke.VirtualKey = console.VirtualKey('@' + code)
		ke.Control |= console.CtrlPressed
	case k >= tcell.KeyNUL && k <= tcell.KeyUS:
		// Control characters that arrive as runes are reported under
		// their ASCII codes, 64 below the KeyCtrl range.
		ke.Char = rune(k)
		ke.VirtualKey = console.VirtualKey('@' + k)
		ke.Control |= console.CtrlPressed
	}
	return ke
}

// runeKey returns the virtual key that types r on a US layout, or 0.
func runeKey(r rune) console.VirtualKey {
	switch {
	case r >= 'a' && r <= 'z':
		return console.VirtualKey(r - 'a' + 'A')
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
		return console.VirtualKey(r)
	}
	return 0
}

func convertMod(m tcell.ModMask) console.ControlState {
	var cs console.ControlState
	if m&tcell.ModShift != 0 {
		cs |= console.ShiftPressed
	}
	if m&tcell.ModCtrl != 0 {
		cs |= console.CtrlPressed
	}
	if m&tcell.ModAlt != 0 {
		cs |= console.AltPressed
	}
	return cs
}
