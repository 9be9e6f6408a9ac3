package curses

import "github.com/dshills/wincurses/console"

// keypadTable translates virtual keys when keypad mode is on.
var keypadTable = map[console.VirtualKey]Key{
	console.VKEscape:  KeyExit,
	console.VKCancel:  KeyCancel,
	console.VKBack:    KeyBackspace,
	console.VKClear:   KeyClear,
	console.VKReturn:  KeyEnter,
	console.VKControl: KeyCommand,
	console.VKPrior:   KeyPPage,
	console.VKNext:    KeyNPage,
	console.VKEnd:     KeyEnd,
	console.VKHome:    KeyHome,
	console.VKLeft:    KeyLeft,
	console.VKUp:      KeyUp,
	console.VKRight:   KeyRight,
	console.VKDown:    KeyDown,
	console.VKSelect:  KeySelect,
	console.VKPrint:   KeyPrint,
	console.VKInsert:  KeyIC,
	console.VKDelete:  KeyDC,
	console.VKHelp:    KeyHelp,

	// Numeric keypad, laid out as
	//   A1 UP   A3
	//   LEFT B2 RIGHT
	//   C1 DOWN C3
	console.VKNumpad1: KeyC1,
	console.VKNumpad2: KeyDown,
	console.VKNumpad3: KeyC3,
	console.VKNumpad4: KeyLeft,
	console.VKNumpad5: KeyB2,
	console.VKNumpad6: KeyRight,
	console.VKNumpad7: KeyA1,
	console.VKNumpad8: KeyUp,
	console.VKNumpad9: KeyA3,
}

func init() {
	for n := 1; n <= 24; n++ {
		keypadTable[console.VKFunction(n)] = KeyF(n)
	}
}

// GetCh waits for a key press and returns its character. With keypad on,
// keys in the translation table return their KEY_* code instead. In
// no-delay mode it returns ErrNoInput when nothing is queued.
//
// Key releases and non-keyboard records are skipped. With echo on, the
// character of each press is written to the default window.
func (w *Window) GetCh() (Key, error) {
	if err := w.usable("wgetch"); err != nil {
		return KeyErr, err
	}
	con := w.s.con

	for {
		if w.nodelay && !con.InputPending() {
			return KeyErr, opError("wgetch", ErrNoInput, nil)
		}

		ev, err := con.ReadInput()
		if err != nil {
			return KeyErr, opError("wgetch", ErrInput, err)
		}
		if ev.Type != console.EventKey || !ev.Key.Down {
			continue
		}
		w.s.stats.keysRead.Add(1)

		ch := ev.Key.Char
		if w.s.echo && ch != 0 {
			if err := w.s.stdscr.AddCh(ch); err != nil {
				w.s.log.WithComponent("input").Debug("echo dropped: %v", err)
			}
		}

		if w.keypad {
			if k, ok := keypadTable[ev.Key.VirtualKey]; ok {
				return k, nil
			}
		}
		return Key(ch), nil
	}
}

// MvGetCh moves to (y, x) and calls GetCh.
func (w *Window) MvGetCh(y, x int) (Key, error) {
	if err := w.Move(y, x); err != nil {
		return KeyErr, err
	}
	return w.GetCh()
}
