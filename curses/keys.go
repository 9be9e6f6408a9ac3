package curses

import "strconv"

// Key is a value returned by GetCh: a character, or a KEY_* code at or
// above KeyCodeYes for keys that produce none.
type Key int

// KeyErr is returned alongside every GetCh error.
const KeyErr Key = -1

const (
	KeyCodeYes Key = 0400 + iota
	KeyBreak
	KeyDown
	KeyUp
	KeyLeft
	KeyRight
	KeyHome
	KeyBackspace
	KeyF0
)

// Function keys occupy KeyF0 .. KeyF0+63.
const maxFunctionKeys = 64

// KeyF returns the code of function key n.
func KeyF(n int) Key {
	return KeyF0 + Key(n)
}

const (
	KeyDL Key = KeyF0 + maxFunctionKeys + iota
	KeyIL
	KeyDC
	KeyIC
	KeyEIC
	KeyClear
	KeyEOS
	KeyEOL
	KeySF
	KeySR
	KeyNPage
	KeyPPage
	KeySTab
	KeyCTab
	KeyCATab
	KeyEnter
	KeySReset
	KeyReset
	KeyPrint
	KeyLL
	KeyA1
	KeyA3
	KeyB2
	KeyC1
	KeyC3
	KeyBTab
	KeyBeg
	KeyCancel
	KeyClose
	KeyCommand
	KeyCopy
	KeyCreate
	KeyEnd
	KeyExit
	KeyFind
	KeyHelp
	KeyMark
	KeyMessage
	KeyMove
	KeyNext
	KeyOpen
	KeyOptions
	KeyPrevious
	KeyRedo
	KeyReference
	KeyRefresh
	KeyReplace
	KeyRestart
	KeyResume
	KeySave
	KeySBeg
	KeySCancel
	KeySCommand
	KeySCopy
	KeySCreate
	KeySDC
	KeySDL
	KeySelect
	KeySEnd
	KeySEOL
	KeySExit
	KeySFind
	KeySHelp
	KeySHome
	KeySIC
	KeySLeft
	KeySMessage
	KeySMove
	KeySNext
	KeySOptions
	KeySPrevious
	KeySPrint
	KeySRedo
	KeySReplace
	KeySRight
	KeySRsume
	KeySSave
	KeySSuspend
	KeySUndo
	KeySuspend
	KeyUndo
)

// KeyMax is the highest key code.
const KeyMax = KeyUndo

var keyNames = map[Key]string{
	KeyBreak:     "KEY_BREAK",
	KeyDown:      "KEY_DOWN",
	KeyUp:        "KEY_UP",
	KeyLeft:      "KEY_LEFT",
	KeyRight:     "KEY_RIGHT",
	KeyHome:      "KEY_HOME",
	KeyBackspace: "KEY_BACKSPACE",
	KeyDL:        "KEY_DL",
	KeyIL:        "KEY_IL",
	KeyDC:        "KEY_DC",
	KeyIC:        "KEY_IC",
	KeyEIC:       "KEY_EIC",
	KeyClear:     "KEY_CLEAR",
	KeyEOS:       "KEY_EOS",
	KeyEOL:       "KEY_EOL",
	KeySF:        "KEY_SF",
	KeySR:        "KEY_SR",
	KeyNPage:     "KEY_NPAGE",
	KeyPPage:     "KEY_PPAGE",
	KeySTab:      "KEY_STAB",
	KeyCTab:      "KEY_CTAB",
	KeyCATab:     "KEY_CATAB",
	KeyEnter:     "KEY_ENTER",
	KeySReset:    "KEY_SRESET",
	KeyReset:     "KEY_RESET",
	KeyPrint:     "KEY_PRINT",
	KeyLL:        "KEY_LL",
	KeyA1:        "KEY_A1",
	KeyA3:        "KEY_A3",
	KeyB2:        "KEY_B2",
	KeyC1:        "KEY_C1",
	KeyC3:        "KEY_C3",
	KeyBTab:      "KEY_BTAB",
	KeyBeg:       "KEY_BEG",
	KeyCancel:    "KEY_CANCEL",
	KeyClose:     "KEY_CLOSE",
	KeyCommand:   "KEY_COMMAND",
	KeyCopy:      "KEY_COPY",
	KeyCreate:    "KEY_CREATE",
	KeyEnd:       "KEY_END",
	KeyExit:      "KEY_EXIT",
	KeyFind:      "KEY_FIND",
	KeyHelp:      "KEY_HELP",
	KeyMark:      "KEY_MARK",
	KeyMessage:   "KEY_MESSAGE",
	KeyMove:      "KEY_MOVE",
	KeyNext:      "KEY_NEXT",
	KeyOpen:      "KEY_OPEN",
	KeyOptions:   "KEY_OPTIONS",
	KeyPrevious:  "KEY_PREVIOUS",
	KeyRedo:      "KEY_REDO",
	KeyReference: "KEY_REFERENCE",
	KeyRefresh:   "KEY_REFRESH",
	KeyReplace:   "KEY_REPLACE",
	KeyRestart:   "KEY_RESTART",
	KeyResume:    "KEY_RESUME",
	KeySave:      "KEY_SAVE",
	KeySBeg:      "KEY_SBEG",
	KeySCancel:   "KEY_SCANCEL",
	KeySCommand:  "KEY_SCOMMAND",
	KeySCopy:     "KEY_SCOPY",
	KeySCreate:   "KEY_SCREATE",
	KeySDC:       "KEY_SDC",
	KeySDL:       "KEY_SDL",
	KeySelect:    "KEY_SELECT",
	KeySEnd:      "KEY_SEND",
	KeySEOL:      "KEY_SEOL",
	KeySExit:     "KEY_SEXIT",
	KeySFind:     "KEY_SFIND",
	KeySHelp:     "KEY_SHELP",
	KeySHome:     "KEY_SHOME",
	KeySIC:       "KEY_SIC",
	KeySLeft:     "KEY_SLEFT",
	KeySMessage:  "KEY_SMESSAGE",
	KeySMove:     "KEY_SMOVE",
	KeySNext:     "KEY_SNEXT",
	KeySOptions:  "KEY_SOPTIONS",
	KeySPrevious: "KEY_SPREVIOUS",
	KeySPrint:    "KEY_SPRINT",
	KeySRedo:     "KEY_SREDO",
	KeySReplace:  "KEY_SREPLACE",
	KeySRight:    "KEY_SRIGHT",
	KeySRsume:    "KEY_SRSUME",
	KeySSave:     "KEY_SSAVE",
	KeySSuspend:  "KEY_SSUSPEND",
	KeySUndo:     "KEY_SUNDO",
	KeySuspend:   "KEY_SUSPEND",
	KeyUndo:      "KEY_UNDO",
}

// KeyName returns the name of k: KEY_* for key codes, ^X for control
// characters and the character itself otherwise.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyF0 && k < KeyF0+maxFunctionKeys:
		return "KEY_F(" + strconv.Itoa(int(k-KeyF0)) + ")"
	case k >= 0 && k < 0x20:
		return "^" + string(rune(k+'@'))
	case k == 0x7f:
		return "^?"
	case k >= 0x20 && k < KeyCodeYes:
		return string(rune(k))
	default:
		return "UNKNOWN KEY"
	}
}
