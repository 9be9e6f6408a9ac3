package curses

import "github.com/dshills/wincurses/console"

// Echo makes GetCh write typed characters to the default window.
func (s *Session) Echo() { s.echo = true }

// NoEcho turns echo off.
func (s *Session) NoEcho() { s.echo = false }

// CBreak delivers keys as they are typed; interrupt keys still signal.
func (s *Session) CBreak() error {
	return s.updateMode("cbreak", console.ProcessedInput, console.LineInput)
}

// NoCBreak returns to line-buffered, processed input.
func (s *Session) NoCBreak() error {
	return s.updateMode("nocbreak", console.LineInput|console.ProcessedInput, 0)
}

// Raw delivers keys as they are typed with no processing at all.
func (s *Session) Raw() error {
	return s.updateMode("raw", 0, console.LineInput|console.ProcessedInput)
}

// NoRaw returns to line-buffered, processed input.
func (s *Session) NoRaw() error {
	return s.updateMode("noraw", console.LineInput|console.ProcessedInput, 0)
}

func (s *Session) updateMode(op string, set, clear console.Mode) error {
	m, err := s.con.Mode()
	if err != nil {
		return opError(op, ErrMode, err)
	}
	m = m&^clear | set
	if err := s.con.SetMode(m); err != nil {
		return opError(op, ErrMode, err)
	}
	s.log.WithComponent("modes").Debug("%s: input mode %#x", op, m)
	return nil
}

// Cursor visibility levels for CursSet.
const (
	CursorInvisible = 0
	CursorNormal    = 1
	CursorVisible   = 2
)

// CursSet sets the cursor visibility of the default window and returns
// the previous level.
func (s *Session) CursSet(level int) (int, error) {
	var info console.CursorInfo
	switch level {
	case CursorInvisible:
		info = console.CursorInfo{Size: s.cursorSize, Visible: false}
	case CursorNormal:
		info = console.CursorInfo{Size: s.cursorSize, Visible: true}
	case CursorVisible:
		info = console.CursorInfo{Size: s.opts.HighVisibilityCursor, Visible: true}
	default:
		return -1, opError("curs_set", ErrCursorLevel, nil).WithContext("level %d", level)
	}

	w := s.stdscr
	cur, err := s.con.CursorInfo(w.front())
	if err != nil {
		return -1, opError("curs_set", ErrCursor, err)
	}
	prev := CursorVisible
	switch {
	case !cur.Visible:
		prev = CursorInvisible
	case cur.Size == s.cursorSize:
		prev = CursorNormal
	}

	for _, h := range w.buffers {
		if err := s.con.SetCursorInfo(h, info); err != nil {
			return -1, opError("curs_set", ErrCursor, err)
		}
	}
	return prev, nil
}
