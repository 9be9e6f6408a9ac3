package curses

import (
	"fmt"
	"unicode/utf8"

	"github.com/dshills/wincurses/console"
)

// AddCh writes ch at the cursor and advances it. A carriage return moves
// to column 0; a newline moves to column 0 of the next row. Writing in
// the last column wraps to the next row. The cursor does not move when the
// write fails.
func (w *Window) AddCh(ch rune) error {
	if err := w.usable("waddch"); err != nil {
		return err
	}

	switch ch {
	case '\r':
		w.curx = 0
		return nil
	case '\n':
		w.curx = 0
		w.cury++
		return nil
	}

	if err := w.putCell(ch); err != nil {
		return err
	}
	w.curx++
	if w.curx == w.cols {
		w.curx = 0
		w.cury++
	}
	return nil
}

func (w *Window) putCell(ch rune) error {
	if w.attrs.Has(AttrAltCharset) {
		ch = DecodeACS(ch)
	}
	cell := []console.Cell{{Char: ch, Attr: w.s.ResolveStyle(w.attrs)}}
	at := console.Rect{Top: w.cury, Left: w.curx, Bottom: w.cury, Right: w.curx}

	if err := w.s.con.WriteOutput(w.back(), cell, console.Coord{X: 1, Y: 1}, at); err != nil {
		w.s.stats.writeFailures.Add(1)
		return opError("waddch", ErrWrite, err).WithContext("row %d col %d", w.cury, w.curx)
	}
	w.s.stats.cellsWritten.Add(1)
	return nil
}

// MvAddCh moves to (y, x) and writes ch.
func (w *Window) MvAddCh(y, x int, ch rune) error {
	if err := w.Move(y, x); err != nil {
		return err
	}
	return w.AddCh(ch)
}

// Printw formats its arguments and writes the result at the cursor. The
// text must be shorter than the window's cell count, leaving the slot a
// terminator would take; longer text is rejected before anything is
// written. A failed write stops output; what was written stays.
func (w *Window) Printw(format string, args ...any) error {
	if err := w.usable("wprintw"); err != nil {
		return err
	}

	text := fmt.Sprintf(format, args...)
	if n := utf8.RuneCountInString(text); n >= w.rows*w.cols {
		return opError("wprintw", ErrFormatOverflow, nil).WithContext("%d characters for %d cells", n, w.rows*w.cols-1)
	}

	for _, r := range text {
		if err := w.AddCh(r); err != nil {
			return err
		}
	}
	return nil
}

// MvPrintw moves to (y, x) and calls Printw. If printing fails the cursor
// goes back to where it was before the move.
func (w *Window) MvPrintw(y, x int, format string, args ...any) error {
	oy, ox := w.cury, w.curx
	if err := w.Move(y, x); err != nil {
		return err
	}
	if err := w.Printw(format, args...); err != nil {
		w.cury, w.curx = oy, ox
		return err
	}
	return nil
}
