package curses

import (
	"errors"

	"github.com/dshills/wincurses/console"
)

// Window is a grid of cells backed by two console buffers: one displayed,
// one being drawn into.
type Window struct {
	s      *Session
	region console.Rect
	rows   int
	cols   int

	// The cursor may sit one row past the bottom after a newline or a
	// wrap on the last row; the next write there fails.
	cury, curx int

	buffers [2]console.Handle
	nbuf    int
	active  int

	keypad  bool
	nodelay bool
	attrs   Attr

	prev   console.Handle
	closed bool
}

func (s *Session) newWindow(vp console.Rect) (*Window, error) {
	w := &Window{
		s:      s,
		region: vp,
		rows:   vp.Height(),
		cols:   vp.Width(),
		prev:   s.con.ActiveBuffer(),
	}

	size := console.Coord{X: w.cols, Y: w.rows}
	for i := range w.buffers {
		h, err := s.con.CreateBuffer(size)
		if err != nil {
			_ = w.release()
			return nil, err
		}
		w.buffers[i] = h
		w.nbuf++
		if err := w.clear(h); err != nil {
			_ = w.release()
			return nil, err
		}
	}
	return w, nil
}

// clear fills buffer h with blanks in the default rendition.
func (w *Window) clear(h console.Handle) error {
	blank := console.Cell{Char: ' ', Attr: w.s.ResolveStyle(AttrNormal)}
	cells := make([]console.Cell, w.rows*w.cols)
	for i := range cells {
		cells[i] = blank
	}
	return w.s.con.WriteOutput(h, cells, w.gridSize(), w.gridRect())
}

func (w *Window) gridSize() console.Coord {
	return console.Coord{X: w.cols, Y: w.rows}
}

func (w *Window) gridRect() console.Rect {
	return console.Rect{Top: 0, Left: 0, Bottom: w.rows - 1, Right: w.cols - 1}
}

// front is the buffer last displayed by Refresh; back is the one drawn into.
func (w *Window) front() console.Handle { return w.buffers[w.active] }
func (w *Window) back() console.Handle  { return w.buffers[1-w.active] }

func (w *Window) usable(op string) error {
	if w.closed {
		return opError(op, ErrClosed, nil)
	}
	return nil
}

// Move places the cursor at row y, column x.
func (w *Window) Move(y, x int) error {
	if err := w.usable("wmove"); err != nil {
		return err
	}
	if y < 0 || x < 0 || y >= w.rows || x >= w.cols {
		return opError("wmove", ErrOutOfBounds, nil).WithContext("row %d col %d in %dx%d", y, x, w.rows, w.cols)
	}
	w.cury, w.curx = y, x
	return nil
}

// Cursor returns the logical cursor position.
func (w *Window) Cursor() (y, x int) {
	return w.cury, w.curx
}

// Size returns the number of rows and columns.
func (w *Window) Size() (rows, cols int) {
	return w.rows, w.cols
}

// Keypad turns translation of function and keypad keys on or off.
func (w *Window) Keypad(on bool) {
	w.keypad = on
}

// NoDelay makes GetCh return ErrNoInput instead of waiting.
func (w *Window) NoDelay(on bool) {
	w.nodelay = on
}

// Attrs returns the current attribute word.
func (w *Window) Attrs() Attr {
	return w.attrs
}

// AttrOn turns on the flags in a. A pair index in a replaces the
// current one.
func (w *Window) AttrOn(a Attr) {
	w.attrs |= a.Flags()
	if a.Pair() != 0 {
		w.attrs = w.attrs.WithPair(a.Pair())
	}
}

// AttrOff turns off the flags in a. A pair index in a resets the pair
// to 0.
func (w *Window) AttrOff(a Attr) {
	w.attrs &^= a.Flags()
	if a.Pair() != 0 {
		w.attrs = w.attrs.WithPair(0)
	}
}

// AttrSet replaces the attribute word.
func (w *Window) AttrSet(a Attr) {
	w.attrs = a
}

// Close releases the window's buffers. If one of them is displayed, the
// display returns to what was shown when the window was created.
func (w *Window) Close() error {
	if w.closed {
		return opError("delwin", ErrClosed, nil)
	}

	var errs []error
	if active := w.s.con.ActiveBuffer(); active == w.buffers[0] || active == w.buffers[1] {
		if err := w.s.con.SetActiveBuffer(w.prev); err != nil {
			errs = append(errs, opError("delwin", ErrRefresh, err).WithContext("restore display"))
		}
	}
	if err := w.release(); err != nil {
		errs = append(errs, opError("delwin", ErrClosed, err))
	}
	return errors.Join(errs...)
}

func (w *Window) release() error {
	var errs []error
	for i := 0; i < w.nbuf; i++ {
		if err := w.s.con.CloseBuffer(w.buffers[i]); err != nil {
			errs = append(errs, err)
		}
	}
	w.nbuf = 0
	w.closed = true
	return errors.Join(errs...)
}
