package curses

import (
	"time"

	"github.com/dshills/wincurses/console"
)

// Refresh displays the back buffer and copies it into the buffer that was
// on screen, so the next round of drawing starts from what is visible.
//
// Once the display has switched the buffer roles are swapped even if a
// later step fails, so they keep matching what is on screen.
func (w *Window) Refresh() error {
	if err := w.usable("wrefresh"); err != nil {
		return err
	}
	start := time.Now()
	con := w.s.con
	back, front := w.back(), w.front()

	if err := con.SetActiveBuffer(back); err != nil {
		w.s.stats.recordRefresh(time.Since(start), true)
		w.s.log.WithComponent("refresh").Warn("display switch failed: %v", err)
		return opError("wrefresh", ErrRefresh, err).WithContext("display")
	}

	var failure error
	if err := con.SetCursorPosition(back, w.displayCursor()); err != nil {
		failure = opError("wrefresh", ErrRefresh, err).WithContext("cursor")
	}

	cells := make([]console.Cell, w.rows*w.cols)
	if err := con.ReadOutput(back, cells, w.gridSize(), w.gridRect()); err != nil {
		failure = opError("wrefresh", ErrRefresh, err).WithContext("read back buffer")
	} else if err := con.WriteOutput(front, cells, w.gridSize(), w.gridRect()); err != nil {
		failure = opError("wrefresh", ErrRefresh, err).WithContext("sync buffers")
	}

	w.active = 1 - w.active
	w.s.stats.recordRefresh(time.Since(start), failure != nil)
	if failure != nil {
		w.s.log.WithComponent("refresh").Warn("%v", failure)
	}
	return failure
}

// displayCursor is the logical cursor kept inside the grid.
func (w *Window) displayCursor() console.Coord {
	y := min(w.cury, w.rows-1)
	x := min(w.curx, w.cols-1)
	return console.Coord{X: x, Y: y}
}
