// Package curses is a curses-style screen library: windows addressed as
// character grids, a packed attribute word with colour pairs, and portable
// key codes, drawn through a console.Console.
//
// Drawing only touches a window's off-screen buffer. Refresh displays it
// and copies it back so both buffers stay identical.
package curses

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dshills/wincurses/console"
	"github.com/dshills/wincurses/console/tcellcon"
	"github.com/dshills/wincurses/internal/logging"
)

// Session holds everything a curses program shares between windows.
type Session struct {
	con     console.Console
	palette console.Palette
	opts    Options
	id      string
	log     *logging.Logger
	logFile io.Closer
	stats   Stats

	stdscr *Window
	echo   bool

	colorOn bool
	colors  [MaxColors]RGB
	pairs   [PairCapacity]Pair

	cursorSize  int
	prevDisplay console.Handle
	savedMode   console.Mode
	closed      bool
}

var (
	newConsole = func() (console.Console, error) {
		c, err := tcellcon.New()
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	exit = os.Exit
)

// Init opens the terminal and starts a session. Any failure is fatal: a
// message is printed and the process exits with status 1.
func Init(opts Options) *Session {
	con, err := newConsole()
	if err != nil {
		fatal(opError("initscr", ErrInit, err))
		return nil
	}
	s, err := NewSession(con, opts)
	if err != nil {
		_ = con.Close()
		fatal(err)
		return nil
	}
	return s
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "wincurses: %v\n", err)
	exit(1)
}

// NewSession starts a session on con. The display is switched to a fresh
// default window and input mode is cleared; EndWin undoes both.
func NewSession(con console.Console, opts Options) (*Session, error) {
	if opts.HighVisibilityCursor == 0 {
		opts.HighVisibilityCursor = DefaultOptions().HighVisibilityCursor
	}

	s := &Session{
		con:        con,
		opts:       opts,
		id:         uuid.NewString(),
		echo:       opts.Echo,
		cursorSize: console.DefaultCursor.Size,
	}
	if p, ok := con.(console.Palette); ok {
		s.palette = p
	}
	if err := s.openLog(); err != nil {
		return nil, opError("initscr", ErrInit, err)
	}
	log := s.log.WithComponent("session")

	vp, err := con.Viewport()
	if err != nil {
		s.closeLog()
		return nil, opError("initscr", ErrInit, err).WithContext("viewport")
	}

	s.prevDisplay = con.ActiveBuffer()
	if info, err := con.CursorInfo(s.prevDisplay); err == nil {
		s.cursorSize = info.Size
	} else {
		log.Warn("cursor shape unavailable, using default: %v", err)
	}

	if s.savedMode, err = con.Mode(); err != nil {
		s.closeLog()
		return nil, opError("initscr", ErrInit, err).WithContext("input mode")
	}

	if s.stdscr, err = s.newWindow(vp); err != nil {
		s.closeLog()
		return nil, opError("initscr", ErrInit, err).WithContext("screen buffers")
	}
	s.stdscr.keypad = opts.Keypad
	s.stdscr.nodelay = opts.NoDelay

	if err := con.SetMode(0); err != nil {
		s.abort()
		return nil, opError("initscr", ErrInit, err).WithContext("input mode")
	}
	if err := con.SetActiveBuffer(s.stdscr.buffers[0]); err != nil {
		s.abort()
		return nil, opError("initscr", ErrInit, err).WithContext("display")
	}

	log.Info("session started: %dx%d, saved mode %#x", s.stdscr.cols, s.stdscr.rows, s.savedMode)
	return s, nil
}

func (s *Session) openLog() error {
	if s.opts.logger != nil {
		s.log = s.opts.logger.WithField("session", s.id)
		return nil
	}
	if s.opts.LogFile == "" {
		s.log = logging.Null
		return nil
	}
	l, f, err := logging.OpenFile(s.opts.LogFile, logging.ParseLevel(s.opts.LogLevel))
	if err != nil {
		return err
	}
	s.log = l.WithField("session", s.id)
	s.logFile = f
	return nil
}

func (s *Session) closeLog() error {
	if s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}

// abort unwinds a partially started session.
func (s *Session) abort() {
	_ = s.stdscr.release()
	_ = s.con.SetMode(s.savedMode)
	_ = s.closeLog()
}

// EndWin restores the display and input mode that were current before the
// session started, releases the default window and closes the console.
func (s *Session) EndWin() error {
	if s.closed {
		return opError("endwin", ErrClosed, nil)
	}
	s.closed = true

	var errs []error
	if err := s.stdscr.Close(); err != nil {
		errs = append(errs, err)
	}
	// Another window may still be on screen.
	if s.con.ActiveBuffer() != s.prevDisplay {
		if err := s.con.SetActiveBuffer(s.prevDisplay); err != nil {
			errs = append(errs, opError("endwin", ErrRefresh, err).WithContext("restore display"))
		}
	}
	if err := s.con.SetMode(s.savedMode); err != nil {
		errs = append(errs, opError("endwin", ErrMode, err))
	}
	if err := s.con.Close(); err != nil {
		errs = append(errs, err)
	}

	snap := s.stats.Snapshot()
	s.log.Info("session ended: %d refreshes, %d cells, %d keys", snap.Refreshes, snap.CellsWritten, snap.KeysRead)
	if err := s.closeLog(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NewWindow creates another full-screen window with its own buffers.
// Close it when done; closing hands the display back to whatever was shown
// when it was created.
func (s *Session) NewWindow() (*Window, error) {
	vp, err := s.con.Viewport()
	if err != nil {
		return nil, opError("newwin", ErrInit, err)
	}
	w, err := s.newWindow(vp)
	if err != nil {
		return nil, opError("newwin", ErrInit, err)
	}
	return w, nil
}

// Stdscr returns the default window.
func (s *Session) Stdscr() *Window { return s.stdscr }

// Lines returns the number of rows of the default window.
func (s *Session) Lines() int { return s.stdscr.rows }

// Cols returns the number of columns of the default window.
func (s *Session) Cols() int { return s.stdscr.cols }

// ID returns the identifier used to tag this session's log lines.
func (s *Session) ID() string { return s.id }

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() StatsSnapshot { return s.stats.Snapshot() }

// Shortcuts on the default window.

func (s *Session) Move(y, x int) error                     { return s.stdscr.Move(y, x) }
func (s *Session) AddCh(ch rune) error                     { return s.stdscr.AddCh(ch) }
func (s *Session) MvAddCh(y, x int, ch rune) error         { return s.stdscr.MvAddCh(y, x, ch) }
func (s *Session) Printw(format string, args ...any) error { return s.stdscr.Printw(format, args...) }
func (s *Session) AttrOn(a Attr)                           { s.stdscr.AttrOn(a) }
func (s *Session) AttrOff(a Attr)                          { s.stdscr.AttrOff(a) }
func (s *Session) AttrSet(a Attr)                          { s.stdscr.AttrSet(a) }
func (s *Session) GetCh() (Key, error)                     { return s.stdscr.GetCh() }
func (s *Session) MvGetCh(y, x int) (Key, error)           { return s.stdscr.MvGetCh(y, x) }
func (s *Session) Refresh() error                          { return s.stdscr.Refresh() }

func (s *Session) MvPrintw(y, x int, format string, args ...any) error {
	return s.stdscr.MvPrintw(y, x, format, args...)
}
