package curses

import (
	"errors"
	"testing"

	"github.com/dshills/wincurses/console"
)

func TestMove(t *testing.T) {
	s, _ := newTestSession(t, 10, 4)
	w := s.Stdscr()

	tests := []struct {
		name    string
		y, x    int
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"last cell", 3, 9, false},
		{"middle", 2, 5, false},
		{"row past bottom", 4, 0, true},
		{"col past right", 0, 10, true},
		{"negative row", -1, 0, true},
		{"negative col", 0, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_ = w.Move(1, 1)
			err := w.Move(tt.y, tt.x)
			y, x := w.Cursor()
			if tt.wantErr {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("expected ErrOutOfBounds, got %v", err)
				}
				if y != 1 || x != 1 {
					t.Errorf("cursor moved on failure to (%d,%d)", y, x)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if y != tt.y || x != tt.x {
				t.Errorf("expected (%d,%d), got (%d,%d)", tt.y, tt.x, y, x)
			}
		})
	}
}

func TestAddChWritesBackBuffer(t *testing.T) {
	s, m := newTestSession(t, 10, 4)
	w := s.Stdscr()

	if err := w.MvAddCh(1, 2, 'x'); err != nil {
		t.Fatalf("MvAddCh failed: %v", err)
	}
	if c := m.CellAt(w.back(), 2, 1); c.Char != 'x' || c.Attr != console.DefaultAttr {
		t.Errorf("unexpected back cell %+v", c)
	}
	if c := m.CellAt(w.front(), 2, 1); c != console.BlankCell {
		t.Errorf("front buffer changed before refresh: %+v", c)
	}
	if y, x := w.Cursor(); y != 1 || x != 3 {
		t.Errorf("expected cursor (1,3), got (%d,%d)", y, x)
	}
}

func TestAddChWraps(t *testing.T) {
	s, m := newTestSession(t, 5, 3)
	w := s.Stdscr()

	for _, r := range "abcde" {
		if err := w.AddCh(r); err != nil {
			t.Fatalf("AddCh(%q) failed: %v", r, err)
		}
	}
	if y, x := w.Cursor(); y != 1 || x != 0 {
		t.Errorf("expected wrap to (1,0), got (%d,%d)", y, x)
	}
	if err := w.AddCh('f'); err != nil {
		t.Fatalf("AddCh failed: %v", err)
	}
	if c := m.CellAt(w.back(), 0, 1); c.Char != 'f' {
		t.Errorf("expected 'f' at start of row 1, got %q", c.Char)
	}
}

func TestAddChControl(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()
	_ = w.Move(1, 6)
	writes := m.Calls("WriteOutput")

	if err := w.AddCh('\n'); err != nil {
		t.Fatalf("newline failed: %v", err)
	}
	if y, x := w.Cursor(); y != 2 || x != 0 {
		t.Errorf("newline: expected (2,0), got (%d,%d)", y, x)
	}

	_ = w.Move(0, 4)
	if err := w.AddCh('\r'); err != nil {
		t.Fatalf("carriage return failed: %v", err)
	}
	if y, x := w.Cursor(); y != 0 || x != 0 {
		t.Errorf("carriage return: expected (0,0), got (%d,%d)", y, x)
	}

	if m.Calls("WriteOutput") != writes {
		t.Error("control characters should not write cells")
	}
}

func TestAddChPastBottom(t *testing.T) {
	s, _ := newTestSession(t, 4, 2)
	w := s.Stdscr()
	_ = w.Move(1, 0)

	if err := w.AddCh('\n'); err != nil {
		t.Fatalf("newline on last row failed: %v", err)
	}
	if y, _ := w.Cursor(); y != 2 {
		t.Fatalf("cursor should move past the last row, got row %d", y)
	}
	if err := w.AddCh('z'); !errors.Is(err, ErrWrite) {
		t.Errorf("write past the last row should fail with ErrWrite, got %v", err)
	}
	if y, x := w.Cursor(); y != 2 || x != 0 {
		t.Errorf("cursor moved after failed write: (%d,%d)", y, x)
	}
	if s.Stats().WriteFailures != 1 {
		t.Errorf("expected one write failure, got %d", s.Stats().WriteFailures)
	}
}

func TestAddChFailureKeepsCursor(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()
	boom := errors.New("boom")
	m.Fail("WriteOutput", 0, boom)

	err := w.MvAddCh(1, 1, 'q')
	if !errors.Is(err, ErrWrite) || !errors.Is(err, boom) {
		t.Errorf("expected ErrWrite wrapping cause, got %v", err)
	}
	var opErr *OperationError
	if !errors.As(err, &opErr) || opErr.Op != "waddch" {
		t.Errorf("expected waddch OperationError, got %#v", err)
	}
	if y, x := w.Cursor(); y != 1 || x != 1 {
		t.Errorf("cursor should stay at (1,1), got (%d,%d)", y, x)
	}
}

func TestAddChAltCharset(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()

	w.AttrOn(AttrAltCharset)
	if err := w.AddCh(ACSULCorner); err != nil {
		t.Fatalf("AddCh failed: %v", err)
	}
	c := m.CellAt(w.back(), 0, 0)
	if c.Char != '┌' {
		t.Errorf("expected box corner, got %q", c.Char)
	}
	if !c.Attr.Has(console.AltCharset) {
		t.Errorf("expected alt charset bit, got %#x", c.Attr)
	}

	w.AttrOff(AttrAltCharset)
	_ = w.AddCh(ACSULCorner)
	if c := m.CellAt(w.back(), 1, 0); c.Char != ACSULCorner {
		t.Errorf("without alt charset the rune is written as is, got %q", c.Char)
	}
}

func TestPrintw(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()

	if err := w.MvPrintw(1, 2, "n=%d", 42); err != nil {
		t.Fatalf("MvPrintw failed: %v", err)
	}
	for i, want := range "n=42" {
		if c := m.CellAt(w.back(), 2+i, 1); c.Char != want {
			t.Errorf("col %d: expected %q, got %q", 2+i, want, c.Char)
		}
	}
	if y, x := w.Cursor(); y != 1 || x != 6 {
		t.Errorf("expected cursor (1,6), got (%d,%d)", y, x)
	}
}

func TestPrintwOverflow(t *testing.T) {
	s, m := newTestSession(t, 4, 2)
	w := s.Stdscr()
	writes := m.Calls("WriteOutput")

	for _, text := range []string{"123456789", "abcdefgh"} {
		err := w.Printw("%s", text)
		if !errors.Is(err, ErrFormatOverflow) {
			t.Errorf("%q: expected ErrFormatOverflow, got %v", text, err)
		}
	}
	if m.Calls("WriteOutput") != writes {
		t.Error("nothing should be written when the text does not fit")
	}
	if y, x := w.Cursor(); y != 0 || x != 0 {
		t.Errorf("cursor moved on overflow to (%d,%d)", y, x)
	}

	if err := w.Printw("%s", "1234567"); err != nil {
		t.Errorf("text one short of the cell count should print, got %v", err)
	}
	if y, x := w.Cursor(); y != 1 || x != 3 {
		t.Errorf("expected cursor (1,3), got (%d,%d)", y, x)
	}
}

func TestPrintwStopsAtFailure(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()
	m.Fail("WriteOutput", 2, errors.New("boom"))

	err := w.Printw("abcdef")
	if !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	m.Fail("WriteOutput", 0, nil)

	if c := m.CellAt(w.back(), 1, 0); c.Char != 'b' {
		t.Errorf("characters before the failure should stay, got %q", c.Char)
	}
	if c := m.CellAt(w.back(), 2, 0); c.Char != ' ' {
		t.Errorf("nothing after the failure should be written, got %q", c.Char)
	}
	if _, x := w.Cursor(); x != 2 {
		t.Errorf("expected cursor at col 2, got %d", x)
	}
}

func TestMvPrintwRestoresCursor(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()
	_ = w.Move(2, 7)
	m.Fail("WriteOutput", 1, errors.New("boom"))

	if err := w.MvPrintw(0, 0, "abc"); !errors.Is(err, ErrWrite) {
		t.Fatalf("expected ErrWrite, got %v", err)
	}
	if y, x := w.Cursor(); y != 2 || x != 7 {
		t.Errorf("expected cursor back at (2,7), got (%d,%d)", y, x)
	}

	if err := w.MvPrintw(5, 0, "abc"); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestAttrOnOff(t *testing.T) {
	s, _ := newTestSession(t, 10, 3)
	w := s.Stdscr()

	w.AttrOn(AttrBold | ColorPair(3))
	if w.Attrs() != AttrBold|ColorPair(3) {
		t.Fatalf("unexpected attrs %#x", w.Attrs())
	}

	w.AttrOn(AttrUnderline | ColorPair(5))
	if w.Attrs().Pair() != 5 || !w.Attrs().Has(AttrBold|AttrUnderline) {
		t.Errorf("pair should be replaced and flags kept, got %#x", w.Attrs())
	}

	w.AttrOff(AttrBold)
	if w.Attrs().Has(AttrBold) || w.Attrs().Pair() != 5 {
		t.Errorf("bold should be off and pair untouched, got %#x", w.Attrs())
	}

	w.AttrOff(ColorPair(1))
	if w.Attrs().Pair() != 0 || !w.Attrs().Has(AttrUnderline) {
		t.Errorf("pair should reset to 0, got %#x", w.Attrs())
	}

	w.AttrSet(AttrReverse)
	if w.Attrs() != AttrReverse {
		t.Errorf("AttrSet should replace the word, got %#x", w.Attrs())
	}
}

func TestClosedWindow(t *testing.T) {
	s, _ := newTestSession(t, 10, 3)
	w, err := s.NewWindow()
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	_ = w.Close()

	checks := map[string]error{
		"move":    w.Move(0, 0),
		"addch":   w.AddCh('a'),
		"printw":  w.Printw("a"),
		"refresh": w.Refresh(),
	}
	for name, err := range checks {
		if !errors.Is(err, ErrClosed) {
			t.Errorf("%s: expected ErrClosed, got %v", name, err)
		}
	}
	if _, err := w.GetCh(); !errors.Is(err, ErrClosed) {
		t.Errorf("getch: expected ErrClosed, got %v", err)
	}
}
