package curses

import (
	"errors"
	"testing"

	"github.com/dshills/wincurses/console"
)

func TestInputModes(t *testing.T) {
	const (
		p = console.ProcessedInput
		l = console.LineInput
		e = console.EchoInput
	)

	tests := []struct {
		name  string
		start console.Mode
		call  func(*Session) error
		want  console.Mode
	}{
		{"cbreak", l, (*Session).CBreak, p},
		{"cbreak keeps echo bit", l | e, (*Session).CBreak, p | e},
		{"nocbreak", 0, (*Session).NoCBreak, p | l},
		{"raw", p | l | e, (*Session).Raw, e},
		{"noraw", 0, (*Session).NoRaw, p | l},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestSession(t, 10, 3)
			_ = m.SetMode(tt.start)

			if err := tt.call(s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got, _ := m.Mode(); got != tt.want {
				t.Errorf("expected mode %#x, got %#x", tt.want, got)
			}
		})
	}
}

func TestInputModeFailures(t *testing.T) {
	for _, op := range []string{"Mode", "SetMode"} {
		t.Run(op, func(t *testing.T) {
			s, m := newTestSession(t, 10, 3)
			boom := errors.New("boom")
			m.Fail(op, 0, boom)

			err := s.CBreak()
			if !errors.Is(err, ErrMode) || !errors.Is(err, boom) {
				t.Errorf("expected ErrMode wrapping cause, got %v", err)
			}
		})
	}
}

func TestEchoFlag(t *testing.T) {
	m := console.NewMemory(10, 3)
	opts := DefaultOptions()
	opts.Echo = true
	s, err := NewSession(m, opts)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}
	if !s.echo {
		t.Fatal("Echo option should turn echo on")
	}
	s.NoEcho()
	if s.echo {
		t.Error("NoEcho should turn echo off")
	}
	if mode, _ := m.Mode(); mode != 0 {
		t.Errorf("echo is handled by the library, console mode should stay 0, got %#x", mode)
	}
}

func TestCursSet(t *testing.T) {
	s, m := newTestSession(t, 10, 3)
	w := s.Stdscr()

	steps := []struct {
		level    int
		wantPrev int
		want     console.CursorInfo
	}{
		{CursorInvisible, CursorNormal, console.CursorInfo{Size: 25, Visible: false}},
		{CursorVisible, CursorInvisible, console.CursorInfo{Size: 100, Visible: true}},
		{CursorNormal, CursorVisible, console.CursorInfo{Size: 25, Visible: true}},
		{CursorNormal, CursorNormal, console.CursorInfo{Size: 25, Visible: true}},
	}

	for _, st := range steps {
		prev, err := s.CursSet(st.level)
		if err != nil {
			t.Fatalf("CursSet(%d) failed: %v", st.level, err)
		}
		if prev != st.wantPrev {
			t.Errorf("CursSet(%d) returned %d, want %d", st.level, prev, st.wantPrev)
		}
		for _, h := range w.buffers {
			if info, _ := m.CursorInfo(h); info != st.want {
				t.Errorf("buffer %d: expected %+v, got %+v", h, st.want, info)
			}
		}
	}
}

func TestCursSetErrors(t *testing.T) {
	s, m := newTestSession(t, 10, 3)

	for _, level := range []int{-1, 3} {
		if prev, err := s.CursSet(level); !errors.Is(err, ErrCursorLevel) || prev != -1 {
			t.Errorf("CursSet(%d): expected ErrCursorLevel, got %d %v", level, prev, err)
		}
	}

	m.Fail("SetCursorInfo", 0, errors.New("boom"))
	if _, err := s.CursSet(CursorInvisible); !errors.Is(err, ErrCursor) {
		t.Errorf("expected ErrCursor, got %v", err)
	}
}

func TestCursSetHighVisibilityOption(t *testing.T) {
	m := console.NewMemory(10, 3)
	opts := DefaultOptions()
	opts.HighVisibilityCursor = 60
	s, err := NewSession(m, opts)
	if err != nil {
		t.Fatalf("NewSession failed: %v", err)
	}

	_, _ = s.CursSet(CursorVisible)
	if info, _ := m.CursorInfo(s.Stdscr().front()); info.Size != 60 {
		t.Errorf("expected size 60, got %d", info.Size)
	}
}
