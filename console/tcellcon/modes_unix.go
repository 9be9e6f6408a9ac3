//go:build linux || darwin || freebsd || netbsd || openbsd

package tcellcon

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"

	"github.com/dshills/wincurses/console"
)

// TTYModes maps input modes onto the terminal driver's local flags:
// line input is canonical mode, processed input is signal generation and
// echo is echo.
type TTYModes struct {
	f *os.File
}

// OpenTTYModes opens the terminal device at path.
func OpenTTYModes(path string) (*TTYModes, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &TTYModes{f: f}, nil
}

// ttyBits takes an Lflag value only to fix T, whose width varies by OS.
func ttyBits[T ~uint32 | ~uint64](T) []modeBit[T] {
	return []modeBit[T]{
		{flag: T(unix.ICANON), mode: console.LineInput},
		{flag: T(unix.ISIG), mode: console.ProcessedInput},
		{flag: T(unix.ECHO), mode: console.EchoInput},
	}
}

func (t *TTYModes) Mode() (console.Mode, error) {
	var tio unix.Termios
	if err := termios.Tcgetattr(t.f.Fd(), &tio); err != nil {
		return 0, fmt.Errorf("read terminal mode: %w", err)
	}
	return modeFromFlags(tio.Lflag, ttyBits(tio.Lflag)), nil
}

func (t *TTYModes) SetMode(m console.Mode) error {
	var tio unix.Termios
	if err := termios.Tcgetattr(t.f.Fd(), &tio); err != nil {
		return fmt.Errorf("read terminal mode: %w", err)
	}
	tio.Lflag = flagsFromMode(tio.Lflag, m, ttyBits(tio.Lflag))
	if err := termios.Tcsetattr(t.f.Fd(), termios.TCSANOW, &tio); err != nil {
		return fmt.Errorf("set terminal mode: %w", err)
	}
	return nil
}

// Close releases the terminal device.
func (t *TTYModes) Close() error {
	return t.f.Close()
}

func platformModes() ModeController {
	m, err := OpenTTYModes("/dev/tty")
	if err != nil {
		return NewSoftModes()
	}
	return m
}
