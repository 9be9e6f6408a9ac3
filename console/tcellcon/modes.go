package tcellcon

import (
	"sync"

	"github.com/dshills/wincurses/console"
)

// ModeController reads and writes the terminal input mode.
type ModeController interface {
	Mode() (console.Mode, error)
	SetMode(m console.Mode) error
}

// SoftModes keeps the input mode in memory without touching a device.
// It stands in where no terminal driver is reachable.
type SoftModes struct {
	mu   sync.Mutex
	mode console.Mode
}

// NewSoftModes starts in cooked mode: line input, processing and echo.
func NewSoftModes() *SoftModes {
	return &SoftModes{mode: console.ProcessedInput | console.LineInput | console.EchoInput}
}

func (s *SoftModes) Mode() (console.Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, nil
}

func (s *SoftModes) SetMode(m console.Mode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
	return nil
}

// modeBits pairs each input mode bit with the local-mode flag of the
// terminal driver that implements it.
type modeBit[T ~uint32 | ~uint64] struct {
	flag T
	mode console.Mode
}

func modeFromFlags[T ~uint32 | ~uint64](lflag T, bits []modeBit[T]) console.Mode {
	var m console.Mode
	for _, b := range bits {
		if lflag&b.flag != 0 {
			m |= b.mode
		}
	}
	return m
}

func flagsFromMode[T ~uint32 | ~uint64](lflag T, m console.Mode, bits []modeBit[T]) T {
	for _, b := range bits {
		if m&b.mode != 0 {
			lflag |= b.flag
		} else {
			lflag &^= b.flag
		}
	}
	return lflag
}
