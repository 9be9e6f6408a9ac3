// Package console defines the screen-buffer console that the curses layer
// draws on, along with an in-memory implementation for tests.
//
// A console owns any number of screen buffers. Exactly one of them is
// displayed at a time; the rest are off-screen and can be drawn into freely.
package console

import "errors"

// Errors returned by console implementations.
var (
	ErrClosed         = errors.New("console closed")
	ErrBadHandle      = errors.New("invalid buffer handle")
	ErrRegion         = errors.New("region outside buffer")
	ErrInputExhausted = errors.New("no more input")
	ErrCursorSize     = errors.New("cursor size out of range")
	ErrPaletteIndex   = errors.New("palette index out of range")
)

// Console is the set of primitives the curses layer needs from a terminal.
type Console interface {
	// Viewport returns the visible window of the display, inclusive.
	Viewport() (Rect, error)

	// CreateBuffer allocates an off-screen buffer of the given size,
	// filled with BlankCell.
	CreateBuffer(size Coord) (Handle, error)

	// CloseBuffer releases a buffer. The displayed buffer cannot be closed.
	CloseBuffer(h Handle) error

	// ReadOutput copies region of buffer h into dst, which is laid out as
	// a size.X by size.Y grid. The region's top-left lands at dst[0].
	ReadOutput(h Handle, dst []Cell, size Coord, region Rect) error

	// WriteOutput copies the top-left of src, a size.X by size.Y grid,
	// into region of buffer h.
	WriteOutput(h Handle, src []Cell, size Coord, region Rect) error

	// ActiveBuffer returns the displayed buffer.
	ActiveBuffer() Handle

	// SetActiveBuffer displays buffer h.
	SetActiveBuffer(h Handle) error

	CursorPosition(h Handle) (Coord, error)
	SetCursorPosition(h Handle, pos Coord) error
	CursorInfo(h Handle) (CursorInfo, error)
	SetCursorInfo(h Handle, info CursorInfo) error

	// Mode and SetMode get and set the input mode.
	Mode() (Mode, error)
	SetMode(m Mode) error

	// ReadInput blocks until an input record is available.
	ReadInput() (InputEvent, error)

	// InputPending reports whether ReadInput would return without blocking.
	InputPending() bool

	// HasColors reports whether the display renders colour attributes.
	HasColors() bool

	// Close releases the console and restores the terminal.
	Close() error
}

// Palette is implemented by consoles that can reprogram their colour table.
type Palette interface {
	CanChangeColor() bool
	SetPaletteColor(index int, c RGB) error
}

// PaletteSize is the number of entries addressable by an Attr nibble.
const PaletteSize = 16
