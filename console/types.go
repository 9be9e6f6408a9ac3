package console

// Handle identifies a screen buffer owned by a console.
type Handle int

// Coord is a cell position or a grid size. X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Rect is an inclusive cell rectangle.
type Rect struct {
	Top, Left, Bottom, Right int
}

// Width returns the number of columns covered by the rectangle.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns the number of rows covered by the rectangle.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether the position lies inside the rectangle.
func (r Rect) Contains(p Coord) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Attr is a console attribute mask. The low byte follows the classic
// text-mode layout: a 4-bit foreground index and a 4-bit background index,
// each made of blue, green, red and intensity bits.
type Attr uint16

const (
	ForegroundBlue      Attr = 0x0001
	ForegroundGreen     Attr = 0x0002
	ForegroundRed       Attr = 0x0004
	ForegroundIntensity Attr = 0x0008
	BackgroundBlue      Attr = 0x0010
	BackgroundGreen     Attr = 0x0020
	BackgroundRed       Attr = 0x0040
	BackgroundIntensity Attr = 0x0080

	// Extensions for renditions text-mode consoles cannot show natively.
	Dim        Attr = 0x0100
	Blink      Attr = 0x0200
	Invisible  Attr = 0x0400
	Protect    Attr = 0x0800
	AltCharset Attr = 0x1000

	ReverseVideo Attr = 0x4000
	Underscore   Attr = 0x8000

	ForegroundMask Attr = 0x000F
	BackgroundMask Attr = 0x00F0

	// DefaultAttr is grey on black.
	DefaultAttr = ForegroundRed | ForegroundGreen | ForegroundBlue
)

// Has reports whether every bit of f is set.
func (a Attr) Has(f Attr) bool {
	return a&f == f
}

// Foreground returns the 4-bit foreground palette index.
func (a Attr) Foreground() int {
	return int(a & ForegroundMask)
}

// Background returns the 4-bit background palette index.
func (a Attr) Background() int {
	return int(a&BackgroundMask) >> 4
}

// Cell is one character position of a screen buffer.
type Cell struct {
	Char rune
	Attr Attr
}

// BlankCell is what fresh buffers are filled with.
var BlankCell = Cell{Char: ' ', Attr: DefaultAttr}

// CursorInfo describes the cursor shape of a buffer.
type CursorInfo struct {
	// Size is the percentage of the cell filled by the cursor, 1 to 100.
	Size    int
	Visible bool
}

// DefaultCursor is the cursor shape of a fresh buffer.
var DefaultCursor = CursorInfo{Size: 25, Visible: true}

// Mode is the console input mode bit set.
type Mode uint32

const (
	ProcessedInput Mode = 0x0001
	LineInput      Mode = 0x0002
	EchoInput      Mode = 0x0004
)

// RGB is a colour with components on a 0 to 1000 scale.
type RGB struct {
	R, G, B int16
}

// EventType identifies the kind of input record.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
)

// ControlState holds the modifier keys active during a key event.
type ControlState uint32

const (
	ShiftPressed ControlState = 1 << iota
	CtrlPressed
	AltPressed
)

// KeyEvent is a single key transition.
type KeyEvent struct {
	Down       bool
	Repeat     int
	VirtualKey VirtualKey
	Char       rune
	Control    ControlState
}

// InputEvent is one record from the console input queue.
type InputEvent struct {
	Type EventType
	Key  KeyEvent
	// Size is set for EventResize.
	Size Coord
}

// KeyDown builds a key press record.
func KeyDown(vk VirtualKey, ch rune) InputEvent {
	return InputEvent{Type: EventKey, Key: KeyEvent{Down: true, Repeat: 1, VirtualKey: vk, Char: ch}}
}

// KeyUp builds a key release record.
func KeyUp(vk VirtualKey, ch rune) InputEvent {
	return InputEvent{Type: EventKey, Key: KeyEvent{Repeat: 1, VirtualKey: vk, Char: ch}}
}

// VirtualKey is a device-independent key identifier.
type VirtualKey uint16

const (
	VKCancel  VirtualKey = 0x03
	VKBack    VirtualKey = 0x08
	VKTab     VirtualKey = 0x09
	VKClear   VirtualKey = 0x0C
	VKReturn  VirtualKey = 0x0D
	VKShift   VirtualKey = 0x10
	VKControl VirtualKey = 0x11
	VKMenu    VirtualKey = 0x12
	VKPause   VirtualKey = 0x13
	VKEscape  VirtualKey = 0x1B
	VKSpace   VirtualKey = 0x20
	VKPrior   VirtualKey = 0x21
	VKNext    VirtualKey = 0x22
	VKEnd     VirtualKey = 0x23
	VKHome    VirtualKey = 0x24
	VKLeft    VirtualKey = 0x25
	VKUp      VirtualKey = 0x26
	VKRight   VirtualKey = 0x27
	VKDown    VirtualKey = 0x28
	VKSelect  VirtualKey = 0x29
	VKPrint   VirtualKey = 0x2A
	VKInsert  VirtualKey = 0x2D
	VKDelete  VirtualKey = 0x2E
	VKHelp    VirtualKey = 0x2F
)

const (
	VKNumpad0 VirtualKey = 0x60 + iota
	VKNumpad1
	VKNumpad2
	VKNumpad3
	VKNumpad4
	VKNumpad5
	VKNumpad6
	VKNumpad7
	VKNumpad8
	VKNumpad9
)

const (
	VKF1 VirtualKey = 0x70 + iota
	VKF2
	VKF3
	VKF4
	VKF5
	VKF6
	VKF7
	VKF8
	VKF9
	VKF10
	VKF11
	VKF12
	VKF13
	VKF14
	VKF15
	VKF16
	VKF17
	VKF18
	VKF19
	VKF20
	VKF21
	VKF22
	VKF23
	VKF24
)

// VKFunction returns the virtual key of function key n (1 to 24).
func VKFunction(n int) VirtualKey {
	return VKF1 + VirtualKey(n-1)
}
