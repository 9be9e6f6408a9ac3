// Package tcellcon implements console.Console on a terminal through tcell.
//
// tcell offers a single screen, so screen buffers are kept in memory and
// the active one is mirrored to the terminal whenever it changes.
package tcellcon

import (
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wincurses/console"
)

// Console is a tcell-backed console.Console.
type Console struct {
	mu      sync.Mutex
	screen  tcell.Screen
	modes   ModeController
	buffers map[console.Handle]*buffer
	next    console.Handle
	active  console.Handle
	palette [console.PaletteSize]tcell.Color
	closed  bool
}

type buffer struct {
	*console.Grid
	cursor console.Coord
	info   console.CursorInfo
}

var (
	_ console.Console = (*Console)(nil)
	_ console.Palette = (*Console)(nil)
)

// Option configures a Console.
type Option func(*Console)

// WithScreen uses s instead of the terminal. Tests pass a simulation screen.
func WithScreen(s tcell.Screen) Option {
	return func(c *Console) {
		c.screen = s
	}
}

// WithModes replaces the input mode controller.
func WithModes(m ModeController) Option {
	return func(c *Console) {
		c.modes = m
	}
}

// New initialises the terminal and returns a console showing a blank
// buffer with handle 0.
func New(opts ...Option) (*Console, error) {
	c := &Console{
		buffers: make(map[console.Handle]*buffer),
		next:    1,
		palette: defaultPalette(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		c.screen = screen
	}
	if err := c.screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	if c.modes == nil {
		c.modes = platformModes()
	}

	w, h := c.screen.Size()
	c.buffers[0] = newBuffer(console.Coord{X: w, Y: h})
	c.render()
	return c, nil
}

func newBuffer(size console.Coord) *buffer {
	return &buffer{Grid: console.NewGrid(size), info: console.DefaultCursor}
}

func (c *Console) buffer(h console.Handle) (*buffer, error) {
	if c.closed {
		return nil, console.ErrClosed
	}
	b, ok := c.buffers[h]
	if !ok {
		return nil, console.ErrBadHandle
	}
	return b, nil
}

func (c *Console) Viewport() (console.Rect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return console.Rect{}, console.ErrClosed
	}
	w, h := c.screen.Size()
	return console.Rect{Top: 0, Left: 0, Bottom: h - 1, Right: w - 1}, nil
}

func (c *Console) CreateBuffer(size console.Coord) (console.Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, console.ErrClosed
	}
	if size.X <= 0 || size.Y <= 0 {
		return 0, console.ErrRegion
	}
	h := c.next
	c.next++
	c.buffers[h] = newBuffer(size)
	return h, nil
}

func (c *Console) CloseBuffer(h console.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.buffer(h); err != nil {
		return err
	}
	if h == c.active {
		return console.ErrBadHandle
	}
	delete(c.buffers, h)
	return nil
}

func (c *Console) ReadOutput(h console.Handle, dst []console.Cell, size console.Coord, region console.Rect) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return err
	}
	return b.Read(dst, size, region)
}

func (c *Console) WriteOutput(h console.Handle, src []console.Cell, size console.Coord, region console.Rect) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return err
	}
	if err := b.Write(src, size, region); err != nil {
		return err
	}
	if h == c.active {
		c.render()
	}
	return nil
}

func (c *Console) ActiveBuffer() console.Handle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Console) SetActiveBuffer(h console.Handle) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.buffer(h); err != nil {
		return err
	}
	c.active = h
	c.render()
	return nil
}

func (c *Console) CursorPosition(h console.Handle) (console.Coord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return console.Coord{}, err
	}
	return b.cursor, nil
}

func (c *Console) SetCursorPosition(h console.Handle, pos console.Coord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return err
	}
	if !b.Contains(pos) {
		return console.ErrRegion
	}
	b.cursor = pos
	if h == c.active {
		c.showCursor(b)
		c.screen.Show()
	}
	return nil
}

func (c *Console) CursorInfo(h console.Handle) (console.CursorInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return console.CursorInfo{}, err
	}
	return b.info, nil
}

func (c *Console) SetCursorInfo(h console.Handle, info console.CursorInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, err := c.buffer(h)
	if err != nil {
		return err
	}
	if info.Size < 1 || info.Size > 100 {
		return console.ErrCursorSize
	}
	b.info = info
	if h == c.active {
		c.showCursor(b)
		c.screen.Show()
	}
	return nil
}

func (c *Console) Mode() (console.Mode, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, console.ErrClosed
	}
	return c.modes.Mode()
}

func (c *Console) SetMode(m console.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return console.ErrClosed
	}
	return c.modes.SetMode(m)
}

// ReadInput blocks until tcell delivers an event.
func (c *Console) ReadInput() (console.InputEvent, error) {
	ev := c.screen.PollEvent()
	if ev == nil {
		return console.InputEvent{}, console.ErrClosed
	}
	return convertEvent(ev), nil
}

func (c *Console) InputPending() bool {
	return c.screen.HasPendingEvent()
}

func (c *Console) HasColors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.Colors() >= 8
}

// CanChangeColor reports whether the terminal takes 24-bit colour, which
// is how reprogrammed palette entries are drawn.
func (c *Console) CanChangeColor() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen.Colors() > 256
}

func (c *Console) SetPaletteColor(index int, rgb console.RGB) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return console.ErrClosed
	}
	if index < 0 || index >= console.PaletteSize {
		return console.ErrPaletteIndex
	}
	c.palette[index] = rgbColor(rgb)
	c.render()
	return nil
}

// Close restores the terminal.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return console.ErrClosed
	}
	c.closed = true
	c.screen.Fini()
	if closer, ok := c.modes.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// render mirrors the active buffer to the terminal.
func (c *Console) render() {
	b := c.buffers[c.active]
	c.screen.Clear()
	for y := 0; y < b.Size.Y; y++ {
		for x := 0; x < b.Size.X; x++ {
			cell := b.At(x, y)
			c.screen.SetContent(x, y, cell.Char, nil, c.style(cell.Attr))
		}
	}
	c.showCursor(b)
	c.screen.Show()
}

func (c *Console) showCursor(b *buffer) {
	if !b.info.Visible {
		c.screen.HideCursor()
		return
	}
	if b.info.Size >= 50 {
		c.screen.SetCursorStyle(tcell.CursorStyleSteadyBlock)
	} else {
		c.screen.SetCursorStyle(tcell.CursorStyleSteadyUnderline)
	}
	c.screen.ShowCursor(b.cursor.X, b.cursor.Y)
}
