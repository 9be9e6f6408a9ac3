package console

// Memory is a Console backed by plain slices. It records everything the
// caller does and can be told to fail specific operations, which makes it
// the test double for code layered on Console.
type Memory struct {
	width, height int
	buffers       map[Handle]*memBuffer
	next          Handle
	active        Handle
	mode          Mode
	input         []InputEvent
	colors        bool
	canChange     bool
	palette       [PaletteSize]RGB
	faults        map[string]*fault
	calls         map[string]int
	closed        bool
}

type memBuffer struct {
	*Grid
	cursor Coord
	info   CursorInfo
}

type fault struct {
	after int
	err   error
}

var _ Console = (*Memory)(nil)
var _ Palette = (*Memory)(nil)

// NewMemory creates a console whose viewport is width by height cells.
// Handle 0 is the buffer displayed before anyone draws.
func NewMemory(width, height int) *Memory {
	m := &Memory{
		width:   width,
		height:  height,
		buffers: make(map[Handle]*memBuffer),
		mode:    ProcessedInput | LineInput | EchoInput,
		colors:  true,
		faults:  make(map[string]*fault),
		calls:   make(map[string]int),
	}
	m.buffers[0] = newMemBuffer(Coord{X: width, Y: height})
	m.next = 1
	return m
}

func newMemBuffer(size Coord) *memBuffer {
	return &memBuffer{Grid: NewGrid(size), info: DefaultCursor}
}

// SetColors configures the colour capabilities reported by the console.
func (m *Memory) SetColors(has, canChange bool) {
	m.colors = has
	m.canChange = canChange
}

// PushInput appends records to the input queue.
func (m *Memory) PushInput(events ...InputEvent) {
	m.input = append(m.input, events...)
}

// PushKeys queues a press and release for each character.
func (m *Memory) PushKeys(s string) {
	for _, r := range s {
		vk := VirtualKey(0)
		switch {
		case r >= 'a' && r <= 'z':
			vk = VirtualKey(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == ' ':
			vk = VirtualKey(r)
		case r == '\r' || r == '\n':
			vk, r = VKReturn, '\r'
		}
		m.PushInput(KeyDown(vk, r), KeyUp(vk, r))
	}
}

// Fail makes the named operation return err, after letting the first
// `after` calls succeed. A nil err clears the fault.
func (m *Memory) Fail(op string, after int, err error) {
	if err == nil {
		delete(m.faults, op)
		return
	}
	m.faults[op] = &fault{after: after, err: err}
}

// Calls returns how many times the named operation was invoked.
func (m *Memory) Calls(op string) int {
	return m.calls[op]
}

func (m *Memory) enter(op string) error {
	m.calls[op]++
	if m.closed {
		return ErrClosed
	}
	f, ok := m.faults[op]
	if !ok {
		return nil
	}
	if f.after > 0 {
		f.after--
		return nil
	}
	return f.err
}

func (m *Memory) buffer(h Handle) (*memBuffer, error) {
	b, ok := m.buffers[h]
	if !ok {
		return nil, ErrBadHandle
	}
	return b, nil
}

func (m *Memory) Viewport() (Rect, error) {
	if err := m.enter("Viewport"); err != nil {
		return Rect{}, err
	}
	return Rect{Top: 0, Left: 0, Bottom: m.height - 1, Right: m.width - 1}, nil
}

func (m *Memory) CreateBuffer(size Coord) (Handle, error) {
	if err := m.enter("CreateBuffer"); err != nil {
		return 0, err
	}
	if size.X <= 0 || size.Y <= 0 {
		return 0, ErrRegion
	}
	h := m.next
	m.next++
	m.buffers[h] = newMemBuffer(size)
	return h, nil
}

func (m *Memory) CloseBuffer(h Handle) error {
	if err := m.enter("CloseBuffer"); err != nil {
		return err
	}
	if _, err := m.buffer(h); err != nil {
		return err
	}
	if h == m.active {
		return ErrBadHandle
	}
	delete(m.buffers, h)
	return nil
}

func (m *Memory) ReadOutput(h Handle, dst []Cell, size Coord, region Rect) error {
	if err := m.enter("ReadOutput"); err != nil {
		return err
	}
	b, err := m.buffer(h)
	if err != nil {
		return err
	}
	return b.Read(dst, size, region)
}

func (m *Memory) WriteOutput(h Handle, src []Cell, size Coord, region Rect) error {
	if err := m.enter("WriteOutput"); err != nil {
		return err
	}
	b, err := m.buffer(h)
	if err != nil {
		return err
	}
	return b.Write(src, size, region)
}

func (m *Memory) ActiveBuffer() Handle {
	return m.active
}

func (m *Memory) SetActiveBuffer(h Handle) error {
	if err := m.enter("SetActiveBuffer"); err != nil {
		return err
	}
	if _, err := m.buffer(h); err != nil {
		return err
	}
	m.active = h
	return nil
}

func (m *Memory) CursorPosition(h Handle) (Coord, error) {
	if err := m.enter("CursorPosition"); err != nil {
		return Coord{}, err
	}
	b, err := m.buffer(h)
	if err != nil {
		return Coord{}, err
	}
	return b.cursor, nil
}

func (m *Memory) SetCursorPosition(h Handle, pos Coord) error {
	if err := m.enter("SetCursorPosition"); err != nil {
		return err
	}
	b, err := m.buffer(h)
	if err != nil {
		return err
	}
	if !b.Contains(pos) {
		return ErrRegion
	}
	b.cursor = pos
	return nil
}

func (m *Memory) CursorInfo(h Handle) (CursorInfo, error) {
	if err := m.enter("CursorInfo"); err != nil {
		return CursorInfo{}, err
	}
	b, err := m.buffer(h)
	if err != nil {
		return CursorInfo{}, err
	}
	return b.info, nil
}

func (m *Memory) SetCursorInfo(h Handle, info CursorInfo) error {
	if err := m.enter("SetCursorInfo"); err != nil {
		return err
	}
	b, err := m.buffer(h)
	if err != nil {
		return err
	}
	if info.Size < 1 || info.Size > 100 {
		return ErrCursorSize
	}
	b.info = info
	return nil
}

func (m *Memory) Mode() (Mode, error) {
	if err := m.enter("Mode"); err != nil {
		return 0, err
	}
	return m.mode, nil
}

func (m *Memory) SetMode(mode Mode) error {
	if err := m.enter("SetMode"); err != nil {
		return err
	}
	m.mode = mode
	return nil
}

// ReadInput pops the next queued record. An empty queue returns
// ErrInputExhausted instead of blocking.
func (m *Memory) ReadInput() (InputEvent, error) {
	if err := m.enter("ReadInput"); err != nil {
		return InputEvent{}, err
	}
	if len(m.input) == 0 {
		return InputEvent{}, ErrInputExhausted
	}
	ev := m.input[0]
	m.input = m.input[1:]
	return ev, nil
}

func (m *Memory) InputPending() bool {
	m.calls["InputPending"]++
	return !m.closed && len(m.input) > 0
}

func (m *Memory) HasColors() bool { return m.colors }

func (m *Memory) CanChangeColor() bool { return m.colors && m.canChange }

func (m *Memory) SetPaletteColor(index int, c RGB) error {
	if err := m.enter("SetPaletteColor"); err != nil {
		return err
	}
	if index < 0 || index >= PaletteSize {
		return ErrPaletteIndex
	}
	m.palette[index] = c
	return nil
}

func (m *Memory) Close() error {
	if m.closed {
		return ErrClosed
	}
	m.closed = true
	return nil
}

// Cells returns a copy of the contents of buffer h, row-major.
func (m *Memory) Cells(h Handle) []Cell {
	b, ok := m.buffers[h]
	if !ok {
		return nil
	}
	out := make([]Cell, len(b.Cells))
	copy(out, b.Cells)
	return out
}

// CellAt returns the cell at (x, y) of buffer h.
func (m *Memory) CellAt(h Handle, x, y int) Cell {
	b, ok := m.buffers[h]
	if !ok {
		return Cell{}
	}
	return b.At(x, y)
}

// Buffers returns the number of live buffers, including handle 0.
func (m *Memory) Buffers() int {
	return len(m.buffers)
}

// PaletteColor returns palette entry i as last programmed.
func (m *Memory) PaletteColor(i int) RGB {
	return m.palette[i]
}

// Closed reports whether Close has been called.
func (m *Memory) Closed() bool {
	return m.closed
}
