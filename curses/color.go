package curses

import "github.com/dshills/wincurses/console"

// Basic colours, numbered in console bit order so that an index is also the
// foreground nibble that displays it.
const (
	ColorBlack int16 = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorYellow
	ColorWhite
)

const (
	// BasicColors is the number of colours available on a fixed palette.
	BasicColors = 8
	// MaxColors is the size of the colour table: the basic colours plus
	// the custom slots usable when the palette can be reprogrammed.
	MaxColors = console.PaletteSize
	// MaxComponent is the largest value of an RGB component.
	MaxComponent = 1000
)

// RGB is a colour with components on a 0 to 1000 scale.
type RGB = console.RGB

// Pair is a foreground/background combination of colour indices.
type Pair struct {
	FG, BG int16
}

var basicPalette = [BasicColors]RGB{
	ColorBlack:   {R: 0, G: 0, B: 0},
	ColorBlue:    {R: 0, G: 0, B: MaxComponent},
	ColorGreen:   {R: 0, G: MaxComponent, B: 0},
	ColorCyan:    {R: 0, G: MaxComponent, B: MaxComponent},
	ColorRed:     {R: MaxComponent, G: 0, B: 0},
	ColorMagenta: {R: MaxComponent, G: 0, B: MaxComponent},
	ColorYellow:  {R: MaxComponent, G: MaxComponent, B: 0},
	ColorWhite:   {R: MaxComponent, G: MaxComponent, B: MaxComponent},
}

// HasColors reports whether the terminal can show colour.
func (s *Session) HasColors() bool {
	return s.con.HasColors()
}

// CanChangeColor reports whether InitColor can reprogram the palette.
func (s *Session) CanChangeColor() bool {
	return s.palette != nil && !s.opts.FixedPalette && s.palette.CanChangeColor()
}

// Colors returns the number of usable colour indices.
func (s *Session) Colors() int {
	if s.CanChangeColor() {
		return MaxColors
	}
	return BasicColors
}

// ColorPairs returns the number of colour pairs, including pair 0.
func (s *Session) ColorPairs() int {
	return PairCapacity
}

// StartColor enables colour: the basic colours are loaded, pair 0 becomes
// white on black and the default window switches to pair 0.
func (s *Session) StartColor() error {
	if !s.con.HasColors() {
		return opError("start_color", ErrNoColors, nil)
	}

	for i, c := range basicPalette {
		s.colors[i] = c
	}
	s.pairs[0] = Pair{FG: ColorWhite, BG: ColorBlack}
	s.stdscr.attrs = ColorPair(0)
	s.colorOn = true

	s.log.Info("colour started: %d colours, palette changeable=%t", s.Colors(), s.CanChangeColor())
	return nil
}

// InitPair defines colour pair n. Pair 0 is reserved.
func (s *Session) InitPair(n int, fg, bg int16) error {
	if !s.colorOn {
		return opError("init_pair", ErrColorDisabled, nil)
	}
	if n == 0 {
		return opError("init_pair", ErrReservedPair, nil)
	}
	if n < 0 || n >= PairCapacity {
		return opError("init_pair", ErrPairRange, nil).WithContext("pair %d", n)
	}
	if !s.validColor(fg) || !s.validColor(bg) {
		return opError("init_pair", ErrColorRange, nil).WithContext("fg %d bg %d", fg, bg)
	}

	s.pairs[n] = Pair{FG: fg, BG: bg}
	return nil
}

// InitColor redefines colour index with components in 0..1000 and pushes
// the result to the terminal palette.
func (s *Session) InitColor(index int16, r, g, b int16) error {
	if !s.colorOn {
		return opError("init_color", ErrColorDisabled, nil)
	}
	if !s.CanChangeColor() {
		return opError("init_color", ErrCannotChangeColor, nil)
	}
	if !s.validColor(index) {
		return opError("init_color", ErrColorRange, nil).WithContext("colour %d", index)
	}
	for _, c := range [...]int16{r, g, b} {
		if c < 0 || c > MaxComponent {
			return opError("init_color", ErrComponentRange, nil).WithContext("component %d", c)
		}
	}

	rgb := RGB{R: r, G: g, B: b}
	if err := s.palette.SetPaletteColor(int(index), rgb); err != nil {
		s.log.Warn("palette entry %d not updated: %v", index, err)
		return opError("init_color", ErrCannotChangeColor, err)
	}
	s.colors[index] = rgb
	return nil
}

// ColorContent returns the components of colour index.
func (s *Session) ColorContent(index int16) (RGB, error) {
	if !s.colorOn {
		return RGB{}, opError("color_content", ErrColorDisabled, nil)
	}
	if !s.validColor(index) {
		return RGB{}, opError("color_content", ErrColorRange, nil).WithContext("colour %d", index)
	}
	return s.colors[index], nil
}

// PairContent returns the colours of pair n.
func (s *Session) PairContent(n int) (Pair, error) {
	if !s.colorOn {
		return Pair{}, opError("pair_content", ErrColorDisabled, nil)
	}
	if n < 0 || n >= PairCapacity {
		return Pair{}, opError("pair_content", ErrPairRange, nil).WithContext("pair %d", n)
	}
	return s.pairs[n], nil
}

func (s *Session) validColor(c int16) bool {
	return c >= 0 && int(c) < s.Colors()
}

// ResolveStyle maps an attribute word to the console attribute mask used
// for a written cell.
func (s *Session) ResolveStyle(a Attr) console.Attr {
	var out console.Attr

	switch {
	case !s.colorOn:
		out = console.DefaultAttr
	case s.CanChangeColor():
		p := s.pairs[a.Pair()]
		out = console.Attr(p.FG)&console.ForegroundMask |
			(console.Attr(p.BG)<<4)&console.BackgroundMask
	default:
		p := s.pairs[a.Pair()]
		out = approximate(s.colors[p.FG]) | approximate(s.colors[p.BG])<<4
	}

	for _, m := range styleMap {
		if a.Has(m.attr) {
			out |= m.mask
		}
	}
	return out
}

// approximate picks the foreground bits of every non-zero channel.
func approximate(c RGB) console.Attr {
	var m console.Attr
	if c.R > 0 {
		m |= console.ForegroundRed
	}
	if c.G > 0 {
		m |= console.ForegroundGreen
	}
	if c.B > 0 {
		m |= console.ForegroundBlue
	}
	return m
}

var styleMap = [...]struct {
	attr Attr
	mask console.Attr
}{
	{AttrBold, console.ForegroundIntensity},
	{AttrStandout, console.BackgroundIntensity},
	{AttrReverse, console.ReverseVideo},
	{AttrUnderline, console.Underscore},
	{AttrDim, console.Dim},
	{AttrBlink, console.Blink},
	{AttrInvis, console.Invisible},
	{AttrProtect, console.Protect},
	{AttrAltCharset, console.AltCharset},
}
