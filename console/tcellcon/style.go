package tcellcon

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/wincurses/console"
)

// defaultPalette maps the 16 console colour indices, whose bits are
// blue, green, red and intensity, onto the terminal's ANSI palette, whose
// bits are red, green and blue.
func defaultPalette() [console.PaletteSize]tcell.Color {
	var p [console.PaletteSize]tcell.Color
	for i := range p {
		a := console.Attr(i)
		ansi := 0
		if a.Has(console.ForegroundRed) {
			ansi |= 1
		}
		if a.Has(console.ForegroundGreen) {
			ansi |= 2
		}
		if a.Has(console.ForegroundBlue) {
			ansi |= 4
		}
		if a.Has(console.ForegroundIntensity) {
			ansi += 8
		}
		p[i] = tcell.PaletteColor(ansi)
	}
	return p
}

// rgbColor converts a 0..1000 colour to a 24-bit terminal colour.
func rgbColor(c console.RGB) tcell.Color {
	col := colorful.Color{
		R: float64(c.R) / 1000,
		G: float64(c.G) / 1000,
		B: float64(c.B) / 1000,
	}.Clamped()
	r, g, b := col.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// style converts a console attribute mask to a tcell style.
func (c *Console) style(a console.Attr) tcell.Style {
	fg := c.palette[a.Foreground()]
	bg := c.palette[a.Background()]
	if a.Has(console.Invisible) {
		fg = bg
	}

	return tcell.StyleDefault.
		Foreground(fg).
		Background(bg).
		Reverse(a.Has(console.ReverseVideo)).
		Underline(a.Has(console.Underscore)).
		Dim(a.Has(console.Dim)).
		Blink(a.Has(console.Blink))
}
