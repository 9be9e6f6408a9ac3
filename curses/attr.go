package curses

// Attr is the attribute word carried by a window and attached to every
// character it writes. The low bits are rendition flags; the top ColorBits
// bits index the colour pair table.
type Attr uint32

// ColorBits is the width of the pair index field. It must be even.
const ColorBits = 6

var _ [1 - 2*(ColorBits%2)]struct{}

// PairCapacity is the number of colour pairs addressable by an Attr.
const PairCapacity = 1 << ColorBits

const pairShift = 32 - ColorBits

// Rendition flags.
const (
	AttrNormal     Attr = 0
	AttrAltCharset Attr = 1 << 0
	AttrBlink      Attr = 1 << 1
	AttrBold       Attr = 1 << 2
	AttrDim        Attr = 1 << 3
	AttrInvis      Attr = 1 << 4
	AttrProtect    Attr = 1 << 5
	AttrReverse    Attr = 1 << 6
	AttrStandout   Attr = 1 << 7
	AttrUnderline  Attr = 1 << 8

	// AttrColor masks the pair index field.
	AttrColor Attr = (PairCapacity - 1) << pairShift
)

// ColorPair returns the attribute bits selecting pair n. n is not
// validated; bits beyond the field are shifted out.
func ColorPair(n int) Attr {
	return Attr(n) << pairShift
}

// PairNumber extracts the pair index from an attribute word.
func PairNumber(a Attr) int {
	return int(a >> pairShift)
}

// Pair returns the pair index of a.
func (a Attr) Pair() int {
	return PairNumber(a)
}

// Flags returns a with the pair index cleared.
func (a Attr) Flags() Attr {
	return a &^ AttrColor
}

// WithPair returns a with its pair index replaced by n.
func (a Attr) WithPair(n int) Attr {
	return a.Flags() | ColorPair(n)
}

// Has reports whether every flag in f is set.
func (a Attr) Has(f Attr) bool {
	return a&f == f
}

// With returns a with f set.
func (a Attr) With(f Attr) Attr {
	return a | f
}

// Without returns a with f cleared.
func (a Attr) Without(f Attr) Attr {
	return a &^ f
}
