package curses

import "testing"

func TestColorPairRoundTrip(t *testing.T) {
	for p := 0; p < PairCapacity; p++ {
		if got := PairNumber(ColorPair(p)); got != p {
			t.Fatalf("PairNumber(ColorPair(%d)) = %d", p, got)
		}
		if ColorPair(p)&^AttrColor != 0 {
			t.Fatalf("ColorPair(%d) leaks outside the colour field", p)
		}
	}
}

func TestFlagsBelowColorField(t *testing.T) {
	all := AttrAltCharset | AttrBlink | AttrBold | AttrDim | AttrInvis |
		AttrProtect | AttrReverse | AttrStandout | AttrUnderline
	if all&AttrColor != 0 {
		t.Fatalf("rendition flags overlap the colour field: %#x", all&AttrColor)
	}
	if PairNumber(all) != 0 {
		t.Errorf("flags should carry pair 0, got %d", PairNumber(all))
	}
}

func TestAttrMethods(t *testing.T) {
	a := AttrBold | AttrUnderline | ColorPair(7)

	tests := []struct {
		name string
		got  Attr
		want Attr
	}{
		{"flags", a.Flags(), AttrBold | AttrUnderline},
		{"with pair", a.WithPair(2), AttrBold | AttrUnderline | ColorPair(2)},
		{"with", a.With(AttrDim), a | AttrDim},
		{"without", a.Without(AttrBold), AttrUnderline | ColorPair(7)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %#x want %#x", tt.name, tt.got, tt.want)
		}
	}
	if a.Pair() != 7 {
		t.Errorf("expected pair 7, got %d", a.Pair())
	}
	if !a.Has(AttrBold|AttrUnderline) || a.Has(AttrBold|AttrDim) {
		t.Error("Has should require every flag")
	}
}
