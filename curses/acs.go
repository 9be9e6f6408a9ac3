package curses

import "golang.org/x/text/encoding/charmap"

// Alternate character set glyphs as code page 437 bytes. They render as
// line-drawing characters when written with AttrAltCharset on.
const (
	ACSULCorner rune = 0xDA
	ACSLLCorner rune = 0xC0
	ACSURCorner rune = 0xBF
	ACSLRCorner rune = 0xD9
	ACSLTee     rune = 0xC3
	ACSRTee     rune = 0xB4
	ACSBTee     rune = 0xC1
	ACSTTee     rune = 0xC2
	ACSHLine    rune = 0xC4
	ACSVLine    rune = 0xB3
	ACSPlus     rune = 0xC5
	ACSCkBoard  rune = 0xB1
	ACSBoard    rune = 0xB0
	ACSBlock    rune = 0xDB
	ACSDegree   rune = 0xF8
	ACSPlMinus  rune = 0xF1
	ACSLEqual   rune = 0xF3
	ACSGEqual   rune = 0xF2
	ACSPi       rune = 0xE3
	ACSSterling rune = 0x9C
	ACSBullet   rune = 0x07
	ACSDiamond  rune = 0x04
	ACSUArrow   rune = 0x18
	ACSDArrow   rune = 0x19
	ACSRArrow   rune = 0x1A
	ACSLArrow   rune = 0x1B
)

// The decoder maps the low control range to itself; these are the glyphs
// code page 437 shows there.
var acsLowGlyphs = map[rune]rune{
	ACSDiamond: '♦',
	ACSBullet:  '•',
	ACSUArrow:  '↑',
	ACSDArrow:  '↓',
	ACSRArrow:  '→',
	ACSLArrow:  '←',
}

// DecodeACS returns the Unicode glyph of an alternate character set byte.
// Runes outside 0..255 are returned unchanged.
func DecodeACS(ch rune) rune {
	if ch < 0 || ch > 0xFF {
		return ch
	}
	if g, ok := acsLowGlyphs[ch]; ok {
		return g
	}
	return charmap.CodePage437.DecodeByte(byte(ch))
}
