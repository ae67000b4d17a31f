// Package charset maps runes to HD44780 character generator ROM codes.
//
// The HD44780 has no notion of Unicode: each DDRAM byte selects a glyph from
// the character generator ROM. ASCII letters, digits and most punctuation sit
// at their ASCII codes; the upper half of the ROM holds a mask-specific set of
// symbols. A Map converts text to those codes:
//
//	buf := charset.A00.Encode(nil, "21.5°C")
//	// buf == []byte{'2', '1', '.', '5', 0xDF, 'C'}
package charset

import "fmt"

// Map converts runes to ROM codes.
//
// Runes below 0x80 map to themselves. Other runes go through the map's extra
// table and fall back to Fallback when absent.
type Map struct {
	Name     string
	Fallback byte
	extra    map[rune]byte
}

// New returns a Map named name with the given non-ASCII glyphs.
func New(name string, fallback byte, extra map[rune]byte) *Map {
	m := &Map{Name: name, Fallback: fallback, extra: make(map[rune]byte, len(extra))}
	for r, b := range extra {
		m.extra[r] = b
	}
	return m
}

// Byte returns the ROM code for r and whether the ROM has a glyph for it.
func (m *Map) Byte(r rune) (byte, bool) {
	if r >= 0 && r < 0x80 {
		return byte(r), true
	}
	b, ok := m.extra[r]
	return b, ok
}

// Encode appends the ROM codes of s to dst, one byte per rune.
func (m *Map) Encode(dst []byte, s string) []byte {
	for _, r := range s {
		b, ok := m.Byte(r)
		if !ok {
			b = m.Fallback
		}
		dst = append(dst, b)
	}
	return dst
}

func (m *Map) String() string {
	return fmt.Sprintf("charset.Map{%s}", m.Name)
}

// A00 is the Japanese standard ROM found on most HD44780 modules.
//
// 0x5C is drawn as a yen sign and 0x7E/0x7F as arrows; ASCII input still maps
// to those codes.
var A00 = New("A00", '?', map[rune]byte{
	'¥': 0x5C,
	'→': 0x7E,
	'←': 0x7F,
	'°': 0xDF,
	'α': 0xE0,
	'ä': 0xE1,
	'β': 0xE2,
	'ε': 0xE3,
	'µ': 0xE4, // micro sign
	'μ': 0xE4, // greek mu
	'σ': 0xE5,
	'ρ': 0xE6,
	'√': 0xE8,
	'¢': 0xEC,
	'£': 0xED,
	'ñ': 0xEE,
	'ö': 0xEF,
	'θ': 0xF2,
	'∞': 0xF3,
	'Ω': 0xF4,
	'ü': 0xF5,
	'Σ': 0xF6,
	'π': 0xF7,
	'÷': 0xFD,
	'█': 0xFF,
})
