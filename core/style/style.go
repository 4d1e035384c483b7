// Package style holds the Unicode substitution tables that simulate bold
// and italic text on surfaces without rich-text rendering.
//
// The tables are built once at init and never mutated, so Apply is safe
// for concurrent use.
package style

import "strings"

// Style names one substitution table.
type Style int

const (
	Bold Style = iota
	Italic
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	}
	return "unknown"
}

// Mathematical Alphanumeric Symbols block offsets.
const (
	boldUpper   = 0x1D400
	boldLower   = 0x1D41A
	boldDigit   = 0x1D7CE
	italicUpper = 0x1D434
	italicLower = 0x1D44E
)

// table maps a rune to its styled form. Runes missing from the map are
// rendered unchanged.
type table map[rune]rune

var tables = map[Style]table{
	Bold:   build(boldUpper, boldLower, boldDigit, nil),
	Italic: build(italicUpper, italicLower, 0, map[rune]rune{
		// U+1D455 is unassigned; Unicode placed the italic small h
		// in Letterlike Symbols.
		'h': 'ℎ',
	}),
}

func build(upper, lower, digit rune, exceptions map[rune]rune) table {
	t := make(table, 62)
	for i := rune(0); i < 26; i++ {
		t['A'+i] = upper + i
		t['a'+i] = lower + i
	}
	if digit != 0 {
		for i := rune(0); i < 10; i++ {
			t['0'+i] = digit + i
		}
	}
	for k, v := range exceptions {
		t[k] = v
	}
	return t
}

// Rune returns the styled form of r, or r itself when the style has no
// entry for it.
func Rune(s Style, r rune) rune {
	if v, ok := tables[s][r]; ok {
		return v
	}
	return r
}

// Apply substitutes every rune of text using the style's table.
func Apply(s Style, text string) string {
	t := tables[s]
	var b strings.Builder
	b.Grow(len(text) * 4)
	for _, r := range text {
		if v, ok := t[r]; ok {
			b.WriteRune(v)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
