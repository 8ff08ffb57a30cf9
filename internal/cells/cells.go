// Package cells reports how many terminal columns a rune occupies.
//
// Widths follow Unicode Standard Annex #11 (East Asian Width): Wide and
// Fullwidth runes take two columns, marks, format and control characters
// take none, and everything else takes one. Unassigned code points are
// given one column rather than rejected.
package cells

import (
	"unicode"

	"golang.org/x/text/width"
)

// Table maps runes to column widths. The zero value treats East Asian
// Ambiguous runes as narrow.
type Table struct {
	// AmbiguousWide gives East Asian Ambiguous runes (Greek, Cyrillic,
	// box drawing, ...) two columns, as CJK terminals render them.
	AmbiguousWide bool
}

var (
	// Default is the table used when none is given.
	Default = Table{}
	// EastAsian renders ambiguous runes wide.
	EastAsian = Table{AmbiguousWide: true}
)

// zeroWidth covers the categories that never advance the cursor.
var zeroWidth = []*unicode.RangeTable{
	unicode.Mn, // nonspacing marks
	unicode.Me, // enclosing marks
	unicode.Cf, // format (ZWSP, ZWJ, soft hyphen, BOM)
	unicode.Cc,
	unicode.Zl,
	unicode.Zp,
	hangulJamoMedial,
}

// Conjoining jamo vowels and trailing consonants render inside the
// preceding leading consonant.
var hangulJamoMedial = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1160, Hi: 0x11ff, Stride: 1},
		{Lo: 0xd7b0, Hi: 0xd7ff, Stride: 1},
	},
}

// RuneWidth returns the number of columns r occupies: 0, 1 or 2.
func (t Table) RuneWidth(r rune) int {
	switch {
	case r < 0x20:
		return 0
	case r < 0x7f:
		return 1
	}
	if unicode.In(r, zeroWidth...) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		if t.AmbiguousWide {
			return 2
		}
	}
	return 1
}

// StringWidth returns the sum of the widths of the runes in s.
func (t Table) StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += t.RuneWidth(r)
	}
	return n
}

// RuneWidth measures r with the Default table.
func RuneWidth(r rune) int { return Default.RuneWidth(r) }

// StringWidth measures s with the Default table.
func StringWidth(s string) int { return Default.StringWidth(s) }

// IsPrint reports whether r is a letter, mark, number, punctuation or
// symbol, or the ASCII space. Other spaces, controls, format characters,
// private-use and unassigned code points are not printable.
func IsPrint(r rune) bool {
	if r == ' ' {
		return true
	}
	return unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S)
}
