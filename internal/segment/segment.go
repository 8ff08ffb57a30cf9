// Package segment splits text into the units a line may be broken between.
//
// Break opportunities follow the Unicode line breaking algorithm (UAX #14),
// so text without spaces (Chinese, Japanese) still yields units, hyphenated
// words may break after the hyphen, and closing punctuation stays with the
// word before it. Mandatory breaks are not honoured: a line feed is just
// whitespace.
package segment

import (
	"unicode"
	"unicode/utf8"

	"github.com/jallum/linebreak/internal/cells"
	"github.com/rivo/uniseg"
)

// Kind tells words from the whitespace between them.
type Kind int

const (
	Word Kind = iota
	Space
)

func (k Kind) String() string {
	if k == Space {
		return "space"
	}
	return "word"
}

// Unit is a span of the source text that is never split across lines.
type Unit struct {
	Text  string // substring of the source
	Width int    // display columns
	Kind  Kind
}

// Segmenter produces the units of a text left to right. Every byte of the
// text belongs to exactly one unit; a run of whitespace, however long and
// whatever it is made of, is a single Space unit.
type Segmenter struct {
	text   string
	table  cells.Table
	pos    int // start of the next unit
	segEnd int // end of the current UAX #14 segment
	state  int // uniseg state for the segment ending at segEnd
}

// New returns a Segmenter over text, measuring widths with table.
func New(text string, table cells.Table) Segmenter {
	return Segmenter{text: text, table: table, state: -1}
}

// SetTable changes the table used for units not yet returned.
func (s *Segmenter) SetTable(table cells.Table) { s.table = table }

// Offset returns the byte offset of the next unit in the source text.
func (s *Segmenter) Offset() int { return s.pos }

// Next returns the next unit, or false once the text is exhausted.
func (s *Segmenter) Next() (Unit, bool) {
	if s.pos >= len(s.text) {
		return Unit{}, false
	}
	if s.pos >= s.segEnd {
		s.advance()
	}

	start := s.pos
	r, _ := utf8.DecodeRuneInString(s.text[start:])
	if IsSpace(r) {
		s.pos = s.skipSpace(start)
		for s.segEnd < s.pos {
			s.advance()
		}
		return s.unit(start, Space), true
	}

	end := start
	for end < s.segEnd {
		r, size := utf8.DecodeRuneInString(s.text[end:])
		if IsSpace(r) {
			break
		}
		end += size
	}
	s.pos = end
	return s.unit(start, Word), true
}

// advance moves segEnd to the end of the next line segment.
func (s *Segmenter) advance() {
	seg, _, _, state := uniseg.FirstLineSegmentInString(s.text[s.segEnd:], s.state)
	s.segEnd += len(seg)
	s.state = state
}

func (s *Segmenter) skipSpace(i int) int {
	for i < len(s.text) {
		r, size := utf8.DecodeRuneInString(s.text[i:])
		if !IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

func (s *Segmenter) unit(start int, kind Kind) Unit {
	text := s.text[start:s.pos]
	return Unit{Text: text, Width: s.table.StringWidth(text), Kind: kind}
}

// IsSpace reports whether r separates words. Non-breaking spaces glue the
// words around them together and are not separators.
func IsSpace(r rune) bool {
	switch r {
	case '\u00a0', '\u2007', '\u202f': // no-break, figure, narrow no-break
		return false
	}
	return unicode.IsSpace(r)
}

// Split returns every unit of text.
func Split(text string) []Unit {
	var units []Unit
	s := New(text, cells.Default)
	for {
		u, ok := s.Next()
		if !ok {
			return units
		}
		units = append(units, u)
	}
}

// Words returns the text of the Word units of text, in order.
func Words(text string) []string {
	var words []string
	s := New(text, cells.Default)
	for {
		u, ok := s.Next()
		if !ok {
			return words
		}
		if u.Kind == Word {
			words = append(words, u.Text)
		}
	}
}
