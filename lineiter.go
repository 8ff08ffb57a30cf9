package linebreak

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/jallum/linebreak/internal/cells"
	"github.com/jallum/linebreak/internal/segment"
)

// ErrInvalidWidth is reported by Err when the line width is not positive.
var ErrInvalidWidth = errors.New("line width must be positive")

// LineIter produces the lines of a text one at a time. Each line is the
// indent followed by as many words as fit in the line width. Words are
// never split: a word wider than the line gets a line of its own.
//
// A LineIter reads the text it was given without copying it and is not
// safe for concurrent use.
type LineIter struct {
	seg         segment.Segmenter
	table       cells.Table
	limit       int
	indent      string
	indentWidth int

	ahead    segment.Unit // next word, valid if hasAhead
	hasAhead bool
	spaced   bool // whitespace preceded ahead

	err  error
	done bool
}

// New returns a LineIter that breaks text into lines of at most width
// columns. If width is not positive no lines are produced and Err reports
// ErrInvalidWidth.
func New(text string, width int) *LineIter {
	it := &LineIter{limit: width}
	it.Init(text)
	return it
}

// Init restarts the iterator on a new text, keeping its width and indent.
func (it *LineIter) Init(text string) {
	it.seg = segment.New(text, it.table)
	it.hasAhead = false
	it.spaced = false
	it.done = false
	it.err = nil
	if it.limit <= 0 {
		it.err = fmt.Errorf("%w: %d", ErrInvalidWidth, it.limit)
		it.done = true
	}
}

// SetIndent sets the string placed at the start of every line produced
// from now on. Its width counts against the line width.
func (it *LineIter) SetIndent(indent string) {
	it.indent = indent
	it.indentWidth = it.table.StringWidth(indent)
}

// SetAmbiguousWide makes East Asian Ambiguous characters (Greek, Cyrillic,
// box drawing, ...) count as two columns, matching CJK terminals.
func (it *LineIter) SetAmbiguousWide(wide bool) {
	it.table = cells.Table{AmbiguousWide: wide}
	it.seg.SetTable(it.table)
	it.indentWidth = it.table.StringWidth(it.indent)
	if it.hasAhead {
		it.ahead.Width = it.table.StringWidth(it.ahead.Text)
	}
}

// Err returns the configuration error, if any.
func (it *LineIter) Err() error { return it.err }

// Next returns the next line. Once the text is exhausted it returns
// false, and keeps doing so.
func (it *LineIter) Next() (string, bool) {
	if it.done {
		return "", false
	}

	var line strings.Builder
	width := 0
	started := false
	for {
		u, spaced, ok := it.peek()
		if !ok {
			break
		}
		sep := 0
		if started && spaced {
			sep = 1
		}
		if started && it.indentWidth+width+sep+u.Width > it.limit {
			break
		}
		it.hasAhead = false

		if !started {
			line.Grow(len(it.indent) + min(it.limit, 256))
			line.WriteString(it.indent)
			started = true
		} else if sep > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(u.Text)
		width += sep + u.Width
	}

	if !started {
		it.done = true
		return "", false
	}
	return line.String(), true
}

// peek returns the next word without consuming it, and whether any
// whitespace came between it and the previous word.
func (it *LineIter) peek() (segment.Unit, bool, bool) {
	if it.hasAhead {
		return it.ahead, it.spaced, true
	}
	it.spaced = false
	for {
		u, ok := it.seg.Next()
		if !ok {
			return segment.Unit{}, false, false
		}
		if u.Kind == segment.Space {
			it.spaced = true
			continue
		}
		it.ahead, it.hasAhead = u, true
		return u, it.spaced, true
	}
}

// All returns an iterator over the remaining lines.
func (it *LineIter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			line, ok := it.Next()
			if !ok || !yield(line) {
				return
			}
		}
	}
}

// Lines breaks text into lines of at most width columns, each prefixed
// with indent.
func Lines(text string, width int, indent string) []string {
	it := New(text, width)
	it.SetIndent(indent)
	var lines []string
	for line := range it.All() {
		lines = append(lines, line)
	}
	return lines
}
