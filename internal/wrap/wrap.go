// Package wrap reflows multi-paragraph text for display.
package wrap

import (
	"strings"

	"github.com/jallum/linebreak"
)

// Text wraps s to fit within the given width, prefixing every line with
// indent. Paragraphs (separated by blank lines) are reflowed one at a
// time and stay separated by a single blank line; line breaks inside a
// paragraph are not kept.
//
// A width of zero or less disables wrapping and returns s unchanged.
func Text(s string, width int, indent string) string {
	if width <= 0 {
		return s
	}
	return strings.Join(Paragraphs(s, width, indent), "\n")
}

// Paragraphs returns the wrapped lines of s, with an empty line between
// paragraphs.
func Paragraphs(s string, width int, indent string) []string {
	it := linebreak.New("", width)
	it.SetIndent(indent)
	return Reflow(it, s)
}

// Reflow is Paragraphs with a caller-configured iterator. it is restarted
// on each paragraph and keeps its width, indent, and width table.
func Reflow(it *linebreak.LineIter, s string) []string {
	var out []string
	for _, para := range split(s) {
		if len(out) > 0 {
			out = append(out, "")
		}
		it.Init(para)
		for line := range it.All() {
			out = append(out, line)
		}
	}
	return out
}

// split returns the non-blank paragraphs of s.
func split(s string) []string {
	var paras []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			paras = append(paras, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(s, "\n") {
		if isBlank(line) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return paras
}

// isBlank reports whether line holds nothing but whitespace.
func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
