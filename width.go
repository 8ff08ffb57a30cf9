package linebreak

import "github.com/jallum/linebreak/internal/cells"

// RuneWidth returns the number of terminal columns r occupies: 0 for
// marks, format and control characters, 2 for East Asian Wide and
// Fullwidth characters, 1 for everything else.
func RuneWidth(r rune) int { return cells.RuneWidth(r) }

// TextWidth returns the number of terminal columns s occupies.
func TextWidth(s string) int { return cells.StringWidth(s) }

// IsPrint reports whether r is a printable character: a letter, mark,
// number, punctuation or symbol, or the ASCII space.
func IsPrint(r rune) bool { return cells.IsPrint(r) }
