package main

import (
	"fmt"

	"github.com/jallum/linebreak"
	"github.com/jallum/linebreak/internal/cells"
)

func cmdWidth(raw []string, w Writer) error {
	a, err := commandMap["width"].parse(raw)
	if err != nil {
		return err
	}
	if len(a.Pos()) == 0 {
		return fmt.Errorf("usage: linebreak width <text...>")
	}
	table := cells.Default
	if a.Bool("--ambiguous-wide") {
		table = cells.EastAsian
	}
	text := a.PosJoined()

	if a.Bool("--runes") {
		for _, r := range text {
			fmt.Fprintf(w, "%-8s %-4s %d\n", fmt.Sprintf("U+%04X", r), display(r), table.RuneWidth(r))
		}
	}
	fmt.Fprintln(w, table.StringWidth(text))
	return nil
}

// display returns r as it should appear in the --runes listing.
func display(r rune) string {
	if !linebreak.IsPrint(r) {
		return "."
	}
	if linebreak.RuneWidth(r) == 0 {
		// Combining marks attach to a dotted circle.
		return "◌" + string(r)
	}
	return string(r)
}
