package main

import (
	"errors"
	"fmt"

	"github.com/jallum/linebreak/term"
)

func cmdSize(raw []string, w Writer) error {
	if _, err := commandMap["size"].parse(raw); err != nil {
		return err
	}
	sz, err := term.GetSize(stdout)
	if errors.Is(err, term.ErrNoDevice) || errors.Is(err, term.ErrUnsupported) {
		debugf("size: %v", err)
		fmt.Fprintln(w, "unavailable")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d %d\n", sz.Cols, sz.Rows)
	return nil
}
