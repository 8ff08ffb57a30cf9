// Package term reports the size of the terminal a program writes to.
//
// The query is a single system call (TIOCGWINSZ on Unix, the console
// screen buffer on Windows). When output is redirected there is no
// terminal to ask, and callers are expected to pick a default width.
package term

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	xterm "golang.org/x/term"
)

var (
	// ErrNoDevice means the file is not an interactive terminal.
	ErrNoDevice = errors.New("not a terminal")
	// ErrUnsupported means the platform has no way to query the size.
	ErrUnsupported = errors.New("terminal size not supported on this platform")
)

// DefaultCols is the width used by ColsOr callers that have no better idea.
const DefaultCols = 80

// Size is the visible area of a terminal in character cells.
type Size struct {
	Cols int
	Rows int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Cols, s.Rows)
}

// isTerminal is swapped out in tests.
var isTerminal = xterm.IsTerminal

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isTerminal(int(f.Fd()))
}

// GetSize returns the size of the terminal attached to f.
func GetSize(f *os.File) (Size, error) {
	fd := f.Fd()
	if !isTerminal(int(fd)) {
		return Size{}, fmt.Errorf("%s: %w", f.Name(), ErrNoDevice)
	}
	sz, err := getSize(fd)
	if err != nil {
		return Size{}, fmt.Errorf("%s: %w", f.Name(), err)
	}
	return sz, nil
}

// Cols returns the number of columns of the terminal attached to standard
// output.
func Cols() (int, error) {
	sz, err := GetSize(os.Stdout)
	if err != nil {
		return 0, err
	}
	return sz.Cols, nil
}

// ColsOr returns the width to wrap standard output at: $COLUMNS if it
// holds a positive number, else the terminal's width, else fallback.
func ColsOr(fallback int) int {
	if n, ok := envCols(); ok {
		return n
	}
	if n, err := Cols(); err == nil && n > 0 {
		return n
	}
	return fallback
}

func envCols() (int, bool) {
	v := strings.TrimSpace(os.Getenv("COLUMNS"))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
