package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jallum/linebreak/internal/config"
	"github.com/jallum/linebreak/internal/source"
	"github.com/jallum/linebreak/term"
)

// Process state the commands read; tests replace these. Paths handed to
// rootFS are made absolute first.
var (
	stdin   io.Reader        = os.Stdin
	stderr  io.Writer        = os.Stderr
	stdout                   = os.Stdout
	rootFS  billy.Filesystem = osfs.New("")
	verbose bool
)

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

// debugf prints a diagnostic to stderr when --verbose is set.
func debugf(format string, args ...any) {
	if verbose {
		fmt.Fprintf(stderr, "linebreak: "+format+"\n", args...)
	}
}

func hasFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}

// removeFlag returns args without any occurrence of flag.
func removeFlag(args []string, flag string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}

// aliases maps short flags to their long forms.
var aliases = map[string]string{
	"-w": "--width",
	"-i": "--indent",
	"-p": "--paragraphs",
	"-f": "--file",
}

// Args holds parsed command-line arguments separated into boolean flags,
// key-value flags, and positional arguments.
type Args struct {
	bools map[string]bool
	flags map[string]string
	pos   []string
}

// ParseArgs separates raw args into booleans, key-value pairs, and positionals.
// valueFlags lists flags that consume the next token as a value (e.g. "--width").
// boolFlags lists boolean flags (e.g. "--ruler").
// Any "--" prefixed token not in valueFlags or boolFlags returns an error.
// A lone "-" is a positional (standard input).
func ParseArgs(raw []string, valueFlags []string, boolFlags []string) (Args, error) {
	vf := make(map[string]bool, len(valueFlags))
	for _, f := range valueFlags {
		vf[f] = true
	}
	bf := make(map[string]bool, len(boolFlags))
	for _, f := range boolFlags {
		bf[f] = true
	}

	a := Args{
		bools: make(map[string]bool),
		flags: make(map[string]string),
	}

	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if long, ok := aliases[tok]; ok {
			tok = long
		}

		if !strings.HasPrefix(tok, "--") {
			a.pos = append(a.pos, raw[i])
			continue
		}

		if vf[tok] {
			if i+1 >= len(raw) {
				return a, fmt.Errorf("flag %s needs a value", tok)
			}
			a.flags[tok] = raw[i+1]
			i++
		} else if bf[tok] {
			a.bools[tok] = true
		} else {
			return a, fmt.Errorf("unknown flag: %s", tok)
		}
	}
	return a, nil
}

// Bool returns true if the named boolean flag was present.
func (a Args) Bool(name string) bool { return a.bools[name] }

// String returns the value of a key-value flag, or "" if absent.
func (a Args) String(name string) string { return a.flags[name] }

// IntErr returns the parsed int, whether the flag was set, and any parse error.
func (a Args) IntErr(name string) (int, bool, error) {
	v, ok := a.flags[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("invalid %s: %s", name, v)
	}
	return n, true, nil
}

// Has returns true if a key-value flag was provided.
func (a Args) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Pos returns all positional arguments.
func (a Args) Pos() []string { return a.pos }

// PosJoined returns all positional args joined with spaces.
func (a Args) PosJoined() string { return strings.Join(a.pos, " ") }

// loadConfig reads the user's config file.
func loadConfig() (*config.Config, string, error) {
	path, err := config.Path()
	if err != nil {
		return nil, "", err
	}
	if path, err = filepath.Abs(path); err != nil {
		return nil, "", fmt.Errorf("locate config: %w", err)
	}
	cfg, err := config.Load(rootFS, path)
	if err != nil {
		return nil, "", err
	}
	debugf("config %s", path)
	return cfg, path, nil
}

// resolveWidth picks the line width: --width, then $LINEBREAK_WIDTH, then
// the config file, then the terminal, then the configured fallback.
func resolveWidth(a Args, cfg *config.Config) (int, error) {
	if n, ok, err := a.IntErr("--width"); err != nil {
		return 0, err
	} else if ok {
		debugf("width %d from --width", n)
		return n, nil
	}
	if err := cfg.ApplyEnv(); err != nil {
		return 0, err
	}
	if cfg.Width > 0 {
		debugf("width %d from config", cfg.Width)
		return cfg.Width, nil
	}
	if n := term.ColsOr(0); n > 0 {
		debugf("width %d from terminal", n)
		return n, nil
	}
	debugf("no terminal, width %d from fallback_width", cfg.FallbackWidth)
	return cfg.FallbackWidth, nil
}

// absSpec makes the path of an @path source absolute.
func absSpec(spec string) (string, error) {
	if source.IsLiteral(spec) || !strings.HasPrefix(spec, source.FilePrefix) {
		return spec, nil
	}
	p, err := filepath.Abs(strings.TrimPrefix(spec, source.FilePrefix))
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", spec, err)
	}
	return source.FilePrefix + p, nil
}

// newResolver returns a source resolver over the real filesystem, standard
// input, and the repository containing the working directory.
func newResolver() *source.Resolver {
	return &source.Resolver{FS: rootFS, Stdin: stdin, GitDir: "."}
}
