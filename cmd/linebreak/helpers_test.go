package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jallum/linebreak/internal/config"
)

func TestParseArgsBooleans(t *testing.T) {
	a, err := ParseArgs([]string{"--ruler", "--paragraphs", "positional"}, nil, []string{"--ruler", "--paragraphs"})
	if err != nil {
		t.Fatal(err)
	}
	if !a.Bool("--ruler") {
		t.Error("expected --ruler to be true")
	}
	if !a.Bool("--paragraphs") {
		t.Error("expected --paragraphs to be true")
	}
	if a.Bool("--missing") {
		t.Error("expected --missing to be false")
	}
	if a.PosJoined() != "positional" {
		t.Errorf("positionals = %q", a.Pos())
	}
}

func TestParseArgsValueFlags(t *testing.T) {
	a, err := ParseArgs([]string{"--width", "40", "--indent", "> "}, []string{"--width", "--indent"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if n, ok, err := a.IntErr("--width"); n != 40 || !ok || err != nil {
		t.Errorf("IntErr(--width) = %d, %v, %v", n, ok, err)
	}
	if a.String("--indent") != "> " {
		t.Errorf("indent = %q, want %q", a.String("--indent"), "> ")
	}
	if !a.Has("--indent") {
		t.Error("expected Has(--indent) to be true")
	}
	if a.Has("--missing") {
		t.Error("expected Has(--missing) to be false")
	}
}

func TestParseArgsAliases(t *testing.T) {
	a, err := ParseArgs([]string{"-w", "12", "-i", "--", "-p", "-f", "notes.txt"},
		[]string{"--width", "--indent", "--file"}, []string{"--paragraphs"})
	if err != nil {
		t.Fatal(err)
	}
	if a.String("--width") != "12" {
		t.Errorf("width = %q, want 12", a.String("--width"))
	}
	if a.String("--indent") != "--" {
		t.Errorf("indent = %q, want --", a.String("--indent"))
	}
	if !a.Bool("--paragraphs") {
		t.Error("expected -p to set --paragraphs")
	}
	if a.String("--file") != "notes.txt" {
		t.Errorf("file = %q, want notes.txt", a.String("--file"))
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	_, err := ParseArgs([]string{"--bogus"}, nil, nil)
	if err == nil || !strings.Contains(err.Error(), "unknown flag: --bogus") {
		t.Errorf("err = %v, want unknown flag", err)
	}
}

func TestParseArgsMissingValue(t *testing.T) {
	_, err := ParseArgs([]string{"--width"}, []string{"--width"}, nil)
	if err == nil || !strings.Contains(err.Error(), "needs a value") {
		t.Errorf("err = %v, want missing value error", err)
	}
}

func TestParseArgsDashIsPositional(t *testing.T) {
	a, err := ParseArgs([]string{"-", "word"}, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Pos()) != 2 || a.Pos()[0] != "-" {
		t.Errorf("positionals = %q", a.Pos())
	}
}

func TestIntErrInvalid(t *testing.T) {
	a, _ := ParseArgs([]string{"--width", "wide"}, []string{"--width"}, nil)
	if _, ok, err := a.IntErr("--width"); !ok || err == nil {
		t.Errorf("IntErr = %v, %v; want set with error", ok, err)
	}
}

func TestRemoveFlag(t *testing.T) {
	got := removeFlag([]string{"--verbose", "a", "--verbose", "b"}, "--verbose")
	if strings.Join(got, " ") != "a b" {
		t.Errorf("removeFlag = %q", got)
	}
}

func TestAbsSpec(t *testing.T) {
	abs, _ := filepath.Abs("notes.txt")
	tests := []struct{ in, want string }{
		{"word", "word"},
		{"-", "-"},
		{"git:HEAD", "git:HEAD"},
		{"@", "@"},
		{"@notes.txt", "@" + abs},
	}
	for _, tt := range tests {
		got, err := absSpec(tt.in)
		if err != nil {
			t.Fatalf("absSpec(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("absSpec(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveWidthOrder(t *testing.T) {
	newTestEnv(t, "")
	parse := func(raw ...string) Args {
		a, err := ParseArgs(raw, []string{"--width"}, nil)
		if err != nil {
			t.Fatal(err)
		}
		return a
	}
	cfg := &config.Config{Width: 50, FallbackWidth: 66}

	if n, _ := resolveWidth(parse("--width", "30"), cfg); n != 30 {
		t.Errorf("--width: got %d, want 30", n)
	}

	t.Setenv("LINEBREAK_WIDTH", "40")
	if n, _ := resolveWidth(parse(), cfg); n != 40 {
		t.Errorf("LINEBREAK_WIDTH: got %d, want 40", n)
	}

	t.Setenv("LINEBREAK_WIDTH", "")
	cfg = &config.Config{Width: 50, FallbackWidth: 66}
	if n, _ := resolveWidth(parse(), cfg); n != 50 {
		t.Errorf("config: got %d, want 50", n)
	}

	cfg.Width = 0
	t.Setenv("COLUMNS", "90")
	if n, _ := resolveWidth(parse(), cfg); n != 90 {
		t.Errorf("COLUMNS: got %d, want 90", n)
	}

	t.Setenv("COLUMNS", "")
	if n, _ := resolveWidth(parse(), cfg); n != 66 {
		t.Errorf("fallback: got %d, want 66", n)
	}

	if _, err := resolveWidth(parse("--width", "x"), cfg); err == nil {
		t.Error("expected error for non-numeric --width")
	}
}

func TestVerboseExplainsWidth(t *testing.T) {
	e := newTestEnv(t, "")
	e.mustRun("--verbose", "hello")
	log := e.stderr.String()
	if !strings.Contains(log, "config "+e.config) {
		t.Errorf("stderr missing config path:\n%s", log)
	}
	if !strings.Contains(log, "width 80 from fallback_width") {
		t.Errorf("stderr missing width source:\n%s", log)
	}
}
