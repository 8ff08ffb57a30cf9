package main

import (
	"fmt"
	"strings"

	"github.com/jallum/linebreak"
	"github.com/jallum/linebreak/internal/source"
	"github.com/jallum/linebreak/internal/wrap"
)

func cmdWrap(raw []string, w Writer) error {
	a, err := commandMap["wrap"].parse(raw)
	if err != nil {
		return err
	}
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	width, err := resolveWidth(a, cfg)
	if err != nil {
		return err
	}
	indent := cfg.Indent
	if a.Has("--indent") {
		indent = a.String("--indent")
	}

	specs := a.Pos()
	if a.Has("--file") {
		specs = append(specs, source.FilePrefix+a.String("--file"))
	}
	if a.Has("--git") {
		specs = append(specs, source.GitPrefix+a.String("--git"))
	}
	if len(specs) == 0 {
		specs = []string{source.StdinSpec}
	}
	for i, spec := range specs {
		if specs[i], err = absSpec(spec); err != nil {
			return err
		}
	}
	text, err := newResolver().Join(specs)
	if err != nil {
		return err
	}

	it := linebreak.New("", width)
	if err := it.Err(); err != nil {
		return err
	}
	it.SetIndent(indent)
	it.SetAmbiguousWide(cfg.AmbiguousWide())

	if a.Bool("--ruler") {
		fmt.Fprintln(w, w.Style(ruler(width), Dim))
	}
	if a.Bool("--paragraphs") || cfg.Paragraphs {
		for _, line := range wrap.Reflow(it, text) {
			fmt.Fprintln(w, line)
		}
		return nil
	}
	it.Init(text)
	for line := range it.All() {
		fmt.Fprintln(w, line)
	}
	return nil
}

// ruler returns a width-column scale: a digit every ten columns and a
// plus sign at every fifth.
func ruler(width int) string {
	var b strings.Builder
	for col := 1; col <= width; col++ {
		switch {
		case col%10 == 0:
			b.WriteByte('0' + byte(col/10%10))
		case col%5 == 0:
			b.WriteByte('+')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
