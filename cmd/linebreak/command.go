package main

import (
	"fmt"

	"github.com/jallum/linebreak/internal/wrap"
)

// Flag describes a single command-line flag.
type Flag struct {
	Long  string // e.g. "--width"
	Short string // e.g. "-w" (optional)
	Value string // metavar for help, e.g. "N"; empty means boolean
	Help  string
}

// Positional describes a positional argument.
type Positional struct {
	Name     string // e.g. "<text...>"
	Required bool
	Help     string
}

// Example describes a usage example shown in per-command help.
type Example struct {
	Cmd  string
	Help string
}

// Command describes a CLI subcommand.
type Command struct {
	Name        string
	Summary     string // one-line description for top-level usage
	Description string // shown in per-command help (falls back to Summary)
	Positionals []Positional
	Flags       []Flag
	Examples    []Example
	Run         func(args []string, w Writer) error
}

// valueFlags returns the long names of flags that take a value.
func (c *Command) valueFlags() []string {
	var vf []string
	for _, f := range c.Flags {
		if f.Value != "" {
			vf = append(vf, f.Long)
		}
	}
	return vf
}

// boolFlags returns the long names of boolean flags.
func (c *Command) boolFlags() []string {
	var bf []string
	for _, f := range c.Flags {
		if f.Value == "" {
			bf = append(bf, f.Long)
		}
	}
	return bf
}

// parse parses raw against the command's flag table.
func (c *Command) parse(raw []string) (Args, error) {
	return ParseArgs(raw, c.valueFlags(), c.boolFlags())
}

// commands defines all CLI subcommands.
var commands = []Command{
	{
		Name:    "wrap",
		Summary: "Break text into lines that fit a width",
		Description: "Break text into lines no wider than the line width, measured in terminal columns. " +
			"Words are never split; a word wider than the line gets a line of its own. " +
			"Runs of whitespace, newlines included, become a single space.\n\n" +
			"Each argument is a source: - reads standard input, @PATH reads a file, " +
			"git:REV reads a commit message, git:REV:PATH reads a file from a commit, " +
			"and anything else is literal text. " +
			"With no arguments, standard input is read. This is the default command.",
		Positionals: []Positional{
			{Name: "[text...]", Help: "Text or sources to wrap (default: -)"},
		},
		Flags: []Flag{
			{Long: "--width", Short: "-w", Value: "N", Help: "Line width in columns (default: terminal width)"},
			{Long: "--indent", Short: "-i", Value: "S", Help: "Prefix for every line, counted in the width"},
			{Long: "--paragraphs", Short: "-p", Help: "Keep blank-line separated paragraphs apart"},
			{Long: "--ruler", Help: "Print a column ruler above the output"},
			{Long: "--file", Short: "-f", Value: "PATH", Help: "Read text from a file"},
			{Long: "--git", Value: "REV", Help: "Read the message of a commit"},
		},
		Examples: []Example{
			{Cmd: `linebreak "some long text" --width 20`},
			{Cmd: "cat notes.txt | linebreak -w 72 -p", Help: "Reflow standard input by paragraph"},
			{Cmd: `linebreak wrap --git HEAD --indent "    "`, Help: "Indent the last commit message"},
		},
		Run: cmdWrap,
	},
	{
		Name:        "width",
		Summary:     "Show the display width of text",
		Description: "Print how many terminal columns the text occupies.",
		Positionals: []Positional{
			{Name: "<text...>", Required: true, Help: "Text to measure (words joined by spaces)"},
		},
		Flags: []Flag{
			{Long: "--runes", Help: "List every character with its width"},
			{Long: "--ambiguous-wide", Help: "Count East Asian Ambiguous characters as two columns"},
		},
		Examples: []Example{
			{Cmd: "linebreak width 日本語", Help: "Prints 6"},
			{Cmd: "linebreak width --runes café"},
		},
		Run: cmdWidth,
	},
	{
		Name:        "size",
		Summary:     "Show the terminal size",
		Description: "Print the columns and rows of the terminal on standard output,\nor \"unavailable\" when output is not a terminal.",
		Run:         cmdSize,
	},
	{
		Name:        "config",
		Summary:     "View/set config options",
		Description: "View or modify configuration. Subcommands: get, set, list, path.",
		Positionals: []Positional{
			{Name: "get|set|list|path", Required: true, Help: "Subcommand"},
		},
		Examples: []Example{
			{Cmd: "linebreak config set width 72"},
			{Cmd: "linebreak config get ambiguous"},
			{Cmd: "linebreak config list"},
		},
		Run: cmdConfig,
	},
}

// commandMap provides O(1) lookup by name.
var commandMap map[string]*Command

func init() {
	commandMap = make(map[string]*Command, len(commands))
	for i := range commands {
		commandMap[commands[i].Name] = &commands[i]
	}
}

// commandGroups defines the display order for usage output.
var commandGroups = []struct {
	name string
	cmds []string
}{
	{"Text", []string{"wrap", "width"}},
	{"Terminal & Config", []string{"size", "config"}},
}

func printUsage(w Writer) {
	fmt.Fprintln(w, "linebreak: break text into lines that fit the terminal")
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, "linebreak [text...] [flags]")
	fmt.Fprintln(w, "linebreak <command> [args]")
	fmt.Fprintln(w, "linebreak <command> --help")
	w.Pop()

	for _, g := range commandGroups {
		fmt.Fprintf(w, "\n%s\n", w.Style(g.name+":", Cyan))
		w.Push(2)
		for _, name := range g.cmds {
			c := commandMap[name]
			if c == nil {
				continue
			}
			usage := name
			for _, p := range c.Positionals {
				usage += " " + p.Name
			}
			if len(c.Flags) > 0 {
				usage += " [flags]"
			}
			fmt.Fprintf(w, "%-28s %s\n", usage, c.Summary)
		}
		w.Pop()
	}

	fmt.Fprintf(w, "\n%s\n", w.Style("Global flags:", Cyan))
	w.Push(2)
	fmt.Fprintf(w, "%-28s %s\n", "--verbose", "Explain where the width and config came from")
	fmt.Fprintf(w, "%-28s %s\n", "--version", "Print the version")
	w.Pop()

	fmt.Fprintln(w, "\nUse \"linebreak <command> --help\" for more information about a command.")
}

func printCommandHelp(w Writer, c *Command) {
	desc := c.Description
	if desc == "" {
		desc = c.Summary
	}
	if ww := w.Width(); ww > 0 {
		desc = wrap.Text(desc, ww, "")
	}
	fmt.Fprintf(w, "%s\n", desc)

	usage := "linebreak " + c.Name
	for _, p := range c.Positionals {
		usage += " " + p.Name
	}
	if len(c.Flags) > 0 {
		usage += " [flags]"
	}
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, usage)
	w.Pop()

	if len(c.Positionals) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Arguments:", Cyan))
		w.Push(2)
		for _, p := range c.Positionals {
			fmt.Fprintf(w, "%-24s %s\n", p.Name, p.Help)
		}
		w.Pop()
	}

	if len(c.Flags) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Flags:", Cyan))
		w.Push(2)
		for _, f := range c.Flags {
			flag := f.Long
			if f.Short != "" {
				flag = f.Short + ", " + f.Long
			}
			if f.Value != "" {
				flag += " " + f.Value
			}
			fmt.Fprintf(w, "%-28s %s\n", flag, f.Help)
		}
		w.Pop()
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Examples:", Cyan))
		w.Push(2)
		for _, ex := range c.Examples {
			fmt.Fprintln(w, ex.Cmd)
			if ex.Help != "" {
				w.Push(4)
				fmt.Fprintln(w, ex.Help)
				w.Pop()
			}
		}
		w.Pop()
	}
}
