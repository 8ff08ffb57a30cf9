package main

import (
	"fmt"
	"os"

	"github.com/jallum/linebreak/term"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], stdoutWriter()); err != nil {
		fatal(err.Error())
	}
}

// run dispatches args to a command. Arguments that do not start with a
// command name go to wrap.
func run(args []string, w Writer) error {
	if hasFlag(args, "--verbose") {
		verbose = true
		args = removeFlag(args, "--verbose")
	}
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v":
			fmt.Fprintln(w, "linebreak "+version)
			return nil
		case "--help", "-h", "help":
			printUsage(w)
			return nil
		}
		if c, ok := commandMap[args[0]]; ok {
			return runCommand(c, args[1:], w)
		}
	}
	return runCommand(commandMap["wrap"], args, w)
}

func runCommand(c *Command, args []string, w Writer) error {
	if hasFlag(args, "--help") || hasFlag(args, "-h") {
		printCommandHelp(w, c)
		return nil
	}
	return c.Run(args, w)
}

// stdoutWriter styles output only for a terminal, and never when NO_COLOR
// is set.
func stdoutWriter() Writer {
	if !term.IsTerminal(stdout) {
		return PlainWriter(stdout, 0)
	}
	width := term.ColsOr(term.DefaultCols)
	if os.Getenv("NO_COLOR") != "" {
		return PlainWriter(stdout, width)
	}
	return ColorWriter(stdout, width)
}
