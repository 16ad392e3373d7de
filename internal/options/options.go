// Package options parses the command line, the way the rest of the
// docopt-go using pack does it: one static usage doc, one Parse call,
// and a handful of accessors for the rest of the program to read.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	script      string
	terminal    int
	usage       = `tsscm

Usage:
  tsscm SCRIPT [ARGUMENTS...]
  tsscm -c COMMAND [ARGUMENTS...]
  tsscm [-i]
  tsscm -h
  tsscm -v

Arguments:
  ARGUMENTS  Bound as command-line-arguments in the running program.
  SCRIPT     Path to a source file to load and run.

Options:
  -c, --command=COMMAND  Evaluate COMMAND instead of loading a script.
  -i, --interactive      Force the interactive reader, even without a TTY.
  -h, --help             Display this help.
  -v, --version          Accepted, but no version is printed.

With no SCRIPT and no --command, tsscm starts a read-eval-print loop
when standard input is a terminal, or reads a script from standard
input otherwise.
`
)

// Args returns the bound command-line-arguments list, NAME first.
func Args() []string {
	return args
}

// Command is the text given with -c/--command, or "" if none was given.
func Command() string {
	return command
}

// Interactive reports whether the read-eval-print loop should run.
func Interactive() bool {
	return interactive
}

// Script is the path given as SCRIPT, or "" if none was given.
func Script() string {
	return script
}

// Terminal is the file descriptor of standard input when Interactive
// is true because stdin is a TTY; it is 0 otherwise.
func Terminal() int {
	return terminal
}

// Parse reads os.Args under usage and populates the package state.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc itself; this should never happen.
		panic(err.Error())
	}

	script = ""
	command, _ = opts.String("--command")

	path, _ := opts.String("SCRIPT")
	if path != "" {
		script = path
	}

	forced, _ := opts.Bool("--interactive")
	switch {
	case path != "" || command != "":
		interactive = false
	case forced:
		interactive = true
	default:
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}
	if interactive {
		terminal = int(os.Stdin.Fd())
	}

	args, _ = opts["ARGUMENTS"].([]string)
	name := path
	if name == "" {
		name = os.Args[0]
	}
	args = append([]string{name}, args...)
}
