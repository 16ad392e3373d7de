// Command tsscm is the command-line front end for the interpreter: a
// script runner, a -c/--command evaluator, and an interactive
// read-eval-print loop, selected the way nukata's scheme.go picks
// between ReadEvalLoop and ReadEvalPrintLoop.
package main

import (
	"fmt"
	"os"

	"github.com/marcmmiller/tsscm"
	"github.com/marcmmiller/tsscm/internal/options"
	"github.com/marcmmiller/tsscm/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	options.Parse()
	interp := lisp.NewInterpreter()

	bindArgs(interp, options.Args())

	switch {
	case options.Command() != "":
		return loadString(interp, options.Command())
	case options.Script() != "":
		return loadFile(interp, options.Script())
	case options.Interactive():
		ui.Run(interp)
		return 0
	default:
		return loadReaderOrStdin(interp)
	}
}

// bindArgs exposes the program name and any trailing positional
// arguments to running code as command-line-arguments.
func bindArgs(interp *lisp.Interpreter, args []string) {
	var lst lisp.Value = lisp.Nil
	for i := len(args) - 1; i >= 0; i-- {
		lst = &lisp.Pair{Car: args[i], Cdr: lst}
	}
	interp.Global.Define("command-line-arguments", lst)
}

func loadString(interp *lisp.Interpreter, src string) int {
	if err := interp.LoadString(src); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}

func loadFile(interp *lisp.Interpreter, path string) int {
	file, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return 1
	}
	defer file.Close()
	if _, err := interp.LoadReader(file); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}

func loadReaderOrStdin(interp *lisp.Interpreter) int {
	if _, err := interp.LoadReader(os.Stdin); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
