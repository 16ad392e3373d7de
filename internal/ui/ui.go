// Package ui provides the interactive read-eval-print loop, built on
// peterh/liner for prompting, line history and Ctrl-C handling, the
// way the rest of the pack's liner-based shells do it.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/marcmmiller/tsscm"
	"github.com/peterh/liner"
)

const prompt = "> "

// Run starts the loop, printing the result of each top-level form and
// any evaluation or read error, until stdin is closed or the user
// aborts with Ctrl-D. It returns when the loop exits.
func Run(interp *lisp.Interpreter) {
	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	pr, pw := io.Pipe()
	go feed(cli, pw)

	rr := lisp.NewReader(pr)
	for {
		expr, err := rr.Read()
		if err == lisp.EOF {
			fmt.Println("Goodbye")
			return
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		result, err := interp.SafeEval(expr)
		if err != nil {
			fmt.Println(err)
			continue
		}
		if result != lisp.Unspecified {
			fmt.Println(lisp.Print(result))
		}
	}
}

// feed pumps lines from the liner prompt into w, one line per prompt,
// closing w (and so ending the Reader's input) on EOF or an aborted
// prompt.
func feed(cli *liner.State, w *io.PipeWriter) {
	for {
		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
			cli.AppendHistory(line)
			if _, werr := io.WriteString(w, line+"\n"); werr != nil {
				w.Close()
				return
			}
		case liner.ErrPromptAborted, io.EOF:
			w.Close()
			return
		default:
			os.Stdout.WriteString(err.Error() + "\n")
			w.Close()
			return
		}
	}
}
