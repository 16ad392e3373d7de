package lisp

import (
	"io"
	"strings"
)

// Interpreter bundles the global frame and the macro table as instance
// state, rather than package globals, so that multiple interpreters can
// coexist in the same process.
type Interpreter struct {
	Global *Frame
	Macros map[string]*Closure
}

// NewInterpreter builds an interpreter with the built-in procedures
// installed and the standard prelude loaded.
func NewInterpreter() *Interpreter {
	interp := &Interpreter{
		Global: NewFrame(nil),
		Macros: make(map[string]*Closure),
	}
	registerBuiltins(interp.Global)
	if err := interp.LoadString(preludeSource); err != nil {
		panic("lisp: prelude failed to load: " + err.Error())
	}
	return interp
}

// Eval reads nothing; it runs the full expand/analyze/evaluate pipeline
// on an already-parsed expression and returns the resulting Value.
func (interp *Interpreter) Eval(expr Value) Value {
	expanded := ExpandMacros(expr, interp)
	compiled := analyze(expanded, true, interp)
	return Trampoline(compiled(interp.Global))
}

// SafeEval is Eval guarded by recover; it is what the REPL and script
// loader call so a single bad form does not take the process down.
func (interp *Interpreter) SafeEval(expr Value) (result Value, err error) {
	defer func() {
		if e := recover(); e != nil {
			result = nil
			switch x := e.(type) {
			case error:
				err = x
			default:
				panic(e)
			}
		}
	}()
	return interp.Eval(expr), nil
}

// LoadReader reads and evaluates every form from r in turn, stopping at
// the first error or EOF. Definitions and macros persist in interp
// between forms, exactly as they would across REPL lines.
func (interp *Interpreter) LoadReader(r io.Reader) (Value, error) {
	rr := NewReader(r)
	var result Value = Unspecified
	for {
		expr, err := rr.Read()
		if err == EOF {
			return result, nil
		}
		if err != nil {
			return nil, err
		}
		result, err = interp.SafeEval(expr)
		if err != nil {
			return nil, err
		}
	}
}

// LoadString is LoadReader over an in-memory source string.
func (interp *Interpreter) LoadString(src string) error {
	_, err := interp.LoadReader(strings.NewReader(src))
	return err
}
