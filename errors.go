package lisp

import "fmt"

// EvalError is any error raised while expanding, analyzing or evaluating
// a form: unbound variables, type errors in built-ins, arity mismatches
// and the like. All of it aborts the current top-level form.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

// ReadError is a parse/lex error from the reader: unterminated strings,
// bad numeric literals, unbalanced parens.
type ReadError struct {
	Message string
	Line    int
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at line %d: %s", e.Line, e.Message)
	}
	return "syntax error: " + e.Message
}

func checkArity(name string, args []Value, min, max int) {
	if len(args) < min || (max >= 0 && len(args) > max) {
		panic(&EvalError{fmt.Sprintf("%s: arity error, got %d arguments", name, len(args))})
	}
}
