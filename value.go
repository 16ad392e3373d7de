// Package lisp implements a small Scheme-style evaluator: reader, macro
// expander, closure-compiling analyzer and a trampolined runtime.
package lisp

// Value is any Scheme value: float64 (number), string (string), bool
// (boolean), *Symbol, *Pair (Nil is the typed-nil *Pair), *Builtin or
// *Closure. Value itself carries no methods; every subsystem dispatches
// on the dynamic type with a type switch.
type Value = interface{}

// Pair is a cons cell. Nil, the empty list, is the typed nil *Pair —
// there is no separate empty-pair allocation.
type Pair struct {
	Car Value
	Cdr Value
}

// Nil represents the empty list. It is distinct from boolean false.
var Nil *Pair = nil

// list builds a proper list from its arguments.
func list(vs ...Value) *Pair {
	var result Value = Nil
	p := &result
	for _, v := range vs {
		c := &Pair{v, Nil}
		*p = c
		p = &c.Cdr
	}
	return result.(*Pair)
}

// listToSlice collects the elements of the spine of a (possibly improper)
// list into a slice, stopping at the first non-Pair cdr.
func listToSlice(v Value) []Value {
	var out []Value
	for {
		p, ok := v.(*Pair)
		if !ok || p == Nil {
			return out
		}
		out = append(out, p.Car)
		v = p.Cdr
	}
}

// properList returns the elements of v and true if v is a proper list
// (Nil or a chain of Pairs terminated by Nil); otherwise false.
func properList(v Value) ([]Value, bool) {
	var out []Value
	for {
		p, ok := v.(*Pair)
		if !ok {
			return nil, false
		}
		if p == Nil {
			return out, true
		}
		out = append(out, p.Car)
		v = p.Cdr
	}
}

// Builtin is a native procedure exposed to Scheme code. Fn receives the
// fully evaluated argument vector and returns the result; it panics with
// an *EvalError to signal failure.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 means unbounded
	Fn      func(args []Value) Value
}

// Closure is a compiled user procedure bundled with the environment
// frame that was active when its lambda form was evaluated. Every field
// is immutable once the Closure is constructed.
type Closure struct {
	Params      []string
	Rest        string
	HasRest     bool
	Body        CompiledExpr
	CapturedEnv *Frame
}

// unspecifiedType is the type of the result of side-effecting forms (define, set!,
// define-macro) whose value is not meant to be printed.
type unspecifiedType struct{}

// Unspecified is returned by define, set! and define-macro.
var Unspecified = &unspecifiedType{}

func isTrue(v Value) bool {
	b, ok := v.(bool)
	return !(ok && !b)
}
