package lisp

import (
	"fmt"
	"math"
	"strings"
)

// registerBuiltins installs the required built-in procedure set (§6)
// into the global frame.
func registerBuiltins(g *Frame) {
	def := func(name string, min, max int, fn func([]Value) Value) {
		g.Define(name, &Builtin{Name: name, MinArgs: min, MaxArgs: max, Fn: fn})
	}

	// Arithmetic
	def("+", 0, -1, func(a []Value) Value {
		sum := 0.0
		for _, v := range a {
			sum += asNumber("+", v)
		}
		return sum
	})
	def("*", 0, -1, func(a []Value) Value {
		prod := 1.0
		for _, v := range a {
			prod *= asNumber("*", v)
		}
		return prod
	})
	def("-", 1, -1, func(a []Value) Value {
		first := asNumber("-", a[0])
		if len(a) == 1 {
			return -first
		}
		for _, v := range a[1:] {
			first -= asNumber("-", v)
		}
		return first
	})
	def("/", 1, -1, func(a []Value) Value {
		first := asNumber("/", a[0])
		if len(a) == 1 {
			return 1 / first
		}
		for _, v := range a[1:] {
			first /= asNumber("/", v)
		}
		return first
	})
	def("abs", 1, 1, func(a []Value) Value { return math.Abs(asNumber("abs", a[0])) })
	def("sqrt", 1, 1, func(a []Value) Value { return math.Sqrt(asNumber("sqrt", a[0])) })
	def("remainder", 2, 2, func(a []Value) Value {
		x, y := asNumber("remainder", a[0]), asNumber("remainder", a[1])
		return math.Mod(x, y) // sign of the dividend, matching Go's Mod
	})
	def("modulo", 2, 2, func(a []Value) Value {
		x, y := asNumber("modulo", a[0]), asNumber("modulo", a[1])
		m := math.Mod(x, y)
		if m != 0 && (m < 0) != (y < 0) {
			m += y
		}
		return m
	})
	def("floor", 1, 1, func(a []Value) Value { return math.Floor(asNumber("floor", a[0])) })
	def("ceiling", 1, 1, func(a []Value) Value { return math.Ceil(asNumber("ceiling", a[0])) })
	def("truncate", 1, 1, func(a []Value) Value { return math.Trunc(asNumber("truncate", a[0])) })
	def("round", 1, 1, func(a []Value) Value { return math.RoundToEven(asNumber("round", a[0])) })

	// Comparison
	def("=", 1, -1, func(a []Value) Value { return compareAll(a, func(x, y float64) bool { return x == y }) })
	def("<", 1, -1, func(a []Value) Value { return compareAll(a, func(x, y float64) bool { return x < y }) })
	def(">", 1, -1, func(a []Value) Value { return compareAll(a, func(x, y float64) bool { return x > y }) })
	def("<=", 1, -1, func(a []Value) Value { return compareAll(a, func(x, y float64) bool { return x <= y }) })
	def(">=", 1, -1, func(a []Value) Value { return compareAll(a, func(x, y float64) bool { return x >= y }) })

	// Pairs / lists
	def("cons", 2, 2, func(a []Value) Value { return &Pair{a[0], a[1]} })
	def("car", 1, 1, func(a []Value) Value {
		p, ok := a[0].(*Pair)
		if !ok || p == Nil {
			panic(&EvalError{"car: expected cons"})
		}
		return p.Car
	})
	def("cdr", 1, 1, func(a []Value) Value {
		p, ok := a[0].(*Pair)
		if !ok || p == Nil {
			panic(&EvalError{"cdr: expected cons"})
		}
		return p.Cdr
	})
	def("null?", 1, 1, func(a []Value) Value {
		p, ok := a[0].(*Pair)
		return ok && p == Nil
	})
	def("pair?", 1, 1, func(a []Value) Value {
		p, ok := a[0].(*Pair)
		return ok && p != Nil
	})
	def("list?", 1, 1, func(a []Value) Value {
		_, ok := properList(a[0])
		return ok
	})
	def("symbol?", 1, 1, func(a []Value) Value {
		_, ok := a[0].(*Symbol)
		return ok
	})
	def("procedure?", 1, 1, func(a []Value) Value {
		switch a[0].(type) {
		case *Builtin, *Closure:
			return true
		default:
			return false
		}
	})

	// Equality: numbers/booleans/nil/symbols compare structurally,
	// pairs/procedures by identity — exactly what Go's == gives for
	// these representations (interned symbols, pointer-identity pairs).
	def("eq?", 2, 2, func(a []Value) Value { return a[0] == a[1] })
	def("eqv?", 2, 2, func(a []Value) Value { return a[0] == a[1] })

	// apply proc arg... list
	def("apply", 2, -1, func(a []Value) Value {
		proc := a[0]
		last := a[len(a)-1]
		lst, ok := properList(last)
		if !ok {
			panic(&EvalError{"apply: last argument must be a list"})
		}
		callArgs := make([]Value, 0, len(a)-2+len(lst))
		callArgs = append(callArgs, a[1:len(a)-1]...)
		callArgs = append(callArgs, lst...)
		return Apply(proc, callArgs)
	})

	// I/O
	def("log", 0, -1, func(a []Value) Value {
		parts := make([]string, len(a))
		for i, v := range a {
			if s, ok := v.(string); ok {
				parts[i] = s
			} else {
				parts[i] = Print(v)
			}
		}
		fmt.Println(strings.Join(parts, " "))
		return Unspecified
	})
}

func asNumber(op string, v Value) float64 {
	n, ok := v.(float64)
	if !ok {
		panic(&EvalError{op + ": expected number, got " + Print(v)})
	}
	return n
}

func compareAll(args []Value, cmp func(a, b float64) bool) bool {
	for i := 0; i < len(args)-1; i++ {
		a := asNumber("compare", args[i])
		b := asNumber("compare", args[i+1])
		if !cmp(a, b) {
			return false
		}
	}
	return true
}
