package lisp

import (
	"strconv"
	"strings"
)

// Print returns the display form of v (strings quoted). This is the
// form the REPL prints for a returned value.
func Print(v Value) string {
	return print1(v, true)
}

// PrintRaw returns the display form of v, leaving v unquoted when v is
// itself a string; strings nested inside a list are still quoted.
func PrintRaw(v Value) string {
	return print1(v, false)
}

func print1(v Value, quoteStrings bool) string {
	switch x := v.(type) {
	case bool:
		if x {
			return "#t"
		}
		return "#f"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		if quoteStrings {
			return `"` + x + `"`
		}
		return x
	case *Symbol:
		return x.Name
	case *Pair:
		if x == Nil {
			return "()"
		}
		return "(" + printPairBody(x) + ")"
	case *Builtin:
		return "#<builtin>"
	case *Closure:
		return "#<closure>"
	case *unspecifiedType:
		return ""
	default:
		return "#<unknown>"
	}
}

// printPairBody renders the elements of a (possibly improper) list
// without the enclosing parens: "a b c" or "a b . c".
func printPairBody(p *Pair) string {
	var parts []string
	cur := p
	for {
		parts = append(parts, print1(cur.Car, true))
		switch cdr := cur.Cdr.(type) {
		case *Pair:
			if cdr == Nil {
				return strings.Join(parts, " ")
			}
			cur = cdr
		default:
			parts = append(parts, ".", print1(cur.Cdr, true))
			return strings.Join(parts, " ")
		}
	}
}
