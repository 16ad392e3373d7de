package lisp

// compileQuasiquote compiles a quasiquote template into a function that
// builds a Value tree by copying literal elements and evaluating
// unquote subforms. Nested quasiquotes are not level-tracked: a nested
// ` inside a template is walked as an ordinary list, matching the
// minimal dialect's documented limitation.
func compileQuasiquote(tmpl Value, interp *Interpreter) CompiledExpr {
	if p, ok := tmpl.(*Pair); ok && p != Nil {
		if sym, ok := p.Car.(*Symbol); ok && sym == unquoteSym {
			e := p.Cdr.(*Pair).Car
			inner := analyze(e, false, interp)
			return func(env *Frame) Result {
				return Done(Trampoline(inner(env)))
			}
		}
		if sym, ok := p.Car.(*Symbol); ok && sym == unquoteSplicingSym {
			panic(&EvalError{"unquote-splicing: not valid outside a list template"})
		}
		return compileQqList(p, interp)
	}
	return func(env *Frame) Result { return Done(tmpl) }
}

type qqElem struct {
	compiled CompiledExpr
	splice   bool
}

// compileQqList walks the spine of a list template, compiling each
// element (tracking unquote-splicing) and, for an improper list, the
// dotted tail.
func compileQqList(p *Pair, interp *Interpreter) CompiledExpr {
	var elems []qqElem
	var tailCompiled CompiledExpr
	cur := p
	for {
		if cur == Nil {
			tailCompiled = func(env *Frame) Result { return Done(Nil) }
			break
		}
		if sym, ok := cur.Car.(*Symbol); ok && sym == unquoteSym {
			// A dotted tail such as (a . ,b) reads as the same shape as
			// the remaining spine being (unquote b) directly, rather
			// than an element whose car is the pair (unquote b).
			tailCompiled = compileQuasiquote(cur, interp)
			break
		}
		if elemPair, ok := cur.Car.(*Pair); ok && elemPair != Nil {
			if sym, ok := elemPair.Car.(*Symbol); ok && sym == unquoteSplicingSym {
				e := elemPair.Cdr.(*Pair).Car
				elems = append(elems, qqElem{analyze(e, false, interp), true})
				switch rest := cur.Cdr.(type) {
				case *Pair:
					if rest == Nil {
						tailCompiled = func(env *Frame) Result { return Done(Nil) }
					} else {
						cur = rest
						continue
					}
				default:
					tailCompiled = compileQuasiquote(cur.Cdr, interp)
				}
				break
			}
		}
		elems = append(elems, qqElem{compileQuasiquote(cur.Car, interp), false})
		switch rest := cur.Cdr.(type) {
		case *Pair:
			if rest == Nil {
				tailCompiled = func(env *Frame) Result { return Done(Nil) }
				cur = Nil
			} else {
				cur = rest
				continue
			}
		default:
			tailCompiled = compileQuasiquote(cur.Cdr, interp)
			cur = Nil
		}
		break
	}

	return func(env *Frame) Result {
		tail := Trampoline(tailCompiled(env))
		flat := make([]Value, 0, len(elems))
		for _, el := range elems {
			v := Trampoline(el.compiled(env))
			if el.splice {
				lst, ok := properList(v)
				if !ok {
					panic(&EvalError{"unquote-splicing: expected a list"})
				}
				flat = append(flat, lst...)
			} else {
				flat = append(flat, v)
			}
		}
		result := tail
		for i := len(flat) - 1; i >= 0; i-- {
			result = &Pair{flat[i], result}
		}
		return Done(result)
	}
}
