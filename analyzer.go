package lisp

// analyze compiles expr into a CompiledExpr, threading the tail flag
// through every recursive call. An application compiled with tail=true
// returns a Pending trampoline thunk instead of calling directly, which
// is what lets self- and mutually-tail-recursive Scheme procedures run
// in bounded Go stack.
func analyze(expr Value, tail bool, interp *Interpreter) CompiledExpr {
	switch x := expr.(type) {
	case *Symbol:
		name := x.Name
		return func(env *Frame) Result {
			v, ok := env.Lookup(name)
			if !ok {
				panic(&EvalError{"Unbound variable: " + name})
			}
			return Done(v)
		}
	case *Pair:
		if x == Nil {
			return func(env *Frame) Result { return Done(Nil) }
		}
		if head, ok := x.Car.(*Symbol); ok {
			switch head {
			case quoteSym:
				datum := x.Cdr.(*Pair).Car
				return func(env *Frame) Result { return Done(datum) }
			case ifSym:
				return compileIf(x.Cdr.(*Pair), tail, interp)
			case andSym:
				return compileAnd(x.Cdr, tail, interp)
			case orSym:
				return compileOr(x.Cdr, tail, interp)
			case beginSym:
				return compileBody(listToSlice(x.Cdr), tail, interp)
			case defineSym:
				return compileDefine(x.Cdr.(*Pair), interp)
			case setSym:
				return compileSet(x.Cdr.(*Pair), interp)
			case lambdaSym:
				return compileLambda(x.Cdr.(*Pair), interp)
			case defineMacroSym:
				return compileDefineMacro(x.Cdr.(*Pair), interp)
			case quasiquoteSym:
				return compileQuasiquote(x.Cdr.(*Pair).Car, interp)
			}
		}
		return compileApplication(x, tail, interp)
	default:
		// Numbers, strings, booleans: self-evaluating literals.
		return func(env *Frame) Result { return Done(expr) }
	}
}

// compileBody compiles a sequence of expressions as a body: every form
// but the last runs for effect only (tail=false, forced immediately),
// and the last form carries the caller's own tail flag.
func compileBody(forms []Value, tail bool, interp *Interpreter) CompiledExpr {
	if len(forms) == 0 {
		return func(env *Frame) Result { return Done(Unspecified) }
	}
	compiled := make([]CompiledExpr, len(forms))
	for i, f := range forms {
		t := tail && i == len(forms)-1
		compiled[i] = analyze(f, t, interp)
	}
	last := compiled[len(compiled)-1]
	rest := compiled[:len(compiled)-1]
	return func(env *Frame) Result {
		for _, c := range rest {
			Trampoline(c(env))
		}
		return last(env)
	}
}

// compileIf compiles (if test conseq alt...). The alternative is itself
// a body: absent, it evaluates to false.
func compileIf(rest *Pair, tail bool, interp *Interpreter) CompiledExpr {
	test := rest.Car
	afterTest := rest.Cdr.(*Pair)
	conseq := afterTest.Car
	altForms := listToSlice(afterTest.Cdr)

	cTest := analyze(test, false, interp)
	cConseq := analyze(conseq, tail, interp)
	var cAlt CompiledExpr
	if len(altForms) == 0 {
		cAlt = func(env *Frame) Result { return Done(false) }
	} else {
		cAlt = compileBody(altForms, tail, interp)
	}
	return func(env *Frame) Result {
		t := Trampoline(cTest(env))
		if isTrue(t) {
			return cConseq(env)
		}
		return cAlt(env)
	}
}

// compileAnd compiles (and e...): empty => #t, short-circuits on the
// first false, and tail-propagates only the final form.
func compileAnd(rest Value, tail bool, interp *Interpreter) CompiledExpr {
	forms := listToSlice(rest)
	if len(forms) == 0 {
		return func(env *Frame) Result { return Done(true) }
	}
	compiled := make([]CompiledExpr, len(forms))
	for i, f := range forms {
		t := tail && i == len(forms)-1
		compiled[i] = analyze(f, t, interp)
	}
	last := compiled[len(compiled)-1]
	head := compiled[:len(compiled)-1]
	return func(env *Frame) Result {
		for _, c := range head {
			v := Trampoline(c(env))
			if !isTrue(v) {
				return Done(v)
			}
		}
		return last(env)
	}
}

// compileOr compiles (or e...): empty => #f, short-circuits on the
// first non-false, and tail-propagates only the final form.
func compileOr(rest Value, tail bool, interp *Interpreter) CompiledExpr {
	forms := listToSlice(rest)
	if len(forms) == 0 {
		return func(env *Frame) Result { return Done(false) }
	}
	compiled := make([]CompiledExpr, len(forms))
	for i, f := range forms {
		t := tail && i == len(forms)-1
		compiled[i] = analyze(f, t, interp)
	}
	last := compiled[len(compiled)-1]
	head := compiled[:len(compiled)-1]
	return func(env *Frame) Result {
		for _, c := range head {
			v := Trampoline(c(env))
			if isTrue(v) {
				return Done(v)
			}
		}
		return last(env)
	}
}

// compileDefine compiles (define x v) and (define (f a...) body...),
// always binding in the frame active when the compiled form runs.
func compileDefine(rest *Pair, interp *Interpreter) CompiledExpr {
	switch target := rest.Car.(type) {
	case *Symbol:
		valueExpr := rest.Cdr.(*Pair).Car
		cVal := analyze(valueExpr, false, interp)
		name := target.Name
		return func(env *Frame) Result {
			v := Trampoline(cVal(env))
			env.Define(name, v)
			return Done(Unspecified)
		}
	case *Pair:
		fsym := target.Car.(*Symbol)
		params, restName, hasRest := parseParams(target.Cdr)
		body := listToSlice(rest.Cdr)
		compiledBody := compileBody(body, true, interp)
		name := fsym.Name
		return func(env *Frame) Result {
			cl := &Closure{
				Params: params, Rest: restName, HasRest: hasRest,
				Body: compiledBody, CapturedEnv: env,
			}
			env.Define(name, cl)
			return Done(Unspecified)
		}
	default:
		panic(&EvalError{"define: not definable"})
	}
}

// compileSet compiles (set! x v): walk parent frames to find the
// binding and mutate it there; fail if none exists.
func compileSet(rest *Pair, interp *Interpreter) CompiledExpr {
	sym := rest.Car.(*Symbol)
	valueExpr := rest.Cdr.(*Pair).Car
	cVal := analyze(valueExpr, false, interp)
	name := sym.Name
	return func(env *Frame) Result {
		v := Trampoline(cVal(env))
		if !env.Set(name, v) {
			panic(&EvalError{"set!: Unbound variable: " + name})
		}
		return Done(Unspecified)
	}
}

// compileLambda compiles (lambda (a... [. r]) body...) into a
// CompiledExpr that builds a Closure capturing the frame active at
// evaluation time.
func compileLambda(rest *Pair, interp *Interpreter) CompiledExpr {
	params, restName, hasRest := parseParams(rest.Car)
	body := listToSlice(rest.Cdr)
	compiledBody := compileBody(body, true, interp)
	return func(env *Frame) Result {
		return Done(&Closure{
			Params: params, Rest: restName, HasRest: hasRest,
			Body: compiledBody, CapturedEnv: env,
		})
	}
}

// compileDefineMacro compiles (define-macro (n a...) body...): at
// evaluation time it builds a transformer Closure and registers it in
// the interpreter's macro table, which the expander consults on
// subsequent top-level forms.
func compileDefineMacro(rest *Pair, interp *Interpreter) CompiledExpr {
	spec := rest.Car.(*Pair)
	nameSym := spec.Car.(*Symbol)
	params, restName, hasRest := parseParams(spec.Cdr)
	body := listToSlice(rest.Cdr)
	compiledBody := compileBody(body, true, interp)
	name := nameSym.Name
	return func(env *Frame) Result {
		cl := &Closure{
			Params: params, Rest: restName, HasRest: hasRest,
			Body: compiledBody, CapturedEnv: env,
		}
		interp.Macros[name] = cl
		return Done(Unspecified)
	}
}

// compileApplication compiles (op arg...). Operator and operands are
// always analyzed with tail=false; only the application as a whole
// carries the enclosing tail flag.
func compileApplication(x *Pair, tail bool, interp *Interpreter) CompiledExpr {
	opExpr := x.Car
	argForms := listToSlice(x.Cdr)
	cOp := analyze(opExpr, false, interp)
	cArgs := make([]CompiledExpr, len(argForms))
	for i, a := range argForms {
		cArgs[i] = analyze(a, false, interp)
	}
	return func(env *Frame) Result {
		opVal := Trampoline(cOp(env))
		args := make([]Value, len(cArgs))
		for i, ca := range cArgs {
			args[i] = Trampoline(ca(env))
		}
		if tail {
			if cl, ok := opVal.(*Closure); ok {
				return Pending(func() Result { return bindAndRun(cl, args) })
			}
		}
		return Done(Apply(opVal, args))
	}
}

// parseParams interprets a lambda/define-macro parameter list: a bare
// symbol binds all arguments as a list; a (possibly dotted) list of
// symbols binds positionally with an optional rest parameter.
func parseParams(paramsValue Value) (params []string, rest string, hasRest bool) {
	switch p := paramsValue.(type) {
	case *Symbol:
		return nil, p.Name, true
	case *Pair:
		cur := p
		for cur != Nil {
			sym, ok := cur.Car.(*Symbol)
			if !ok {
				panic(&EvalError{"invalid parameter list"})
			}
			params = append(params, sym.Name)
			switch next := cur.Cdr.(type) {
			case *Pair:
				cur = next
			case *Symbol:
				rest = next.Name
				hasRest = true
				cur = Nil
			default:
				cur = Nil
			}
		}
		return params, rest, hasRest
	default:
		return nil, "", false
	}
}
