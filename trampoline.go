package lisp

// Result is the two-state outcome of one step of evaluation: either a
// final Value (done) or a Pending thunk representing one more step. A
// compiled expression returns Pending only when it was analyzed with
// tail = true; every non-tail consumer of a Result forces it locally
// with Trampoline before inspecting the value.
type Result struct {
	done  bool
	value Value
	thunk func() Result
}

// Done wraps a final value.
func Done(v Value) Result {
	return Result{done: true, value: v}
}

// Pending wraps one more step of a deferred tail call.
func Pending(thunk func() Result) Result {
	return Result{done: false, thunk: thunk}
}

// Trampoline drives a chain of Pending results to a final Value using a
// flat loop, so mutually tail-recursive procedures run in bounded Go
// stack regardless of how many calls they make.
func Trampoline(r Result) Value {
	for !r.done {
		r = r.thunk()
	}
	return r.value
}

// CompiledExpr is the output of analysis: a function from a Frame to a
// trampoline Result.
type CompiledExpr func(env *Frame) Result

// bindAndRun binds args into a fresh frame parented by the closure's
// captured environment and runs the compiled body. The body was
// analyzed with tail = true on its last expression, so the Result
// returned here may itself be Pending — callers in tail position must
// propagate it unforced to preserve constant stack use.
func bindAndRun(cl *Closure, args []Value) Result {
	frame := NewFrame(cl.CapturedEnv)
	bindParams(frame, cl, args)
	return cl.Body(frame)
}

// bindParams binds a Closure's parameters positionally. Extra arguments
// without a rest parameter are silently ignored; missing fixed arguments
// are bound to Unspecified rather than left undefined, so a reference to
// one yields Unspecified instead of an "Unbound variable" error.
func bindParams(frame *Frame, cl *Closure, args []Value) {
	n := len(cl.Params)
	for i, p := range cl.Params {
		if i < len(args) {
			frame.Define(p, args[i])
		} else {
			frame.Define(p, Unspecified)
		}
	}
	if cl.HasRest {
		var rest Value = Nil
		if len(args) > n {
			extra := args[n:]
			for i := len(extra) - 1; i >= 0; i-- {
				rest = &Pair{extra[i], rest}
			}
		}
		frame.Define(cl.Rest, rest)
	}
}

// Apply calls proc with args and drives the result to a final Value.
// It is used for non-tail application, the apply builtin and macro
// transformer invocation.
func Apply(proc Value, args []Value) Value {
	switch fn := proc.(type) {
	case *Builtin:
		checkArity(fn.Name, args, fn.MinArgs, fn.MaxArgs)
		return fn.Fn(args)
	case *Closure:
		return Trampoline(bindAndRun(fn, args))
	default:
		panic(&EvalError{"Not a function: " + Print(proc)})
	}
}
