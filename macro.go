package lisp

// ExpandMacros rewrites tree until no subtree has a Symbol head that
// names a registered macro. Macro output may itself contain further
// macro invocations, so the whole-tree pass is iterated to a fixed
// point rather than run once bottom-up.
func ExpandMacros(tree Value, interp *Interpreter) Value {
	for {
		next, changed := expandOnce(tree, interp)
		if !changed {
			return next
		}
		tree = next
	}
}

// expandOnce performs a single rewrite pass and reports whether
// anything changed.
func expandOnce(node Value, interp *Interpreter) (Value, bool) {
	pair, ok := node.(*Pair)
	if !ok || pair == Nil {
		return node, false
	}
	if sym, ok := pair.Car.(*Symbol); ok {
		if sym == quoteSym || sym == quasiquoteSym {
			return node, false
		}
		if transformer, ok := interp.Macros[sym.Name]; ok {
			args := listToSlice(pair.Cdr)
			result := Apply(transformer, args)
			return result, true
		}
	}
	carOut, carChanged := expandOnce(pair.Car, interp)
	cdrOut, cdrChanged := expandOnce(pair.Cdr, interp)
	if carChanged || cdrChanged {
		return &Pair{carOut, cdrOut}, true
	}
	return node, false
}
