package lisp

import "testing"

func evalStr(t *testing.T, interp *Interpreter, src string) Value {
	t.Helper()
	forms := readAll(t, src)
	var result Value = Unspecified
	for _, f := range forms {
		v, err := interp.SafeEval(f)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		result = v
	}
	return result
}

func TestQuasiquoteLiteral(t *testing.T) {
	interp := NewInterpreter()
	got := evalStr(t, interp, "`(a b c)")
	if Print(got) != "(a b c)" {
		t.Errorf("got %q", Print(got))
	}
}

func TestQuasiquoteUnquote(t *testing.T) {
	interp := NewInterpreter()
	got := evalStr(t, interp, "(define x 5) `(a ,x c)")
	if Print(got) != "(a 5 c)" {
		t.Errorf("got %q", Print(got))
	}
}

func TestQuasiquoteSplicing(t *testing.T) {
	// §8 scenario 5.
	interp := NewInterpreter()
	got := evalStr(t, interp, "(define xs '(1 2 3)) `(a ,@xs b)")
	if Print(got) != "(a 1 2 3 b)" {
		t.Errorf("got %q", Print(got))
	}
}

func TestQuasiquoteDottedTailUnquote(t *testing.T) {
	interp := NewInterpreter()
	got := evalStr(t, interp, "(define b 2) `(a . ,b)")
	if Print(got) != "(a . 2)" {
		t.Errorf("got %q", Print(got))
	}
}

func TestQuasiquoteSplicingNotAListErrors(t *testing.T) {
	interp := NewInterpreter()
	forms := readAll(t, "`(a ,@5)")
	_, err := interp.SafeEval(forms[0])
	if err == nil {
		t.Fatal("expected an error splicing a non-list")
	}
}

func TestQuasiquoteConsecutiveSplices(t *testing.T) {
	interp := NewInterpreter()
	got := evalStr(t, interp, "(define xs '(1 2)) `(,@xs ,@xs)")
	if Print(got) != "(1 2 1 2)" {
		t.Errorf("got %q", Print(got))
	}
}
