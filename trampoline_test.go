package lisp

import "testing"

func TestTailRecursionIsStackSafe(t *testing.T) {
	// §8 scenario 3 at its full depth of 1,000,000 tail calls.
	interp := NewInterpreter()
	err := interp.LoadString(`
		(define (loop n) (if (< n 1) (quote done) (loop (- n 1))))
	`)
	if err != nil {
		t.Fatalf("loading loop: %v", err)
	}
	got := evalStr(t, interp, "(loop 1000000)")
	if Print(got) != "done" {
		t.Errorf("got %q", Print(got))
	}
}

func TestMutualTailRecursionIsStackSafe(t *testing.T) {
	interp := NewInterpreter()
	err := interp.LoadString(`
		(define (even? n) (if (= n 0) #t (odd? (- n 1))))
		(define (odd? n) (if (= n 0) #f (even? (- n 1))))
	`)
	if err != nil {
		t.Fatalf("loading mutual recursion: %v", err)
	}
	got := evalStr(t, interp, "(even? 200000)")
	if Print(got) != "#t" {
		t.Errorf("got %q", Print(got))
	}
}

func TestNonTailRecursionStillWorksAtModestDepth(t *testing.T) {
	// §8 scenario 2: factorial recurses in non-tail position (the
	// multiplication happens after the recursive call returns), so it
	// is bounded by the host stack, not the trampoline.
	interp := NewInterpreter()
	err := interp.LoadString(`
		(define (fact n) (if (< n 2) 1 (* n (fact (- n 1)))))
	`)
	if err != nil {
		t.Fatalf("loading fact: %v", err)
	}
	got := evalStr(t, interp, "(fact 5)")
	if Print(got) != "120" {
		t.Errorf("got %q", Print(got))
	}
}

func TestDoneAndPending(t *testing.T) {
	r := Done(42.0)
	if !r.done || r.value != 42.0 {
		t.Errorf("Done: got %+v", r)
	}
	steps := 0
	p := Pending(func() Result {
		steps++
		return Done("final")
	})
	if p.done {
		t.Error("Pending should not report done before being forced")
	}
	if got := Trampoline(p); got != "final" {
		t.Errorf("Trampoline(Pending) = %v, want final", got)
	}
	if steps != 1 {
		t.Errorf("thunk should run exactly once, ran %d times", steps)
	}
}

func TestTrampolineChainsPending(t *testing.T) {
	count := 0
	var step func() Result
	step = func() Result {
		count++
		if count >= 5 {
			return Done(count)
		}
		return Pending(step)
	}
	got := Trampoline(Pending(step))
	if got != 5 {
		t.Errorf("got %v, want 5", got)
	}
}
