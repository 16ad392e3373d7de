package lisp

import "testing"

func TestPrintAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{42.0, "42"},
		{2.5, "2.5"},
		{true, "#t"},
		{false, "#f"},
		{Nil, "()"},
		{Intern("foo"), "foo"},
		{"hi", `"hi"`},
	}
	for _, c := range cases {
		if got := Print(c.v); got != c.want {
			t.Errorf("Print(%#v) = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestPrintLists(t *testing.T) {
	proper := list(1.0, 2.0, 3.0)
	if got := Print(proper); got != "(1 2 3)" {
		t.Errorf("got %q", got)
	}
	improper := &Pair{1.0, &Pair{2.0, 3.0}}
	if got := Print(improper); got != "(1 2 . 3)" {
		t.Errorf("got %q", got)
	}
}

func TestPrintProceduresAndUnspecified(t *testing.T) {
	b := &Builtin{Name: "+", MinArgs: 0, MaxArgs: -1, Fn: func([]Value) Value { return 0.0 }}
	if got := Print(b); got != "#<builtin>" {
		t.Errorf("got %q", got)
	}
	cl := &Closure{}
	if got := Print(cl); got != "#<closure>" {
		t.Errorf("got %q", got)
	}
	if got := Print(Unspecified); got != "" {
		t.Errorf("Unspecified should print as empty, got %q", got)
	}
}

func TestReadPrintRoundTrip(t *testing.T) {
	srcs := []string{"42", "-3.5", "#t", "#f", "foo", `"a string"`, "(1 2 3)", "(1 2 . 3)", "()"}
	for _, src := range srcs {
		vs := readAll(t, src)
		if len(vs) != 1 {
			t.Fatalf("%s: expected 1 value, got %d", src, len(vs))
		}
		roundTripped := readAll(t, Print(vs[0]))
		if len(roundTripped) != 1 || Print(roundTripped[0]) != Print(vs[0]) {
			t.Errorf("%s: round trip mismatch, printed %q", src, Print(vs[0]))
		}
	}
}
