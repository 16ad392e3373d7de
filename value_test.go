package lisp

import "testing"

func TestListAndListToSlice(t *testing.T) {
	l := list(1.0, 2.0, 3.0)
	got := listToSlice(l)
	want := []Value{1.0, 2.0, 3.0}
	if len(got) != len(want) {
		t.Fatalf("length: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestListToSliceEmpty(t *testing.T) {
	if got := listToSlice(Nil); len(got) != 0 {
		t.Errorf("listToSlice(Nil) = %v, want empty", got)
	}
}

func TestProperList(t *testing.T) {
	if _, ok := properList(Nil); !ok {
		t.Error("Nil should be a proper list")
	}
	if _, ok := properList(list(1.0, 2.0)); !ok {
		t.Error("(1 2) should be a proper list")
	}
	improper := &Pair{1.0, 2.0}
	if _, ok := properList(improper); ok {
		t.Error("(1 . 2) should not be a proper list")
	}
	if _, ok := properList(42.0); ok {
		t.Error("an atom should not be a proper list")
	}
}

func TestIsTrue(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{Nil, true},
	}
	for _, c := range cases {
		if got := isTrue(c.v); got != c.want {
			t.Errorf("isTrue(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}
