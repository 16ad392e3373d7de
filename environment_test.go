package lisp

import "testing"

func TestFrameDefineLookup(t *testing.T) {
	f := NewFrame(nil)
	f.Define("x", 10.0)
	v, ok := f.Lookup("x")
	if !ok || v != 10.0 {
		t.Fatalf("Lookup(x) = %v, %v; want 10.0, true", v, ok)
	}
}

func TestFrameParentLookup(t *testing.T) {
	parent := NewFrame(nil)
	parent.Define("x", 1.0)
	child := NewFrame(parent)
	v, ok := child.Lookup("x")
	if !ok || v != 1.0 {
		t.Fatalf("child should see parent binding; got %v, %v", v, ok)
	}
}

func TestFrameDefineShadows(t *testing.T) {
	parent := NewFrame(nil)
	parent.Define("x", 1.0)
	child := NewFrame(parent)
	child.Define("x", 2.0)
	if v, _ := child.Lookup("x"); v != 2.0 {
		t.Errorf("child binding should shadow parent; got %v", v)
	}
	if v, _ := parent.Lookup("x"); v != 1.0 {
		t.Errorf("parent binding should be untouched; got %v", v)
	}
}

func TestFrameSetFindsParent(t *testing.T) {
	parent := NewFrame(nil)
	parent.Define("x", 1.0)
	child := NewFrame(parent)
	if ok := child.Set("x", 99.0); !ok {
		t.Fatal("Set should find x in the parent frame")
	}
	if v, _ := parent.Lookup("x"); v != 99.0 {
		t.Errorf("parent binding should be mutated; got %v", v)
	}
	if _, ok := child.vars["x"]; ok {
		t.Error("set! should not create a new binding in the child frame")
	}
}

func TestFrameSetUnboundFails(t *testing.T) {
	f := NewFrame(nil)
	if ok := f.Set("nope", 1.0); ok {
		t.Error("Set on an unbound name should report false")
	}
}

func TestFrameLookupMissing(t *testing.T) {
	f := NewFrame(nil)
	if _, ok := f.Lookup("nope"); ok {
		t.Error("Lookup of an unbound name should report false")
	}
}
