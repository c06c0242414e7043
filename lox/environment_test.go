package lox

import (
	"errors"
	"testing"
)

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("a", 1.0)

	got, err := env.Get(NewToken(IDENTIFIER, "a", nil, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("got %v, want 1", got)
	}

	_, err = env.Get(NewToken(IDENTIFIER, "b", nil, 1))
	var rerr *RuntimeError
	if !errors.As(err, &rerr) {
		t.Fatalf("error is %T, want *RuntimeError", err)
	}
}

func TestEnvironmentChainLookup(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", "outer")
	inner := NewEnvironment(outer)

	got, err := inner.Get(NewToken(IDENTIFIER, "a", nil, 1))
	if err != nil || got != "outer" {
		t.Fatalf("got %v, %v", got, err)
	}

	inner.Define("a", "inner")
	got, _ = inner.Get(NewToken(IDENTIFIER, "a", nil, 1))
	if got != "inner" {
		t.Errorf("shadowing failed: got %v", got)
	}
	// the outer binding is untouched.
	got, _ = outer.Get(NewToken(IDENTIFIER, "a", nil, 1))
	if got != "outer" {
		t.Errorf("outer binding clobbered: got %v", got)
	}
}

func TestEnvironmentAssignWalksChain(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("a", 1.0)
	inner := NewEnvironment(outer)

	if err := inner.Assign(NewToken(IDENTIFIER, "a", nil, 1), 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := outer.Get(NewToken(IDENTIFIER, "a", nil, 1))
	if got != 2.0 {
		t.Errorf("assignment did not reach the declaring scope: %v", got)
	}

	if err := inner.Assign(NewToken(IDENTIFIER, "nope", nil, 1), 1.0); err == nil {
		t.Error("assigning an undefined name must fail")
	}
}

func TestEnvironmentDistanceAccess(t *testing.T) {
	g := NewEnvironment(nil)
	g.Define("x", "global")
	mid := NewEnvironment(g)
	mid.Define("x", "mid")
	leaf := NewEnvironment(mid)

	if got := leaf.GetAt(1, "x"); got != "mid" {
		t.Errorf("GetAt(1) got %v", got)
	}
	if got := leaf.GetAt(2, "x"); got != "global" {
		t.Errorf("GetAt(2) got %v", got)
	}

	leaf.AssignAt(2, NewToken(IDENTIFIER, "x", nil, 1), "patched")
	if got := g.GetAt(0, "x"); got != "patched" {
		t.Errorf("AssignAt(2) got %v", got)
	}
	if got := mid.GetAt(0, "x"); got != "mid" {
		t.Errorf("AssignAt touched the wrong scope: %v", got)
	}
}

// Two closures over the same Environment observe each other's writes; the
// scope outlives the block that created it.
func TestSharedEnvironmentBetweenClosures(t *testing.T) {
	shared := NewEnvironment(nil)
	shared.Define("n", 0.0)

	bump := func() float64 {
		v := shared.GetAt(0, "n").(float64) + 1
		shared.AssignAt(0, NewToken(IDENTIFIER, "n", nil, 1), v)
		return v
	}
	read := func() float64 {
		return shared.GetAt(0, "n").(float64)
	}

	bump()
	bump()
	if got := read(); got != 2.0 {
		t.Errorf("shared scope got %v, want 2", got)
	}
}
