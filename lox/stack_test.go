package lox

import "testing"

func TestScopeStack(t *testing.T) {
	s := NewScopeStack()
	if !s.IsEmpty() || s.Size() != 0 {
		t.Fatalf("fresh stack not empty: %v", s)
	}

	s.Push()
	s.Top()["a"] = false
	s.Push()
	s.Top()["b"] = true

	if s.Size() != 2 {
		t.Fatalf("size got %d, want 2", s.Size())
	}
	if _, ok := s.Get(0)["a"]; !ok {
		t.Error("outer scope lost its binding")
	}
	if defined := s.Top()["b"]; !defined {
		t.Error("top scope binding wrong")
	}
	if s.Get(5) != nil || s.Get(-1) != nil {
		t.Error("out-of-range access must return nil")
	}

	s.Pop()
	if s.Size() != 1 {
		t.Fatalf("size after pop got %d, want 1", s.Size())
	}
	if _, ok := s.Top()["b"]; ok {
		t.Error("popped scope still visible")
	}

	// a reused slot starts out empty.
	s.Push()
	if len(s.Top()) != 0 {
		t.Errorf("reused scope not empty: %v", s.Top())
	}

	s.Pop()
	s.Pop()
	s.Pop() // popping an empty stack is a no-op
	if !s.IsEmpty() {
		t.Errorf("stack not empty after draining: %v", s)
	}
}
