package lox

import "fmt"

// scope maps a name to its state in the resolver:
// false - declared but not yet defined (initializer still being resolved)
// true  - fully defined
type scope map[string]bool

func NewScopeStack() *ScopeStack {
	return &ScopeStack{top: -1}
}

// ScopeStack is the resolver's stack of nested lexical scopes. Index 0 is the
// outermost tracked scope; globals are deliberately not on the stack.
type ScopeStack struct {
	top  int
	elem []scope
}

func (s *ScopeStack) Get(index int) scope {
	if index < 0 || index > s.top {
		return nil
	}
	return s.elem[index]
}

func (s *ScopeStack) Size() int {
	return s.top + 1
}

func (s *ScopeStack) IsEmpty() bool {
	return s.top < 0
}

func (s *ScopeStack) Top() scope {
	return s.elem[s.top]
}

func (s *ScopeStack) Push() {
	s.top++
	if s.top >= len(s.elem) {
		s.elem = append(s.elem, scope{})
		return
	}
	s.elem[s.top] = scope{}
}

func (s *ScopeStack) Pop() {
	if s.top < 0 {
		return
	}
	s.elem[s.top] = nil
	s.top--
}

func (s ScopeStack) String() string {
	return fmt.Sprintf("stack info: <top,%d>, <size,%d>, <elems, %v >",
		s.top, s.Size(), s.elem[:s.Size()])
}
