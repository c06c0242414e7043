package lox

// Environment is one lexical scope: its name bindings plus a link to the
// enclosing scope. The enclosing pointer is fixed at creation. Closures keep
// their defining Environment alive, so several closures can share one scope
// and observe each other's writes; the garbage collector provides the
// shared-ownership lifetime.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]any)}
}

// Define binds a name in this scope, shadowing any enclosing binding.
func (this *Environment) Define(name string, value any) {
	this.values[name] = value
}

// Get searches the scope chain for name. Only the global environment is ever
// searched this way; resolved locals go through GetAt.
func (this *Environment) Get(name *Token) (any, error) {
	if v, ok := this.values[name.Lexeme]; ok {
		return v, nil
	}
	if this.enclosing != nil {
		return this.enclosing.Get(name)
	}
	return nil, NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// GetAt reads name from the scope exactly distance hops up the chain. The
// resolver guarantees the binding exists there.
func (this *Environment) GetAt(distance int, name string) any {
	return this.ancestor(distance).values[name]
}

func (this *Environment) ancestor(distance int) *Environment {
	environment := this
	for i := 0; i < distance; i++ {
		environment = environment.enclosing
	}
	return environment
}

// Assign updates an existing binding somewhere up the chain.
func (this *Environment) Assign(name *Token, value any) error {
	if _, ok := this.values[name.Lexeme]; ok {
		this.values[name.Lexeme] = value
		return nil
	}
	if this.enclosing != nil {
		return this.enclosing.Assign(name, value)
	}
	return NewRuntimeError(name, "Undefined variable '"+name.Lexeme+"'.")
}

// AssignAt writes name in the scope exactly distance hops up the chain.
func (this *Environment) AssignAt(distance int, name *Token, value any) {
	this.ancestor(distance).values[name.Lexeme] = value
}
