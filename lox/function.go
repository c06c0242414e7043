package lox

func NewLoxFunction(decl *Function, closure *Environment, isInitializer bool) *LoxFunction {
	return &LoxFunction{declaration: decl, closure: closure, isInitializer: isInitializer}
}

// LoxFunction is a user function or method: a declaration paired with the
// Environment that was current at its definition site.
type LoxFunction struct {
	declaration   *Function
	closure       *Environment // environment at the definition site
	isInitializer bool
}

// Bind specializes a method to an instance: a fresh scope between the method
// body and its closure carries `this`, so the same declaration yields a
// different `this` per instance.
func (this *LoxFunction) Bind(instance *LoxInstance) *LoxFunction {
	environment := NewEnvironment(this.closure)
	environment.Define("this", instance)
	return NewLoxFunction(this.declaration, environment, this.isInitializer)
}

func (this *LoxFunction) Arity() int {
	return len(this.declaration.params)
}

// Call binds the arguments positionally in a child of the closure and runs
// the body there. Falling off the end yields Nil; an initializer always
// yields the instance no matter how the body exits.
func (this *LoxFunction) Call(interpreter *Interpreter, arguments []any) (any, error) {
	env := NewEnvironment(this.closure)
	for i := 0; i < len(this.declaration.params); i++ {
		env.Define(this.declaration.params[i].Lexeme, arguments[i])
	}

	c, err := interpreter.executeBlock(this.declaration.body, env)
	if err != nil {
		return nil, err
	}
	if this.isInitializer {
		return this.closure.GetAt(0, "this"), nil
	}
	if c.returned {
		return c.value, nil
	}
	return nil, nil
}

func (this LoxFunction) String() string {
	return "<fn " + this.declaration.name.Lexeme + ">"
}
