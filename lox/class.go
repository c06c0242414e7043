package lox

func NewLoxClass(name string, superclass *LoxClass, methods map[string]*LoxFunction) *LoxClass {
	return &LoxClass{name: name, superclass: superclass, methods: methods}
}

// LoxClass is the runtime representation of a class. It is itself callable:
// calling it allocates and initializes an instance.
type LoxClass struct {
	name       string
	methods    map[string]*LoxFunction
	superclass *LoxClass
}

// findMethod looks in this class first, then up the superclass chain:
// most-derived wins.
func (this *LoxClass) findMethod(name string) *LoxFunction {
	if method, ok := this.methods[name]; ok {
		return method
	}
	if this.superclass != nil {
		return this.superclass.findMethod(name)
	}
	return nil
}

func (this *LoxClass) Call(interpreter *Interpreter, arguments []any) (any, error) {
	instance := NewLoxInstance(this)
	if initializer := this.findMethod("init"); initializer != nil {
		if _, err := initializer.Bind(instance).Call(interpreter, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Arity of a class is its initializer's arity, zero without one.
func (this *LoxClass) Arity() int {
	initializer := this.findMethod("init")
	if initializer == nil {
		return 0
	}
	return initializer.Arity()
}

func (this LoxClass) String() string {
	return this.name
}
