package lox

func NewLoxInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{class: class, fields: map[string]any{}}
}

// LoxInstance holds per-object state. Fields are created lazily by Set
// expressions or by init.
type LoxInstance struct {
	class  *LoxClass
	fields map[string]any
}

// Get reads a property: fields first, then methods bound to this instance.
// Fields shadow methods.
func (this *LoxInstance) Get(name *Token) (any, error) {
	if value, ok := this.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := this.class.findMethod(name.Lexeme); method != nil {
		return method.Bind(this), nil
	}
	return nil, NewRuntimeError(name, "Undefined property '"+name.Lexeme+"'.")
}

// Set writes straight into the field map, no validation against method names.
func (this *LoxInstance) Set(name *Token, value any) {
	this.fields[name.Lexeme] = value
}

func (this LoxInstance) String() string {
	return this.class.name + " instance"
}
