package lox

// LoxCallable is the one call-site contract over everything invocable: the
// native clock, user functions and classes. The set is closed by the
// language design.
type LoxCallable interface {
	Arity() int
	Call(interpreter *Interpreter, arguments []any) (any, error)
}
