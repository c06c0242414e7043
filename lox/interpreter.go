package lox

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

// Interpreter is the tree-walking evaluator. It owns the global Environment
// and the binding-distance table filled in by the resolver; resolved
// references jump straight to their scope instead of searching by name.
type Interpreter struct {
	globals     *Environment
	environment *Environment
	locals      map[Expr]int
	stdout      io.Writer
	errout      io.Writer
}

func NewInterpreter() *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", NewClock(systemClock))

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      map[Expr]int{},
		stdout:      os.Stdout,
		errout:      os.Stderr,
	}
}

// SetOutput redirects print output.
func (this *Interpreter) SetOutput(w io.Writer) {
	this.stdout = w
}

// SetErrorOutput redirects runtime error reports.
func (this *Interpreter) SetErrorOutput(w io.Writer) {
	this.errout = w
}

// SetClock replaces the time source behind the clock native.
func (this *Interpreter) SetClock(now func() (int64, error)) {
	this.globals.Define("clock", NewClock(now))
}

// Interpret executes top-level statements for their side effects. A runtime
// error aborts only the statement it occurred in; execution resumes with the
// next one, which keeps a REPL session alive. The first error is returned so
// callers can map it to an exit status.
func (this *Interpreter) Interpret(statements []Stmt) error {
	var first error
	for _, statement := range statements {
		if _, err := this.execute(statement); err != nil {
			fmt.Fprintln(this.errout, err.Error())
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// execute
func (this *Interpreter) execute(stmt Stmt) (completion, error) {
	return stmt.accept(this)
}

// resolve is the binder half of the resolver contract: it records the
// binding distance for one reference node, keyed by node identity.
func (this *Interpreter) resolve(expr Expr, depth int) {
	this.locals[expr] = depth
}

// executeBlock runs statements against env and always restores the previous
// environment, whether the block completes, returns or fails.
func (this *Interpreter) executeBlock(statements []Stmt, env *Environment) (completion, error) {
	previous := this.environment
	defer func() {
		this.environment = previous
	}()
	this.environment = env
	for _, statement := range statements {
		c, err := this.execute(statement)
		if err != nil {
			return completion{}, err
		}
		if c.returned {
			return c, nil
		}
	}
	return completion{}, nil
}

// visitBlockStmt
func (this *Interpreter) visitBlockStmt(stmt *Block) (completion, error) {
	return this.executeBlock(stmt.statements, NewEnvironment(this.environment))
}

// visitClassStmt evaluates a class declaration. The name is bound first so
// methods can refer to the class recursively; with a superclass, method
// closures nest inside an extra scope that binds super.
func (this *Interpreter) visitClassStmt(stmt *Class) (completion, error) {
	var superclass *LoxClass
	if stmt.superclass != nil {
		value, err := this.evaluate(stmt.superclass)
		if err != nil {
			return completion{}, err
		}
		var ok bool
		superclass, ok = value.(*LoxClass)
		if !ok {
			return completion{}, NewRuntimeError(stmt.superclass.name, "Superclass must be a class.")
		}
	}

	this.environment.Define(stmt.name.Lexeme, nil)
	if superclass != nil {
		this.environment = NewEnvironment(this.environment)
		this.environment.Define("super", superclass)
	}

	methods := map[string]*LoxFunction{}
	for _, method := range stmt.methods {
		function := NewLoxFunction(method, this.environment, method.name.Lexeme == "init")
		methods[method.name.Lexeme] = function
	}

	class := NewLoxClass(stmt.name.Lexeme, superclass, methods)
	if superclass != nil {
		this.environment = this.environment.enclosing
	}

	if err := this.environment.Assign(stmt.name, class); err != nil {
		return completion{}, err
	}
	return completion{}, nil
}

func (this *Interpreter) visitExpressionStmt(stmt *Expression) (completion, error) {
	_, err := this.evaluate(stmt.expression)
	return completion{}, err
}

// visitFunctionStmt captures the current environment as the closure; that is
// what lets nested functions see outer locals defined before the call.
func (this *Interpreter) visitFunctionStmt(stmt *Function) (completion, error) {
	function := NewLoxFunction(stmt, this.environment, false)
	this.environment.Define(stmt.name.Lexeme, function)
	return completion{}, nil
}

func (this *Interpreter) visitIfStmt(stmt *If) (completion, error) {
	cond, err := this.evaluate(stmt.condition)
	if err != nil {
		return completion{}, err
	}
	if this.isTruthy(cond) {
		return this.execute(stmt.thenBranch)
	} else if stmt.elseBranch != nil {
		return this.execute(stmt.elseBranch)
	}
	return completion{}, nil
}

func (this *Interpreter) visitPrintStmt(stmt *Print) (completion, error) {
	value, err := this.evaluate(stmt.expression)
	if err != nil {
		return completion{}, err
	}
	fmt.Fprintln(this.stdout, Stringify(value))
	return completion{}, nil
}

func (this *Interpreter) visitReturnStmt(stmt *Return) (completion, error) {
	var value any
	if stmt.value != nil {
		var err error
		value, err = this.evaluate(stmt.value)
		if err != nil {
			return completion{}, err
		}
	}
	return returnedWith(value), nil
}

func (this *Interpreter) visitVarStmt(stmt *Var) (completion, error) {
	var value any
	if stmt.initializer != nil {
		var err error
		value, err = this.evaluate(stmt.initializer)
		if err != nil {
			return completion{}, err
		}
	}
	this.environment.Define(stmt.name.Lexeme, value)
	return completion{}, nil
}

func (this *Interpreter) visitWhileStmt(stmt *While) (completion, error) {
	for {
		cond, err := this.evaluate(stmt.condition)
		if err != nil {
			return completion{}, err
		}
		if !this.isTruthy(cond) {
			return completion{}, nil
		}
		c, err := this.execute(stmt.body)
		if err != nil {
			return completion{}, err
		}
		if c.returned {
			return c, nil
		}
	}
}

// visitAssignExpr routes the write through the resolved distance, or to the
// globals when the resolver recorded none.
func (this *Interpreter) visitAssignExpr(expr *Assign) (any, error) {
	value, err := this.evaluate(expr.value)
	if err != nil {
		return nil, err
	}

	if distance, ok := this.locals[expr]; ok {
		this.environment.AssignAt(distance, expr.name, value)
	} else if err := this.globals.Assign(expr.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

// visitBinaryExpr
func (this *Interpreter) visitBinaryExpr(expr *Binary) (any, error) {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := this.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.Type {
	case GREATER:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) > right.(float64), nil
	case GREATER_EQUAL:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) >= right.(float64), nil
	case LESS:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) < right.(float64), nil
	case LESS_EQUAL:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) <= right.(float64), nil
	case MINUS:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) - right.(float64), nil
	case SLASH:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) / right.(float64), nil
	case STAR:
		if err := this.checkNumberOperands(expr.operator, left, right); err != nil {
			return nil, err
		}
		return left.(float64) * right.(float64), nil
	case BANG_EQUAL:
		return !this.isEqual(left, right), nil
	case EQUAL_EQUAL:
		return this.isEqual(left, right), nil
	case PLUS:
		// plus is the one overloaded operator, hence its own error wording.
		if v1, ok1 := left.(float64); ok1 {
			if v2, ok2 := right.(float64); ok2 {
				return v1 + v2, nil
			}
		}
		if s1, ok1 := left.(string); ok1 {
			if s2, ok2 := right.(string); ok2 {
				return s1 + s2, nil
			}
		}
		return nil, NewRuntimeError(expr.operator, "Operands must be two numbers or two strings.")
	}
	return nil, nil
}

func (this *Interpreter) visitCallExpr(expr *Call) (any, error) {
	callee, err := this.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	var arguments []any
	for _, argument := range expr.arguments {
		value, err := this.evaluate(argument)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, value)
	}

	function, ok := callee.(LoxCallable)
	if !ok {
		return nil, NewRuntimeError(expr.paren, "Can only call functions and classes.")
	}
	if len(arguments) != function.Arity() {
		return nil, NewRuntimeError(expr.paren, "Expected "+strconv.Itoa(function.Arity())+
			" arguments but got "+strconv.Itoa(len(arguments))+".")
	}
	return function.Call(this, arguments)
}

func (this *Interpreter) visitGetExpr(expr *Get) (any, error) {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	if instance, ok := object.(*LoxInstance); ok {
		return instance.Get(expr.name)
	}
	return nil, NewRuntimeError(expr.name, "Only instances have properties.")
}

// visitGroupingExpr
func (this *Interpreter) visitGroupingExpr(expr *Grouping) (any, error) {
	return this.evaluate(expr.expression)
}

// visitLiteralExpr
func (this *Interpreter) visitLiteralExpr(expr *Literal) (any, error) {
	return expr.value, nil
}

// visitLogicalExpr short-circuits: the right operand only runs when the left
// does not already decide the result.
func (this *Interpreter) visitLogicalExpr(expr *Logical) (any, error) {
	left, err := this.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	if expr.operator.Type == OR {
		if this.isTruthy(left) {
			return left, nil
		}
	} else {
		if !this.isTruthy(left) {
			return left, nil
		}
	}
	return this.evaluate(expr.right)
}

// visitSetExpr
func (this *Interpreter) visitSetExpr(expr *Set) (any, error) {
	object, err := this.evaluate(expr.object)
	if err != nil {
		return nil, err
	}

	instance, ok := object.(*LoxInstance)
	if !ok {
		return nil, NewRuntimeError(expr.name, "Only instances have fields.")
	}
	value, err := this.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	instance.Set(expr.name, value)
	return value, nil
}

// visitSuperExpr looks the method up on the statically-known superclass but
// binds it to the this found one scope closer: the parent implementation
// runs with the derived this.
func (this *Interpreter) visitSuperExpr(expr *Super) (any, error) {
	distance := this.locals[expr]
	superclass, _ := this.environment.GetAt(distance, "super").(*LoxClass)
	object, _ := this.environment.GetAt(distance-1, "this").(*LoxInstance)

	method := superclass.findMethod(expr.method.Lexeme)
	if method == nil {
		return nil, NewRuntimeError(expr.method, "Undefined property '"+expr.method.Lexeme+"'.")
	}
	return method.Bind(object), nil
}

// visitThisExpr
func (this *Interpreter) visitThisExpr(expr *This) (any, error) {
	return this.lookUpVariable(expr.keyword, expr)
}

// visitUnaryExpr
func (this *Interpreter) visitUnaryExpr(expr *Unary) (any, error) {
	right, err := this.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.Type {
	case MINUS:
		if err := this.checkNumberOperand(expr.operator, right); err != nil {
			return nil, err
		}
		return -right.(float64), nil
	case BANG:
		return !this.isTruthy(right), nil
	}
	return nil, nil
}

// visitVariableExpr
func (this *Interpreter) visitVariableExpr(expr *Variable) (any, error) {
	return this.lookUpVariable(expr.name, expr)
}

// lookUpVariable walks exactly the resolved number of parent links; with no
// recorded distance the name is global and searched there directly.
func (this *Interpreter) lookUpVariable(name *Token, expr Expr) (any, error) {
	if distance, ok := this.locals[expr]; ok {
		return this.environment.GetAt(distance, name.Lexeme), nil
	}
	return this.globals.Get(name)
}

func (this *Interpreter) evaluate(expr Expr) (any, error) {
	return expr.accept(this)
}

// isTruthy follows the Ruby rule: only Nil and false are falsy.
func (this *Interpreter) isTruthy(obj any) bool {
	if obj == nil {
		return false
	}
	if v, ok := obj.(bool); ok {
		return v
	}
	return true
}

// isEqual is structural for primitives and identity for instances and
// callables; cross-type pairs are unequal, never an error.
func (this *Interpreter) isEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil {
		return false
	}
	return a == b
}

func (this *Interpreter) checkNumberOperand(operator *Token, operand any) error {
	if _, ok := operand.(float64); ok {
		return nil
	}
	return NewRuntimeError(operator, "Operand must be a number.")
}

func (this *Interpreter) checkNumberOperands(operator *Token, left, right any) error {
	_, ok1 := left.(float64)
	_, ok2 := right.(float64)
	if ok1 && ok2 {
		return nil
	}
	return NewRuntimeError(operator, "Operands must be numbers.")
}
