package lox

// completion is the outcome of executing a statement: normal fall-through, or
// an early return unwinding towards the nearest call boundary. Keeping it
// separate from the error value means control transfer never rides the error
// channel.
type completion struct {
	returned bool
	value    any
}

func returnedWith(value any) completion {
	return completion{returned: true, value: value}
}

type Stmt interface {
	accept(visitor VisitorStmt) (completion, error)
}

type VisitorStmt interface {
	visitBlockStmt(stmt *Block) (completion, error)
	visitClassStmt(stmt *Class) (completion, error)
	visitExpressionStmt(stmt *Expression) (completion, error)
	visitFunctionStmt(stmt *Function) (completion, error)
	visitIfStmt(stmt *If) (completion, error)
	visitPrintStmt(stmt *Print) (completion, error)
	visitReturnStmt(stmt *Return) (completion, error)
	visitVarStmt(stmt *Var) (completion, error)
	visitWhileStmt(stmt *While) (completion, error)
}

func NewBlock(statements []Stmt) *Block {
	return &Block{
		statements: statements,
	}
}

type Block struct {
	statements []Stmt
}

func (this *Block) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitBlockStmt(this)
}

func NewClass(name *Token, superclass *Variable, methods []*Function) *Class {
	return &Class{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

type Class struct {
	name       *Token
	superclass *Variable
	methods    []*Function
}

func (this *Class) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitClassStmt(this)
}

func NewExpression(expression Expr) *Expression {
	return &Expression{
		expression: expression,
	}
}

type Expression struct {
	expression Expr
}

func (this *Expression) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitExpressionStmt(this)
}

func NewFunction(name *Token, params []*Token, body []Stmt) *Function {
	return &Function{
		name:   name,
		params: params,
		body:   body,
	}
}

// Function is the shared declaration shape for named functions and methods.
type Function struct {
	name   *Token
	params []*Token
	body   []Stmt
}

func (this *Function) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitFunctionStmt(this)
}

func NewIf(condition Expr, thenBranch Stmt, elseBranch Stmt) *If {
	return &If{
		condition:  condition,
		thenBranch: thenBranch,
		elseBranch: elseBranch,
	}
}

type If struct {
	condition  Expr
	thenBranch Stmt
	elseBranch Stmt
}

func (this *If) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitIfStmt(this)
}

func NewPrint(expression Expr) *Print {
	return &Print{
		expression: expression,
	}
}

type Print struct {
	expression Expr
}

func (this *Print) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitPrintStmt(this)
}

func NewReturn(keyword *Token, value Expr) *Return {
	return &Return{
		keyword: keyword,
		value:   value,
	}
}

type Return struct {
	keyword *Token
	value   Expr
}

func (this *Return) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitReturnStmt(this)
}

func NewVar(name *Token, initializer Expr) *Var {
	return &Var{
		name:        name,
		initializer: initializer,
	}
}

type Var struct {
	name        *Token
	initializer Expr
}

func (this *Var) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitVarStmt(this)
}

func NewWhile(condition Expr, body Stmt) *While {
	return &While{
		condition: condition,
		body:      body,
	}
}

type While struct {
	condition Expr
	body      Stmt
}

func (this *While) accept(visitor VisitorStmt) (completion, error) {
	return visitor.visitWhileStmt(this)
}
