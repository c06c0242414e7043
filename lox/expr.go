package lox

// Expr is one node of an expression tree. Nodes are allocated once by the
// parser and addressed by pointer afterwards; the resolver's binding table is
// keyed by that pointer, so two syntactically identical nodes at different
// source positions resolve independently.
type Expr interface {
	accept(visitor VisitorExpr) (any, error)
}

type VisitorExpr interface {
	visitAssignExpr(expr *Assign) (any, error)
	visitBinaryExpr(expr *Binary) (any, error)
	visitCallExpr(expr *Call) (any, error)
	visitGetExpr(expr *Get) (any, error)
	visitGroupingExpr(expr *Grouping) (any, error)
	visitLiteralExpr(expr *Literal) (any, error)
	visitLogicalExpr(expr *Logical) (any, error)
	visitSetExpr(expr *Set) (any, error)
	visitSuperExpr(expr *Super) (any, error)
	visitThisExpr(expr *This) (any, error)
	visitUnaryExpr(expr *Unary) (any, error)
	visitVariableExpr(expr *Variable) (any, error)
}

func NewAssign(name *Token, value Expr) *Assign {
	return &Assign{
		name:  name,
		value: value,
	}
}

type Assign struct {
	name  *Token
	value Expr
}

func (this *Assign) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitAssignExpr(this)
}

func NewBinary(left Expr, operator *Token, right Expr) *Binary {
	return &Binary{
		left:     left,
		operator: operator,
		right:    right,
	}
}

type Binary struct {
	left     Expr
	operator *Token
	right    Expr
}

func (this *Binary) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitBinaryExpr(this)
}

func NewCall(callee Expr, paren *Token, arguments []Expr) *Call {
	return &Call{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

type Call struct {
	callee    Expr
	paren     *Token
	arguments []Expr
}

func (this *Call) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitCallExpr(this)
}

func NewGet(object Expr, name *Token) *Get {
	return &Get{
		object: object,
		name:   name,
	}
}

type Get struct {
	object Expr
	name   *Token
}

func (this *Get) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitGetExpr(this)
}

func NewGrouping(expression Expr) *Grouping {
	return &Grouping{
		expression: expression,
	}
}

type Grouping struct {
	expression Expr
}

func (this *Grouping) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitGroupingExpr(this)
}

func NewLiteral(value any) *Literal {
	return &Literal{
		value: value,
	}
}

type Literal struct {
	value any
}

func (this *Literal) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitLiteralExpr(this)
}

func NewLogical(left Expr, operator *Token, right Expr) *Logical {
	return &Logical{
		left:     left,
		operator: operator,
		right:    right,
	}
}

type Logical struct {
	left     Expr
	operator *Token
	right    Expr
}

func (this *Logical) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitLogicalExpr(this)
}

func NewSet(object Expr, name *Token, value Expr) *Set {
	return &Set{
		object: object,
		name:   name,
		value:  value,
	}
}

type Set struct {
	object Expr
	name   *Token
	value  Expr
}

func (this *Set) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitSetExpr(this)
}

func NewSuper(keyword *Token, method *Token) *Super {
	return &Super{
		keyword: keyword,
		method:  method,
	}
}

type Super struct {
	keyword *Token
	method  *Token
}

func (this *Super) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitSuperExpr(this)
}

func NewThis(keyword *Token) *This {
	return &This{
		keyword: keyword,
	}
}

type This struct {
	keyword *Token
}

func (this *This) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitThisExpr(this)
}

func NewUnary(operator *Token, right Expr) *Unary {
	return &Unary{
		operator: operator,
		right:    right,
	}
}

type Unary struct {
	operator *Token
	right    Expr
}

func (this *Unary) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitUnaryExpr(this)
}

func NewVariable(name *Token) *Variable {
	return &Variable{
		name: name,
	}
}

type Variable struct {
	name *Token
}

func (this *Variable) accept(visitor VisitorExpr) (any, error) {
	return visitor.visitVariableExpr(this)
}
