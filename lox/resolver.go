package lox

type FunctionType int

type ClassType int

const (
	FT_NONE FunctionType = iota
	FT_FUNCTION
	FT_INITIALIZER
	FT_METHOD

	CT_NONE ClassType = iota
	CT_CLASS
	CT_SUBCLASS
)

// binder receives one (node, distance) pair for every reference expression
// the resolver could bind to a local scope. The interpreter implements it.
type binder interface {
	resolve(expr Expr, depth int)
}

func NewResolver(b binder) *Resolver {
	return &Resolver{
		binder:          b,
		scopes:          NewScopeStack(),
		currentFunction: FT_NONE,
		currentClass:    CT_NONE,
	}
}

// Resolver walks the AST in execution order, computing the binding distance
// of every variable reference and rejecting code that breaks the static
// scoping rules. Unlike scanning and parsing it fails fast: everything after
// the first error would rest on unverified scoping.
type Resolver struct {
	binder          binder
	scopes          *ScopeStack
	currentFunction FunctionType
	currentClass    ClassType
}

// Resolve resolves a whole program, stopping at the first error.
func (this *Resolver) Resolve(statements []Stmt) error {
	return this.resolve(statements)
}

func (this *Resolver) resolve(statements []Stmt) error {
	for _, statement := range statements {
		if err := this.resolveStmt(statement); err != nil {
			return err
		}
	}
	return nil
}

func (this *Resolver) resolveStmt(stmt Stmt) error {
	_, err := stmt.accept(this)
	return err
}

func (this *Resolver) resolveExpr(expr Expr) error {
	_, err := expr.accept(this)
	return err
}

func (this *Resolver) beginScope() {
	this.scopes.Push()
}

func (this *Resolver) endScope() {
	this.scopes.Pop()
}

func (this *Resolver) declare(name *Token) error {
	if this.scopes.IsEmpty() {
		return nil
	}
	scope := this.scopes.Top()
	if _, ok := scope[name.Lexeme]; ok {
		return NewResolveError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
	return nil
}

func (this *Resolver) define(name *Token) {
	if this.scopes.IsEmpty() {
		return
	}
	this.scopes.Top()[name.Lexeme] = true
}

// resolveLocal walks the scope stack innermost-out. The first scope holding
// the name wins and its distance is reported to the binder. A miss means the
// name is global and is looked up dynamically at run time.
func (this *Resolver) resolveLocal(expr Expr, name *Token) {
	for i := this.scopes.Size() - 1; i >= 0; i-- {
		if _, ok := this.scopes.Get(i)[name.Lexeme]; ok {
			this.binder.resolve(expr, this.scopes.Size()-1-i)
			return
		}
	}
}

func (this *Resolver) resolveFunction(function *Function, ft FunctionType) error {
	enclosingFunction := this.currentFunction
	this.currentFunction = ft
	defer func() {
		this.currentFunction = enclosingFunction
	}()

	this.beginScope()
	defer this.endScope()

	for _, param := range function.params {
		if err := this.declare(param); err != nil {
			return err
		}
		this.define(param)
	}

	return this.resolve(function.body)
}

func (this *Resolver) visitBlockStmt(stmt *Block) (completion, error) {
	this.beginScope()
	defer this.endScope()
	return completion{}, this.resolve(stmt.statements)
}

// visitVarStmt declares the name before resolving the initializer and only
// defines it afterwards; that ordering is what rejects `var a = a;`.
func (this *Resolver) visitVarStmt(stmt *Var) (completion, error) {
	if err := this.declare(stmt.name); err != nil {
		return completion{}, err
	}
	if stmt.initializer != nil {
		if err := this.resolveExpr(stmt.initializer); err != nil {
			return completion{}, err
		}
	}
	this.define(stmt.name)
	return completion{}, nil
}

func (this *Resolver) visitClassStmt(stmt *Class) (completion, error) {
	enclosingClass := this.currentClass
	this.currentClass = CT_CLASS
	defer func() {
		this.currentClass = enclosingClass
	}()

	if err := this.declare(stmt.name); err != nil {
		return completion{}, err
	}
	this.define(stmt.name)

	if stmt.superclass != nil {
		if stmt.name.Lexeme == stmt.superclass.name.Lexeme {
			return completion{}, NewResolveError(stmt.superclass.name, "A class can't inherit from itself.")
		}
		this.currentClass = CT_SUBCLASS
		if err := this.resolveExpr(stmt.superclass); err != nil {
			return completion{}, err
		}

		// super lives in its own scope just outside the this scope.
		this.beginScope()
		defer this.endScope()
		this.scopes.Top()["super"] = true
	}

	this.beginScope()
	defer this.endScope()
	this.scopes.Top()["this"] = true

	for _, method := range stmt.methods {
		declaration := FT_METHOD
		if method.name.Lexeme == "init" {
			declaration = FT_INITIALIZER
		}
		if err := this.resolveFunction(method, declaration); err != nil {
			return completion{}, err
		}
	}
	return completion{}, nil
}

func (this *Resolver) visitFunctionStmt(stmt *Function) (completion, error) {
	if err := this.declare(stmt.name); err != nil {
		return completion{}, err
	}
	this.define(stmt.name)
	return completion{}, this.resolveFunction(stmt, FT_FUNCTION)
}

func (this *Resolver) visitExpressionStmt(stmt *Expression) (completion, error) {
	return completion{}, this.resolveExpr(stmt.expression)
}

// visitIfStmt resolves both branches, as opposed to interpretation which
// runs at most one of them.
func (this *Resolver) visitIfStmt(stmt *If) (completion, error) {
	if err := this.resolveExpr(stmt.condition); err != nil {
		return completion{}, err
	}
	if err := this.resolveStmt(stmt.thenBranch); err != nil {
		return completion{}, err
	}
	if stmt.elseBranch != nil {
		return completion{}, this.resolveStmt(stmt.elseBranch)
	}
	return completion{}, nil
}

func (this *Resolver) visitPrintStmt(stmt *Print) (completion, error) {
	return completion{}, this.resolveExpr(stmt.expression)
}

func (this *Resolver) visitReturnStmt(stmt *Return) (completion, error) {
	if this.currentFunction == FT_NONE {
		return completion{}, NewResolveError(stmt.keyword, "Can't return from top-level code.")
	}
	if stmt.value != nil {
		if this.currentFunction == FT_INITIALIZER {
			return completion{}, NewResolveError(stmt.keyword, "Can't return a value from an initializer.")
		}
		return completion{}, this.resolveExpr(stmt.value)
	}
	return completion{}, nil
}

func (this *Resolver) visitWhileStmt(stmt *While) (completion, error) {
	if err := this.resolveExpr(stmt.condition); err != nil {
		return completion{}, err
	}
	return completion{}, this.resolveStmt(stmt.body)
}

func (this *Resolver) visitVariableExpr(expr *Variable) (any, error) {
	if !this.scopes.IsEmpty() {
		if defined, ok := this.scopes.Top()[expr.name.Lexeme]; ok && !defined {
			return nil, NewResolveError(expr.name, "Can't read local variable in its own initializer.")
		}
	}
	this.resolveLocal(expr, expr.name)
	return nil, nil
}

func (this *Resolver) visitAssignExpr(expr *Assign) (any, error) {
	if err := this.resolveExpr(expr.value); err != nil {
		return nil, err
	}
	this.resolveLocal(expr, expr.name)
	return nil, nil
}

func (this *Resolver) visitBinaryExpr(expr *Binary) (any, error) {
	if err := this.resolveExpr(expr.left); err != nil {
		return nil, err
	}
	return nil, this.resolveExpr(expr.right)
}

func (this *Resolver) visitCallExpr(expr *Call) (any, error) {
	if err := this.resolveExpr(expr.callee); err != nil {
		return nil, err
	}
	for _, argument := range expr.arguments {
		if err := this.resolveExpr(argument); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (this *Resolver) visitGetExpr(expr *Get) (any, error) {
	// properties are looked up dynamically, only the object resolves.
	return nil, this.resolveExpr(expr.object)
}

func (this *Resolver) visitGroupingExpr(expr *Grouping) (any, error) {
	return nil, this.resolveExpr(expr.expression)
}

func (this *Resolver) visitLiteralExpr(expr *Literal) (any, error) {
	return nil, nil
}

func (this *Resolver) visitLogicalExpr(expr *Logical) (any, error) {
	if err := this.resolveExpr(expr.left); err != nil {
		return nil, err
	}
	return nil, this.resolveExpr(expr.right)
}

func (this *Resolver) visitSetExpr(expr *Set) (any, error) {
	if err := this.resolveExpr(expr.value); err != nil {
		return nil, err
	}
	return nil, this.resolveExpr(expr.object)
}

func (this *Resolver) visitSuperExpr(expr *Super) (any, error) {
	if this.currentClass == CT_NONE {
		return nil, NewResolveError(expr.keyword, "Can't use 'super' outside of a class.")
	} else if this.currentClass != CT_SUBCLASS {
		return nil, NewResolveError(expr.keyword, "Can't use 'super' in a class with no superclass.")
	}
	this.resolveLocal(expr, expr.keyword)
	return nil, nil
}

func (this *Resolver) visitThisExpr(expr *This) (any, error) {
	if this.currentClass == CT_NONE {
		return nil, NewResolveError(expr.keyword, "Can't use 'this' outside of a class.")
	}
	this.resolveLocal(expr, expr.keyword)
	return nil, nil
}

func (this *Resolver) visitUnaryExpr(expr *Unary) (any, error) {
	return nil, this.resolveExpr(expr.right)
}
