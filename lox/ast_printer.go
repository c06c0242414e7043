package lox

import (
	"bytes"
	"fmt"
)

// AstPrinter renders trees in a lisp-ish prefix form, handy when debugging
// the parser. Expressions go through the visitor; statements don't carry a
// value channel, so they are rendered by a type switch instead.
type AstPrinter struct{}

func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.accept(printer)
	return s.(string)
}

func (printer *AstPrinter) PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *Block:
		bs := bytes.NewBufferString("(block")
		for _, statement := range s.statements {
			bs.WriteString(" " + printer.PrintStmt(statement))
		}
		bs.WriteString(")")
		return bs.String()
	case *Class:
		bs := bytes.NewBufferString("(class " + s.name.Lexeme)
		if s.superclass != nil {
			bs.WriteString(" < " + printer.PrintExpr(s.superclass))
		}
		for _, method := range s.methods {
			bs.WriteString(" " + printer.PrintStmt(method))
		}
		bs.WriteString(")")
		return bs.String()
	case *Expression:
		return printer.parenthesize(";", s.expression)
	case *Function:
		bs := bytes.NewBufferString("(fun " + s.name.Lexeme + "(")
		for i, param := range s.params {
			if i > 0 {
				bs.WriteString(" ")
			}
			bs.WriteString(param.Lexeme)
		}
		bs.WriteString(")")
		for _, body := range s.body {
			bs.WriteString(" " + printer.PrintStmt(body))
		}
		bs.WriteString(")")
		return bs.String()
	case *If:
		if s.elseBranch == nil {
			return "(if " + printer.PrintExpr(s.condition) + " " + printer.PrintStmt(s.thenBranch) + ")"
		}
		return "(if-else " + printer.PrintExpr(s.condition) + " " +
			printer.PrintStmt(s.thenBranch) + " " + printer.PrintStmt(s.elseBranch) + ")"
	case *Print:
		return printer.parenthesize("print", s.expression)
	case *Return:
		if s.value == nil {
			return "(return)"
		}
		return printer.parenthesize("return", s.value)
	case *Var:
		if s.initializer == nil {
			return "(var " + s.name.Lexeme + ")"
		}
		return "(var " + s.name.Lexeme + " = " + printer.PrintExpr(s.initializer) + ")"
	case *While:
		return "(while " + printer.PrintExpr(s.condition) + " " + printer.PrintStmt(s.body) + ")"
	}
	return fmt.Sprintf("%v", stmt)
}

func (printer *AstPrinter) visitAssignExpr(expr *Assign) (any, error) {
	return printer.parenthesize("= "+expr.name.Lexeme, expr.value), nil
}

func (printer *AstPrinter) visitBinaryExpr(expr *Binary) (any, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right), nil
}

func (printer *AstPrinter) visitCallExpr(expr *Call) (any, error) {
	return printer.parenthesize("call", append([]Expr{expr.callee}, expr.arguments...)...), nil
}

func (printer *AstPrinter) visitGetExpr(expr *Get) (any, error) {
	return printer.parenthesize("."+expr.name.Lexeme, expr.object), nil
}

func (printer *AstPrinter) visitGroupingExpr(expr *Grouping) (any, error) {
	return printer.parenthesize("group", expr.expression), nil
}

func (printer *AstPrinter) visitLiteralExpr(expr *Literal) (any, error) {
	if expr.value == nil {
		return "nil", nil
	}
	return fmt.Sprintf("%v", expr.value), nil
}

func (printer *AstPrinter) visitLogicalExpr(expr *Logical) (any, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.left, expr.right), nil
}

func (printer *AstPrinter) visitSetExpr(expr *Set) (any, error) {
	return printer.parenthesize("= ."+expr.name.Lexeme, expr.object, expr.value), nil
}

func (printer *AstPrinter) visitSuperExpr(expr *Super) (any, error) {
	return "(super " + expr.method.Lexeme + ")", nil
}

func (printer *AstPrinter) visitThisExpr(expr *This) (any, error) {
	return "this", nil
}

func (printer *AstPrinter) visitUnaryExpr(expr *Unary) (any, error) {
	return printer.parenthesize(expr.operator.Lexeme, expr.right), nil
}

func (printer *AstPrinter) visitVariableExpr(expr *Variable) (any, error) {
	return expr.name.Lexeme, nil
}

func (printer *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	bs := bytes.NewBufferString("")
	bs.WriteString("(" + name)
	for _, expr := range exprs {
		bs.WriteString(" ")
		bs.WriteString(printer.PrintExpr(expr))
	}
	bs.WriteString(")")
	return bs.String()
}
