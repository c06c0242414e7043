package lox

import "testing"

func TestAstPrinterExpr(t *testing.T) {
	expression := NewBinary(
		NewUnary(
			NewToken(MINUS, "-", nil, 1),
			NewLiteral(123.0)),
		NewToken(STAR, "*", nil, 1),
		NewGrouping(NewLiteral(45.67)))

	got := (&AstPrinter{}).PrintExpr(expression)
	want := "(* (- 123) (group 45.67))"
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

// String literals render verbatim; a trailing space in the literal sits next
// to the separator the printer adds.
func TestAstPrinterKeepsLiteralSpacing(t *testing.T) {
	expression := NewBinary(
		NewLiteral("hi "),
		NewToken(PLUS, "+", nil, 1),
		NewVariable(NewToken(IDENTIFIER, "name", nil, 1)))

	got := (&AstPrinter{}).PrintExpr(expression)
	want := "(+ hi  name)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAstPrinterStmt(t *testing.T) {
	statements := mustParse(t, `
class Greeter {
  greet(name) {
    if (name == nil) return "hi";
    return "hi" + name;
  }
}`)
	got := (&AstPrinter{}).PrintStmt(statements[0])
	want := `(class Greeter (fun greet(name) (if (== name nil) (return hi)) (return (+ hi name))))`
	if got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
