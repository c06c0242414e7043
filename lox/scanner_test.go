package lox

import (
	"strings"
	"testing"
)

func scanAll(t *testing.T, source string) ([]*Token, []*ScanError) {
	t.Helper()
	return NewScanner(source).ScanTokens()
}

func TestScanTokenTypes(t *testing.T) {
	tokens, errs := scanAll(t, `var language = "lox"; // set it up
if (1 <= 2.5) { print !true; }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}

	want := []TokenType{
		VAR, IDENTIFIER, EQUAL, STRING, SEMICOLON,
		IF, LEFT_PAREN, NUMBER, LESS_EQUAL, NUMBER, RIGHT_PAREN,
		LEFT_BRACE, PRINT, BANG, TRUE, SEMICOLON, RIGHT_BRACE,
		EOF,
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, ty := range want {
		if tokens[i].Type != ty {
			t.Errorf("token %d: got %v, want %v", i, tokens[i].Type, ty)
		}
	}
}

// Scanning a numeric literal and formatting the parsed value must round-trip
// to the same text.
func TestNumberLexemeRoundTrip(t *testing.T) {
	for _, lexeme := range []string{"0", "1", "42", "123", "1.5", "0.25", "987654.125", "1000000"} {
		tokens, errs := scanAll(t, lexeme)
		if len(errs) != 0 {
			t.Fatalf("%s: unexpected scan errors: %v", lexeme, errs)
		}
		tok := tokens[0]
		if tok.Type != NUMBER {
			t.Fatalf("%s: got token type %v", lexeme, tok.Type)
		}
		if tok.Lexeme != lexeme {
			t.Errorf("%s: lexeme got %q", lexeme, tok.Lexeme)
		}
		if got := formatNumber(tok.Literal.(float64)); got != lexeme {
			t.Errorf("%s: formatted value got %q", lexeme, got)
		}
	}
}

func TestScannerCollectsAllErrors(t *testing.T) {
	tokens, errs := scanAll(t, "@ var x = 1; #\n^")
	if len(errs) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(errs), errs)
	}
	if errs[0].Line != 1 || errs[2].Line != 2 {
		t.Errorf("error lines got %d and %d, want 1 and 2", errs[0].Line, errs[2].Line)
	}
	// scanning continued past the bad characters.
	if tokens[0].Type != VAR || tokens[len(tokens)-1].Type != EOF {
		t.Errorf("scan did not continue after errors: %v", tokens)
	}
	if !strings.Contains(errs[0].Error(), "[line 1] Error: Unexpected character") {
		t.Errorf("unexpected diagnostic: %q", errs[0].Error())
	}
}

func TestUnterminatedString(t *testing.T) {
	_, errs := scanAll(t, `"still open`)
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if !strings.Contains(errs[0].Error(), "Unterminated string.") {
		t.Errorf("unexpected diagnostic: %q", errs[0].Error())
	}
}

func TestMultilineStringCountsLines(t *testing.T) {
	tokens, errs := scanAll(t, "\"a\nb\"\nvar")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != STRING || tokens[0].Literal.(string) != "a\nb" {
		t.Fatalf("string literal got %v", tokens[0])
	}
	// the var keyword sits on line 3: one newline inside the string, one after.
	if tokens[1].Type != VAR || tokens[1].Line != 3 {
		t.Errorf("var token got line %d, want 3", tokens[1].Line)
	}
}

func TestKeywordsVersusIdentifiers(t *testing.T) {
	tokens, errs := scanAll(t, "class classes classy or orchid")
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	want := []TokenType{CLASS, IDENTIFIER, IDENTIFIER, OR, IDENTIFIER, EOF}
	for i, ty := range want {
		if tokens[i].Type != ty {
			t.Errorf("token %d (%q): got %v, want %v", i, tokens[i].Lexeme, tokens[i].Type, ty)
		}
	}
}

func TestCommentsAreDiscarded(t *testing.T) {
	tokens, errs := scanAll(t, "// nothing here @#^\nprint 1;")
	if len(errs) != 0 {
		t.Fatalf("comment content leaked as errors: %v", errs)
	}
	if tokens[0].Type != PRINT {
		t.Errorf("first token got %v, want PRINT", tokens[0].Type)
	}
}
