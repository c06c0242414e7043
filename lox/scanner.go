package lox

import (
	"strconv"
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

type Scanner struct {
	source  string
	tokens  []*Token
	errs    []*ScanError
	start   int
	current int
	line    int
}

// NewScanner return an pointer that points to scanner object
func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// ScanTokens adding tokens until it runs out of characters. Lexical errors
// never abort the scan; they are collected so one run reports all of them.
func (this *Scanner) ScanTokens() ([]*Token, []*ScanError) {
	for !this.isAtEnd() {
		// we are at the beginning of the next lexeme.
		this.start = this.current
		this.scanToken()
	}
	this.tokens = append(this.tokens, NewToken(EOF, "", nil, this.line))
	return this.tokens, this.errs
}

func (this *Scanner) isAtEnd() bool {
	return this.current >= len(this.source)
}

func (this *Scanner) scanToken() {
	c := this.advance()

	ifExp := func(e bool, a, b TokenType) TokenType {
		if e {
			return a
		}
		return b
	}
	switch c {
	case '(':
		this.addToken(LEFT_PAREN)
	case ')':
		this.addToken(RIGHT_PAREN)
	case '{':
		this.addToken(LEFT_BRACE)
	case '}':
		this.addToken(RIGHT_BRACE)
	case ',':
		this.addToken(COMMA)
	case '.':
		this.addToken(DOT)
	case '-':
		this.addToken(MINUS)
	case '+':
		this.addToken(PLUS)
	case ';':
		this.addToken(SEMICOLON)
	case '*':
		this.addToken(STAR)
	case '!':
		this.addToken(ifExp(this.match('='), BANG_EQUAL, BANG))
	case '=':
		this.addToken(ifExp(this.match('='), EQUAL_EQUAL, EQUAL))
	case '<':
		this.addToken(ifExp(this.match('='), LESS_EQUAL, LESS))
	case '>':
		this.addToken(ifExp(this.match('='), GREATER_EQUAL, GREATER))
	case '/':
		if this.match('/') {
			// a comment goes until the end of the line and is discarded.
			for this.peek() != '\n' && !this.isAtEnd() {
				this.advance()
			}
		} else {
			this.addToken(SLASH)
		}
	case ' ', '\r', '\t':
	case '\n':
		this.line++
	case '"':
		this.string()
	default:
		if this.isDigit(c) {
			this.number()
		} else if this.isAlpha(c) {
			this.identifier()
		} else {
			this.error("Unexpected character '" + string(c) + "'.")
		}
	}
}

func (this *Scanner) error(message string) {
	this.errs = append(this.errs, NewScanError(this.line, message))
}

func (this *Scanner) advance() byte {
	c := this.source[this.current]
	this.current++
	return c
}

func (this *Scanner) addToken(typ TokenType) {
	this.addTokenWithLiteral(typ, nil)
}

func (this *Scanner) addTokenWithLiteral(typ TokenType, literal any) {
	text := this.source[this.start:this.current]
	this.tokens = append(this.tokens, NewToken(typ, text, literal, this.line))
}

func (this *Scanner) match(expected byte) bool {
	if this.isAtEnd() {
		return false
	}
	if this.source[this.current] != expected {
		return false
	}
	this.current++
	return true
}

func (this *Scanner) peek() byte {
	if this.isAtEnd() {
		return '\x00'
	}
	return this.source[this.current]
}

func (this *Scanner) peekNext() byte {
	if this.current+1 >= len(this.source) {
		return '\x00'
	}
	return this.source[this.current+1]
}

// string scans a string literal. Strings may span multiple lines; the line
// counter keeps ticking inside them.
func (this *Scanner) string() {
	for this.peek() != '"' && !this.isAtEnd() {
		if this.peek() == '\n' {
			this.line++
		}
		this.advance()
	}
	if this.isAtEnd() {
		this.error("Unterminated string.")
		return
	}
	// The closing ".
	this.advance()

	// Trim the surrounding quotes.
	value := this.source[this.start+1 : this.current-1]
	this.addTokenWithLiteral(STRING, value)
}

func (this *Scanner) isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// number scans an integer or decimal literal. No exponent or hex forms.
func (this *Scanner) number() {
	for this.isDigit(this.peek()) {
		this.advance()
	}

	// look for a fractional part
	if this.peek() == '.' && this.isDigit(this.peekNext()) {
		// consume the "."
		this.advance()

		for this.isDigit(this.peek()) {
			this.advance()
		}
	}

	value, _ := strconv.ParseFloat(this.source[this.start:this.current], 64)
	this.addTokenWithLiteral(NUMBER, value)
}

func (this *Scanner) isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func (this *Scanner) isAlphaNumeric(c byte) bool {
	return this.isAlpha(c) || this.isDigit(c)
}

func (this *Scanner) identifier() {
	for this.isAlphaNumeric(this.peek()) {
		this.advance()
	}
	text := this.source[this.start:this.current]
	typ, ok := keywords[text]
	if !ok {
		typ = IDENTIFIER
	}
	this.addToken(typ)
}
