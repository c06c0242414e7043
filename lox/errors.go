package lox

import "strconv"

// All user-visible diagnostics share one shape:
//
//	[line N] Error<POS>: MESSAGE
//
// where POS is " at end" for the EOF token, " at 'LEXEME'" for any other
// token, and empty for errors that are not anchored to a token.

func report(line int, where string, message string) string {
	return "[line " + strconv.Itoa(line) + "] Error" + where + ": " + message
}

func reportToken(token *Token, message string) string {
	if token.Type == EOF {
		return report(token.Line, " at end", message)
	}
	return report(token.Line, " at '"+token.Lexeme+"'", message)
}

// ScanError 词法错误类型
type ScanError struct {
	Line    int
	Message string
}

func NewScanError(line int, message string) *ScanError {
	return &ScanError{Line: line, Message: message}
}

func (se *ScanError) Error() string {
	return report(se.Line, "", se.Message)
}

// ParseError 语法解析错误类型
type ParseError struct {
	Token   *Token
	Message string
}

func NewParseError(token *Token, message string) *ParseError {
	return &ParseError{Token: token, Message: message}
}

func (pe *ParseError) Error() string {
	return reportToken(pe.Token, pe.Message)
}

// ResolveError 静态分析错误类型
type ResolveError struct {
	Token   *Token
	Message string
}

func NewResolveError(token *Token, message string) *ResolveError {
	return &ResolveError{Token: token, Message: message}
}

func (re *ResolveError) Error() string {
	return reportToken(re.Token, re.Message)
}

// RuntimeError 运行时错误类型
type RuntimeError struct {
	Token   *Token
	Message string
}

func NewRuntimeError(token *Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (re *RuntimeError) Error() string {
	if re.Token == nil {
		return "Error: " + re.Message
	}
	return report(re.Token.Line, "", re.Message)
}
