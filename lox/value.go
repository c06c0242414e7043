package lox

import (
	"fmt"
	"strconv"
)

// Runtime values are Go values with a fixed set of shapes:
//
//	nil          Nil
//	bool         Boolean
//	float64      Number
//	string       String
//	LoxCallable  functions, classes, natives
//	*LoxInstance instances
//
// Stringify renders a value the way print and the REPL display it.
func Stringify(value any) string {
	if value == nil {
		return "Nil"
	}
	switch v := value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return formatNumber(v)
	case string:
		return v
	}
	// callables and instances carry their own Stringer.
	return fmt.Sprintf("%v", value)
}

// formatNumber prints the shortest decimal text, so integral values lose the
// trailing ".0" and scanning a literal round-trips to the same text.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
