package lox

import (
	"fmt"
	"io"
	"os"
)

// Lox ties the pipeline together: scan, parse, resolve, interpret. One value
// owns one long-lived Interpreter, so a REPL session keeps its global
// environment across successive inputs. There is no package-level state.
type Lox struct {
	interpreter *Interpreter
	errout      io.Writer
}

func New() *Lox {
	return &Lox{
		interpreter: NewInterpreter(),
		errout:      os.Stderr,
	}
}

// SetOutput redirects program output (print).
func (this *Lox) SetOutput(w io.Writer) {
	this.interpreter.SetOutput(w)
}

// SetErrorOutput redirects all diagnostics.
func (this *Lox) SetErrorOutput(w io.Writer) {
	this.errout = w
	this.interpreter.SetErrorOutput(w)
}

// Interpreter exposes the underlying interpreter for embedders.
func (this *Lox) Interpreter() *Interpreter {
	return this.interpreter
}

// RunFile reads a script and runs it.
func (this *Lox) RunFile(path string) error {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read script %s: %w", path, err)
	}
	return this.Run(string(bytes))
}

// Run executes one chunk of source. All diagnostics are printed to the error
// output; the returned error is the first one, so callers can tell runtime
// errors (*RuntimeError) from static ones when mapping exit codes. Scanning
// and parsing report every error they find, resolution stops at its first,
// and interpretation skips only the failing top-level statement.
func (this *Lox) Run(source string) error {
	tokens, scanErrs := NewScanner(source).ScanTokens()
	if len(scanErrs) > 0 {
		for _, e := range scanErrs {
			fmt.Fprintln(this.errout, e.Error())
		}
		return scanErrs[0]
	}

	statements, parseErrs := NewParser(tokens).Parse()
	if len(parseErrs) > 0 {
		for _, e := range parseErrs {
			fmt.Fprintln(this.errout, e.Error())
		}
		return parseErrs[0]
	}

	if err := NewResolver(this.interpreter).Resolve(statements); err != nil {
		fmt.Fprintln(this.errout, err.Error())
		return err
	}

	return this.interpreter.Interpret(statements)
}
