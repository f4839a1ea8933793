/*
File   : golox/driver/driver.go
Package: driver
*/

// Package driver wires the lexer, parser, and interpreter into the single
// entry point the command-line frontend and the REPL both call:
// run(source) -> error. Everything below this package is the core
// pipeline; everything above it (argument parsing, stdio plumbing, the
// REPL's line loop) is presentation.
package driver

import (
	"strings"

	"github.com/gomix-lang/golox/interpreter"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/parser"
)

// Error is the aggregated failure report for a Run call: every scan or
// parse error collected in one pass, or the single runtime error that
// stopped execution. Its Error() text is the `Error:\n{detail}` form the
// spec's CLI and REPL both print.
type Error struct {
	Errors []error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("Error:\n")
	for _, err := range e.Errors {
		b.WriteString(err.Error())
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run scans, parses, and evaluates source against interp, which supplies
// the persistent global environment. Lex and parse errors are collected
// and reported together; a runtime error is reported alone, since the
// evaluator fails fast at the first one.
func Run(interp *interpreter.Interpreter, source string) error {
	tokens, scanErrs := lexer.ScanTokens(source)
	if len(scanErrs) > 0 {
		return &Error{Errors: scanErrs}
	}

	stmts, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		return &Error{Errors: parseErrs}
	}

	if err := interp.Run(stmts); err != nil {
		return &Error{Errors: []error{err}}
	}
	return nil
}

// RunSource is a convenience for one-shot execution (e.g. `golox e "..."`)
// that does not need to retain interpreter state afterward.
func RunSource(source string) error {
	return Run(interpreter.New(), source)
}
