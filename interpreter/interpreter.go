/*
File   : golox/interpreter/interpreter.go
Package: interpreter
*/

// Package interpreter walks the AST the parser built, executing side
// effects (print, variable definitions) and computing values against a
// persistent global environment. Expression evaluation is a pure
// function from (expr, env) to (value.Value, error); statement execution
// delivers a `return` as a returnSignal value passed back through the
// ordinary Go error returns of exec/execBlock (no panic is involved), so
// that non-local return composes with while/block the same way an
// ordinary statement does. The
// interpreter fails fast on the first runtime error, unlike the lexer
// and parser, which each try to collect more than one.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/environment"
	"github.com/gomix-lang/golox/function"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/value"
)

// RuntimeError is a failure during evaluation: a type mismatch, wrong
// arity, a call of a non-callable, or a read/assignment of an undefined
// variable. It always carries the source line it happened on.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] runtime error: %s", e.Line, e.Message)
}

func runtimeErrorf(tok lexer.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: tok.Line, Message: fmt.Sprintf(format, args...)}
}

// returnSignal is not an error. It is ordinary control flow sent back up
// through exec/execBlock's Go call stack to the nearest Call dispatch,
// which consumes it. A return outside any function reaches Run, which
// consumes it by ending the program.
type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return outside of a function call" }

// Interpreter holds all of the interpreter's mutable state: the global
// environment (which persists for the interpreter's whole lifetime, so a
// REPL session accumulates bindings across lines), the environment
// currently in scope, and the writer `print` sends output to.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Writer  io.Writer
}

// New builds an interpreter with the standard library of native functions
// already bound in the global environment.
func New() *Interpreter {
	globals := environment.New(nil)
	interp := &Interpreter{Globals: globals, env: globals, Writer: os.Stdout}
	interp.defineNatives()
	return interp
}

// defineNatives installs the native functions available at startup.
func (in *Interpreter) defineNatives() {
	in.Globals.Define("clock", &function.Native{
		FnName:  "clock",
		FnArity: 0,
		Fn: func(args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	})
}

// Run executes a parsed program against the interpreter's persistent
// state. It is the entry point both the CLI driver and the REPL use; the
// global environment it mutates is retained across calls.
func (in *Interpreter) Run(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			if _, isReturn := err.(returnSignal); isReturn {
				// A bare top-level `return` behaves like reaching end of
				// program; there is no caller left to hand the value to.
				return nil
			}
			return err
		}
	}
	return nil
}
