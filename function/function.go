/*
File   : golox/function/function.go
Package: function
*/

// Package function holds the two concrete Callable implementations:
// Function, a user-defined function or lambda paired with the
// environment that was live when it was declared (its closure), and
// Native, a host-provided builtin. Neither type evaluates anything
// itself; the interpreter package owns the evaluation logic and type
// switches on these structs when it executes a Call expression. Keeping
// that logic out of this package avoids a function -> interpreter ->
// function import cycle.
package function

import (
	"fmt"

	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/environment"
	"github.com/gomix-lang/golox/value"
)

// Function is a user-defined function or lambda: its parameter names, its
// body, and the environment captured at the point it was defined. Calling
// it must build a fresh environment whose parent is Closure, not whatever
// environment happens to be current at the call site; that is what makes
// the language's scoping lexical rather than dynamic.
type Function struct {
	FnName  string
	Params  []string
	Body    []ast.Stmt
	Closure *environment.Environment
}

func (f *Function) Type() string { return "Callable" }
func (f *Function) Arity() int   { return len(f.Params) }
func (f *Function) Name() string { return f.FnName }

func (f *Function) Display() string {
	return fmt.Sprintf("<fn %s/%d>", f.FnName, len(f.Params))
}

// Native is a host-implemented function exposed to GoLox programs, such
// as clock(). Fn receives already-evaluated arguments and returns the
// call's result or a runtime error.
type Native struct {
	FnName  string
	FnArity int
	Fn      func(args []value.Value) (value.Value, error)
}

func (n *Native) Type() string { return "Callable" }
func (n *Native) Arity() int   { return n.FnArity }
func (n *Native) Name() string { return n.FnName }

func (n *Native) Display() string {
	return fmt.Sprintf("<fn %s/%d>", n.FnName, n.FnArity)
}

var (
	_ value.Callable = (*Function)(nil)
	_ value.Callable = (*Native)(nil)
)
