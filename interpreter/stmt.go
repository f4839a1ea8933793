/*
File   : golox/interpreter/stmt.go
Package: interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/environment"
	"github.com/gomix-lang/golox/function"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/value"
)

// exec executes one statement. Returning a non-nil error stops the
// enclosing statement sequence immediately; execBlock relies on this for
// both runtime-error fail-fast and return-slot propagation, since a
// returnSignal is itself delivered as an error value.
func (in *Interpreter) exec(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.execBlock(s.Statements, environment.New(in.env))
	case *ast.Expression:
		_, err := in.eval(s.Expr)
		return err
	case *ast.Function:
		fn := &function.Function{FnName: s.Name.Lexeme, Params: tokenNames(s.Params), Body: s.Body, Closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.If:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return in.exec(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.exec(s.ElseBranch)
		}
		return nil
	case *ast.Print:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, v.Display())
		return nil
	case *ast.Return:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = in.eval(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}
	case *ast.Var:
		v, err := in.eval(s.Initializer)
		if err != nil {
			return err
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil
	case *ast.While:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
			if err := in.exec(s.Body); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// execBlock runs statements in a fresh child environment, always
// restoring the previous environment on the way out (success, runtime
// error, or return signal alike) via defer, so a panic-free Go error
// return still leaves the pointer correctly popped.
func (in *Interpreter) execBlock(stmts []ast.Stmt, blockEnv *environment.Environment) error {
	previous := in.env
	in.env = blockEnv
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if err := in.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// tokenNames extracts parameter names from parameter tokens, in order.
func tokenNames(tokens []lexer.Token) []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.Lexeme
	}
	return names
}
