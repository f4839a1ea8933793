/*
File   : golox/interpreter/expr.go
Package: interpreter
*/
package interpreter

import (
	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/environment"
	"github.com/gomix-lang/golox/function"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/value"
)

// eval computes the value of an expression against the interpreter's
// current environment. Operand evaluation is always strictly
// left-to-right: if the left operand fails, the right one is never
// evaluated, which matters for any expression with observable
// side-effecting calls.
func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.env.Assign(e.Name.Lexeme, v); err != nil {
			return nil, runtimeErrorf(e.Name, "undefined variable %q", e.Name.Lexeme)
		}
		return v, nil

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Grouping:
		return in.eval(e.Inner)

	case *ast.Lambda:
		return &function.Function{
			FnName:  "lambda",
			Params:  tokenNames(e.Params),
			Body:    e.Body,
			Closure: in.env,
		}, nil

	case *ast.Literal:
		return e.Value, nil

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Variable:
		v, err := in.env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, runtimeErrorf(e.Name, "undefined variable %q", e.Name.Lexeme)
		}
		return v, nil

	default:
		return nil, runtimeErrorf(lexer.Token{}, "unhandled expression type %T", expr)
	}
}

func (in *Interpreter) evalUnary(e *ast.Unary) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case lexer.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "operand of unary '-' must be a Number, got %s", right.Type())
		}
		return -n, nil
	case lexer.Bang:
		return value.Bool(!value.Truthy(right)), nil
	default:
		return nil, runtimeErrorf(e.Operator, "unknown unary operator %q", e.Operator.Lexeme)
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case lexer.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, runtimeErrorf(e.Operator, "'+' requires two Numbers or two Strings, got %s and %s", left.Type(), right.Type())

	case lexer.Minus:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "'-' requires two Numbers, got %s and %s", left.Type(), right.Type())
		}
		return ln - rn, nil

	case lexer.Star:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "'*' requires two Numbers, got %s and %s", left.Type(), right.Type())
		}
		return ln * rn, nil

	case lexer.Slash:
		ln, rn, ok := bothNumbers(left, right)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "'/' requires two Numbers, got %s and %s", left.Type(), right.Type())
		}
		// Division by zero yields IEEE infinity/NaN, not a runtime error.
		return ln / rn, nil

	case lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual:
		return in.evalComparison(e.Operator, left, right)

	case lexer.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case lexer.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil

	default:
		return nil, runtimeErrorf(e.Operator, "unknown binary operator %q", e.Operator.Lexeme)
	}
}

func (in *Interpreter) evalComparison(op lexer.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		rn, ok := right.(value.Number)
		if !ok {
			return nil, runtimeErrorf(op, "cannot compare Number to %s", right.Type())
		}
		return value.Bool(numberCompare(op.Kind, float64(ln), float64(rn))), nil
	}
	if ls, ok := left.(value.String); ok {
		rs, ok := right.(value.String)
		if !ok {
			return nil, runtimeErrorf(op, "cannot compare String to %s", right.Type())
		}
		return value.Bool(stringCompare(op.Kind, string(ls), string(rs))), nil
	}
	return nil, runtimeErrorf(op, "'%s' requires two Numbers or two Strings, got %s and %s", op.Lexeme, left.Type(), right.Type())
}

func numberCompare(kind lexer.TokenType, l, r float64) bool {
	switch kind {
	case lexer.Greater:
		return l > r
	case lexer.GreaterEqual:
		return l >= r
	case lexer.Less:
		return l < r
	case lexer.LessEqual:
		return l <= r
	}
	return false
}

func stringCompare(kind lexer.TokenType, l, r string) bool {
	switch kind {
	case lexer.Greater:
		return l > r
	case lexer.GreaterEqual:
		return l >= r
	case lexer.Less:
		return l < r
	case lexer.LessEqual:
		return l <= r
	}
	return false
}

func bothNumbers(left, right value.Value) (value.Number, value.Number, bool) {
	ln, ok := left.(value.Number)
	if !ok {
		return 0, 0, false
	}
	rn, ok := right.(value.Number)
	if !ok {
		return 0, 0, false
	}
	return ln, rn, true
}

// evalLogical short-circuits: `or` returns its left operand unchanged if
// truthy, otherwise evaluates and returns the right; `and` returns its
// left operand if falsy, otherwise the right. The result is the deciding
// operand itself, not a coerced boolean.
func (in *Interpreter) evalLogical(e *ast.Logical) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Kind == lexer.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalCall(e *ast.Call) (value.Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	callable, ok := callee.(value.Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren, "can only call functions, got %s", callee.Type())
	}

	args := make([]value.Value, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		v, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren, "expected %d arguments but got %d", callable.Arity(), len(args))
	}

	switch fn := callable.(type) {
	case *function.Native:
		return fn.Fn(args)
	case *function.Function:
		return in.callUserFunction(fn, args)
	default:
		return nil, runtimeErrorf(e.Paren, "unrecognized callable type %T", fn)
	}
}

// callUserFunction runs a closure's body in a fresh environment whose
// parent is the environment captured when the function was declared,
// never the caller's current environment, which is what makes the
// language's scoping lexical.
func (in *Interpreter) callUserFunction(fn *function.Function, args []value.Value) (value.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, name := range fn.Params {
		callEnv.Define(name, args[i])
	}

	err := in.execBlock(fn.Body, callEnv)
	if err == nil {
		return value.Nil{}, nil
	}
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	return nil, err
}
