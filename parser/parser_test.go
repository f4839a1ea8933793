/*
File   : golox/parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/value"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, errs := lexer.ScanTokens(src)
	assert.Nil(t, errs)
	stmts, perrs := Parse(tokens)
	assert.Nil(t, perrs)
	return stmts
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	stmts := parse(t, "1 + 2 * 3;")
	assert.Len(t, stmts, 1)
	exprStmt, ok := stmts[0].(*ast.Expression)
	assert.True(t, ok)
	bin, ok := exprStmt.Expr.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.Plus, bin.Operator.Kind)
	right, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.Star, right.Operator.Kind)
}

func TestParse_VarDeclWithoutInitializerDefaultsToNil(t *testing.T) {
	stmts := parse(t, "var x;")
	v := stmts[0].(*ast.Var)
	lit, ok := v.Initializer.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Nil{}, lit.Value)
}

func TestParse_AssignmentRequiresVariableTarget(t *testing.T) {
	tokens, _ := lexer.ScanTokens("1 = 2;")
	_, errs := Parse(tokens)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid assignment target")
}

func TestParse_ForDesugarsToWhileBlock(t *testing.T) {
	stmts := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	assert.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	assert.True(t, ok, "for desugars to a block")
	assert.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.Var)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	assert.True(t, ok, "no ast.For node should ever exist")

	body, ok := whileStmt.Body.(*ast.Block)
	assert.True(t, ok)
	assert.Len(t, body.Statements, 2)
}

func TestParse_ForOmittedClauses(t *testing.T) {
	stmts := parse(t, "for (;;) print 1;")
	whileStmt, ok := stmts[0].(*ast.While)
	assert.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	assert.True(t, ok)
	assert.Equal(t, value.Bool(true), lit.Value)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts := parse(t, "fun add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.Function)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)
	assert.Len(t, fn.Body, 1)
}

func TestParse_LambdaExpression(t *testing.T) {
	stmts := parse(t, "var f = fun(x) { return x; };")
	v := stmts[0].(*ast.Var)
	_, ok := v.Initializer.(*ast.Lambda)
	assert.True(t, ok)
}

func TestParse_CallChaining(t *testing.T) {
	stmts := parse(t, "makeCounter()();")
	exprStmt := stmts[0].(*ast.Expression)
	outer, ok := exprStmt.Expr.(*ast.Call)
	assert.True(t, ok)
	_, ok = outer.Callee.(*ast.Call)
	assert.True(t, ok)
}

func TestParse_TooManyArgumentsIsAnError(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	tokens, _ := lexer.ScanTokens(src)
	_, errs := Parse(tokens)
	assert.NotEmpty(t, errs)
}

func TestParse_MissingSemicolonIsCollectedAndSynchronizes(t *testing.T) {
	tokens, _ := lexer.ScanTokens("var x = 1 var y = 2;")
	stmts, errs := Parse(tokens)
	assert.Nil(t, stmts)
	assert.Len(t, errs, 1)
}

func TestParse_AndOrReturnLogicalNode(t *testing.T) {
	stmts := parse(t, "true and false; true or false;")
	_, ok := stmts[0].(*ast.Expression).Expr.(*ast.Logical)
	assert.True(t, ok)
	_, ok = stmts[1].(*ast.Expression).Expr.(*ast.Logical)
	assert.True(t, ok)
}
