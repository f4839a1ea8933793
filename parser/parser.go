/*
File   : golox/parser/parser.go
Package: parser
*/

// Package parser implements a recursive-descent parser over the token
// stream lexer.ScanTokens produces, building the ast.Stmt/ast.Expr tree.
// Like the lexer, it collects every error it can find (synchronizing past
// one bad statement to keep looking) rather than stopping at the first
// one, so a single parse reports as many problems as possible.
package parser

import (
	"fmt"

	"github.com/gomix-lang/golox/ast"
	"github.com/gomix-lang/golox/lexer"
	"github.com/gomix-lang/golox/value"
)

// maxArgs is the cap on parameter and argument list length.
const maxArgs = 255

// ParseError reports a syntax problem tied to the line it was found on.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] parse error: %s", e.Line, e.Message)
}

// Parser consumes a token slice and produces a program: an ordered list
// of statements, or a collected list of errors.
type Parser struct {
	tokens  []lexer.Token
	current int
	errors  []error
}

// New creates a Parser over an already-scanned token stream.
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs the full `program -> declaration* EOF` rule. On success it
// returns the statement list and a nil error slice; on failure it returns
// a nil statement list and every error collected along the way.
func Parse(tokens []lexer.Token) ([]ast.Stmt, []error) {
	p := New(tokens)
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if len(p.errors) > 0 {
		return nil, p.errors
	}
	return stmts, nil
}

// --- token cursor -----------------------------------------------------

func (p *Parser) peek() lexer.Token { return p.tokens[p.current] }

func (p *Parser) previous() lexer.Token { return p.tokens[p.current-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == lexer.EOF }

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token kind or records a parse error
// and panics with parseFailure so the caller can synchronize.
func (p *Parser) consume(kind lexer.TokenType, message string) lexer.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.fail(message))
}

// parseFailure unwinds the recursive descent back to the declaration loop
// when a rule hits a syntax error, where synchronize() resumes scanning.
type parseFailure struct{ err *ParseError }

func (p *Parser) fail(message string) parseFailure {
	err := &ParseError{Line: p.peek().Line, Message: message}
	p.errors = append(p.errors, err)
	return parseFailure{err: err}
}

// synchronize discards tokens until it reaches a plausible statement
// boundary: just past a ';', or just before a keyword that starts a new
// statement.
func (p *Parser) synchronize() {
	for !p.isAtEnd() {
		if p.previous().Kind == lexer.Semicolon {
			return
		}
		switch p.peek().Kind {
		case lexer.Class, lexer.Fun, lexer.Var, lexer.For, lexer.If, lexer.While, lexer.Print, lexer.Return:
			return
		}
		p.advance()
	}
}

// --- declarations -------------------------------------------------------

func (p *Parser) declaration() (stmt ast.Stmt) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseFailure); ok {
				p.synchronize()
				stmt = nil
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(lexer.Fun):
		return p.function("function")
	case p.match(lexer.Var):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(lexer.Identifier, fmt.Sprintf("expect %s name", kind))
	params := p.paramList()
	p.consume(lexer.LeftBrace, fmt.Sprintf("expect '{' before %s body", kind))
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}

func (p *Parser) paramList() []lexer.Token {
	p.consume(lexer.LeftParen, "expect '(' after name")
	var params []lexer.Token
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.fail(fmt.Sprintf("can't have more than %d parameters", maxArgs))
			}
			params = append(params, p.consume(lexer.Identifier, "expect parameter name"))
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	p.consume(lexer.RightParen, "expect ')' after parameters")
	return params
}

func (p *Parser) varDecl() ast.Stmt {
	name := p.consume(lexer.Identifier, "expect variable name")
	var initializer ast.Expr = &ast.Literal{Value: value.Nil{}}
	if p.match(lexer.Equal) {
		initializer = p.expression()
	}
	p.consume(lexer.Semicolon, "expect ';' after variable declaration")
	return &ast.Var{Name: name, Initializer: initializer}
}

// --- statements -----------------------------------------------------

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.LeftBrace):
		return &ast.Block{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RightBrace) && !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RightBrace, "expect '}' after block")
	return stmts
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "expect ';' after expression")
	return &ast.Expression{Expr: expr}
}

func (p *Parser) printStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.Semicolon, "expect ';' after value")
	return &ast.Print{Expr: expr}
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var val ast.Expr
	if !p.check(lexer.Semicolon) {
		val = p.expression()
	}
	p.consume(lexer.Semicolon, "expect ';' after return value")
	return &ast.Return{Keyword: keyword, Value: val}
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expect '(' after 'if'")
	condition := p.expression()
	p.consume(lexer.RightParen, "expect ')' after if condition")
	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.Else) {
		elseBranch = p.statement()
	}
	return &ast.If{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expect '(' after 'while'")
	condition := p.expression()
	p.consume(lexer.RightParen, "expect ')' after condition")
	body := p.statement()
	return &ast.While{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; update) body` at parse time into
// `{ init; while (cond) { body; update; } }`, so the AST never contains a
// For node and the interpreter only ever has to know about While and
// Block.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LeftParen, "expect '(' after 'for'")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.Semicolon):
		initializer = nil
	case p.match(lexer.Var):
		initializer = p.varDecl()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.Semicolon) {
		condition = p.expression()
	}
	p.consume(lexer.Semicolon, "expect ';' after loop condition")

	var update ast.Expr
	if !p.check(lexer.RightParen) {
		update = p.expression()
	}
	p.consume(lexer.RightParen, "expect ')' after for clauses")

	body := p.statement()

	if condition == nil {
		condition = &ast.Literal{Value: value.Bool(true)}
	}
	if update != nil {
		body = &ast.Block{Statements: []ast.Stmt{body, &ast.Expression{Expr: update}}}
	}
	loop := &ast.While{Condition: condition, Body: body}

	if initializer == nil {
		return loop
	}
	return &ast.Block{Statements: []ast.Stmt{initializer, loop}}
}

// --- expressions -----------------------------------------------------

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment -> IDENT "=" assignment | logic_or
//
// Only a Variable is a valid assignment target; anything else (e.g.
// `1 = 2` or `a + b = 3`) is a parse error reported at the '=' token.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.Equal) {
		equals := p.previous()
		value := p.assignment()

		if v, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: v.Name, Value: value}
		}
		p.errors = append(p.errors, &ParseError{Line: equals.Line, Message: "invalid assignment target"})
		return expr
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.Or) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.And) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BangEqual, lexer.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.Minus, lexer.Plus) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.Slash, lexer.Star) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(lexer.Bang, lexer.Minus) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LeftParen) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.fail(fmt.Sprintf("can't have more than %d arguments", maxArgs))
			}
			args = append(args, p.expression())
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	paren := p.consume(lexer.RightParen, "expect ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Arguments: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.False):
		return &ast.Literal{Value: value.Bool(false)}
	case p.match(lexer.True):
		return &ast.Literal{Value: value.Bool(true)}
	case p.match(lexer.Nil):
		return &ast.Literal{Value: value.Nil{}}
	case p.match(lexer.Number):
		return &ast.Literal{Value: value.Number(p.previous().Literal.(float64))}
	case p.match(lexer.StringLit):
		return &ast.Literal{Value: value.String(p.previous().Literal.(string))}
	case p.match(lexer.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(lexer.LeftParen):
		expr := p.expression()
		p.consume(lexer.RightParen, "expect ')' after expression")
		return &ast.Grouping{Inner: expr}
	case p.match(lexer.Fun):
		return p.lambda()
	default:
		panic(p.fail(fmt.Sprintf("unexpected token %q", p.peek().Lexeme)))
	}
}

func (p *Parser) lambda() ast.Expr {
	paren := p.previous()
	params := p.paramList()
	p.consume(lexer.LeftBrace, "expect '{' before lambda body")
	body := p.block()
	return &ast.Lambda{Paren: paren, Params: params, Body: body}
}
