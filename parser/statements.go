/*
File    : lox/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// declaration → funDecl | letDecl | statement
// On a parse error it returns nil and, unless the failed statement already
// ended at a ";" or "}", synchronizes; the caller skips nil statements,
// which is how multiple independent errors get reported from a single
// parse (spec.md §4.2).
func (p *Parser) declaration() ast.Stmt {
	start := p.current
	stmt := p.declarationOrStatement()
	if p.HasErrors() && stmt == nil {
		// A statement that consumed its closing ";" or "}" already stands at
		// a statement boundary; synchronizing from there would skip the next
		// statement.
		atBoundary := p.current > start &&
			(p.previous().Type == lexer.SEMICOLON || p.previous().Type == lexer.RIGHT_BRACE)
		if !atBoundary {
			p.synchronize()
		}
	}
	return stmt
}

func (p *Parser) declarationOrStatement() ast.Stmt {
	before := len(p.errors)
	var stmt ast.Stmt
	switch {
	case p.match(lexer.FUN):
		stmt = p.funDeclaration()
	case p.match(lexer.LET):
		stmt = p.letDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.errors) > before {
		return nil
	}
	return stmt
}

// funDecl → "fun" IDENT "(" params? ")" block
func (p *Parser) funDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect function name.")
	p.consume(lexer.LEFT_PAREN, "Expect '(' after function name.")
	params := p.parameterList()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()
	return &ast.FunDeclStmt{Name: name, Params: params, Body: body}
}

// parameterList parses a comma-separated identifier list, up to maxParams
// entries, rejecting duplicate names (spec.md §4.2).
func (p *Parser) parameterList() []lexer.Token {
	var params []lexer.Token
	if p.check(lexer.RIGHT_PAREN) {
		return params
	}
	for {
		if len(params) == maxParams {
			p.errorAt(p.peek(), "Can't have more than 255 parameters.")
		}
		name := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
		for _, existing := range params {
			if existing.Lexeme == name.Lexeme {
				p.errorAt(name, "Duplicate parameter name.")
				break
			}
		}
		params = append(params, name)
		if !p.match(lexer.COMMA) {
			break
		}
	}
	return params
}

// letDecl → "let" IDENT ( "=" expression )? ";"
func (p *Parser) letDeclaration() ast.Stmt {
	name := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration.")
	return &ast.LetStmt{Name: name, Initializer: initializer}
}

// statement → exprStmt | printStmt | ifStmt | whileStmt
//           | forStmt | returnStmt | block
func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(lexer.PRINT):
		return p.printStatement(false)
	case p.match(lexer.PRINTLN):
		return p.printStatement(true)
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.LEFT_BRACE):
		return &ast.BlockStmt{Statements: p.block()}
	default:
		return p.expressionStatement()
	}
}

// block → "{" declaration* "}" — the opening brace has already been
// consumed by the caller (funDecl, block-as-statement, or
// block-as-function-body).
func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	p.consume(lexer.RIGHT_BRACE, "Expect '}' after block.")
	return stmts
}

// printStmt → ("print"|"println") expression ";"
func (p *Parser) printStatement(newline bool) ast.Stmt {
	value := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after value.")
	if newline {
		return &ast.PrintlnStmt{Expression: value}
	}
	return &ast.PrintStmt{Expression: value}
}

// exprStmt → expression ";"
func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(lexer.SEMICOLON, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

// ifStmt → "if" "(" expression ")" statement ( "else" statement )?
func (p *Parser) ifStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition.")
	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

// whileStmt → "while" "(" expression ")" statement
func (p *Parser) whileStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after while condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStmt → "for" "(" ( letDecl | exprStmt | ";" )
//                 expression? ";" expression? ")" statement
//
// Desugars directly into { init; while (cond) { body; step; } } at parse
// time, per spec.md §4.2's "the spec allows either a direct node or
// desugaring — semantics are identical".
func (p *Parser) forStatement() ast.Stmt {
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.LET):
		initializer = p.letDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after loop condition.")

	var step ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		step = p.expression()
	}
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses.")

	body := p.statement()

	if step != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: step}}}
	}
	if condition == nil {
		condition = &ast.LiteralExpr{Value: true, Tok: p.previous()}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

// returnStmt → "return" expression? ";"
func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(lexer.SEMICOLON) {
		value = p.expression()
	}
	p.consume(lexer.SEMICOLON, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}
