/*
File    : lox/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// expression → assignment
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment → IDENT "=" assignment | logic_or
//
// Parsed as "parse the left-hand side as an or-expression, then check for
// '='" rather than with lookahead, so the already-built left-hand
// expression can be inspected: if it isn't a bare VariableExpr, the
// assignment target is invalid (spec.md §4.2). Assignment right-associates
// because the recursive call parses the right-hand side as another
// assignment.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: variable.Name, Value: value}
		}
		p.errorAt(equals, "Invalid assignment target.")
		return expr
	}
	return expr
}

// logic_or → logic_and ( "or" logic_and )*
func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(lexer.OR) {
		operator := p.previous()
		right := p.and()
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// logic_and → equality ( "and" equality )*
func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(lexer.AND) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.LogicalExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// equality → comparison ( ("!="|"==") comparison )*
func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// comparison → term ( (">"|">="|"<"|"<=") term )*
func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right := p.term()
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// term → factor ( ("+"|"-") factor )*
func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(lexer.PLUS, lexer.MINUS) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// factor → unary ( ("*"|"/") unary )*
func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(lexer.STAR, lexer.SLASH) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.BinaryExpr{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

// unary → ("!"|"-") unary | call
func (p *Parser) unary() ast.Expr {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right := p.unary()
		return &ast.UnaryExpr{Operator: operator, Right: right}
	}
	return p.call()
}

// call → primary ( "(" arguments? ")" )*
func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for p.match(lexer.LEFT_PAREN) {
		expr = p.finishCall(expr)
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) == maxParams {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			args = append(args, p.expression())
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	return &ast.CallExpr{Callee: callee, Paren: paren, Args: args}
}

// primary → NUMBER | STRING | "true" | "false" | "nil"
//         | IDENT | "(" expression ")"
//         | "fun" "(" params? ")" block
func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(lexer.NUMBER, lexer.STRING):
		tok := p.previous()
		return &ast.LiteralExpr{Value: tok.Literal, Tok: tok}
	case p.match(lexer.TRUE):
		return &ast.LiteralExpr{Value: true, Tok: p.previous()}
	case p.match(lexer.FALSE):
		return &ast.LiteralExpr{Value: false, Tok: p.previous()}
	case p.match(lexer.NIL):
		return &ast.LiteralExpr{Value: nil, Tok: p.previous()}
	case p.match(lexer.IDENTIFIER):
		return &ast.VariableExpr{Name: p.previous()}
	case p.match(lexer.LEFT_PAREN):
		tok := p.previous()
		expr := p.expression()
		p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression.")
		return &ast.GroupingExpr{Expression: expr, Tok: tok}
	case p.match(lexer.FUN):
		return p.functionExpression()
	}

	p.errorAt(p.peek(), "Expect expression.")
	// Produce a placeholder node so the caller can keep building a tree
	// around the error site; the collected ParseError is what actually
	// fails the parse (spec.md §4.2's per-run error collection).
	return &ast.LiteralExpr{Value: nil, Tok: p.peek()}
}

// functionExpression parses the remainder of "fun" "(" params? ")" block
// for an anonymous function literal. Named declarations do not come through
// here: funDeclaration parses their parameters and body itself.
func (p *Parser) functionExpression() ast.Expr {
	tok := p.previous()
	p.consume(lexer.LEFT_PAREN, "Expect '(' after 'fun'.")
	params := p.parameterList()
	p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters.")
	p.consume(lexer.LEFT_BRACE, "Expect '{' before function body.")
	body := p.block()
	return &ast.FunctionExpr{Tok: tok, Params: params, Body: body}
}
