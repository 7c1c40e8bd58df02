/*
File    : lox/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser, one token of
// lookahead, for the grammar in spec.md §4.2. It produces a Program (a flat
// []ast.Stmt) and, on malformed input, collects *ParseError diagnostics
// instead of stopping at the first one — grounded on the teacher's
// error-collection convention (_examples/akashmaji946-go-mix/parser/
// parser.go's Errors []string / HasErrors()), generalized to attach a
// source line and the offending lexeme to each error per spec.md §4.2.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// ParseError is a single syntax diagnostic.
type ParseError struct {
	Line    int
	Lexeme  string
	Message string
}

func (e ParseError) Error() string {
	if e.Lexeme == "" {
		return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Line, e.Lexeme, e.Message)
}

// maxParams bounds the number of parameters a function literal may declare
// (spec.md §4.2 "recommend 255").
const maxParams = 255

// Parser holds the token stream and parsing state.
type Parser struct {
	lex     *lexer.Lexer
	tokens  []lexer.Token
	current int
	errors  []ParseError
}

// New creates a Parser over src, fully scanning it up front so the
// remainder of parsing never has to think about the lexer. Any lex errors
// are exposed via LexErrors.
func New(src string) *Parser {
	lex := lexer.NewLexer(src)
	return &Parser{lex: lex, tokens: lex.ScanTokens()}
}

// LexErrors returns the lex errors found while scanning, if any.
func (p *Parser) LexErrors() []lexer.LexError {
	return p.lex.Errors()
}

// Errors returns every parse error collected during Parse.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// HasErrors reports whether lexing or parsing produced any diagnostics.
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0 || len(p.lex.Errors()) > 0
}

// Parse consumes the whole token stream and returns the resulting program.
// It always returns as much of a tree as it could build; callers must
// check HasErrors before evaluating (spec.md §4.2: "After parsing, if any
// errors were collected, evaluation does not proceed").
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// --- token stream helpers ---

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the expected token type or records a parse error.
func (p *Parser) consume(t lexer.TokenType, message string) lexer.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAt(p.peek(), message)
	return p.peek()
}

func (p *Parser) errorAt(tok lexer.Token, message string) {
	lexeme := tok.Lexeme
	if tok.Type == lexer.EOF {
		lexeme = ""
	}
	p.errors = append(p.errors, ParseError{Line: tok.Line, Lexeme: lexeme, Message: message})
}

// synchronize discards tokens after a parse error until it reaches a
// statement boundary (just past a ";", or a statement-starting keyword),
// so subsequent correct statements still get parsed (spec.md §4.2, §8
// "Parser error locality").
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.FUN, lexer.LET, lexer.FOR, lexer.IF, lexer.WHILE,
			lexer.RETURN, lexer.PRINT, lexer.PRINTLN:
			return
		}
		p.advance()
	}
}
