/*
File    : lox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox/lexer"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects and discards
// the result.
type ExpressionStmt struct {
	Expression Expr
}

// PrintStmt evaluates an expression and writes its textual form without a
// trailing newline.
type PrintStmt struct {
	Expression Expr
}

// PrintlnStmt evaluates an expression and writes its textual form followed
// by a newline. Kept distinct from PrintStmt for the trailing-newline
// difference (spec.md §3).
type PrintlnStmt struct {
	Expression Expr
}

// LetStmt declares a new binding in the current scope. Initializer is nil
// for "let x;", which binds x to Nil.
type LetStmt struct {
	Name        lexer.Token
	Initializer Expr
}

// BlockStmt is a brace-delimited sequence of statements. Evaluating a block
// pushes a fresh child environment so declarations inside it don't leak
// outward (spec.md §4.3).
type BlockStmt struct {
	Statements []Stmt
}

// IfStmt is a conditional with an optional else branch.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if there is no else clause
}

// WhileStmt re-evaluates Condition before each execution of Body.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunDeclStmt declares a named function in the current scope, equivalent to
// binding a FunctionExpr to Name via a LetStmt (spec.md §3).
type FunDeclStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

// ReturnStmt unwinds the innermost enclosing function call with Value
// (defaulting to Nil when Value is nil).
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (s *ExpressionStmt) stmtNode() {}
func (s *PrintStmt) stmtNode()      {}
func (s *PrintlnStmt) stmtNode()    {}
func (s *LetStmt) stmtNode()        {}
func (s *BlockStmt) stmtNode()      {}
func (s *IfStmt) stmtNode()         {}
func (s *WhileStmt) stmtNode()      {}
func (s *FunDeclStmt) stmtNode()    {}
func (s *ReturnStmt) stmtNode()     {}
