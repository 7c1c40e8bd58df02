/*
File    : lox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the syntax tree the parser builds and the evaluator
// walks. Nodes are plain tagged structs rather than an interface-per-node
// visitor hierarchy with boxed children — built once by the parser and
// never rewritten, so the extra indirection a visitor would buy isn't
// needed (see spec.md §9, "Visitor pattern: not a goal of the design").
// Every expression node carries the source line of its principal token,
// for diagnostics.
package ast

import "github.com/akashmaji946/lox/lexer"

// Expr is implemented by every expression node.
type Expr interface {
	Line() int
	exprNode()
}

// LiteralExpr is a number, string, boolean, or nil literal.
type LiteralExpr struct {
	Value interface{} // float64, string, bool, or nil
	Tok   lexer.Token
}

// GroupingExpr is a parenthesized sub-expression: "(" expression ")".
type GroupingExpr struct {
	Expression Expr
	Tok        lexer.Token
}

// UnaryExpr is a prefix operator applied to a single operand: "!"/"-" unary.
type UnaryExpr struct {
	Operator lexer.Token
	Right    Expr
}

// BinaryExpr is a left-associative infix operator: arithmetic, comparison,
// or equality.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// LogicalExpr is "and"/"or", kept distinct from BinaryExpr because it
// short-circuits (spec.md §4.4).
type LogicalExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

// VariableExpr reads a name from the environment chain.
type VariableExpr struct {
	Name lexer.Token
}

// AssignExpr assigns a new value to an existing binding. The parser only
// ever produces this with Name as a bare identifier token; any other
// left-hand shape is a parse error (spec.md §4.2).
type AssignExpr struct {
	Name  lexer.Token
	Value Expr
}

// CallExpr invokes a callee (a Function or BuiltIn value) with evaluated
// arguments.
type CallExpr struct {
	Callee Expr
	Paren  lexer.Token // closing ")" token, used for diagnostics
	Args   []Expr
}

// FunctionExpr is an anonymous function literal: "fun" "(" params? ")" block.
// A FunDecl statement is sugar over binding one of these to a name.
type FunctionExpr struct {
	Tok    lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (e *LiteralExpr) Line() int  { return e.Tok.Line }
func (e *GroupingExpr) Line() int { return e.Tok.Line }
func (e *UnaryExpr) Line() int    { return e.Operator.Line }
func (e *BinaryExpr) Line() int   { return e.Operator.Line }
func (e *LogicalExpr) Line() int  { return e.Operator.Line }
func (e *VariableExpr) Line() int { return e.Name.Line }
func (e *AssignExpr) Line() int   { return e.Name.Line }
func (e *CallExpr) Line() int     { return e.Paren.Line }
func (e *FunctionExpr) Line() int { return e.Tok.Line }

func (e *LiteralExpr) exprNode()  {}
func (e *GroupingExpr) exprNode() {}
func (e *UnaryExpr) exprNode()    {}
func (e *BinaryExpr) exprNode()   {}
func (e *LogicalExpr) exprNode()  {}
func (e *VariableExpr) exprNode() {}
func (e *AssignExpr) exprNode()   {}
func (e *CallExpr) exprNode()     {}
func (e *FunctionExpr) exprNode() {}
