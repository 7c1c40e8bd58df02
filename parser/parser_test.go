/*
File    : lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/lox/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_LetDeclaration(t *testing.T) {
	p := New(`let x = 1 + 2;`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, program, 1)

	letStmt, ok := program[0].(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", letStmt.Name.Lexeme)
	_, ok = letStmt.Initializer.(*ast.BinaryExpr)
	assert.True(t, ok)
}

func TestParse_IfElse(t *testing.T) {
	p := New(`if (a) { print "yes"; } else { print "no"; }`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, program, 1)

	ifStmt, ok := program[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	p := New(`for (let i = 0; i < 3; i = i + 1) { print i; }`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, program, 1)

	outer, ok := program[0].(*ast.BlockStmt)
	require.True(t, ok, "for desugars to an outer block containing the initializer")
	require.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*ast.LetStmt)
	assert.True(t, ok)
	_, ok = outer.Statements[1].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParse_FunctionDeclarationAndCall(t *testing.T) {
	p := New(`
		fun add(a, b) { return a + b; }
		add(1, 2);
	`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	require.Len(t, program, 2)

	fn, ok := program[0].(*ast.FunDeclStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	assert.Len(t, fn.Params, 2)

	exprStmt, ok := program[1].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*ast.CallExpr)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_InvalidAssignmentTargetIsAnError(t *testing.T) {
	p := New(`1 + 2 = 3;`)
	p.Parse()
	assert.True(t, p.HasErrors())
}

func TestParse_MultipleErrorsAreCollected(t *testing.T) {
	p := New(`
		let = ;
		let y = 1 +;
	`)
	p.Parse()
	assert.True(t, p.HasErrors())
	assert.GreaterOrEqual(t, len(p.Errors()), 2)
}

func TestParse_AnonymousFunctionExpression(t *testing.T) {
	p := New(`let f = fun(x) { return x; };`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	letStmt := program[0].(*ast.LetStmt)
	_, ok := letStmt.Initializer.(*ast.FunctionExpr)
	assert.True(t, ok)
}

func TestParse_LogicalOperatorsAreDistinctFromBinary(t *testing.T) {
	p := New(`a and b or c;`)
	program := p.Parse()
	require.False(t, p.HasErrors())
	exprStmt := program[0].(*ast.ExpressionStmt)
	_, ok := exprStmt.Expression.(*ast.LogicalExpr)
	assert.True(t, ok)
}
