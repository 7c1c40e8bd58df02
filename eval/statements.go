/*
File    : lox/eval/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/object"
)

// execute evaluates a single statement for effect. Its result is Nil on
// ordinary completion, an *object.Error on failure, or an
// *object.ReturnValue when a return statement (somewhere inside, possibly
// nested in blocks/ifs/loops) is unwinding — grounded on the teacher's
// evalStatements early-termination convention
// (_examples/akashmaji946-go-mix/eval/eval_statements.go).
func (i *Interpreter) execute(stmt ast.Stmt) object.Value {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return i.eval(s.Expression)
	case *ast.PrintStmt:
		return i.executePrint(s.Expression, false)
	case *ast.PrintlnStmt:
		return i.executePrint(s.Expression, true)
	case *ast.LetStmt:
		return i.executeLet(s)
	case *ast.BlockStmt:
		return i.executeBlock(s.Statements, i.Env.Push())
	case *ast.IfStmt:
		return i.executeIf(s)
	case *ast.WhileStmt:
		return i.executeWhile(s)
	case *ast.FunDeclStmt:
		return i.executeFunDecl(s)
	case *ast.ReturnStmt:
		return i.executeReturn(s)
	default:
		return &object.Error{Kind: "InternalError", Message: fmt.Sprintf("unknown statement type %T", stmt)}
	}
}

// executeStatements runs stmts in order within the environment already
// active, stopping early on the first error or return signal.
func (i *Interpreter) executeStatements(stmts []ast.Stmt) object.Value {
	var result object.Value = &object.Nil{}
	for _, stmt := range stmts {
		result = i.execute(stmt)
		if object.IsError(result) || object.IsReturn(result) {
			return result
		}
	}
	return result
}

// executeBlock runs stmts in env, restoring the previous environment
// before returning — including on early exit via error or return, so a
// non-local unwind out of a nested block never leaves the interpreter
// pointed at a stale frame.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) object.Value {
	previous := i.Env
	i.Env = env
	defer func() { i.Env = previous }()
	return i.executeStatements(stmts)
}

func (i *Interpreter) executePrint(expr ast.Expr, newline bool) object.Value {
	value := i.eval(expr)
	if object.IsError(value) {
		return value
	}
	if newline {
		fmt.Fprintln(i.out, value.String())
	} else {
		fmt.Fprint(i.out, value.String())
	}
	return &object.Nil{}
}

// executeLet always creates/overwrites a binding in the current frame only
// (spec.md §3). "let x;" with no initializer binds x to Nil.
func (i *Interpreter) executeLet(s *ast.LetStmt) object.Value {
	var value object.Value = &object.Nil{}
	if s.Initializer != nil {
		value = i.eval(s.Initializer)
		if object.IsError(value) {
			return value
		}
	}
	i.Env.Define(s.Name.Lexeme, value)
	return &object.Nil{}
}

func (i *Interpreter) executeIf(s *ast.IfStmt) object.Value {
	condition := i.eval(s.Condition)
	if object.IsError(condition) {
		return condition
	}
	if object.Truthy(condition) {
		return i.execute(s.Then)
	}
	if s.Else != nil {
		return i.execute(s.Else)
	}
	return &object.Nil{}
}

func (i *Interpreter) executeWhile(s *ast.WhileStmt) object.Value {
	for {
		condition := i.eval(s.Condition)
		if object.IsError(condition) {
			return condition
		}
		if !object.Truthy(condition) {
			return &object.Nil{}
		}
		result := i.execute(s.Body)
		if object.IsError(result) || object.IsReturn(result) {
			return result
		}
	}
}

// executeFunDecl creates a Function capturing the current environment and
// binds it to Name, the same closure-capture move a FunctionExpr makes
// when evaluated as an expression (spec.md §4.3).
func (i *Interpreter) executeFunDecl(s *ast.FunDeclStmt) object.Value {
	fn := &object.Function{Name: s.Name.Lexeme, Params: s.Params, Body: s.Body, Env: i.Env}
	i.Env.Define(s.Name.Lexeme, fn)
	return &object.Nil{}
}

// executeReturn evaluates the return expression (Nil if omitted) and wraps
// it for propagation up to the enclosing call boundary (spec.md §4.4).
func (i *Interpreter) executeReturn(s *ast.ReturnStmt) object.Value {
	var value object.Value = &object.Nil{}
	if s.Value != nil {
		value = i.eval(s.Value)
		if object.IsError(value) {
			return value
		}
	}
	return &object.ReturnValue{Value: value}
}
