/*
File    : lox/eval/expressions.go
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

// eval evaluates a single expression to a Value, grounded on the teacher's
// evalExpression dispatch (_examples/akashmaji946-go-mix/eval/
// evaluator_expressions.go), generalized from Go-Mix's value set to Lox's.
func (i *Interpreter) eval(expr ast.Expr) object.Value {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e)
	case *ast.GroupingExpr:
		return i.eval(e.Expression)
	case *ast.UnaryExpr:
		return i.evalUnary(e)
	case *ast.BinaryExpr:
		return i.evalBinary(e)
	case *ast.LogicalExpr:
		return i.evalLogical(e)
	case *ast.VariableExpr:
		return i.evalVariable(e)
	case *ast.AssignExpr:
		return i.evalAssign(e)
	case *ast.CallExpr:
		return i.evalCall(e)
	case *ast.FunctionExpr:
		return &object.Function{Params: e.Params, Body: e.Body, Env: i.Env}
	default:
		return &object.Error{Line: expr.Line(), Kind: "InternalError", Message: fmt.Sprintf("unknown expression type %T", expr)}
	}
}

// literalValue converts the interface{} literal the parser attached to the
// token into the matching object.Value variant.
func literalValue(e *ast.LiteralExpr) object.Value {
	switch v := e.Value.(type) {
	case nil:
		return &object.Nil{}
	case bool:
		return &object.Boolean{Value: v}
	case float64:
		return &object.Number{Value: v}
	case string:
		return &object.String{Value: v}
	default:
		return &object.Nil{}
	}
}

func (i *Interpreter) evalUnary(e *ast.UnaryExpr) object.Value {
	right := i.eval(e.Right)
	if object.IsError(right) {
		return right
	}
	switch e.Operator.Lexeme {
	case "-":
		n, ok := right.(*object.Number)
		if !ok {
			return typeErrorAt(e.Line(), "unary '-' expects a number, got "+string(right.Type()))
		}
		return &object.Number{Value: -n.Value}
	case "!":
		return &object.Boolean{Value: !object.Truthy(right)}
	default:
		return typeErrorAt(e.Line(), "unknown unary operator "+e.Operator.Lexeme)
	}
}

// evalBinary implements spec.md §4.4: arithmetic and comparison require two
// numbers, "+" additionally accepts two strings (concatenation), "=="/"!="
// accept any pair via object.Equal, and division by zero produces Inf/-Inf/
// NaN rather than a runtime error (IEEE-754 semantics, not specially
// trapped).
func (i *Interpreter) evalBinary(e *ast.BinaryExpr) object.Value {
	left := i.eval(e.Left)
	if object.IsError(left) {
		return left
	}
	right := i.eval(e.Right)
	if object.IsError(right) {
		return right
	}

	switch e.Operator.Lexeme {
	case "==":
		return &object.Boolean{Value: object.Equal(left, right)}
	case "!=":
		return &object.Boolean{Value: !object.Equal(left, right)}
	case "+":
		if ln, ok := left.(*object.Number); ok {
			rn, ok := right.(*object.Number)
			if !ok {
				return typeErrorAt(e.Line(), "'+' expects two numbers or two strings")
			}
			return &object.Number{Value: ln.Value + rn.Value}
		}
		if ls, ok := left.(*object.String); ok {
			rs, ok := right.(*object.String)
			if !ok {
				return typeErrorAt(e.Line(), "'+' expects two numbers or two strings")
			}
			return &object.String{Value: ls.Value + rs.Value}
		}
		return typeErrorAt(e.Line(), "'+' expects two numbers or two strings")
	case "-", "*", "/", ">", ">=", "<", "<=":
		ln, ok1 := left.(*object.Number)
		rn, ok2 := right.(*object.Number)
		if !ok1 || !ok2 {
			return typeErrorAt(e.Line(), fmt.Sprintf("'%s' expects two numbers", e.Operator.Lexeme))
		}
		switch e.Operator.Lexeme {
		case "-":
			return &object.Number{Value: ln.Value - rn.Value}
		case "*":
			return &object.Number{Value: ln.Value * rn.Value}
		case "/":
			return &object.Number{Value: ln.Value / rn.Value}
		case ">":
			return &object.Boolean{Value: ln.Value > rn.Value}
		case ">=":
			return &object.Boolean{Value: ln.Value >= rn.Value}
		case "<":
			return &object.Boolean{Value: ln.Value < rn.Value}
		case "<=":
			return &object.Boolean{Value: ln.Value <= rn.Value}
		}
	}
	return typeErrorAt(e.Line(), "unknown binary operator "+e.Operator.Lexeme)
}

// evalLogical short-circuits: "or" returns its left operand if truthy
// without evaluating the right, "and" returns its left operand if falsey
// (spec.md §4.4).
func (i *Interpreter) evalLogical(e *ast.LogicalExpr) object.Value {
	left := i.eval(e.Left)
	if object.IsError(left) {
		return left
	}
	if e.Operator.Lexeme == "or" {
		if object.Truthy(left) {
			return left
		}
	} else {
		if !object.Truthy(left) {
			return left
		}
	}
	return i.eval(e.Right)
}

func (i *Interpreter) evalVariable(e *ast.VariableExpr) object.Value {
	v, ok := i.Env.Get(e.Name.Lexeme)
	if !ok {
		return &object.Error{Line: e.Line(), Kind: "UndefinedVariable", Message: "undefined variable '" + e.Name.Lexeme + "'"}
	}
	return v
}

func (i *Interpreter) evalAssign(e *ast.AssignExpr) object.Value {
	value := i.eval(e.Value)
	if object.IsError(value) {
		return value
	}
	if !i.Env.Assign(e.Name.Lexeme, value) {
		return &object.Error{Line: e.Line(), Kind: "UndefinedVariable", Message: "undefined variable '" + e.Name.Lexeme + "'"}
	}
	return value
}

// evalCall dispatches to either a user Function or a host Builtin,
// grounded on the teacher's evalCallExpression
// (_examples/akashmaji946-go-mix/eval/evaluator_expressions.go): evaluate
// callee, evaluate args left-to-right short-circuiting on the first error,
// check arity, then invoke.
func (i *Interpreter) evalCall(e *ast.CallExpr) object.Value {
	callee := i.eval(e.Callee)
	if object.IsError(callee) {
		return callee
	}

	args := make([]object.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v := i.eval(a)
		if object.IsError(v) {
			return v
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.Function:
		return i.callFunction(e, fn, args)
	case *object.Builtin:
		return i.callBuiltin(e, fn, args)
	default:
		return &object.Error{Line: e.Line(), Kind: "InvalidCallTarget", Message: "can only call functions"}
	}
}

func (i *Interpreter) callFunction(call *ast.CallExpr, fn *object.Function, args []object.Value) object.Value {
	if len(args) != len(fn.Params) {
		return &object.Error{Line: call.Line(), Kind: "ArityError", Message: fmt.Sprintf("expected %d argument(s), got %d", len(fn.Params), len(args))}
	}

	closure, ok := fn.Env.(*environment.Environment)
	if !ok {
		return &object.Error{Line: call.Line(), Kind: "InternalError", Message: "function has no captured environment"}
	}
	frame := closure.Push()
	for idx, param := range fn.Params {
		frame.Define(param.Lexeme, args[idx])
	}

	result := i.executeBlock(fn.Body, frame)
	if ret, ok := result.(*object.ReturnValue); ok {
		return ret.Value
	}
	if object.IsError(result) {
		return result
	}
	return &object.Nil{}
}

// callBuiltin invokes a host built-in, checking fixed arity here (where the
// call site's line is available) before builtin.Fn runs, then
// re-attributing any error the built-in returns (including its own arity
// check for variadic dbg) to the call site so diagnostics never report
// "[line 0]".
func (i *Interpreter) callBuiltin(call *ast.CallExpr, fn *object.Builtin, args []object.Value) object.Value {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return &object.Error{Line: call.Line(), Kind: "ArityError", Message: fmt.Sprintf("%s expected %d argument(s), got %d", fn.Name, fn.Arity, len(args))}
	}
	result := fn.Fn(i, args)
	if err, ok := result.(*object.Error); ok {
		err.Line = call.Line()
	}
	return result
}

func typeErrorAt(line int, message string) *object.Error {
	return &object.Error{Line: line, Kind: "TypeError", Message: message}
}
