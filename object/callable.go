/*
File    : lox/object/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
)

// Env is the minimal interface object needs from environment.Environment to
// describe a closure's captured frame, without importing the environment
// package (which itself imports object for Value, so importing it here
// would be a cycle). The concrete type satisfying this is always
// *environment.Environment; eval constructs and unwraps it directly.
type Env interface{}

// Function is a user-defined function value: its parameter list, its body,
// and a reference to the frame active when it was declared (the capture
// that makes it a closure). Grounded on the teacher's function.Function
// (_examples/akashmaji946-go-mix/function/function.go), generalized from a
// single captured scope.Scope to the interface above so this package
// doesn't need to import environment.
type Function struct {
	Name   string // "" for an anonymous function literal
	Params []lexer.Token
	Body   []ast.Stmt
	Env    Env
}

func (f *Function) Type() Type { return FunctionType }

// String renders "<fn name>" or "<fn>" for anonymous functions, per
// spec.md §4.4.
func (f *Function) String() string {
	if f.Name == "" {
		return "<fn>"
	}
	return fmt.Sprintf("<fn %s>", f.Name)
}

// BuiltinFunc is the signature every host built-in implements. It receives
// already-evaluated arguments and returns a Value, or an *Error on failure.
// The Runtime parameter gives built-ins access to interpreter-owned I/O
// without this package importing eval (mirrors the teacher's std.Runtime
// indirection in std/builtins.go).
type BuiltinFunc func(rt Runtime, args []Value) Value

// Runtime is the narrow capability surface a built-in needs from the
// interpreter: where to read and where to write.
type Runtime interface {
	Stdout() WriteCloser
	Stdin() ReadCloser
}

// WriteCloser and ReadCloser avoid importing io here just to name two
// methods; eval's concrete Interpreter satisfies both via the io.Writer and
// *bufio.Reader it already holds.
type WriteCloser interface {
	Write(p []byte) (n int, err error)
}
type ReadCloser interface {
	ReadString(delim byte) (string, error)
}

// Builtin is a host-provided callable exposed in the global environment
// under a fixed name (spec.md §6). Arity is -1 for variadic built-ins
// (e.g. dbg, which takes 2 or more arguments).
type Builtin struct {
	Name  string
	Arity int
	Fn    BuiltinFunc
}

func (b *Builtin) Type() Type     { return BuiltinType }
func (b *Builtin) String() string { return fmt.Sprintf("<native fn %s>", b.Name) }
