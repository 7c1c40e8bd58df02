/*
File    : lox/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval is the tree-walking evaluator: a direct match over the
// ast.Stmt/ast.Expr variants (spec.md §9 explicitly rejects a
// visitor-pattern requirement), carrying a mutable reference to the
// current environment.Environment. Grounded on the teacher's
// eval.Evaluator (_examples/akashmaji946-go-mix/eval/evaluator.go):
// same shape (parser/scope/builtins/writer/reader fields, a NewEvaluator
// constructor, SetWriter/SetReader for redirecting built-in I/O in tests),
// generalized from Go-Mix's value model to Lox's.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/builtin"
	"github.com/akashmaji946/lox/environment"
	"github.com/akashmaji946/lox/object"
)

// Interpreter holds the evaluation state: the global environment (where
// built-ins live), the currently active environment, and the I/O streams
// built-ins read and write through.
type Interpreter struct {
	Globals *environment.Environment
	Env     *environment.Environment
	out     io.Writer
	in      *bufio.Reader
}

// New creates an Interpreter with a fresh global environment populated
// with every built-in from package builtin, writing to os.Stdout and
// reading from os.Stdin by default.
func New() *Interpreter {
	globals := environment.New()
	for _, b := range builtin.All() {
		globals.Define(b.Name, b)
	}
	return &Interpreter{
		Globals: globals,
		Env:     globals,
		out:     os.Stdout,
		in:      bufio.NewReader(os.Stdin),
	}
}

// SetOutput redirects built-in output (print, println, dbg) to w. Used by
// the REPL server to write to a network connection and by tests to capture
// output into a buffer.
func (i *Interpreter) SetOutput(w io.Writer) {
	i.out = w
}

// SetInput redirects read_line's source.
func (i *Interpreter) SetInput(r io.Reader) {
	i.in = bufio.NewReader(r)
}

// Stdout implements object.Runtime.
func (i *Interpreter) Stdout() object.WriteCloser { return i.out }

// Stdin implements object.Runtime.
func (i *Interpreter) Stdin() object.ReadCloser { return i.in }

// Run executes a whole program (a statement list, as produced by
// parser.Parse) against the interpreter's current environment, returning
// the first *object.Error encountered, or nil on a clean run. In file mode
// a single Run call executes the whole file; in REPL mode one Run call
// executes one line, and the same Interpreter (hence the same top-level
// environment) is reused across calls so definitions accumulate
// (spec.md §4.5).
func (i *Interpreter) Run(program []ast.Stmt) *object.Error {
	for _, stmt := range program {
		result := i.execute(stmt)
		if err, ok := result.(*object.Error); ok {
			return err
		}
	}
	return nil
}
