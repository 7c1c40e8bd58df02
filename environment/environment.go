/*
File    : lox/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the lexical scope chain described in
// spec.md §4.3: a mutable name-to-value mapping per frame, linked to an
// optional enclosing frame. Closures capture a *Environment by reference,
// not by value, which is what makes mutating an outer variable after a
// closure is created visible inside that closure (spec.md §8, scenario 3).
package environment

import "github.com/akashmaji946/lox/object"

// Environment is one scope frame in the chain. It is grounded directly on
// the teacher's scope.Scope (_examples/akashmaji946-go-mix/scope/scope.go):
// same LookUp/Bind/Assign walk-the-chain shape, renamed to the vocabulary
// spec.md §4.3 uses (Get/Define/Assign/Push/Pop).
type Environment struct {
	values map[string]object.Value
	Parent *Environment
}

// New creates a root environment with no parent (the global scope).
func New() *Environment {
	return &Environment{values: make(map[string]object.Value)}
}

// Push creates a new empty child frame linked to e and returns it. Used
// when entering a block, a function call, or a loop body.
func (e *Environment) Push() *Environment {
	return &Environment{values: make(map[string]object.Value), Parent: e}
}

// Pop returns the enclosing frame. The child frame itself remains reachable
// for as long as some closure still references it (spec.md §4.3).
func (e *Environment) Pop() *Environment {
	return e.Parent
}

// Define unconditionally binds name in the current frame only. Redeclaring
// a name already bound in this frame is allowed and simply shadows the
// previous binding (spec.md §3).
func (e *Environment) Define(name string, value object.Value) {
	e.values[name] = value
}

// Get walks the frame chain outward from e, returning the first binding it
// finds. ok is false if no frame in the chain binds name.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign walks the frame chain outward from e and mutates the innermost
// frame that already binds name; it never creates a new binding. ok is
// false if no frame in the chain binds name.
func (e *Environment) Assign(name string, value object.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return false
}
