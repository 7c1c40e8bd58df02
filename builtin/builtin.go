/*
File    : lox/builtin/builtin.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin implements the host capability surface named in
// spec.md §6: the built-ins resolvable by name in the global environment
// at startup. Everything outside the core interpreter that these touch —
// the system clock, stdin, the PRNG, the scheduler — is an external
// collaborator per spec.md §1, reached here instead of from eval directly.
//
// Grounded on the teacher's std.Builtin / std.Runtime registry pattern
// (_examples/akashmaji946-go-mix/std/builtins.go): a name, a callback, and
// a narrow Runtime capability interface so built-ins never need to know
// about the evaluator's internals.
package builtin

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/akashmaji946/lox/object"
)

func arityError(line int, name string, expected, got int) *object.Error {
	return &object.Error{Line: line, Kind: "ArityError", Message: fmt.Sprintf("%s expected %d argument(s), got %d", name, expected, got)}
}

func typeError(line int, message string) *object.Error {
	return &object.Error{Line: line, Kind: "TypeError", Message: message}
}

// All returns the full set of host built-ins, ready to Define into the
// global environment. One Builtin value is shared across every call, so
// the errors its Fn returns carry Line 0; the evaluator attributes them to
// the call site.
func All() []*object.Builtin {
	return []*object.Builtin{
		clockBuiltin(),
		readLineBuiltin(),
		randIntRangeBuiltin(),
		sleepSecsBuiltin(),
		parseBuiltin(),
		dbgBuiltin(),
	}
}

// clock returns seconds since the Unix epoch as a Number (spec.md §6's
// "some fixed epoch" is Unix time, the host clock any Go program has).
func clockBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "clock",
		Arity: 0,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError(0, "clock", 0, len(args))
			}
			return &object.Number{Value: float64(time.Now().UnixNano()) / 1e9}
		},
	}
}

// read_line reads one line from standard input, stripping the trailing
// newline, or returns Nil on EOF.
func readLineBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "read_line",
		Arity: 0,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) != 0 {
				return arityError(0, "read_line", 0, len(args))
			}
			line, err := rt.Stdin().ReadString('\n')
			if err != nil && line == "" {
				return &object.Nil{}
			}
			line = strings.TrimRight(line, "\r\n")
			return &object.String{Value: line}
		},
	}
}

// rand_int_range returns a uniform random integer in [lo, hi] inclusive.
func randIntRangeBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "rand_int_range",
		Arity: 2,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) != 2 {
				return arityError(0, "rand_int_range", 2, len(args))
			}
			lo, ok1 := args[0].(*object.Number)
			hi, ok2 := args[1].(*object.Number)
			if !ok1 || !ok2 {
				return typeError(0, "rand_int_range expects two numbers")
			}
			loI, hiI := int64(lo.Value), int64(hi.Value)
			if hiI < loI {
				loI, hiI = hiI, loI
			}
			span := hiI - loI + 1
			return &object.Number{Value: float64(loI + rand.Int63n(span))}
		},
	}
}

// sleep_secs suspends the calling goroutine for the given number of
// seconds and returns Nil. This is the interpreter's only blocking
// built-in besides read_line (spec.md §5).
func sleepSecsBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "sleep_secs",
		Arity: 1,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError(0, "sleep_secs", 1, len(args))
			}
			n, ok := args[0].(*object.Number)
			if !ok {
				return typeError(0, "sleep_secs expects a number")
			}
			time.Sleep(time.Duration(n.Value * float64(time.Second)))
			return &object.Nil{}
		},
	}
}

// parse attempts to parse its String argument as a number, returning a
// Number on success or Nil on failure.
func parseBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "parse",
		Arity: 1,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) != 1 {
				return arityError(0, "parse", 1, len(args))
			}
			s, ok := args[0].(*object.String)
			if !ok {
				return typeError(0, "parse expects a string")
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(s.Value), 64)
			if err != nil {
				return &object.Nil{}
			}
			return &object.Number{Value: v}
		},
	}
}

// dbg prints a debug representation of its arguments and returns Nil. The
// first argument is a label; the rest are values, one per line, each
// printed as "[dbg] label: text (type)", where text is the same textual
// form print uses and type is the value's runtime type name.
func dbgBuiltin() *object.Builtin {
	return &object.Builtin{
		Name:  "dbg",
		Arity: -1,
		Fn: func(rt object.Runtime, args []object.Value) object.Value {
			if len(args) < 2 {
				return arityError(0, "dbg", 2, len(args))
			}
			label, ok := args[0].(*object.String)
			if !ok {
				return typeError(0, "dbg expects a string label as its first argument")
			}
			for _, v := range args[1:] {
				fmt.Fprintf(rt.Stdout(), "[dbg] %s: %s (%s)\n", label.Value, v.String(), v.Type())
			}
			return &object.Nil{}
		},
	}
}
