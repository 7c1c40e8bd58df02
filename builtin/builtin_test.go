/*
File    : lox/builtin/builtin_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akashmaji946/lox/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRuntime is a minimal object.Runtime for exercising built-ins directly,
// without going through eval.Interpreter.
type fakeRuntime struct {
	out *bytes.Buffer
	in  *bufio.Reader
}

func newFakeRuntime(stdin string) *fakeRuntime {
	return &fakeRuntime{out: &bytes.Buffer{}, in: bufio.NewReader(strings.NewReader(stdin))}
}

func (rt *fakeRuntime) Stdout() object.WriteCloser { return rt.out }
func (rt *fakeRuntime) Stdin() object.ReadCloser   { return rt.in }

func TestAll_NamesEveryHostBuiltin(t *testing.T) {
	names := map[string]bool{}
	for _, b := range All() {
		names[b.Name] = true
	}
	for _, want := range []string{"clock", "read_line", "rand_int_range", "sleep_secs", "parse", "dbg"} {
		assert.True(t, names[want], "All() missing %q", want)
	}
}

func TestClock_ReturnsPlausibleUnixSeconds(t *testing.T) {
	rt := newFakeRuntime("")
	before := float64(time.Now().Unix())
	v := clockBuiltin().Fn(rt, nil)
	n, ok := v.(*object.Number)
	require.True(t, ok)
	assert.GreaterOrEqual(t, n.Value, before-1)
	assert.LessOrEqual(t, n.Value, before+2)
}

func TestClock_ArityError(t *testing.T) {
	rt := newFakeRuntime("")
	v := clockBuiltin().Fn(rt, []object.Value{&object.Nil{}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestReadLine_StripsTrailingNewline(t *testing.T) {
	rt := newFakeRuntime("hello\nworld")
	v := readLineBuiltin().Fn(rt, nil)
	s, ok := v.(*object.String)
	require.True(t, ok)
	assert.Equal(t, "hello", s.Value)
}

func TestReadLine_NilOnEOF(t *testing.T) {
	rt := newFakeRuntime("")
	v := readLineBuiltin().Fn(rt, nil)
	_, ok := v.(*object.Nil)
	assert.True(t, ok)
}

func TestReadLine_ArityError(t *testing.T) {
	rt := newFakeRuntime("")
	v := readLineBuiltin().Fn(rt, []object.Value{&object.Nil{}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestRandIntRange_StaysWithinBounds(t *testing.T) {
	rt := newFakeRuntime("")
	fn := randIntRangeBuiltin()
	for i := 0; i < 50; i++ {
		v := fn.Fn(rt, []object.Value{&object.Number{Value: 3}, &object.Number{Value: 7}})
		n, ok := v.(*object.Number)
		require.True(t, ok)
		assert.GreaterOrEqual(t, n.Value, float64(3))
		assert.LessOrEqual(t, n.Value, float64(7))
	}
}

func TestRandIntRange_SwapsInvertedBounds(t *testing.T) {
	rt := newFakeRuntime("")
	v := randIntRangeBuiltin().Fn(rt, []object.Value{&object.Number{Value: 9}, &object.Number{Value: 5}})
	n, ok := v.(*object.Number)
	require.True(t, ok)
	assert.GreaterOrEqual(t, n.Value, float64(5))
	assert.LessOrEqual(t, n.Value, float64(9))
}

func TestRandIntRange_ArityError(t *testing.T) {
	rt := newFakeRuntime("")
	v := randIntRangeBuiltin().Fn(rt, []object.Value{&object.Number{Value: 1}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestRandIntRange_TypeError(t *testing.T) {
	rt := newFakeRuntime("")
	v := randIntRangeBuiltin().Fn(rt, []object.Value{&object.String{Value: "a"}, &object.Number{Value: 1}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "TypeError", err.Kind)
}

func TestSleepSecs_SleepsApproximatelyRequestedDuration(t *testing.T) {
	rt := newFakeRuntime("")
	start := time.Now()
	v := sleepSecsBuiltin().Fn(rt, []object.Value{&object.Number{Value: 0.02}})
	elapsed := time.Since(start)
	_, ok := v.(*object.Nil)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestSleepSecs_TypeError(t *testing.T) {
	rt := newFakeRuntime("")
	v := sleepSecsBuiltin().Fn(rt, []object.Value{&object.String{Value: "a"}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "TypeError", err.Kind)
}

func TestSleepSecs_ArityError(t *testing.T) {
	rt := newFakeRuntime("")
	v := sleepSecsBuiltin().Fn(rt, nil)
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestParse_StringOfDigitsBecomesNumber(t *testing.T) {
	rt := newFakeRuntime("")
	v := parseBuiltin().Fn(rt, []object.Value{&object.String{Value: "3.5"}})
	n, ok := v.(*object.Number)
	require.True(t, ok)
	assert.Equal(t, 3.5, n.Value)
}

func TestParse_NonNumericStringIsNil(t *testing.T) {
	rt := newFakeRuntime("")
	v := parseBuiltin().Fn(rt, []object.Value{&object.String{Value: "x"}})
	_, ok := v.(*object.Nil)
	assert.True(t, ok)
}

func TestParse_TypeError(t *testing.T) {
	rt := newFakeRuntime("")
	v := parseBuiltin().Fn(rt, []object.Value{&object.Number{Value: 1}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "TypeError", err.Kind)
}

func TestParse_ArityError(t *testing.T) {
	rt := newFakeRuntime("")
	v := parseBuiltin().Fn(rt, nil)
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestDbg_PrintsLabelAndTypePerArgument(t *testing.T) {
	rt := newFakeRuntime("")
	v := dbgBuiltin().Fn(rt, []object.Value{&object.String{Value: "x"}, &object.Number{Value: 1}, &object.String{Value: "s"}})
	_, ok := v.(*object.Nil)
	require.True(t, ok)
	assert.Equal(t, "[dbg] x: 1 (number)\n[dbg] x: s (string)\n", rt.out.String())
}

func TestDbg_ArityErrorUnderTwoArgs(t *testing.T) {
	rt := newFakeRuntime("")
	v := dbgBuiltin().Fn(rt, []object.Value{&object.String{Value: "x"}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "ArityError", err.Kind)
}

func TestDbg_TypeErrorWhenFirstArgNotString(t *testing.T) {
	rt := newFakeRuntime("")
	v := dbgBuiltin().Fn(rt, []object.Value{&object.Number{Value: 1}, &object.Number{Value: 2}})
	err, ok := v.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "TypeError", err.Kind)
}
