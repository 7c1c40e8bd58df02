/*
File    : lox/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/lox/object"
	"github.com/stretchr/testify/assert"
)

func TestDefineAndGet(t *testing.T) {
	env := New()
	env.Define("x", &object.Number{Value: 42})

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &object.Number{Value: 42}, v)
}

func TestGet_UndefinedInEmptyChain(t *testing.T) {
	env := New()
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestGet_WalksParentChain(t *testing.T) {
	parent := New()
	parent.Define("x", &object.Number{Value: 1})
	child := parent.Push()

	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &object.Number{Value: 1}, v)
}

func TestDefine_ShadowsInChildFrameOnly(t *testing.T) {
	parent := New()
	parent.Define("x", &object.Number{Value: 1})
	child := parent.Push()
	child.Define("x", &object.Number{Value: 2})

	childVal, _ := child.Get("x")
	parentVal, _ := parent.Get("x")
	assert.Equal(t, &object.Number{Value: 2}, childVal)
	assert.Equal(t, &object.Number{Value: 1}, parentVal)
}

func TestAssign_MutatesExistingBindingInAncestor(t *testing.T) {
	parent := New()
	parent.Define("x", &object.Number{Value: 1})
	child := parent.Push()

	ok := child.Assign("x", &object.Number{Value: 99})
	assert.True(t, ok)

	v, _ := parent.Get("x")
	assert.Equal(t, &object.Number{Value: 99}, v)
}

func TestAssign_FailsWhenUndefinedAnywhere(t *testing.T) {
	env := New()
	ok := env.Assign("never_defined", &object.Nil{})
	assert.False(t, ok)
}

func TestPop_ReturnsParent(t *testing.T) {
	parent := New()
	child := parent.Push()
	assert.Same(t, parent, child.Pop())
}
