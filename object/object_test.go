/*
File    : lox/object/object_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberString_ElidesTrailingZero(t *testing.T) {
	assert.Equal(t, "1", (&Number{Value: 1}).String())
	assert.Equal(t, "1.5", (&Number{Value: 1.5}).String())
	assert.Equal(t, "-2", (&Number{Value: -2}).String())
	assert.Equal(t, "0", (&Number{Value: 0}).String())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(&Nil{}))
	assert.False(t, Truthy(&Boolean{Value: false}))
	assert.True(t, Truthy(&Boolean{Value: true}))
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
}

func TestEqual_DifferentTypesAreUnequal(t *testing.T) {
	assert.False(t, Equal(&Number{Value: 1}, &String{Value: "1"}))
}

func TestEqual_NumbersByValue(t *testing.T) {
	assert.True(t, Equal(&Number{Value: 3}, &Number{Value: 3}))
	assert.False(t, Equal(&Number{Value: 3}, &Number{Value: 4}))
}

func TestEqual_NaNIsNeverEqual(t *testing.T) {
	nan := &Number{Value: nanValue()}
	assert.False(t, Equal(nan, nan))
}

func TestEqual_FunctionsByIdentity(t *testing.T) {
	f1 := &Function{Name: "f"}
	f2 := &Function{Name: "f"}
	assert.True(t, Equal(f1, f1))
	assert.False(t, Equal(f1, f2))
}

func TestIsErrorAndIsReturn(t *testing.T) {
	assert.True(t, IsError(&Error{Kind: "TypeError", Message: "boom"}))
	assert.False(t, IsError(&Nil{}))
	assert.True(t, IsReturn(&ReturnValue{Value: &Nil{}}))
	assert.False(t, IsReturn(&Nil{}))
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
