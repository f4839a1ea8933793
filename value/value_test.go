/*
File   : golox/value/value_test.go
Package: value
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Bool(false)))
	assert.False(t, Truthy(Nil{}))
	assert.True(t, Truthy(Bool(true)))
	assert.True(t, Truthy(Number(0)))
	assert.True(t, Truthy(String("")))
}

func TestEqual_DifferentKindsNeverEqual(t *testing.T) {
	assert.False(t, Equal(Number(0), String("")))
	assert.False(t, Equal(Nil{}, Bool(false)))
	assert.False(t, Equal(String("1"), Number(1)))
}

func TestEqual_SameKind(t *testing.T) {
	assert.True(t, Equal(Number(3), Number(3)))
	assert.False(t, Equal(Number(3), Number(4)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.True(t, Equal(Nil{}, Nil{}))
}

func TestNumberDisplay_ShortestRoundTrip(t *testing.T) {
	assert.Equal(t, "7", Number(7).Display())
	assert.Equal(t, "3.5", Number(3.5).Display())
}
