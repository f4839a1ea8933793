/*
File   : golox/environment/environment_test.go
Package: environment
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gomix-lang/golox/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(10))
	v, err := env.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(10), v)
}

func TestGet_UndefinedFails(t *testing.T) {
	env := New(nil)
	_, err := env.Get("missing")
	assert.Error(t, err)
}

func TestGet_WalksChain(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), v)
}

func TestGet_InnerShadowsOuter(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)
	child.Define("x", value.Number(2))
	v, err := child.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(2), v)

	outer, err := global.Get("x")
	assert.NoError(t, err)
	assert.Equal(t, value.Number(1), outer)
}

func TestAssign_WritesInnermostDefiningScope(t *testing.T) {
	global := New(nil)
	global.Define("x", value.Number(1))
	child := New(global)

	err := child.Assign("x", value.Number(99))
	assert.NoError(t, err)

	v, _ := global.Get("x")
	assert.Equal(t, value.Number(99), v)
	_, ok := child.values["x"]
	assert.False(t, ok, "Assign must not create a new binding in the current scope")
}

func TestAssign_UndefinedFails(t *testing.T) {
	env := New(nil)
	err := env.Assign("ghost", value.Number(1))
	assert.Error(t, err)
}

func TestVar_AlwaysOverwritesCurrentScope(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number(1))
	env.Define("x", value.Number(2))
	v, _ := env.Get("x")
	assert.Equal(t, value.Number(2), v)
}
