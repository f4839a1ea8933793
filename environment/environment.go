/*
File   : golox/environment/environment.go
Package: environment
*/

// Package environment implements the lexical scope chain: a mapping from
// names to values, linked to an optional enclosing environment. A closure
// captures the environment that was current at its definition and extends
// the chain from there, which is what makes scoping lexical rather than
// dynamic. Because an environment only ever points up to its parent, and
// bindings only point to values (which point no further), the chain is
// acyclic: ordinary Go garbage collection reclaims an environment as soon
// as nothing reachable still points at it. No cycle collector is needed.
package environment

import (
	"fmt"

	"github.com/gomix-lang/golox/value"
)

// Environment is one scope's bindings plus a link to its parent. The
// global environment is the one Environment in a running interpreter
// whose Parent is nil; it lives for the interpreter's whole lifetime.
type Environment struct {
	values map[string]value.Value
	Parent *Environment
}

// New creates a scope enclosed by parent. Pass nil to create the global
// environment.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Parent: parent}
}

// Define creates or overwrites a binding in this scope only. Used for
// `var`, function declarations, and parameter binding; it never looks at
// enclosing scopes and never fails.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking the chain from this scope outward,
// returning the first match.
func (e *Environment) Get(name string) (value.Value, error) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.values[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("undefined variable %q", name)
}

// Assign writes to the innermost scope in the chain that already binds
// name. It creates no new binding: if no scope in the chain defines name,
// it fails.
func (e *Environment) Assign(name string, v value.Value) error {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("undefined variable %q", name)
}
