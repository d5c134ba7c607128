/*
File    : y/env/env.go
*/

// Package env implements Environment, the name-to-value binding chain that
// backs every activation record the evaluator pushes.
package env

import "github.com/uchenily/y/value"

// Environment is a mapping from identifier name to Value, with a pointer to
// an optional outer environment forming a chain. Which environment becomes
// the "outer" of a newly pushed frame is what decides lexical vs dynamic
// scoping; see eval.callUserFunction for where that choice is made.
type Environment struct {
	vars  map[string]value.Value
	Outer *Environment
}

// New creates an environment chained to outer (nil for the global frame).
func New(outer *Environment) *Environment {
	return &Environment{
		vars:  make(map[string]value.Value),
		Outer: outer,
	}
}

// Get walks this environment and its outer chain looking for name.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Outer != nil {
		return e.Outer.Get(name)
	}
	return nil, false
}

// Bind unconditionally creates or overwrites name in this environment only.
// This is what VarDecl uses: declaring a variable never touches an outer
// frame even if the same name is bound there.
func (e *Environment) Bind(name string, v value.Value) {
	e.vars[name] = v
}

// Set walks outward from this environment and updates the innermost frame
// that already binds name. It reports whether such a frame was found; a
// miss is a silent no-op at the call site (Assign itself checks definedness
// with Get beforehand and raises the interpreter error).
func (e *Environment) Set(name string, v value.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Outer != nil {
		return e.Outer.Set(name, v)
	}
	return false
}

// Delete removes name from this environment only. Used by range-for to
// remove the loop variable binding once the loop exits, matching the
// invariant that a block's local bindings do not leak past its scope.
func (e *Environment) Delete(name string) {
	delete(e.vars, name)
}
