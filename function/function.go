/*
File    : y/function/function.go
*/

// Package function defines the runtime Function value: a user-defined
// function's name, parameters, body, and the activation record it was
// defined in.
package function

import (
	"fmt"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/env"
	"github.com/uchenily/y/value"
)

// Function represents a user-defined function object. It carries the
// environment that was current at FuncDecl time in Closure, but this
// language resolves free variables dynamically: a call pushes a new frame
// whose outer pointer is the caller's current environment, not Closure.
// Closure is kept for inspection/debugging only and is unread by the call
// path.
type Function struct {
	Name    string
	Params  []string
	Body    *ast.Block
	Closure *env.Environment
}

func (f *Function) Type() value.Type { return value.FunctionType }

func (f *Function) String() string {
	return fmt.Sprintf("<function %s>", f.Name)
}
