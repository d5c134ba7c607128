/*
File    : y/eval/eval.go
*/

// Package eval implements Y's tree-walking evaluator: an ast.Visitor that
// walks a parsed Program and produces value.Value results, maintaining the
// activation-record stack and the builtin function table along the way.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/env"
	"github.com/uchenily/y/value"
)

// Kind distinguishes why a frame was pushed onto the activation-record
// stack, needed so Return can tell whether it is legal (there must be an
// enclosing FUNCTION frame) and RangeFor/While/If know their frame is just
// a BLOCK, not a call boundary.
type Kind string

const (
	ProgramKind  Kind = "PROGRAM"
	FunctionKind Kind = "FUNCTION"
	BlockKind    Kind = "BLOCK"
)

// ActivationRecord names one frame on the call stack: its kind, nesting
// level, and the Environment backing its variable bindings.
type ActivationRecord struct {
	Name  string
	Kind  Kind
	Level int
	Env   *env.Environment
}

// Evaluator walks the AST, evaluating each node against the current
// activation record's Environment.
type Evaluator struct {
	Writer    io.Writer
	stack     []*ActivationRecord
	builtins  map[string]builtinFunc
	loopDepth int

	// globalEnv is the Environment VisitProgram's PROGRAM frame binds to. It
	// lives for the Evaluator's whole lifetime (not just one Run call) so a
	// REPL reusing one Evaluator across many Run calls keeps top-level
	// bindings from one submission visible to the next, even though the
	// PROGRAM activation record itself is pushed and popped fresh every Run
	// — per spec.md §3's "activation-record stack is non-empty exactly while
	// run is executing".
	globalEnv *env.Environment

	// errorStack snapshots the frame names present when the first error of a
	// run was raised, captured before VisitBlock/callUserFunction's deferred
	// pop unwinds them — debug mode surfaces this on failure.
	errorStack []string
}

type builtinFunc func(e *Evaluator, pos ast.Pos, args []value.Value) value.Value

// New creates an evaluator with an empty activation-record stack (Run/
// VisitProgram pushes and pops the PROGRAM frame itself) and the standard
// builtin table registered.
func New() *Evaluator {
	e := &Evaluator{
		Writer:    os.Stdout,
		globalEnv: env.New(nil),
	}
	e.builtins = registerBuiltins()
	return e
}

func (e *Evaluator) top() *ActivationRecord {
	return e.stack[len(e.stack)-1]
}

// push adds a new frame whose outer environment is given explicitly by the
// caller — this is the one place the choice between dynamic and lexical
// scoping is made (see callUserFunction).
func (e *Evaluator) push(name string, kind Kind, outer *env.Environment) *ActivationRecord {
	rec := &ActivationRecord{
		Name:  name,
		Kind:  kind,
		Level: len(e.stack) + 1,
		Env:   env.New(outer),
	}
	e.stack = append(e.stack, rec)
	return rec
}

func (e *Evaluator) pop() {
	e.stack = e.stack[:len(e.stack)-1]
}

// inFunction reports whether any frame from the top down to (and including)
// the nearest enclosing call boundary is a FUNCTION frame — used to check
// that `return` only appears inside a function body.
func (e *Evaluator) inFunction() bool {
	for i := len(e.stack) - 1; i >= 0; i-- {
		if e.stack[i].Kind == FunctionKind {
			return true
		}
	}
	return false
}

func (e *Evaluator) errf(node ast.Node, format string, args ...interface{}) *value.Error {
	return e.errAt(node.Position(), format, args...)
}

func (e *Evaluator) errAt(pos ast.Pos, format string, args ...interface{}) *value.Error {
	e.snapshotStack()
	return &value.Error{Message: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}

// snapshotStack records the current frame names the first time an error is
// raised in a run; later propagation through the already-unwound stack
// must not overwrite it.
func (e *Evaluator) snapshotStack() {
	if e.errorStack != nil {
		return
	}
	names := make([]string, len(e.stack))
	for i, rec := range e.stack {
		names[i] = fmt.Sprintf("#%d %s(%s)", rec.Level, rec.Name, rec.Kind)
	}
	e.errorStack = names
}

// DebugStack returns the activation-record stack captured at the moment the
// last error was raised, or nil if the last run succeeded.
func (e *Evaluator) DebugStack() []string {
	return e.errorStack
}

// Run evaluates a parsed program to completion. It returns the first
// InterpreterError raised, or nil on success. The activation-record stack
// is guaranteed to be empty again once Run returns, whether evaluation
// succeeded or failed — VisitProgram pushes the PROGRAM frame and pops it
// on every exit path.
func (e *Evaluator) Run(prog *ast.Program) error {
	e.errorStack = nil
	result := prog.Accept(e)
	if err, ok := result.(*value.Error); ok {
		return err
	}
	return nil
}

// Eval evaluates a single node against the evaluator's current frame. It
// pushes no frame of its own, so a node that reads or binds a variable needs
// a frame already on the stack; the REPL does not use it and evaluates each
// submission through Run instead.
func (e *Evaluator) Eval(node ast.Node) value.Value {
	return node.Accept(e)
}
