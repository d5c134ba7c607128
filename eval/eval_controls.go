/*
File    : y/eval/eval_controls.go
*/
package eval

import (
	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/function"
	"github.com/uchenily/y/value"
)

func (e *Evaluator) evalArgs(nodes []ast.Node) ([]value.Value, value.Value) {
	args := make([]value.Value, 0, len(nodes))
	for _, a := range nodes {
		v := a.Accept(e)
		if value.IsSignal(v) {
			return nil, v
		}
		args = append(args, v)
	}
	return args, nil
}

// VisitFunctionCall calls either a builtin (print, range) or a user-defined
// function, bound by looking up the callee identifier directly against the
// builtin table first — builtins are not values bound in any Environment.
func (e *Evaluator) VisitFunctionCall(n *ast.FunctionCall) value.Value {
	if ident, ok := n.Callee.(*ast.Identifier); ok {
		if builtin, ok := e.builtins[ident.Name]; ok {
			args, signal := e.evalArgs(n.Args)
			if signal != nil {
				return signal
			}
			return builtin(e, n.Pos, args)
		}
	}

	calleeVal := n.Callee.Accept(e)
	if value.IsSignal(calleeVal) {
		return calleeVal
	}
	fn, ok := calleeVal.(*function.Function)
	if !ok {
		return e.errf(n, "cannot call %s as a function", calleeVal.Type())
	}

	args, signal := e.evalArgs(n.Args)
	if signal != nil {
		return signal
	}
	return e.callUserFunction(n, fn, args)
}

// callUserFunction pushes a FUNCTION frame whose outer environment is the
// *caller's* current frame, not fn.Closure — the dynamic-scoping call
// convention. Body is a Block, so evaluating it pushes a further BLOCK
// frame nested inside this one, each popped on every exit path.
//
// Parameters are bound by zipping with the evaluated arguments: excess
// parameters are left unbound, excess arguments are silently ignored — no
// arity check.
func (e *Evaluator) callUserFunction(call *ast.FunctionCall, fn *function.Function, args []value.Value) value.Value {
	e.push(fn.Name, FunctionKind, e.top().Env)
	defer e.pop()

	for i, param := range fn.Params {
		if i >= len(args) {
			break
		}
		e.top().Env.Bind(param, args[i])
	}

	result := fn.Body.Accept(e)
	if ret, ok := result.(*value.Return); ok {
		return ret.Value
	}
	if value.IsError(result) {
		return result
	}
	// loopDepth is not reset across calls, so a break/continue in a function
	// called from inside a loop is accepted and escapes the body as a
	// Break/Continue; it is dropped here and the call yields Nil.
	return value.NilValue
}
