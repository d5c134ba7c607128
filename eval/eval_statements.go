/*
File    : y/eval/eval_statements.go
*/
package eval

import (
	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/function"
	"github.com/uchenily/y/value"
)

// VisitProgram pushes the bottom-of-stack PROGRAM activation record —
// level 1, no outer environment — and pops it again on every exit path, so
// the activation-record stack is empty before this call and empty again
// after it returns, whether evaluation succeeded or failed. The record's
// Environment is the Evaluator's long-lived globalEnv rather than a fresh
// one, so top-level bindings survive across separate Run calls against the
// same Evaluator (what the REPL relies on).
func (e *Evaluator) VisitProgram(n *ast.Program) value.Value {
	e.stack = append(e.stack, &ActivationRecord{Name: "main", Kind: ProgramKind, Level: 1, Env: e.globalEnv})
	defer e.pop()

	for _, decl := range n.Decls {
		result := decl.Accept(e)
		if value.IsSignal(result) {
			return result
		}
	}
	return value.NilValue
}

// VisitBlock pushes a BLOCK activation record chained to the current
// frame's environment, evaluates each declaration in order, and pops the
// record on every exit path — normal completion, a propagating sentinel,
// or an error.
func (e *Evaluator) VisitBlock(n *ast.Block) value.Value {
	e.push("block", BlockKind, e.top().Env)
	defer e.pop()

	var last value.Value = value.NilValue
	for _, decl := range n.Decls {
		result := decl.Accept(e)
		if value.IsSignal(result) {
			return result
		}
		last = result
	}
	return last
}

func (e *Evaluator) VisitVarDecl(n *ast.VarDecl) value.Value {
	var v value.Value = value.NilValue
	if n.Init != nil {
		result := n.Init.Accept(e)
		if value.IsSignal(result) {
			return result
		}
		v = result
	}
	e.top().Env.Bind(n.Name, v)
	return value.NilValue
}

func (e *Evaluator) VisitFuncDecl(n *ast.FuncDecl) value.Value {
	fn := &function.Function{
		Name:    n.Name,
		Params:  n.Params,
		Body:    n.Body,
		Closure: e.top().Env,
	}
	e.top().Env.Bind(n.Name, fn)
	return value.NilValue
}

func (e *Evaluator) VisitAssign(n *ast.Assign) value.Value {
	val := n.Value.Accept(e)
	if value.IsSignal(val) {
		return val
	}

	switch target := n.Target.(type) {
	case *ast.Identifier:
		if _, ok := e.top().Env.Get(target.Name); !ok {
			return e.errf(n, "assignment to undefined variable %q", target.Name)
		}
		e.top().Env.Set(target.Name, val)
		return val
	case *ast.ArrayAccess:
		baseVal := target.Base.Accept(e)
		if value.IsSignal(baseVal) {
			return baseVal
		}
		arr, ok := baseVal.(*value.Array)
		if !ok {
			return e.errf(n, "cannot index into %s", baseVal.Type())
		}
		idxVal := target.Index.Accept(e)
		if value.IsSignal(idxVal) {
			return idxVal
		}
		idxNum, ok := idxVal.(*value.Number)
		if !ok || idxNum.IsFloat {
			return e.errf(n, "array index must be an integer")
		}
		idx := int(idxNum.Int)
		if idx < 0 || idx >= len(arr.Elements) {
			return e.errf(n, "array index %d out of bounds (length %d)", idx, len(arr.Elements))
		}
		arr.Elements[idx] = val
		return val
	default:
		return e.errf(n, "invalid assignment target")
	}
}

func (e *Evaluator) VisitIf(n *ast.If) value.Value {
	cond := n.Primary.Cond.Accept(e)
	if value.IsSignal(cond) {
		return cond
	}
	if value.Truthy(cond) {
		return n.Primary.Block.Accept(e)
	}

	for _, elif := range n.Elifs {
		econd := elif.Cond.Accept(e)
		if value.IsSignal(econd) {
			return econd
		}
		if value.Truthy(econd) {
			return elif.Block.Accept(e)
		}
	}

	if n.Else != nil {
		return n.Else.Accept(e)
	}
	return value.NilValue
}

func (e *Evaluator) VisitWhile(n *ast.While) value.Value {
	e.loopDepth++
	defer func() { e.loopDepth-- }()

	for {
		cond := n.Cond.Accept(e)
		if value.IsSignal(cond) {
			return cond
		}
		if !value.Truthy(cond) {
			return value.NilValue
		}
		result := n.Body.Accept(e)
		switch result.Type() {
		case value.BreakType:
			return value.NilValue
		case value.ContinueType:
			continue
		case value.ReturnType, value.ErrorType:
			return result
		}
	}
}

// VisitRangeFor binds Var in the current frame for the duration of the
// loop and removes it again once the loop exits on any path, so the loop
// variable does not leak past the for-statement's scope.
func (e *Evaluator) VisitRangeFor(n *ast.RangeFor) value.Value {
	iterVal := n.Iterable.Accept(e)
	if value.IsSignal(iterVal) {
		return iterVal
	}
	arr, ok := iterVal.(*value.Array)
	if !ok {
		return e.errf(n, "for-in requires an array, got %s", iterVal.Type())
	}

	e.loopDepth++
	defer func() { e.loopDepth-- }()
	defer e.top().Env.Delete(n.Var)

	for _, elem := range arr.Elements {
		e.top().Env.Bind(n.Var, elem)
		result := n.Body.Accept(e)
		switch result.Type() {
		case value.BreakType:
			return value.NilValue
		case value.ContinueType:
			continue
		case value.ReturnType, value.ErrorType:
			return result
		}
	}
	return value.NilValue
}

func (e *Evaluator) VisitReturn(n *ast.Return) value.Value {
	if !e.inFunction() {
		return e.errf(n, "return outside function")
	}
	val := n.Expr.Accept(e)
	if value.IsSignal(val) {
		return val
	}
	return &value.Return{Value: val}
}

func (e *Evaluator) VisitBreak(n *ast.Break) value.Value {
	if e.loopDepth == 0 {
		return e.errf(n, "break outside loop")
	}
	return &value.Break{}
}

func (e *Evaluator) VisitContinue(n *ast.Continue) value.Value {
	if e.loopDepth == 0 {
		return e.errf(n, "continue outside loop")
	}
	return &value.Continue{}
}

func (e *Evaluator) VisitUnknown(n ast.Node) value.Value {
	return e.errf(n, "cannot evaluate node")
}
