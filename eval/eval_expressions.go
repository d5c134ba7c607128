/*
File    : y/eval/eval_expressions.go
*/
package eval

import (
	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/value"
)

func (e *Evaluator) VisitNumber(n *ast.Number) value.Value {
	return parseNumberLiteral(n)
}

// VisitString strips the surrounding quotes the lexer/parser carried along
// in the AST node's literal text; the runtime value holds the bare contents.
func (e *Evaluator) VisitString(n *ast.String) value.Value {
	return &value.String{Value: stripQuotes(n.Value)}
}

func (e *Evaluator) VisitTrue(n *ast.True) value.Value { return value.True }
func (e *Evaluator) VisitFalse(n *ast.False) value.Value { return value.False }
func (e *Evaluator) VisitNil(n *ast.Nil) value.Value { return value.NilValue }

func (e *Evaluator) VisitIdentifier(n *ast.Identifier) value.Value {
	if v, ok := e.top().Env.Get(n.Name); ok {
		return v
	}
	return e.errf(n, "undefined identifier %q", n.Name)
}

func (e *Evaluator) VisitParen(n *ast.Paren) value.Value {
	return n.Expr.Accept(e)
}

func (e *Evaluator) VisitNot(n *ast.Not) value.Value {
	operand := n.Operand.Accept(e)
	if value.IsSignal(operand) {
		return operand
	}
	return value.NewBool(!value.Truthy(operand))
}

func (e *Evaluator) VisitNegative(n *ast.Negative) value.Value {
	operand := n.Operand.Accept(e)
	if value.IsSignal(operand) {
		return operand
	}
	num, ok := operand.(*value.Number)
	if !ok {
		return e.errf(n, "unary - requires a number, got %s", operand.Type())
	}
	if num.IsFloat {
		return value.NewFloat(-num.Float)
	}
	return value.NewInt(-num.Int)
}

// evalOperands evaluates left and right, returning the first propagating
// signal encountered (left before right) so callers only need one check.
func (e *Evaluator) evalOperands(left, right ast.Node) (value.Value, value.Value, value.Value) {
	lv := left.Accept(e)
	if value.IsSignal(lv) {
		return lv, nil, lv
	}
	rv := right.Accept(e)
	if value.IsSignal(rv) {
		return lv, rv, rv
	}
	return lv, rv, nil
}

func (e *Evaluator) VisitBinary(n *ast.Binary) value.Value {
	lv, rv, signal := e.evalOperands(n.Left, n.Right)
	if signal != nil {
		return signal
	}
	lnum, lok := lv.(*value.Number)
	rnum, rok := rv.(*value.Number)
	if !lok || !rok {
		return e.errf(n, "arithmetic requires numbers, got %s and %s", lv.Type(), rv.Type())
	}

	useFloat := lnum.IsFloat || rnum.IsFloat
	switch n.Op {
	case "+":
		if useFloat {
			return value.NewFloat(lnum.AsFloat() + rnum.AsFloat())
		}
		return value.NewInt(lnum.Int + rnum.Int)
	case "-":
		if useFloat {
			return value.NewFloat(lnum.AsFloat() - rnum.AsFloat())
		}
		return value.NewInt(lnum.Int - rnum.Int)
	case "*":
		if useFloat {
			return value.NewFloat(lnum.AsFloat() * rnum.AsFloat())
		}
		return value.NewInt(lnum.Int * rnum.Int)
	case "/":
		if useFloat {
			return value.NewFloat(lnum.AsFloat() / rnum.AsFloat())
		}
		if rnum.Int == 0 {
			return e.errf(n, "division by zero")
		}
		return value.NewInt(lnum.Int / rnum.Int)
	case "%":
		if useFloat {
			return e.errf(n, "%% requires integer operands")
		}
		if rnum.Int == 0 {
			return e.errf(n, "division by zero")
		}
		return value.NewInt(lnum.Int % rnum.Int)
	default:
		return e.errf(n, "unknown arithmetic operator %q", n.Op)
	}
}

func (e *Evaluator) VisitCompare(n *ast.Compare) value.Value {
	lv, rv, signal := e.evalOperands(n.Left, n.Right)
	if signal != nil {
		return signal
	}

	switch n.Op {
	case "==":
		return value.NewBool(valuesEqual(lv, rv))
	case "!=":
		return value.NewBool(!valuesEqual(lv, rv))
	}

	lnum, lok := lv.(*value.Number)
	rnum, rok := rv.(*value.Number)
	if !lok || !rok {
		return e.errf(n, "comparison requires numbers, got %s and %s", lv.Type(), rv.Type())
	}
	l, r := lnum.AsFloat(), rnum.AsFloat()
	switch n.Op {
	case "<":
		return value.NewBool(l < r)
	case "<=":
		return value.NewBool(l <= r)
	case ">":
		return value.NewBool(l > r)
	case ">=":
		return value.NewBool(l >= r)
	default:
		return e.errf(n, "unknown comparison operator %q", n.Op)
	}
}

func valuesEqual(l, r value.Value) bool {
	if l.Type() != r.Type() {
		return false
	}
	switch lv := l.(type) {
	case *value.Number:
		return lv.AsFloat() == r.(*value.Number).AsFloat()
	case *value.String:
		return lv.Value == r.(*value.String).Value
	case *value.Bool:
		return lv.Value == r.(*value.Bool).Value
	case *value.Nil:
		return true
	default:
		return l == r
	}
}

// And/Or are strict: both operands are always evaluated, with no
// short-circuiting on the left operand's truthiness.
func (e *Evaluator) VisitAnd(n *ast.And) value.Value {
	lv, rv, signal := e.evalOperands(n.Left, n.Right)
	if signal != nil {
		return signal
	}
	return value.NewBool(value.Truthy(lv) && value.Truthy(rv))
}

func (e *Evaluator) VisitOr(n *ast.Or) value.Value {
	lv, rv, signal := e.evalOperands(n.Left, n.Right)
	if signal != nil {
		return signal
	}
	return value.NewBool(value.Truthy(lv) || value.Truthy(rv))
}

func (e *Evaluator) VisitArrayLit(n *ast.ArrayLit) value.Value {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := el.Accept(e)
		if value.IsSignal(v) {
			return v
		}
		elems = append(elems, v)
	}
	return &value.Array{Elements: elems}
}

func (e *Evaluator) VisitArrayAccess(n *ast.ArrayAccess) value.Value {
	baseVal, idxVal, signal := e.evalOperands(n.Base, n.Index)
	if signal != nil {
		return signal
	}
	arr, ok := baseVal.(*value.Array)
	if !ok {
		return e.errf(n, "cannot index into %s", baseVal.Type())
	}
	idxNum, ok := idxVal.(*value.Number)
	if !ok || idxNum.IsFloat {
		return e.errf(n, "array index must be an integer")
	}
	idx := int(idxNum.Int)
	if idx < 0 || idx >= len(arr.Elements) {
		return e.errf(n, "array index %d out of bounds (length %d)", idx, len(arr.Elements))
	}
	return arr.Elements[idx]
}
