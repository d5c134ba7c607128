/*
File    : y/internal/visualize/visualize.go
*/

// Package visualize renders a parsed Y program as a Graphviz DOT graph, one
// numbered node per AST variant with edges from parent to child — a
// diagnostic-only tool run by the CLI's --ast flag, writing to --ast-file.
package visualize

import (
	"fmt"
	"strings"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/value"
)

// Visualizer implements ast.Visitor. Each Visit method emits one labeled
// DOT node for itself, recurses into its children, and returns its own
// node number wrapped as a value.Number so the caller can draw the edge.
type Visualizer struct {
	count int
	body  []string
}

func New() *Visualizer { return &Visualizer{} }

// Generate returns the complete DOT source for prog.
func (v *Visualizer) Generate(prog *ast.Program) string {
	v.count = 0
	v.body = nil
	prog.Accept(v)

	var b strings.Builder
	b.WriteString("digraph astgraph {\n")
	b.WriteString("  node [fontsize=12, fontname=\"Courier\", height=.1];\n\n")
	for _, line := range v.body {
		b.WriteString(line)
	}
	b.WriteString("}\n")
	return b.String()
}

func (v *Visualizer) node(label string) int {
	id := v.count
	v.count++
	v.body = append(v.body, fmt.Sprintf("  node%d [label=%q]\n", id, label))
	return id
}

func (v *Visualizer) edge(parent, child int) {
	v.body = append(v.body, fmt.Sprintf("  node%d -> node%d\n", parent, child))
}

func idOf(result value.Value) int {
	return int(result.(*value.Number).Int)
}

func (v *Visualizer) visitChild(parent int, child ast.Node) {
	v.edge(parent, idOf(child.Accept(v)))
}

func ret(id int) value.Value { return value.NewInt(int64(id)) }

func (v *Visualizer) VisitProgram(n *ast.Program) value.Value {
	id := v.node("Program")
	for _, decl := range n.Decls {
		v.visitChild(id, decl)
	}
	return ret(id)
}

func (v *Visualizer) VisitBlock(n *ast.Block) value.Value {
	id := v.node("Block")
	for _, decl := range n.Decls {
		v.visitChild(id, decl)
	}
	return ret(id)
}

func (v *Visualizer) VisitVarDecl(n *ast.VarDecl) value.Value {
	id := v.node("Var " + n.Name)
	if n.Init != nil {
		v.visitChild(id, n.Init)
	}
	return ret(id)
}

func (v *Visualizer) VisitFuncDecl(n *ast.FuncDecl) value.Value {
	id := v.node("Func " + n.Name)
	paramsID := v.node("Params\n" + strings.Join(n.Params, ","))
	v.edge(id, paramsID)
	v.visitChild(id, n.Body)
	return ret(id)
}

func (v *Visualizer) VisitAssign(n *ast.Assign) value.Value {
	id := v.node("Assign")
	v.visitChild(id, n.Target)
	v.visitChild(id, n.Value)
	return ret(id)
}

func (v *Visualizer) VisitIf(n *ast.If) value.Value {
	id := v.node("If")
	v.visitChild(id, n.Primary.Cond)
	v.visitChild(id, n.Primary.Block)
	if len(n.Elifs) > 0 {
		elifID := v.node("[elif]")
		v.edge(id, elifID)
		for _, elif := range n.Elifs {
			branchID := v.node("Elif")
			v.edge(elifID, branchID)
			v.visitChild(branchID, elif.Cond)
			v.visitChild(branchID, elif.Block)
		}
	}
	if n.Else != nil {
		v.visitChild(id, n.Else)
	}
	return ret(id)
}

func (v *Visualizer) VisitWhile(n *ast.While) value.Value {
	id := v.node("While")
	v.visitChild(id, n.Cond)
	v.visitChild(id, n.Body)
	return ret(id)
}

func (v *Visualizer) VisitRangeFor(n *ast.RangeFor) value.Value {
	id := v.node("For " + n.Var)
	v.visitChild(id, n.Iterable)
	v.visitChild(id, n.Body)
	return ret(id)
}

func (v *Visualizer) VisitReturn(n *ast.Return) value.Value {
	id := v.node("Return")
	v.visitChild(id, n.Expr)
	return ret(id)
}

func (v *Visualizer) VisitBreak(n *ast.Break) value.Value { return ret(v.node("Break")) }
func (v *Visualizer) VisitContinue(n *ast.Continue) value.Value { return ret(v.node("Continue")) }

func (v *Visualizer) VisitParen(n *ast.Paren) value.Value {
	id := v.node("(...)")
	v.visitChild(id, n.Expr)
	return ret(id)
}

func (v *Visualizer) binaryLike(label string, left, right ast.Node) value.Value {
	id := v.node(label)
	v.visitChild(id, left)
	v.visitChild(id, right)
	return ret(id)
}

func (v *Visualizer) VisitBinary(n *ast.Binary) value.Value { return v.binaryLike(n.Op, n.Left, n.Right) }
func (v *Visualizer) VisitCompare(n *ast.Compare) value.Value { return v.binaryLike("Compare\n"+n.Op, n.Left, n.Right) }
func (v *Visualizer) VisitAnd(n *ast.And) value.Value { return v.binaryLike("And", n.Left, n.Right) }
func (v *Visualizer) VisitOr(n *ast.Or) value.Value { return v.binaryLike("Or", n.Left, n.Right) }

func (v *Visualizer) VisitNot(n *ast.Not) value.Value {
	id := v.node("Not")
	v.visitChild(id, n.Operand)
	return ret(id)
}

func (v *Visualizer) VisitNegative(n *ast.Negative) value.Value {
	id := v.node("Negative")
	v.visitChild(id, n.Operand)
	return ret(id)
}

func (v *Visualizer) VisitFunctionCall(n *ast.FunctionCall) value.Value {
	id := v.node("Call")
	v.visitChild(id, n.Callee)
	for _, arg := range n.Args {
		v.visitChild(id, arg)
	}
	return ret(id)
}

func (v *Visualizer) VisitArrayAccess(n *ast.ArrayAccess) value.Value {
	id := v.node("ArrayAccess")
	v.visitChild(id, n.Base)
	v.visitChild(id, n.Index)
	return ret(id)
}

func (v *Visualizer) VisitArrayLit(n *ast.ArrayLit) value.Value {
	id := v.node("Array")
	for _, el := range n.Elements {
		v.visitChild(id, el)
	}
	return ret(id)
}

func (v *Visualizer) VisitIdentifier(n *ast.Identifier) value.Value { return ret(v.node(n.Name)) }
func (v *Visualizer) VisitNumber(n *ast.Number) value.Value { return ret(v.node(n.Literal)) }
func (v *Visualizer) VisitString(n *ast.String) value.Value { return ret(v.node("String\n" + n.Value)) }
func (v *Visualizer) VisitTrue(n *ast.True) value.Value { return ret(v.node("True")) }
func (v *Visualizer) VisitFalse(n *ast.False) value.Value { return ret(v.node("False")) }
func (v *Visualizer) VisitNil(n *ast.Nil) value.Value { return ret(v.node("Nil")) }

func (v *Visualizer) VisitUnknown(n ast.Node) value.Value {
	return ret(v.node(fmt.Sprintf("Unknown %T", n)))
}
