/*
File    : y/internal/prettyprint/prettyprint.go
*/

// Package prettyprint renders a parsed Y program back into indented Y
// source text, used to exercise the parser's round-trip property: printing
// a parsed program and re-parsing the result should reproduce an
// equivalent AST.
package prettyprint

import (
	"fmt"
	"strings"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/value"
)

// Printer implements ast.Visitor; every Visit method returns its own
// textual rendering as a value.String rather than writing to a shared
// buffer, so callers compose renderings bottom-up the same way the parser
// composed the tree.
type Printer struct {
	depth int
}

func New() *Printer { return &Printer{} }

func (p *Printer) Generate(prog *ast.Program) string {
	p.depth = 0
	return prog.Accept(p).String()
}

func (p *Printer) indent() string { return strings.Repeat("    ", p.depth) }

func (p *Printer) VisitProgram(n *ast.Program) value.Value {
	lines := make([]string, len(n.Decls))
	for i, d := range n.Decls {
		lines[i] = p.indent() + d.Accept(p).String()
	}
	return &value.String{Value: strings.Join(lines, "\n")}
}

func (p *Printer) VisitBlock(n *ast.Block) value.Value {
	p.depth++
	lines := make([]string, len(n.Decls))
	for i, d := range n.Decls {
		lines[i] = p.indent() + d.Accept(p).String()
	}
	p.depth--
	return &value.String{Value: strings.Join(lines, "\n")}
}

func (p *Printer) VisitVarDecl(n *ast.VarDecl) value.Value {
	if n.Init == nil {
		return &value.String{Value: "var " + n.Name}
	}
	return &value.String{Value: fmt.Sprintf("var %s = %s", n.Name, n.Init.Accept(p).String())}
}

func (p *Printer) VisitFuncDecl(n *ast.FuncDecl) value.Value {
	body := n.Body.Accept(p).String()
	return &value.String{
		Value: fmt.Sprintf("func %s(%s):\n%s", n.Name, strings.Join(n.Params, ", "), body),
	}
}

func (p *Printer) VisitAssign(n *ast.Assign) value.Value {
	return &value.String{
		Value: fmt.Sprintf("%s = %s", n.Target.Accept(p).String(), n.Value.Accept(p).String()),
	}
}

func (p *Printer) VisitIf(n *ast.If) value.Value {
	s := fmt.Sprintf("if %s:\n%s", n.Primary.Cond.Accept(p).String(), n.Primary.Block.Accept(p).String())
	for _, elif := range n.Elifs {
		s += fmt.Sprintf("\n%selif %s:\n%s", p.indent(), elif.Cond.Accept(p).String(), elif.Block.Accept(p).String())
	}
	if n.Else != nil {
		s += fmt.Sprintf("\n%selse:\n%s", p.indent(), n.Else.Accept(p).String())
	}
	return &value.String{Value: s}
}

func (p *Printer) VisitWhile(n *ast.While) value.Value {
	return &value.String{
		Value: fmt.Sprintf("while %s:\n%s", n.Cond.Accept(p).String(), n.Body.Accept(p).String()),
	}
}

func (p *Printer) VisitRangeFor(n *ast.RangeFor) value.Value {
	return &value.String{
		Value: fmt.Sprintf("for %s in %s:\n%s", n.Var, n.Iterable.Accept(p).String(), n.Body.Accept(p).String()),
	}
}

func (p *Printer) VisitReturn(n *ast.Return) value.Value {
	return &value.String{Value: "return " + n.Expr.Accept(p).String()}
}

func (p *Printer) VisitBreak(n *ast.Break) value.Value { return &value.String{Value: "break"} }
func (p *Printer) VisitContinue(n *ast.Continue) value.Value { return &value.String{Value: "continue"} }

func (p *Printer) VisitParen(n *ast.Paren) value.Value {
	return &value.String{Value: "(" + n.Expr.Accept(p).String() + ")"}
}

func (p *Printer) VisitBinary(n *ast.Binary) value.Value {
	return &value.String{Value: fmt.Sprintf("%s %s %s", n.Left.Accept(p).String(), n.Op, n.Right.Accept(p).String())}
}

func (p *Printer) VisitCompare(n *ast.Compare) value.Value {
	return &value.String{Value: fmt.Sprintf("%s %s %s", n.Left.Accept(p).String(), n.Op, n.Right.Accept(p).String())}
}

func (p *Printer) VisitAnd(n *ast.And) value.Value {
	return &value.String{Value: fmt.Sprintf("%s && %s", n.Left.Accept(p).String(), n.Right.Accept(p).String())}
}

func (p *Printer) VisitOr(n *ast.Or) value.Value {
	return &value.String{Value: fmt.Sprintf("%s || %s", n.Left.Accept(p).String(), n.Right.Accept(p).String())}
}

func (p *Printer) VisitNot(n *ast.Not) value.Value {
	return &value.String{Value: "!" + n.Operand.Accept(p).String()}
}

func (p *Printer) VisitNegative(n *ast.Negative) value.Value {
	return &value.String{Value: "-" + n.Operand.Accept(p).String()}
}

func (p *Printer) VisitFunctionCall(n *ast.FunctionCall) value.Value {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = a.Accept(p).String()
	}
	return &value.String{Value: fmt.Sprintf("%s(%s)", n.Callee.Accept(p).String(), strings.Join(args, ", "))}
}

func (p *Printer) VisitArrayAccess(n *ast.ArrayAccess) value.Value {
	return &value.String{
		Value: fmt.Sprintf("%s[%s]", n.Base.Accept(p).String(), n.Index.Accept(p).String()),
	}
}

func (p *Printer) VisitArrayLit(n *ast.ArrayLit) value.Value {
	elems := make([]string, len(n.Elements))
	for i, el := range n.Elements {
		elems[i] = el.Accept(p).String()
	}
	return &value.String{Value: "[" + strings.Join(elems, ", ") + "]"}
}

func (p *Printer) VisitIdentifier(n *ast.Identifier) value.Value {
	return &value.String{Value: n.Name}
}

func (p *Printer) VisitNumber(n *ast.Number) value.Value {
	return &value.String{Value: n.Literal}
}

// n.Value already carries its surrounding quotes (the lexer's literal text
// runs quote-to-quote); re-wrapping it here would double them.
func (p *Printer) VisitString(n *ast.String) value.Value {
	return &value.String{Value: n.Value}
}

func (p *Printer) VisitTrue(n *ast.True) value.Value { return &value.String{Value: "true"} }
func (p *Printer) VisitFalse(n *ast.False) value.Value { return &value.String{Value: "false"} }
func (p *Printer) VisitNil(n *ast.Nil) value.Value { return &value.String{Value: "nil"} }

func (p *Printer) VisitUnknown(n ast.Node) value.Value {
	return &value.String{Value: fmt.Sprintf("/* unknown %T */", n)}
}
