/*
File    : y/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uchenily/y/ast"
)

func TestParse_VarDeclWithInit(t *testing.T) {
	prog, err := Parse("var x = 1\n")
	assert.NoError(t, err)
	assert.Len(t, prog.Decls, 1)
	decl, ok := prog.Decls[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	assert.NotNil(t, decl.Init)
}

func TestParse_VarDeclWithoutInit(t *testing.T) {
	prog, err := Parse("var x\n")
	assert.NoError(t, err)
	decl, ok := prog.Decls[0].(*ast.VarDecl)
	assert.True(t, ok)
	assert.Nil(t, decl.Init)
}

func TestParse_FuncDecl(t *testing.T) {
	prog, err := Parse("func add(a, b):\n    return a + b\n")
	assert.NoError(t, err)
	fn, ok := prog.Decls[0].(*ast.FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.Len(t, fn.Body.Decls, 1)
}

func TestParse_IfElifElse(t *testing.T) {
	src := "if a:\n    var x = 1\nelif b:\n    var x = 2\nelse:\n    var x = 3\n"
	prog, err := Parse(src)
	assert.NoError(t, err)
	ifNode, ok := prog.Decls[0].(*ast.If)
	assert.True(t, ok)
	assert.Len(t, ifNode.Elifs, 1)
	assert.NotNil(t, ifNode.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	prog, err := Parse("while true:\n    break\n")
	assert.NoError(t, err)
	_, ok := prog.Decls[0].(*ast.While)
	assert.True(t, ok)
}

func TestParse_ForLoop(t *testing.T) {
	prog, err := Parse("for i in arr:\n    print(i)\n")
	assert.NoError(t, err)
	forNode, ok := prog.Decls[0].(*ast.RangeFor)
	assert.True(t, ok)
	assert.Equal(t, "i", forNode.Var)
}

func TestParse_OperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3): a Binary("+") whose right side
	// is itself a Binary("*").
	prog, err := Parse("1 + 2 * 3\n")
	assert.NoError(t, err)
	bin, ok := prog.Decls[0].(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "+", bin.Op)
	rhs, ok := bin.Right.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, "*", rhs.Op)
}

func TestParse_ComparisonBelowLogicalOperators(t *testing.T) {
	prog, err := Parse("a < b && c > d\n")
	assert.NoError(t, err)
	and, ok := prog.Decls[0].(*ast.And)
	assert.True(t, ok)
	_, leftIsCompare := and.Left.(*ast.Compare)
	_, rightIsCompare := and.Right.(*ast.Compare)
	assert.True(t, leftIsCompare)
	assert.True(t, rightIsCompare)
}

func TestParse_AssignToIdentifier(t *testing.T) {
	prog, err := Parse("x = 1\n")
	assert.NoError(t, err)
	assign, ok := prog.Decls[0].(*ast.Assign)
	assert.True(t, ok)
	_, ok = assign.Target.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParse_AssignToArrayAccess(t *testing.T) {
	prog, err := Parse("a[0] = 1\n")
	assert.NoError(t, err)
	assign, ok := prog.Decls[0].(*ast.Assign)
	assert.True(t, ok)
	_, ok = assign.Target.(*ast.ArrayAccess)
	assert.True(t, ok)
}

func TestParse_InvalidAssignmentTargetIsError(t *testing.T) {
	_, err := Parse("1 + 2 = 3\n")
	assert.Error(t, err)
	var perr *Error
	assert.ErrorAs(t, err, &perr)
}

func TestParse_ArrayLiteral(t *testing.T) {
	prog, err := Parse("[1, 2, 3]\n")
	assert.NoError(t, err)
	lit, ok := prog.Decls[0].(*ast.ArrayLit)
	assert.True(t, ok)
	assert.Len(t, lit.Elements, 3)
}

func TestParse_IdentifierIndexing(t *testing.T) {
	prog, err := Parse("a[0]\n")
	assert.NoError(t, err)
	access, ok := prog.Decls[0].(*ast.ArrayAccess)
	assert.True(t, ok)
	_, ok = access.Base.(*ast.Identifier)
	assert.True(t, ok)
}

func TestParse_FunctionCallWithArguments(t *testing.T) {
	prog, err := Parse("add(1, 2)\n")
	assert.NoError(t, err)
	call, ok := prog.Decls[0].(*ast.FunctionCall)
	assert.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_ReturnWithoutExpressionDefaultsToNil(t *testing.T) {
	prog, err := Parse("func f():\n    return\n")
	assert.NoError(t, err)
	fn := prog.Decls[0].(*ast.FuncDecl)
	ret, ok := fn.Body.Decls[0].(*ast.Return)
	assert.True(t, ok)
	_, ok = ret.Expr.(*ast.Nil)
	assert.True(t, ok)
}

func TestParse_EmptyBlockIsError(t *testing.T) {
	_, err := Parse("if true:\nvar x = 1\n")
	assert.Error(t, err)
}

func TestParse_UnaryNotAndNegative(t *testing.T) {
	prog, err := Parse("!a\n-b\n")
	assert.NoError(t, err)
	assert.Len(t, prog.Decls, 2)
	_, ok := prog.Decls[0].(*ast.Not)
	assert.True(t, ok)
	_, ok = prog.Decls[1].(*ast.Negative)
	assert.True(t, ok)
}
