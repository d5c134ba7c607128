/*
File    : y/internal/prettyprint/prettyprint_test.go
*/
package prettyprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/parser"
)

// roundTrip parses src, pretty-prints the result, and re-parses that output,
// returning both ASTs so the caller can assert structural equality.
func roundTrip(t *testing.T, src string) (*ast.Program, *ast.Program) {
	t.Helper()
	prog, err := parser.Parse(src)
	assert.NoError(t, err)

	printed := New().Generate(prog)
	reparsed, err := parser.Parse(printed + "\n")
	assert.NoError(t, err, "pretty-printed source must itself be valid Y: %s", printed)

	return prog, reparsed
}

func TestRoundTrip_Fibonacci(t *testing.T) {
	src := "func fib(n):\n" +
		"    if n < 2:\n" +
		"        return n\n" +
		"    return fib(n - 1) + fib(n - 2)\n" +
		"print(fib(10))\n"
	prog, reparsed := roundTrip(t, src)
	assert.Equal(t, len(prog.Decls), len(reparsed.Decls))

	fn, ok := reparsed.Decls[0].(*ast.FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, "fib", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Params)
	assert.Len(t, fn.Body.Decls, 2)
}

func TestRoundTrip_IfElifElse(t *testing.T) {
	src := "if a:\n    var x = 1\nelif b:\n    var x = 2\nelse:\n    var x = 3\n"
	_, reparsed := roundTrip(t, src)

	ifNode, ok := reparsed.Decls[0].(*ast.If)
	assert.True(t, ok)
	assert.Len(t, ifNode.Elifs, 1)
	assert.NotNil(t, ifNode.Else)
}

func TestRoundTrip_ArrayAndCall(t *testing.T) {
	src := "var xs = [1, 2, 3]\nprint(xs[0], xs[1])\n"
	_, reparsed := roundTrip(t, src)
	assert.Len(t, reparsed.Decls, 2)

	call, ok := reparsed.Decls[1].(*ast.FunctionCall)
	assert.True(t, ok)
	assert.Len(t, call.Args, 2)
	_, ok = call.Args[0].(*ast.ArrayAccess)
	assert.True(t, ok)
}

func TestRoundTrip_StringLiteral(t *testing.T) {
	src := "print(\"hello\")\n"
	_, reparsed := roundTrip(t, src)

	call, ok := reparsed.Decls[0].(*ast.FunctionCall)
	assert.True(t, ok)
	str, ok := call.Args[0].(*ast.String)
	assert.True(t, ok)
	assert.Equal(t, `"hello"`, str.Value, "re-parsed literal must still carry exactly one pair of quotes")
}

func TestRoundTrip_WhileAndFor(t *testing.T) {
	src := "while true:\n    break\nfor i in range(0, 3):\n    print(i)\n"
	prog, reparsed := roundTrip(t, src)
	assert.Equal(t, len(prog.Decls), len(reparsed.Decls))

	_, ok := reparsed.Decls[0].(*ast.While)
	assert.True(t, ok)
	forNode, ok := reparsed.Decls[1].(*ast.RangeFor)
	assert.True(t, ok)
	assert.Equal(t, "i", forNode.Var)
}
