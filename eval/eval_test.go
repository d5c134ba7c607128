/*
File    : y/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uchenily/y/parser"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	assert.NoError(t, err)
	e := New()
	var buf bytes.Buffer
	e.Writer = &buf
	runErr := e.Run(prog)
	return buf.String(), runErr
}

func TestEval_HelloWorld(t *testing.T) {
	out, err := run(t, "print(\"hello, world\")\n")
	assert.NoError(t, err)
	assert.Equal(t, "hello, world \n", out)
}

func TestEval_Fibonacci(t *testing.T) {
	src := "func fib(n):\n" +
		"    if n < 2:\n" +
		"        return n\n" +
		"    return fib(n - 1) + fib(n - 2)\n" +
		"print(fib(10))\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "55 \n", out)
}

func TestEval_WhileWithBreak(t *testing.T) {
	src := "var i = 0\n" +
		"while true:\n" +
		"    if i == 3:\n" +
		"        break\n" +
		"    print(i)\n" +
		"    i = i + 1\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "0 \n1 \n2 \n", out)
}

func TestEval_ForRange(t *testing.T) {
	src := "for i in range(0, 3):\n" +
		"    print(i)\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "0 \n1 \n2 \n", out)
}

func TestEval_ArrayMutation(t *testing.T) {
	src := "var a = [1, 2, 3]\n" +
		"a[1] = 99\n" +
		"print(a[0], a[1], a[2])\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "1 99 3 \n", out)
}

func TestEval_ReturnOutsideFunctionIsError(t *testing.T) {
	_, err := run(t, "return 1\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "return outside function")
}

func TestEval_EmptyProgramProducesNoOutput(t *testing.T) {
	out, err := run(t, "")
	assert.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestEval_UndefinedIdentifierIsError(t *testing.T) {
	_, err := run(t, "print(missing)\n")
	assert.Error(t, err)
}

func TestEval_ArrayIndexOutOfBoundsIsError(t *testing.T) {
	_, err := run(t, "var a = [1, 2]\nprint(a[5])\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of bounds")
}

func TestEval_DynamicScoping(t *testing.T) {
	// free variable `y` inside g resolves against the *caller's* frame,
	// not g's defining frame, since this language uses dynamic scope.
	src := "func g():\n" +
		"    return y\n" +
		"func f():\n" +
		"    var y = 42\n" +
		"    return g()\n" +
		"print(f())\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "42 \n", out)
}

func TestEval_ActivationStackEmptyAfterRun(t *testing.T) {
	prog, err := parser.Parse("var x = 1\nprint(x)\n")
	assert.NoError(t, err)
	e := New()
	var buf bytes.Buffer
	e.Writer = &buf
	assert.NoError(t, e.Run(prog))
	assert.Empty(t, e.stack, "activation-record stack must be empty once Run returns")
}

func TestEval_ActivationStackEmptyAfterRunError(t *testing.T) {
	prog, err := parser.Parse("print(missing)\n")
	assert.NoError(t, err)
	e := New()
	var buf bytes.Buffer
	e.Writer = &buf
	assert.Error(t, e.Run(prog))
	assert.Empty(t, e.stack, "activation-record stack must unwind to empty even when Run fails")
}

func TestEval_TopLevelBindingsPersistAcrossRuns(t *testing.T) {
	// A REPL reuses one Evaluator across many Run calls; a var bound in one
	// submission must still resolve in the next, even though each Run's
	// PROGRAM frame is pushed and popped fresh.
	e := New()
	var buf bytes.Buffer
	e.Writer = &buf

	first, err := parser.Parse("var x = 41\n")
	assert.NoError(t, err)
	assert.NoError(t, e.Run(first))

	second, err := parser.Parse("print(x + 1)\n")
	assert.NoError(t, err)
	assert.NoError(t, e.Run(second))
	assert.Equal(t, "42 \n", buf.String())
}

func TestEval_ElifChain(t *testing.T) {
	src := "func classify(n):\n" +
		"    if n < 0:\n" +
		"        return \"negative\"\n" +
		"    elif n == 0:\n" +
		"        return \"zero\"\n" +
		"    else:\n" +
		"        return \"positive\"\n" +
		"print(classify(-5))\n" +
		"print(classify(0))\n" +
		"print(classify(5))\n"
	out, err := run(t, src)
	assert.NoError(t, err)
	assert.Equal(t, "negative \nzero \npositive \n", out)
}
