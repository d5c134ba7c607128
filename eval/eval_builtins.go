/*
File    : y/eval/eval_builtins.go
*/
package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/value"
)

func registerBuiltins() map[string]builtinFunc {
	return map[string]builtinFunc{
		"print": builtinPrint,
		"range": builtinRange,
	}
}

// builtinPrint writes each argument's text form followed by a single space,
// then a trailing newline — matching the original's `print(arg, end=" ")`
// per argument plus a final bare `print()`. String arguments have their
// escape sequences decoded here, at print time, not when the literal was
// lexed.
func builtinPrint(e *Evaluator, pos ast.Pos, args []value.Value) value.Value {
	for _, arg := range args {
		if s, ok := arg.(*value.String); ok {
			fmt.Fprint(e.Writer, decodeEscapes(s.Value), " ")
		} else {
			fmt.Fprint(e.Writer, arg.String(), " ")
		}
	}
	fmt.Fprintln(e.Writer)
	return value.NilValue
}

// stripQuotes removes a String AST node's surrounding double quotes, which
// the lexer/parser carry through as part of the token's literal text.
func stripQuotes(raw string) string {
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return raw[1 : len(raw)-1]
	}
	return raw
}

// builtinRange accepts exactly two integer arguments (lo, hi) and returns
// the eager Array [lo, lo+1, ..., hi-1]. There is no one- or
// three-argument form.
func builtinRange(e *Evaluator, pos ast.Pos, args []value.Value) value.Value {
	if len(args) != 2 {
		return e.errAt(pos, "range requires exactly 2 arguments, got %d", len(args))
	}
	lo, ok := args[0].(*value.Number)
	if !ok || lo.IsFloat {
		return e.errAt(pos, "range arguments must be integers")
	}
	hi, ok := args[1].(*value.Number)
	if !ok || hi.IsFloat {
		return e.errAt(pos, "range arguments must be integers")
	}
	elems := make([]value.Value, 0)
	for i := lo.Int; i < hi.Int; i++ {
		elems = append(elems, value.NewInt(i))
	}
	return &value.Array{Elements: elems}
}

// decodeEscapes interprets \n, \t, \r, \\, \" and \0 sequences in a raw
// string literal's text. Any other backslash escape is left as-is
// (backslash and following character both kept).
func decodeEscapes(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '0':
			b.WriteByte(0)
		default:
			b.WriteByte('\\')
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// parseNumberLiteral converts an ast.Number's literal text into a runtime
// Number, per the IsFloat flag the parser set when it saw a '.'.
func parseNumberLiteral(n *ast.Number) value.Value {
	if n.IsFloat {
		f, _ := strconv.ParseFloat(n.Literal, 64)
		return value.NewFloat(f)
	}
	i, _ := strconv.ParseInt(n.Literal, 10, 64)
	return value.NewInt(i)
}
