/*
File    : y/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestConsumeTokens_Operators(t *testing.T) {
	lex := NewLexer("1 + 2 * 3 <= 4 && true")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		NUMBER_LIT, PLUS_OP, NUMBER_LIT, MUL_OP, NUMBER_LIT,
		LE_OP, NUMBER_LIT, AND_OP, TRUE_KEY, EOF_TYPE,
	}, kinds(tokens))
}

func TestConsumeTokens_KeywordsAndIdentifiers(t *testing.T) {
	lex := NewLexer("func add(a, b):")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		FUNC_KEY, IDENTIFIER_ID, LEFT_PAREN, IDENTIFIER_ID, COMMA_DELIM,
		IDENTIFIER_ID, RIGHT_PAREN, COLON_DELIM, EOF_TYPE,
	}, kinds(tokens))
}

func TestConsumeTokens_IndentDedentBalanced(t *testing.T) {
	src := "func f():\n    if true:\n        return 1\n    return 2\n"
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)

	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case INDENT_TYPE:
			depth++
		case DEDENT_TYPE:
			depth--
		}
	}
	assert.Equal(t, 0, depth, "INDENT and DEDENT must balance")
	assert.Equal(t, EOF_TYPE, tokens[len(tokens)-1].Type)
}

func TestConsumeTokens_TrailingNewlineNoSpuriousIndent(t *testing.T) {
	lex := NewLexer("print(1)\n\n\n")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	for _, tok := range tokens {
		assert.NotEqual(t, INDENT_TYPE, tok.Type)
	}
}

func TestConsumeTokens_MultiLevelDedent(t *testing.T) {
	src := "if true:\n    if true:\n        var x = 1\nvar y = 2\n"
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)

	dedentRun := 0
	maxRun := 0
	for _, tok := range tokens {
		if tok.Type == DEDENT_TYPE {
			dedentRun++
			if dedentRun > maxRun {
				maxRun = dedentRun
			}
		} else {
			dedentRun = 0
		}
	}
	assert.Equal(t, 2, maxRun, "dedenting two levels at once must emit two DEDENTs back to back")
}

func TestConsumeTokens_StringLiteralEscapesStoredVerbatim(t *testing.T) {
	lex := NewLexer(`"hello\nworld"`)
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, STRING_LIT, tokens[0].Type)
	assert.Equal(t, `"hello\nworld"`, tokens[0].Literal, "token value must include the surrounding quotes")
}

func TestConsumeTokens_CommentsDiscarded(t *testing.T) {
	lex := NewLexer("1 + 1 # this is a comment\n2")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, []TokenType{
		NUMBER_LIT, PLUS_OP, NUMBER_LIT, NUMBER_LIT, EOF_TYPE,
	}, kinds(tokens))
}

func TestConsumeTokens_FloatLiteral(t *testing.T) {
	lex := NewLexer("3.14")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, "3.14", tokens[0].Literal)
}

func TestNextToken_UnexpectedCharacterIsLexerError(t *testing.T) {
	lex := NewLexer("@")
	_, err := lex.NextToken()
	assert.Error(t, err)
	var lexErr *Error
	assert.ErrorAs(t, err, &lexErr)
}
