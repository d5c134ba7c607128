/*
File    : y/parser/parser.go
*/

// Package parser implements Y's recursive-descent parser: source tokens in,
// an *ast.Program out, single-token lookahead via peek/eat, aborting on the
// first ParserError.
package parser

import (
	"fmt"

	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/lexer"
)

// Error is the single ParserError kind: a token mismatch or unexpected
// token. Parsing aborts on the first one.
type Error struct {
	Line, Column int
	Message      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] ParserError: %s", e.Line, e.Column, e.Message)
}

// Parser consumes a Lexer's token stream and builds the AST.
type Parser struct {
	lex *lexer.Lexer
	cur lexer.Token
}

// NewParser primes the parser with the first token from lex.
func NewParser(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *Parser) peek() lexer.Token {
	return p.cur
}

// eat consumes the current token if it matches kind, otherwise fails with
// ParserError.
func (p *Parser) eat(kind lexer.TokenType) (lexer.Token, error) {
	if p.cur.Type != kind {
		return lexer.Token{}, &Error{p.cur.Line, p.cur.Column,
			fmt.Sprintf("expected %s, got %s (%q)", kind, p.cur.Type, p.cur.Literal)}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return lexer.Token{}, err
	}
	return tok, nil
}

func pos(tok lexer.Token) ast.Pos { return ast.Pos{Line: tok.Line, Column: tok.Column} }

// Parse runs the parser to completion and returns the resulting Program, or
// the first LexerError/ParserError encountered.
func Parse(source string) (*ast.Program, error) {
	p, err := NewParser(lexer.NewLexer(source))
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

func (p *Parser) parseProgram() (*ast.Program, error) {
	start := pos(p.cur)
	prog := &ast.Program{Pos: start}
	for p.cur.Type != lexer.EOF_TYPE {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		prog.Decls = append(prog.Decls, decl)
	}
	return prog, nil
}

// parseDeclaration := var_decl | func_decl | statement
func (p *Parser) parseDeclaration() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.VAR_KEY:
		return p.parseVarDecl()
	case lexer.FUNC_KEY:
		return p.parseFuncDecl()
	default:
		return p.parseStatement()
	}
}

func (p *Parser) parseVarDecl() (ast.Node, error) {
	tok, err := p.eat(lexer.VAR_KEY)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	decl := &ast.VarDecl{Pos: pos(tok), Name: name.Literal}
	if p.cur.Type == lexer.ASSIGN_OP {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		decl.Init = init
	}
	return decl, nil
}

// parseFuncDecl := "func" ID "(" parameters? ")" ":" block
func (p *Parser) parseFuncDecl() (ast.Node, error) {
	tok, err := p.eat(lexer.FUNC_KEY)
	if err != nil {
		return nil, err
	}
	name, err := p.eat(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.LEFT_PAREN); err != nil {
		return nil, err
	}
	var params []string
	if p.cur.Type != lexer.RIGHT_PAREN {
		for {
			param, err := p.eat(lexer.IDENTIFIER_ID)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Literal)
			if p.cur.Type != lexer.COMMA_DELIM {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.eat(lexer.RIGHT_PAREN); err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.COLON_DELIM); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Pos: pos(tok), Name: name.Literal, Params: params, Body: body}, nil
}

// parseBlock := INDENT declaration+ DEDENT
func (p *Parser) parseBlock() (*ast.Block, error) {
	tok, err := p.eat(lexer.INDENT_TYPE)
	if err != nil {
		return nil, err
	}
	block := &ast.Block{Pos: pos(tok)}
	for p.cur.Type != lexer.DEDENT_TYPE {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		block.Decls = append(block.Decls, decl)
		if p.cur.Type == lexer.EOF_TYPE {
			return nil, &Error{p.cur.Line, p.cur.Column, "expected DEDENT, got EOF"}
		}
	}
	if _, err := p.eat(lexer.DEDENT_TYPE); err != nil {
		return nil, err
	}
	if len(block.Decls) == 0 {
		return nil, &Error{tok.Line, tok.Column, "block must contain at least one declaration"}
	}
	return block, nil
}

// parseStatement := if_stmt | while_stmt | for_stmt
//
//	| "continue" | "break" | return_stmt
//	| expression
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.CONTINUE_KEY:
		tok, err := p.eat(lexer.CONTINUE_KEY)
		if err != nil {
			return nil, err
		}
		return &ast.Continue{Pos: pos(tok)}, nil
	case lexer.BREAK_KEY:
		tok, err := p.eat(lexer.BREAK_KEY)
		if err != nil {
			return nil, err
		}
		return &ast.Break{Pos: pos(tok)}, nil
	case lexer.RETURN_KEY:
		return p.parseReturn()
	default:
		return p.parseExpression()
	}
}

func (p *Parser) parseReturn() (ast.Node, error) {
	tok, err := p.eat(lexer.RETURN_KEY)
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Pos: pos(tok), Expr: &ast.Nil{Pos: pos(tok)}}
	if canStartExpression(p.cur.Type) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		ret.Expr = expr
	}
	return ret, nil
}

func canStartExpression(kind lexer.TokenType) bool {
	switch kind {
	case lexer.IDENTIFIER_ID, lexer.NUMBER_LIT, lexer.STRING_LIT,
		lexer.TRUE_KEY, lexer.FALSE_KEY, lexer.NIL_KEY,
		lexer.LEFT_PAREN, lexer.LEFT_BRACKET, lexer.NOT_OP, lexer.MINUS_OP:
		return true
	default:
		return false
	}
}

// parseIf := "if" expression ":" block
//
//	("elif" expression ":" block)*
//	("else" ":" block)?
func (p *Parser) parseIf() (ast.Node, error) {
	tok, err := p.eat(lexer.IF_KEY)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.COLON_DELIM); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node := &ast.If{Pos: pos(tok), Primary: ast.Branch{Cond: cond, Block: block}}

	for p.cur.Type == lexer.ELIF_KEY {
		if err := p.advance(); err != nil {
			return nil, err
		}
		econd, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.COLON_DELIM); err != nil {
			return nil, err
		}
		eblock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Elifs = append(node.Elifs, ast.Branch{Cond: econd, Block: eblock})
	}

	if p.cur.Type == lexer.ELSE_KEY {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.COLON_DELIM); err != nil {
			return nil, err
		}
		eblock, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Else = eblock
	}

	return node, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	tok, err := p.eat(lexer.WHILE_KEY)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.COLON_DELIM); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: pos(tok), Cond: cond, Body: body}, nil
}

func (p *Parser) parseFor() (ast.Node, error) {
	tok, err := p.eat(lexer.FOR_KEY)
	if err != nil {
		return nil, err
	}
	loopVar, err := p.eat(lexer.IDENTIFIER_ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.IN_KEY); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.eat(lexer.COLON_DELIM); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.RangeFor{Pos: pos(tok), Var: loopVar.Literal, Iterable: iterable, Body: body}, nil
}
