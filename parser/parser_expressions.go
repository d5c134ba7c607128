/*
File    : y/parser/parser_expressions.go
*/
package parser

import (
	"github.com/uchenily/y/ast"
	"github.com/uchenily/y/lexer"
)

// parseExpression := logic_or ("=" expression)?
//
// Assignment target rule: if an "=" follows, the already-parsed left side
// must be an Identifier or ArrayAccess, otherwise parsing fails.
func (p *Parser) parseExpression() (ast.Node, error) {
	left, err := p.parseLogicOr()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.ASSIGN_OP {
		return left, nil
	}
	assignTok := p.cur
	switch left.(type) {
	case *ast.Identifier, *ast.ArrayAccess:
		// valid assignment target
	default:
		return nil, &Error{assignTok.Line, assignTok.Column, "invalid assignment target"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Pos: pos(assignTok), Target: left, Value: rhs}, nil
}

// parseLogicOr := logic_and ("||" logic_and)*
func (p *Parser) parseLogicOr() (ast.Node, error) {
	left, err := p.parseLogicAnd()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.OR_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseLogicAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Or{Pos: pos(tok), Left: left, Right: right}
	}
	return left, nil
}

// parseLogicAnd := equality ("&&" equality)*
func (p *Parser) parseLogicAnd() (ast.Node, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.AND_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = &ast.And{Pos: pos(tok), Left: left, Right: right}
	}
	return left, nil
}

// parseEquality := comparison (("=="|"!=") comparison)*
func (p *Parser) parseEquality() (ast.Node, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.EQ_OP || p.cur.Type == lexer.NE_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Compare{Pos: pos(tok), Op: string(tok.Type), Left: left, Right: right}
	}
	return left, nil
}

// parseComparison := term (("<"|"<="|">"|">=") term)*
func (p *Parser) parseComparison() (ast.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.LT_OP || p.cur.Type == lexer.LE_OP ||
		p.cur.Type == lexer.GT_OP || p.cur.Type == lexer.GE_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.Compare{Pos: pos(tok), Op: string(tok.Type), Left: left, Right: right}
	}
	return left, nil
}

// parseTerm := factor (("+"|"-") factor)*
func (p *Parser) parseTerm() (ast.Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PLUS_OP || p.cur.Type == lexer.MINUS_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: pos(tok), Op: string(tok.Type), Left: left, Right: right}
	}
	return left, nil
}

// parseFactor := unary (("*"|"/"|"%") unary)*
func (p *Parser) parseFactor() (ast.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.MUL_OP || p.cur.Type == lexer.DIV_OP || p.cur.Type == lexer.MOD_OP {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Pos: pos(tok), Op: string(tok.Type), Left: left, Right: right}
	}
	return left, nil
}

// parseUnary := "!" unary | "-" unary | primary
func (p *Parser) parseUnary() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.NOT_OP:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Pos: pos(tok), Operand: operand}, nil
	case lexer.MINUS_OP:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Negative{Pos: pos(tok), Operand: operand}, nil
	default:
		return p.parsePrimary()
	}
}

// parsePrimary := atom ( "(" arguments? ")" | "[" expression "]" )*
//
//	| "(" expression ")" | "[" arguments? "]"
func (p *Parser) parsePrimary() (ast.Node, error) {
	if p.cur.Type == lexer.LEFT_PAREN {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.eat(lexer.RIGHT_PAREN); err != nil {
			return nil, err
		}
		return &ast.Paren{Pos: pos(tok), Expr: inner}, nil
	}

	if p.cur.Type == lexer.LEFT_BRACKET {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		var elems []ast.Node
		if p.cur.Type != lexer.RIGHT_BRACKET {
			args, err := p.parseArguments()
			if err != nil {
				return nil, err
			}
			elems = args
		}
		if _, err := p.eat(lexer.RIGHT_BRACKET); err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Pos: pos(tok), Elements: elems}, nil
	}

	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.cur.Type {
		case lexer.LEFT_PAREN:
			tok := p.cur
			if err := p.advance(); err != nil {
				return nil, err
			}
			var args []ast.Node
			if p.cur.Type != lexer.RIGHT_PAREN {
				args, err = p.parseArguments()
				if err != nil {
					return nil, err
				}
			}
			if _, err := p.eat(lexer.RIGHT_PAREN); err != nil {
				return nil, err
			}
			node = &ast.FunctionCall{Pos: pos(tok), Callee: node, Args: args}
		case lexer.LEFT_BRACKET:
			tok := p.cur
			if err := p.advance(); err != nil {
				return nil, err
			}
			index, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if _, err := p.eat(lexer.RIGHT_BRACKET); err != nil {
				return nil, err
			}
			node = &ast.ArrayAccess{Pos: pos(tok), Base: node, Index: index}
		default:
			return node, nil
		}
	}
}

// parseArguments := expression ("," expression)*
func (p *Parser) parseArguments() ([]ast.Node, error) {
	var args []ast.Node
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	args = append(args, first)
	for p.cur.Type == lexer.COMMA_DELIM {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// parseAtom := ID | NUMBER | STRING | "true" | "false" | "nil"
func (p *Parser) parseAtom() (ast.Node, error) {
	tok := p.cur
	switch tok.Type {
	case lexer.IDENTIFIER_ID:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Pos: pos(tok), Name: tok.Literal}, nil
	case lexer.NUMBER_LIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Number{Pos: pos(tok), Literal: tok.Literal, IsFloat: isFloatLiteral(tok.Literal)}, nil
	case lexer.STRING_LIT:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.String{Pos: pos(tok), Value: tok.Literal}, nil
	case lexer.TRUE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.True{Pos: pos(tok)}, nil
	case lexer.FALSE_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.False{Pos: pos(tok)}, nil
	case lexer.NIL_KEY:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Nil{Pos: pos(tok)}, nil
	default:
		return nil, &Error{tok.Line, tok.Column, "unexpected token " + string(tok.Type)}
	}
}

func isFloatLiteral(lit string) bool {
	for _, c := range lit {
		if c == '.' {
			return true
		}
	}
	return false
}
