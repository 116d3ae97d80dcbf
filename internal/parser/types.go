package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

func isTypeStart(k token.Kind) bool {
	switch k {
	case token.Id, token.LBracket, token.Struct, token.Func:
		return true
	default:
		return false
	}
}

// parseType parses a type expression.
//
//	Type = id | "[" [ intlit ] "]" Type | "struct" "{" { IdList Type ";" } "}"
//	     | "func" "(" [ Type { "," Type } ] ")" [ Type ] .
func (p *Parser) parseType() (ast.Type, error) {
	switch p.curTok.Kind {
	case token.Id:
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return ast.NewNamedType(name, name.Loc()), nil
	case token.LBracket:
		return p.parseArrayOrSliceType()
	case token.Struct:
		return p.parseStructType()
	case token.Func:
		return p.parseFuncType()
	default:
		return nil, diag.NewUnexpected(p.curTok, token.Id, token.LBracket, token.Struct, token.Func)
	}
}

func (p *Parser) parseArrayOrSliceType() (ast.Type, error) {
	start, err := p.expect(token.LBracket)
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind == token.RBracket {
		p.nextToken()
		elem, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return ast.NewSliceType(elem, start.Loc), nil
	}

	if !p.curTok.Kind.IsIntLiteral() {
		return nil, diag.NewUnexpected(p.curTok, token.Int, token.RBracket)
	}
	size, err := intValue(p.curTok)
	if err != nil {
		return nil, err
	}
	p.nextToken()

	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	elem, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ast.NewArrayType(size, elem, start.Loc), nil
}

func (p *Parser) parseStructType() (ast.Type, error) {
	start, err := p.expect(token.Struct)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	fields := make([]*ast.Param, 0)
	for p.curTok.Kind != token.RBrace {
		group, err := p.parseFieldGroup()
		if err != nil {
			return nil, err
		}
		fields = append(fields, group...)

		if p.curTok.Kind == token.RBrace {
			break
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}
	p.nextToken()

	return ast.NewStructType(fields, start.Loc), nil
}

func (p *Parser) parseFuncType() (ast.Type, error) {
	start, err := p.expect(token.Func)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	params, err := parseDelimited(p, delimitedConfig{
		Closing:       token.RParen,
		Separator:     token.Comma,
		AllowEmpty:    true,
		AllowTrailing: true,
	}, p.parseType)
	if err != nil {
		return nil, err
	}

	var result ast.Type
	if isTypeStart(p.curTok.Kind) {
		if result, err = p.parseType(); err != nil {
			return nil, err
		}
	} else {
		result = ast.NewVoidType(p.curTok.Loc)
	}

	return ast.NewFuncType(params, result, start.Loc), nil
}
