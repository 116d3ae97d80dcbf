package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/token"
)

// parseParams parses the parameter groups of a function declaration up to
// and including the closing parenthesis. A trailing comma is accepted.
func (p *Parser) parseParams() ([]*ast.Param, error) {
	params := make([]*ast.Param, 0)

	for p.curTok.Kind != token.RParen {
		group, err := p.parseFieldGroup()
		if err != nil {
			return nil, err
		}
		params = append(params, group...)

		if p.curTok.Kind != token.Comma {
			break
		}
		p.nextToken()
	}

	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFieldGroup parses `a, b T` into one Param per name, each with its own
// copy of T. It serves both parameter lists and struct bodies.
func (p *Parser) parseFieldGroup() ([]*ast.Param, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	names := []*ast.Ident{first}

	for p.curTok.Kind == token.Comma && p.peekTok.Kind == token.Id {
		p.nextToken()
		name, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}

	group := make([]*ast.Param, len(names))
	for i, name := range names {
		t := typ
		if i > 0 {
			t = ast.CloneType(typ)
		}
		group[i] = ast.NewParam(name, t, name.Loc())
	}
	return group, nil
}
