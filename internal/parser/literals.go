package parser

import (
	"errors"
	"strconv"

	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// intValue converts an integer literal token using the base implied by its
// kind. Hexadecimal lexemes carry no 0x prefix.
func intValue(tok token.Token) (int64, error) {
	text, err := lexeme(tok)
	if err != nil {
		return 0, err
	}

	base := 10
	switch tok.Kind {
	case token.IntOct:
		base = 8
	case token.IntHex:
		base = 16
	case token.Int:
	default:
		return 0, diag.Newf(diag.Internal, tok.Loc, "%s is not an integer literal", tok.Kind)
	}

	v, err := strconv.ParseInt(text, base, 64)
	if err != nil {
		return 0, diag.Newf(diag.InvalidIntLiteral, tok.Loc, "%s", text)
	}
	return v, nil
}

// parseLiteral converts the literal token at curTok into an expression.
func (p *Parser) parseLiteral() (ast.Expr, error) {
	tok := p.curTok
	text, err := lexeme(tok)
	if err != nil {
		return nil, err
	}

	var expr ast.Expr
	switch tok.Kind {
	case token.Int, token.IntOct, token.IntHex:
		v, err := intValue(tok)
		if err != nil {
			return nil, err
		}
		expr = ast.NewIntLit(v, tok.Loc)
	case token.Float:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, diag.Newf(diag.Internal, tok.Loc, "malformed float %q", text)
		}
		expr = ast.NewFloatLit(v, tok.Loc)
	case token.String:
		expr = ast.NewStringLit(text, tok.Loc)
	case token.Rune:
		expr = ast.NewRuneLit(rune(text[0]), tok.Loc)
	default:
		return nil, diag.New(diag.ExpectedExpression, tok.Loc)
	}

	p.nextToken()
	return expr, nil
}
