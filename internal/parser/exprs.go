package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

const (
	precedenceLowest = iota
	precedenceOr
	precedenceAnd
	precedenceComparison
	precedenceSum
	precedenceProduct
)

var precedences = map[token.Kind]int{
	token.Or:         precedenceOr,
	token.And:        precedenceAnd,
	token.Eq:         precedenceComparison,
	token.Ne:         precedenceComparison,
	token.Lt:         precedenceComparison,
	token.Le:         precedenceComparison,
	token.Gt:         precedenceComparison,
	token.Ge:         precedenceComparison,
	token.Plus:       precedenceSum,
	token.Minus:      precedenceSum,
	token.Bitor:      precedenceSum,
	token.Bitnot:     precedenceSum,
	token.Star:       precedenceProduct,
	token.Slash:      precedenceProduct,
	token.Percent:    precedenceProduct,
	token.LeftShift:  precedenceProduct,
	token.RightShift: precedenceProduct,
	token.Bitand:     precedenceProduct,
	token.BitClear:   precedenceProduct,
}

var binaryOps = map[token.Kind]ast.BinOp{
	token.Or:         ast.OpOr,
	token.And:        ast.OpAnd,
	token.Eq:         ast.OpEq,
	token.Ne:         ast.OpNe,
	token.Lt:         ast.OpLt,
	token.Le:         ast.OpLe,
	token.Gt:         ast.OpGt,
	token.Ge:         ast.OpGe,
	token.Plus:       ast.OpAdd,
	token.Minus:      ast.OpSub,
	token.Bitor:      ast.OpBitOr,
	token.Bitnot:     ast.OpBitXor,
	token.Star:       ast.OpMul,
	token.Slash:      ast.OpDiv,
	token.Percent:    ast.OpRem,
	token.LeftShift:  ast.OpShl,
	token.RightShift: ast.OpShr,
	token.Bitand:     ast.OpBitAnd,
	token.BitClear:   ast.OpBitClear,
}

var unaryOps = map[token.Kind]ast.UnaryOp{
	token.Plus:   ast.OpPos,
	token.Minus:  ast.OpNeg,
	token.Not:    ast.OpNot,
	token.Bitnot: ast.OpBitNot,
}

func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseBinaryExpr(precedenceLowest + 1)
}

// parseBinaryExpr implements precedence climbing. All binary operators are
// left associative.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := precedences[p.curTok.Kind]
		if !ok || prec < minPrec {
			return left, nil
		}

		opTok := p.curTok
		p.nextToken()

		right, err := p.parseBinaryExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(binaryOps[opTok.Kind], left, right, opTok.Loc)
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	op, ok := unaryOps[p.curTok.Kind]
	if !ok {
		return p.parsePrimaryExpr()
	}

	opTok := p.curTok
	p.nextToken()

	x, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}
	return ast.NewUnaryExpr(op, x, opTok.Loc), nil
}

// parsePrimaryExpr parses an operand followed by any number of index,
// field and call suffixes.
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	x, err := p.parseOperand()
	if err != nil {
		return nil, err
	}

	for {
		switch p.curTok.Kind {
		case token.LBracket:
			lbrack := p.curTok
			p.nextToken()

			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return nil, err
			}
			x = ast.NewIndexExpr(x, index, lbrack.Loc)

		case token.Dot:
			dot := p.curTok
			p.nextToken()

			field, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			x = ast.NewFieldExpr(x, field, dot.Loc)

		case token.LParen:
			fn, ok := x.(*ast.Ident)
			if !ok || fn.IsBlank() {
				return nil, diag.NewUnexpected(p.curTok)
			}
			p.nextToken()

			args, err := p.parseCallArgs()
			if err != nil {
				return nil, err
			}
			x = ast.NewCallExpr(fn, args, fn.Loc())

		default:
			return x, nil
		}
	}
}

// Operand = id | literal | "(" Expr ")" | "append" "(" Expr "," Expr ")"
//
//	| ( "[" ... "]" Type ) "(" Expr ")" .
func (p *Parser) parseOperand() (ast.Expr, error) {
	switch p.curTok.Kind {
	case token.Id:
		id, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		return id, nil

	case token.Blank:
		tok := p.curTok
		p.nextToken()
		return ast.NewIdent("_", tok.Loc), nil

	case token.Int, token.IntOct, token.IntHex, token.Float, token.String, token.Rune:
		return p.parseLiteral()

	case token.LParen:
		p.nextToken()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return x, nil

	case token.Append:
		return p.parseAppend()

	case token.LBracket:
		return p.parseCast()

	default:
		return nil, diag.New(diag.ExpectedExpression, p.curTok.Loc)
	}
}

func (p *Parser) parseAppend() (ast.Expr, error) {
	start, err := p.expect(token.Append)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}

	slice, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Comma); err != nil {
		return nil, err
	}
	elem, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind == token.Comma {
		p.nextToken()
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.NewAppendExpr(slice, elem, start.Loc), nil
}

// parseCast parses a conversion to a slice or array type such as []int(x).
// Conversions to named types look like calls and are parsed as such.
func (p *Parser) parseCast() (ast.Expr, error) {
	start := p.curTok.Loc

	typ, err := p.parseArrayOrSliceType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return ast.NewCastExpr(typ, x, start), nil
}

// parseCallArgs parses the arguments after an opening parenthesis.
func (p *Parser) parseCallArgs() ([]ast.Expr, error) {
	return parseDelimited(p, exprListConfig, p.parseExpr)
}

// parseExprList parses a non-empty comma-separated expression list.
func (p *Parser) parseExprList() ([]ast.Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	exprs := []ast.Expr{first}

	for p.curTok.Kind == token.Comma {
		p.nextToken()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, x)
	}
	return exprs, nil
}
