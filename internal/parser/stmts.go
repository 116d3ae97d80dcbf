package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

var assignOps = map[token.Kind]ast.BinOp{
	token.PlusEq:       ast.OpAdd,
	token.MinusEq:      ast.OpSub,
	token.StarEq:       ast.OpMul,
	token.SlashEq:      ast.OpDiv,
	token.PercentEq:    ast.OpRem,
	token.BitandEq:     ast.OpBitAnd,
	token.BitorEq:      ast.OpBitOr,
	token.LeftShiftEq:  ast.OpShl,
	token.RightShiftEq: ast.OpShr,
}

// parseBlock parses `{ StmtList }`.
func (p *Parser) parseBlock(ctx stmtContext) ([]ast.Stmt, error) {
	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}
	stmts, err := p.parseStmtList(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBrace); err != nil {
		return nil, err
	}
	return stmts, nil
}

// parseStmtList parses statements up to a closing brace or the next switch
// clause. The terminating semicolon may be omitted before either. The
// result is never nil.
func (p *Parser) parseStmtList(ctx stmtContext) ([]ast.Stmt, error) {
	stmts := make([]ast.Stmt, 0)

	for !p.curIs(token.RBrace, token.Case, token.Default, token.Eof) {
		switch p.curTok.Kind {
		case token.Var:
			decls, err := p.parseVarDecl()
			if err != nil {
				return nil, err
			}
			for _, d := range decls {
				stmts = append(stmts, ast.NewVarDeclStmt(d))
			}

		case token.Type:
			decls, err := p.parseTypeDecl()
			if err != nil {
				return nil, err
			}
			for _, d := range decls {
				stmts = append(stmts, ast.NewTypeDeclStmt(d))
			}

		default:
			stmt, err := p.parseStmt(ctx)
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, stmt)
		}

		if p.curIs(token.RBrace, token.Case, token.Default) {
			break
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}

	return stmts, nil
}

// parseStmt parses one statement other than a declaration. The terminating
// semicolon is left for the caller.
func (p *Parser) parseStmt(ctx stmtContext) (ast.Stmt, error) {
	tok := p.curTok

	switch tok.Kind {
	case token.Semi:
		return ast.NewEmptyStmt(tok.Loc), nil

	case token.Break:
		if !ctx.inLoop && !ctx.inSwitch {
			return nil, diag.New(diag.InvalidBreak, tok.Loc)
		}
		p.nextToken()
		return ast.NewBreakStmt(tok.Loc), nil

	case token.Continue:
		if !ctx.inLoop {
			return nil, diag.New(diag.InvalidContinue, tok.Loc)
		}
		p.nextToken()
		return ast.NewContinueStmt(tok.Loc), nil

	case token.Return:
		p.nextToken()
		if p.curIs(token.Semi, token.RBrace) {
			return ast.NewReturnStmt(nil, tok.Loc), nil
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return ast.NewReturnStmt(value, tok.Loc), nil

	case token.Print, token.Println:
		p.nextToken()
		if _, err := p.expect(token.LParen); err != nil {
			return nil, err
		}
		args, err := p.parseCallArgs()
		if err != nil {
			return nil, err
		}
		return ast.NewPrintStmt(args, tok.Kind == token.Println, tok.Loc), nil

	case token.LBrace:
		stmts, err := p.parseBlock(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewBlockStmt(stmts, tok.Loc), nil

	case token.If:
		return p.parseIfStmt(ctx)

	case token.For:
		return p.parseForStmt(ctx)

	case token.Switch:
		return p.parseSwitchStmt(ctx)

	default:
		return p.parseSimpleStmt()
	}
}

// parseSimpleStmt parses a simple statement. A lone expression is only
// accepted when it is a call.
func (p *Parser) parseSimpleStmt() (ast.Stmt, error) {
	stmt, expr, err := p.parseSimple()
	if err != nil {
		return nil, err
	}
	if stmt != nil {
		return stmt, nil
	}
	return exprStmt(expr)
}

// parseSimple parses
//
//	SimpleStmt = ExprList ":=" ExprList | LvList "=" ExprList | Lv op= Expr
//	           | Lv "++" | Lv "--" | Expr .
//
// A lone expression is returned unconverted so that if, for and switch
// headers can use it as a condition or tag.
func (p *Parser) parseSimple() (ast.Stmt, ast.Expr, error) {
	start := p.curTok.Loc

	lhs, err := p.parseExprList()
	if err != nil {
		return nil, nil, err
	}

	switch opTok := p.curTok; opTok.Kind {
	case token.ColonEq:
		names := make([]*ast.Ident, len(lhs))
		for i, x := range lhs {
			id, ok := x.(*ast.Ident)
			if !ok {
				return nil, nil, diag.New(diag.InvalidShortDecl, x.Loc())
			}
			names[i] = id
		}
		p.nextToken()

		values, err := p.parseExprList()
		if err != nil {
			return nil, nil, err
		}
		if len(values) != len(names) {
			return nil, nil, lengthMismatch(opTok.Loc, len(names), len(values))
		}
		return ast.NewShortVarDecl(names, values, start), nil, nil

	case token.Assign:
		targets, err := toLValues(lhs)
		if err != nil {
			return nil, nil, err
		}
		p.nextToken()

		values, err := p.parseExprList()
		if err != nil {
			return nil, nil, err
		}
		if len(values) != len(targets) {
			return nil, nil, lengthMismatch(opTok.Loc, len(targets), len(values))
		}
		return ast.NewAssignStmt(targets, values, start), nil, nil

	case token.Incr, token.Decr:
		if len(lhs) != 1 {
			return nil, nil, diag.NewUnexpected(opTok, token.Assign, token.ColonEq)
		}
		target, err := toLValue(lhs[0])
		if err != nil {
			return nil, nil, err
		}
		p.nextToken()
		return ast.NewIncDecStmt(target, opTok.Kind == token.Incr, start), nil, nil
	}

	if op, ok := assignOps[p.curTok.Kind]; ok {
		opTok := p.curTok
		if len(lhs) != 1 {
			return nil, nil, diag.NewUnexpected(opTok, token.Assign, token.ColonEq)
		}
		target, err := toLValue(lhs[0])
		if err != nil {
			return nil, nil, err
		}
		p.nextToken()

		value, err := p.parseExpr()
		if err != nil {
			return nil, nil, err
		}
		return ast.NewOpAssignStmt(target, op, value, start), nil, nil
	}

	if len(lhs) != 1 {
		return nil, nil, diag.NewUnexpected(p.curTok, token.Assign, token.ColonEq)
	}
	return nil, lhs[0], nil
}

// exprStmt turns an expression in statement position into a call statement.
func exprStmt(x ast.Expr) (ast.Stmt, error) {
	call, ok := x.(*ast.CallExpr)
	if !ok {
		return nil, diag.New(diag.ExpectedStatement, x.Loc())
	}
	return ast.NewCallStmt(call.Func, call.Args, call.Loc()), nil
}

func toLValues(xs []ast.Expr) ([]ast.LValue, error) {
	targets := make([]ast.LValue, len(xs))
	for i, x := range xs {
		lv, err := toLValue(x)
		if err != nil {
			return nil, err
		}
		targets[i] = lv
	}
	return targets, nil
}

// toLValue converts an expression on the left of an assignment. Only names,
// the blank identifier, index expressions and field accesses are
// assignable; blank cannot be indexed or selected from.
func toLValue(x ast.Expr) (ast.LValue, error) {
	switch x := x.(type) {
	case *ast.Ident:
		if x.IsBlank() {
			return ast.NewBlankLValue(x.Loc()), nil
		}
		return ast.NewIdentLValue(x), nil

	case *ast.IndexExpr:
		inner, err := toInnerLValue(x.X)
		if err != nil {
			return nil, err
		}
		return ast.NewIndexLValue(inner, x.Index, x.Loc()), nil

	case *ast.FieldExpr:
		inner, err := toInnerLValue(x.X)
		if err != nil {
			return nil, err
		}
		return ast.NewFieldLValue(inner, x.Field, x.Loc()), nil
	}
	return nil, diag.New(diag.InvalidLValue, x.Loc())
}

func toInnerLValue(x ast.Expr) (ast.LValue, error) {
	lv, err := toLValue(x)
	if err != nil {
		return nil, err
	}
	if _, ok := lv.(*ast.BlankLValue); ok {
		return nil, diag.New(diag.InvalidLValue, x.Loc())
	}
	return lv, nil
}
