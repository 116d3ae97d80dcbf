package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// parseHeader parses the `[ SimpleStmt ";" ] [ Expr ]` prefix shared by if
// and switch statements. Either result may be nil.
func (p *Parser) parseHeader() (ast.Stmt, ast.Expr, error) {
	if p.curTok.Kind == token.LBrace {
		return nil, nil, nil
	}

	var (
		stmt ast.Stmt
		expr ast.Expr
		err  error
	)
	if p.curTok.Kind != token.Semi {
		if stmt, expr, err = p.parseSimple(); err != nil {
			return nil, nil, err
		}
	}

	if p.curTok.Kind != token.Semi {
		if stmt != nil {
			return nil, nil, diag.NewUnexpected(p.curTok, token.Semi)
		}
		return nil, expr, nil
	}
	p.nextToken()

	init := stmt
	if expr != nil {
		if init, err = exprStmt(expr); err != nil {
			return nil, nil, err
		}
	}

	if p.curTok.Kind == token.LBrace {
		return init, nil, nil
	}
	tag, err := p.parseExpr()
	if err != nil {
		return nil, nil, err
	}
	return init, tag, nil
}

// parseIfStmt parses
//
//	If = "if" [ SimpleStmt ";" ] Expr Block [ "else" ( If | Block ) ] .
func (p *Parser) parseIfStmt(ctx stmtContext) (*ast.IfStmt, error) {
	ifTok, err := p.expect(token.If)
	if err != nil {
		return nil, err
	}

	init, cond, err := p.parseHeader()
	if err != nil {
		return nil, err
	}
	if cond == nil {
		return nil, diag.New(diag.ExpectedExpression, p.curTok.Loc)
	}

	then, err := p.parseBlock(ctx)
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind != token.Else {
		return ast.NewIfStmt(init, cond, then, nil, nil, ifTok.Loc), nil
	}
	p.nextToken()

	switch p.curTok.Kind {
	case token.If:
		elseIf, err := p.parseIfStmt(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewIfStmt(init, cond, then, nil, elseIf, ifTok.Loc), nil
	case token.LBrace:
		els, err := p.parseBlock(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewIfStmt(init, cond, then, els, nil, ifTok.Loc), nil
	default:
		return nil, diag.NewUnexpected(p.curTok, token.If, token.LBrace)
	}
}

// parseForStmt parses the three loop forms.
//
//	For = "for" Block | "for" Expr Block
//	    | "for" [ SimpleStmt ] ";" [ Expr ] ";" [ SimpleStmt ] Block .
func (p *Parser) parseForStmt(ctx stmtContext) (ast.Stmt, error) {
	forTok, err := p.expect(token.For)
	if err != nil {
		return nil, err
	}

	bodyCtx := ctx
	bodyCtx.inLoop = true

	if p.curTok.Kind == token.LBrace {
		body, err := p.parseBlock(bodyCtx)
		if err != nil {
			return nil, err
		}
		return ast.NewLoopStmt(body, forTok.Loc), nil
	}

	var init ast.Stmt
	if p.curTok.Kind != token.Semi {
		stmt, expr, err := p.parseSimple()
		if err != nil {
			return nil, err
		}

		if stmt == nil && p.curTok.Kind == token.LBrace {
			body, err := p.parseBlock(bodyCtx)
			if err != nil {
				return nil, err
			}
			return ast.NewWhileStmt(expr, body, forTok.Loc), nil
		}

		init = stmt
		if stmt == nil {
			if init, err = exprStmt(expr); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	var cond ast.Expr
	if p.curTok.Kind != token.Semi {
		if cond, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	var post ast.Stmt
	if p.curTok.Kind != token.LBrace {
		if post, err = p.parseSimpleStmt(); err != nil {
			return nil, err
		}
		if _, ok := post.(*ast.ShortVarDecl); ok {
			return nil, diag.Newf(diag.InvalidShortDecl, post.Loc(), "cannot declare in post statement of for loop")
		}
	}

	body, err := p.parseBlock(bodyCtx)
	if err != nil {
		return nil, err
	}
	return ast.NewForStmt(init, cond, post, body, forTok.Loc), nil
}

// parseSwitchStmt parses
//
//	Switch = "switch" [ SimpleStmt ";" ] [ Expr ] "{" { Clause } "}" .
//	Clause = "case" ExprList ":" StmtList | "default" ":" StmtList .
func (p *Parser) parseSwitchStmt(ctx stmtContext) (*ast.SwitchStmt, error) {
	switchTok, err := p.expect(token.Switch)
	if err != nil {
		return nil, err
	}

	init, tag, err := p.parseHeader()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LBrace); err != nil {
		return nil, err
	}

	clauseCtx := ctx
	clauseCtx.inSwitch = true

	cases := make([]*ast.CaseClause, 0)
	var def []ast.Stmt
	for p.curTok.Kind != token.RBrace {
		clauseTok := p.curTok

		switch clauseTok.Kind {
		case token.Case:
			p.nextToken()
			exprs, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			body, err := p.parseStmtList(clauseCtx)
			if err != nil {
				return nil, err
			}
			cases = append(cases, ast.NewCaseClause(exprs, body, clauseTok.Loc))

		case token.Default:
			if def != nil {
				return nil, diag.New(diag.MultipleDefaults, clauseTok.Loc)
			}
			p.nextToken()
			if _, err := p.expect(token.Colon); err != nil {
				return nil, err
			}
			if def, err = p.parseStmtList(clauseCtx); err != nil {
				return nil, err
			}

		default:
			return nil, diag.NewUnexpected(clauseTok, token.Case, token.Default, token.RBrace)
		}
	}
	p.nextToken()

	return ast.NewSwitchStmt(init, tag, cases, def, switchTok.Loc), nil
}
