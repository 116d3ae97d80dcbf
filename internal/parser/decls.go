package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// parseVarDecl parses a var declaration, single or grouped.
//
//	VarDecl = "var" ( VarSpec | "(" { VarSpec ";" } ")" ) .
func (p *Parser) parseVarDecl() ([]*ast.VarDecl, error) {
	varTok, err := p.expect(token.Var)
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind != token.LParen {
		if !p.curIs(token.Id, token.Blank) {
			return nil, diag.NewUnexpected(p.curTok, token.Id)
		}
		return p.parseVarSpec(varTok.Loc)
	}
	p.nextToken()

	decls := make([]*ast.VarDecl, 0)
	for p.curTok.Kind != token.RParen {
		spec, err := p.parseVarSpec(varTok.Loc)
		if err != nil {
			return nil, err
		}
		decls = append(decls, spec...)

		if p.curTok.Kind == token.RParen {
			break
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}
	p.nextToken()

	if len(decls) == 0 {
		return nil, diag.Newf(diag.InvalidVarDecl, varTok.Loc, "empty declaration group")
	}
	return decls, nil
}

// parseVarSpec parses one specification and expands it into a declaration
// per name.
//
//	VarSpec = IdList [ Type ] [ "=" ExprList ] .
func (p *Parser) parseVarSpec(varLoc token.Loc) ([]*ast.VarDecl, error) {
	names, err := p.parseBindingList()
	if err != nil {
		return nil, err
	}

	var typ ast.Type
	if isTypeStart(p.curTok.Kind) {
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
	}

	var values []ast.Expr
	if p.curTok.Kind == token.Assign {
		p.nextToken()
		if values, err = p.parseExprList(); err != nil {
			return nil, err
		}
	}

	if typ == nil && len(values) == 0 {
		return nil, diag.New(diag.InvalidVarDecl, varLoc)
	}
	if len(values) > 0 && len(values) != len(names) {
		return nil, lengthMismatch(varLoc, len(names), len(values))
	}

	return zipVarSpec(names, typ, values), nil
}

// zipVarSpec pairs names with values positionally. The caller guarantees
// that values is either empty or as long as names. Every declaration after
// the first gets its own copy of typ.
func zipVarSpec(names []*ast.Ident, typ ast.Type, values []ast.Expr) []*ast.VarDecl {
	decls := make([]*ast.VarDecl, len(names))
	for i, name := range names {
		t := typ
		if i > 0 {
			t = ast.CloneType(typ)
		}
		var value ast.Expr
		if len(values) > 0 {
			value = values[i]
		}
		decls[i] = ast.NewVarDecl(name, t, value, name.Loc())
	}
	return decls
}

// parseBindingList parses a comma-separated list of names that may include
// the blank identifier.
func (p *Parser) parseBindingList() ([]*ast.Ident, error) {
	names := make([]*ast.Ident, 0, 1)
	for {
		name, err := p.parseBindingName()
		if err != nil {
			return nil, err
		}
		names = append(names, name)

		if p.curTok.Kind != token.Comma {
			return names, nil
		}
		p.nextToken()
	}
}

func (p *Parser) parseBindingName() (*ast.Ident, error) {
	if p.curTok.Kind == token.Blank {
		tok := p.curTok
		p.nextToken()
		return ast.NewIdent("_", tok.Loc), nil
	}
	return p.parseIdent()
}

func (p *Parser) parseIdent() (*ast.Ident, error) {
	tok, err := p.expect(token.Id)
	if err != nil {
		return nil, err
	}
	name, err := lexeme(tok)
	if err != nil {
		return nil, err
	}
	return ast.NewIdent(name, tok.Loc), nil
}

// parseTypeDecl parses a type declaration, single or grouped. Every failure
// is reported as InvalidTypeDecl.
//
//	TypeDecl = "type" ( TypeSpec | "(" { TypeSpec ";" } ")" ) .
func (p *Parser) parseTypeDecl() ([]*ast.TypeDecl, error) {
	decls, err := p.parseTypeDeclBody()
	if err != nil {
		return nil, asTypeDeclError(err)
	}
	return decls, nil
}

func (p *Parser) parseTypeDeclBody() ([]*ast.TypeDecl, error) {
	typeTok, err := p.expect(token.Type)
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind != token.LParen {
		decl, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		return []*ast.TypeDecl{decl}, nil
	}
	p.nextToken()

	decls := make([]*ast.TypeDecl, 0)
	for p.curTok.Kind != token.RParen {
		decl, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)

		if p.curTok.Kind == token.RParen {
			break
		}
		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}
	p.nextToken()

	if len(decls) == 0 {
		return nil, diag.Newf(diag.InvalidTypeDecl, typeTok.Loc, "empty declaration group")
	}
	return decls, nil
}

// TypeSpec = id Type .
func (p *Parser) parseTypeSpec() (*ast.TypeDecl, error) {
	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return ast.NewTypeDecl(name, typ, name.Loc()), nil
}

// parseFuncDecl parses a function declaration.
//
//	FuncDecl = "func" id "(" [ ParamGroup { "," ParamGroup } ] ")" [ Type ] Block .
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	funcTok, err := p.expect(token.Func)
	if err != nil {
		return nil, err
	}

	name, err := p.parseIdent()
	if err != nil {
		return nil, err
	}

	if p.curTok.Kind != token.LParen {
		return nil, diag.New(diag.ExpectedParamList, p.curTok.Loc)
	}
	p.nextToken()

	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}

	var result ast.Type
	if p.curTok.Kind == token.LBrace {
		result = ast.NewVoidType(p.curTok.Loc)
	} else if result, err = p.parseType(); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(stmtContext{})
	if err != nil {
		return nil, err
	}

	return ast.NewFuncDecl(name, params, result, body, funcTok.Loc), nil
}
