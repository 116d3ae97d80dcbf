package parser

import (
	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/lexer"
	"github.com/gnuvince/gore/internal/token"
)

// Parser implements a fail-fast recursive descent parser for GoLite.
// Invariants:
//   - Lookahead: curTok is the next unconsumed token and peekTok the one
//     after it. Both are only mutated via nextToken. Reading past the end of
//     the token slice keeps yielding its last token.
//   - Errors: the first *diag.Error aborts the parse and is returned as is.
//     No partial AST is ever returned alongside an error.
//   - Context: whether break and continue are legal is carried by the
//     stmtContext value passed down the statement parsers, never by fields
//     on Parser.
type Parser struct {
	tokens []token.Token
	pos    int

	curTok  token.Token
	peekTok token.Token
}

// stmtContext records the enclosing constructs of the statement being parsed.
type stmtContext struct {
	inLoop   bool
	inSwitch bool
}

// New returns a parser over a materialized token sequence, normally the
// output of lexer.ScanAll. A sequence that does not end in Eof gets one at
// the last token's location, so an empty sequence behaves like a lone Eof.
func New(tokens []token.Token) *Parser {
	switch n := len(tokens); {
	case n == 0:
		tokens = []token.Token{{Kind: token.Eof}}
	case tokens[n-1].Kind != token.Eof:
		terminated := make([]token.Token, n, n+1)
		copy(terminated, tokens)
		tokens = append(terminated, token.Token{Kind: token.Eof, Loc: tokens[n-1].Loc})
	}

	p := &Parser{tokens: tokens}
	p.curTok = p.tokenAt(0)
	p.peekTok = p.tokenAt(1)
	return p
}

// ParseSource scans and parses src in one step.
func ParseSource(filename string, src []byte) (*ast.File, error) {
	tokens, err := lexer.ScanAll(filename, src)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Parse parses a full compilation unit.
//
//	File = "package" id ";" { TopDecl ";" } Eof .
func (p *Parser) Parse() (*ast.File, error) {
	start := p.curTok.Loc

	if p.curTok.Kind != token.Package {
		return nil, diag.New(diag.MissingPackageDeclaration, p.curTok.Loc)
	}
	p.nextToken()

	if p.curTok.Kind != token.Id {
		return nil, diag.New(diag.MissingPackageName, p.curTok.Loc)
	}
	pkg, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semi); err != nil {
		return nil, err
	}

	decls := make([]ast.Decl, 0)
	for p.curTok.Kind != token.Eof {
		parsed, err := p.parseTopLevelDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, parsed...)

		if _, err := p.expect(token.Semi); err != nil {
			return nil, err
		}
	}

	return ast.NewFile(pkg, decls, start), nil
}

// parseTopLevelDecl parses one var, type or func declaration. Grouped forms
// produce one declaration per name.
func (p *Parser) parseTopLevelDecl() ([]ast.Decl, error) {
	switch p.curTok.Kind {
	case token.Var:
		vars, err := p.parseVarDecl()
		if err != nil {
			return nil, err
		}
		decls := make([]ast.Decl, len(vars))
		for i, v := range vars {
			decls[i] = v
		}
		return decls, nil

	case token.Type:
		types, err := p.parseTypeDecl()
		if err != nil {
			return nil, err
		}
		decls := make([]ast.Decl, len(types))
		for i, t := range types {
			decls[i] = t
		}
		return decls, nil

	case token.Func:
		fn, err := p.parseFuncDecl()
		if err != nil {
			return nil, err
		}
		return []ast.Decl{fn}, nil

	default:
		return nil, diag.New(diag.ExpectedDeclaration, p.curTok.Loc)
	}
}
