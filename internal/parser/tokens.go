package parser

import (
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

// nextToken advances the parser's token window.
// Contract: after calling nextToken, curTok == old(peekTok).
func (p *Parser) nextToken() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
	p.curTok = p.tokenAt(p.pos)
	p.peekTok = p.tokenAt(p.pos + 1)
}

func (p *Parser) curIs(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.curTok.Kind == k {
			return true
		}
	}
	return false
}

// expect consumes curTok if it has the given kind and reports an
// UnexpectedToken error otherwise.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	tok := p.curTok
	if tok.Kind != kind {
		return tok, diag.NewUnexpected(tok, kind)
	}
	p.nextToken()
	return tok, nil
}
