package parser

import (
	"errors"

	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// lexeme returns the text of a token whose kind requires one. An empty
// string literal legitimately has no text.
func lexeme(tok token.Token) (string, error) {
	if tok.Lexeme == "" && tok.Kind.HasLexeme() && tok.Kind != token.String {
		return "", diag.New(diag.MissingLexeme, tok.Loc)
	}
	return tok.Lexeme, nil
}

// asTypeDeclError reports any failure inside a type declaration as
// InvalidTypeDecl at the same location, keeping the original message as
// detail.
func asTypeDeclError(err error) error {
	var e *diag.Error
	if !errors.As(err, &e) || e.Kind == diag.InvalidTypeDecl {
		return err
	}
	return &diag.Error{
		Kind:   diag.InvalidTypeDecl,
		Loc:    e.Loc,
		Detail: e.Message(),
	}
}

func lengthMismatch(loc token.Loc, names, values int) error {
	return diag.Newf(diag.VarExprLengthMismatch, loc, "%d name(s), %d value(s)", names, values)
}
