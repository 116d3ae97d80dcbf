package lexer

import (
	"testing"

	"github.com/gnuvince/gore/internal/token"
)

func TestSemicolonInsertion(t *testing.T) {
	tests := []struct {
		input string
		kind  token.Kind
	}{
		{"x", token.Id},
		{"_", token.Blank},
		{"42", token.Int},
		{"0x1f", token.IntHex},
		{"017", token.IntOct},
		{"3.14", token.Float},
		{`"s"`, token.String},
		{"`s`", token.String},
		{"'c'", token.Rune},
		{"break", token.Break},
		{"continue", token.Continue},
		{"return", token.Return},
		{"++", token.Incr},
		{"--", token.Decr},
		{")", token.RParen},
		{"]", token.RBracket},
		{"}", token.RBrace},
	}

	suffixes := []string{"", "\n", "\n\n\n", " // comment\n", " // comment", " /* a\nb */", " /* a\nb */\n"}

	for _, tt := range tests {
		for _, suffix := range suffixes {
			assertKinds(t, tt.input+suffix, tt.kind, token.Semi)
		}
		// One semicolon before the next real token.
		assertKinds(t, tt.input+"\n\n.", tt.kind, token.Semi, token.Dot)
		assertKinds(t, tt.input+" /* \n */ .", tt.kind, token.Semi, token.Dot)
	}
}

func TestNoSemicolonInsertion(t *testing.T) {
	inputs := []string{
		"case", "default", "else", "for", "func", "if", "package", "struct",
		"switch", "type", "var", "append", "print", "println",
		"+", "-", "*", "/", "%", "+=", "-=", "*=", "/=", "%=", "=", ":=",
		"&", "|", "^", "&=", "|=", "<<", ">>", "<<=", ">>=", "&^",
		"&&", "||", "!", "==", "!=", "<", "<=", ">", ">=",
		"(", "[", "{", ",", ".", ";", ":",
	}

	for _, input := range inputs {
		expected := firstToken(t, input).Kind
		assertKinds(t, input, expected)
		assertKinds(t, input+"\n", expected)
		assertKinds(t, input+" // comment\n", expected)
		assertKinds(t, input+" /* a\nb */", expected)
	}
}

func TestSemicolonInsertion_BlockCommentWithoutNewline(t *testing.T) {
	assertKinds(t, "x /* same line */ y", token.Id, token.Id, token.Semi)
}

func TestSemicolonInsertion_Location(t *testing.T) {
	l := New("-", []byte("x /* a\nb */ y"))

	if tok, _ := l.Next(); tok.Kind != token.Id {
		t.Fatalf("expected %q, got %q", token.Id, tok.Kind)
	}
	tok, err := l.Next()
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tok.Kind != token.Semi {
		t.Fatalf("expected %q, got %q", token.Semi, tok.Kind)
	}
	if tok.Loc.Line != 1 || tok.Loc.Column != 3 {
		t.Fatalf("expected the semicolon at the comment start 1:3, got %s", tok.Loc)
	}

	l = New("-", []byte("ab\ncd"))
	l.Next()
	tok, _ = l.Next()
	if tok.Kind != token.Semi || tok.Loc.Line != 1 || tok.Loc.Column != 3 {
		t.Fatalf("expected semicolon at the newline 1:3, got %v", tok)
	}
	tok, _ = l.Next()
	if tok.Kind != token.Id || tok.Lexeme != "cd" || tok.Loc.Line != 2 {
		t.Fatalf("expected cd on line 2, got %v", tok)
	}
}

func TestScanAll_Program(t *testing.T) {
	input := `package main

func main() {
	x := 0
	for x < 10 {
		x++
	}
	println(x)
}
`
	assertKinds(t, input,
		token.Package, token.Id, token.Semi,
		token.Func, token.Id, token.LParen, token.RParen, token.LBrace,
		token.Id, token.ColonEq, token.IntOct, token.Semi,
		token.For, token.Id, token.Lt, token.Int, token.LBrace,
		token.Id, token.Incr, token.Semi,
		token.RBrace, token.Semi,
		token.Println, token.LParen, token.Id, token.RParen, token.Semi,
		token.RBrace, token.Semi,
	)
}
