package lexer

import (
	"strings"

	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// scanNumber reads a hexadecimal, octal, decimal or float literal.
func (l *Lexer) scanNumber(start token.Loc) (token.Token, error) {
	begin := l.pos

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.readN(2)
		digits := l.pos
		for !l.eof() && isHexDigit(l.peek()) {
			l.read()
		}
		if l.pos == digits {
			return token.Token{}, diag.New(diag.MalformedHexLiteral, start)
		}
		return l.emit(token.IntHex, start, string(l.src[digits:l.pos]))
	}

	for !l.eof() && isDigit(l.peek()) {
		l.read()
	}

	if l.peek() == '.' {
		return l.scanFloatFraction(start, begin)
	}

	text := string(l.src[begin:l.pos])
	if text[0] != '0' {
		return l.emit(token.Int, start, text)
	}
	for i := 1; i < len(text); i++ {
		if !isOctDigit(text[i]) {
			return token.Token{}, diag.New(diag.MalformedOctLiteral, start)
		}
	}
	return l.emit(token.IntOct, start, text)
}

// scanFloatFraction reads the '.' and trailing digits of a float literal
// whose text begins at src[begin].
func (l *Lexer) scanFloatFraction(start token.Loc, begin int) (token.Token, error) {
	l.read() // '.'
	for !l.eof() && isDigit(l.peek()) {
		l.read()
	}
	return l.emit(token.Float, start, string(l.src[begin:l.pos]))
}

// escape decodes the character following a backslash. quote is the
// delimiter of the literal, which may itself be escaped.
func escape(ch, quote byte) (byte, bool) {
	switch ch {
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '\\':
		return '\\', true
	case quote:
		return quote, true
	default:
		return 0, false
	}
}

// scanString reads an interpreted string literal and decodes its escapes.
func (l *Lexer) scanString(start token.Loc) (token.Token, error) {
	l.read() // opening quote
	var b strings.Builder
	for {
		if l.eof() {
			return token.Token{}, diag.New(diag.TrailingString, start)
		}
		ch := l.peek()
		switch ch {
		case '"':
			l.read()
			return l.emit(token.String, start, b.String())
		case '\n':
			return token.Token{}, diag.New(diag.NewlineInString, l.loc())
		case '\\':
			escLoc := l.loc()
			l.read()
			if l.eof() {
				return token.Token{}, diag.New(diag.TrailingString, start)
			}
			decoded, ok := escape(l.peek(), '"')
			if !ok {
				return token.Token{}, diag.NewChar(diag.InvalidEscape, escLoc, l.peek())
			}
			b.WriteByte(decoded)
			l.read()
		default:
			b.WriteByte(ch)
			l.read()
		}
	}
}

// scanRawString reads a `...` literal. Carriage returns and the two-byte
// sequence \r are dropped.
func (l *Lexer) scanRawString(start token.Loc) (token.Token, error) {
	l.read() // opening backquote
	var b strings.Builder
	for {
		if l.eof() {
			return token.Token{}, diag.New(diag.TrailingString, start)
		}
		ch := l.peek()
		if ch == '\\' && l.peekAt(1) == 'r' {
			l.readN(2)
			continue
		}
		l.read()
		switch ch {
		case '`':
			return l.emit(token.String, start, b.String())
		case '\r':
		default:
			b.WriteByte(ch)
		}
	}
}

// scanRune reads a rune literal holding one byte or one escape.
func (l *Lexer) scanRune(start token.Loc) (token.Token, error) {
	l.read() // opening quote
	if l.eof() {
		return token.Token{}, diag.New(diag.TrailingRune, start)
	}

	var value byte
	switch ch := l.peek(); ch {
	case '\'':
		return token.Token{}, diag.New(diag.EmptyRune, start)
	case '\n':
		return token.Token{}, diag.New(diag.NewlineInRune, l.loc())
	case '\\':
		escLoc := l.loc()
		l.read()
		if l.eof() {
			return token.Token{}, diag.New(diag.TrailingRune, start)
		}
		decoded, ok := escape(l.peek(), '\'')
		if !ok {
			return token.Token{}, diag.NewChar(diag.InvalidEscape, escLoc, l.peek())
		}
		value = decoded
		l.read()
	default:
		value = ch
		l.read()
	}

	if l.peek() != '\'' || l.eof() {
		return token.Token{}, diag.New(diag.TrailingRune, start)
	}
	l.read()
	return l.emit(token.Rune, start, string([]byte{value}))
}
