package lexer

import (
	"github.com/gnuvince/gore/internal/diag"
	"github.com/gnuvince/gore/internal/token"
)

// Lexer turns a byte buffer into GoLite tokens, one per call to Next.
//
// The lexer remembers the kind of the last token it returned so that a
// newline after a token that can end a statement becomes a semicolon.
// Once Next has returned an error the lexer must not be used again.
type Lexer struct {
	filename string
	src      []byte
	pos      int // index of the current byte
	line     int // line of src[pos] (1-based)
	column   int // column of src[pos] (1-based)

	last token.Kind
}

// New creates a lexer over src. The filename is only used for locations.
func New(filename string, src []byte) *Lexer {
	return &Lexer{
		filename: filename,
		src:      src,
		line:     1,
		column:   1,
		last:     token.None,
	}
}

// ScanAll runs a lexer to completion and returns every token up to and
// including Eof, or the first error.
func ScanAll(filename string, src []byte) ([]token.Token, error) {
	l := New(filename, src)
	var toks []token.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			return toks, nil
		}
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.src)
}

// peek returns the current byte, or 0 at end of input.
func (l *Lexer) peek() byte {
	return l.peekAt(0)
}

// peekAt returns the byte n positions ahead of the cursor, or 0.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

// read consumes one byte, keeping line and column in step.
func (l *Lexer) read() {
	if l.eof() {
		return
	}
	if l.src[l.pos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.pos++
}

func (l *Lexer) readN(n int) {
	for i := 0; i < n; i++ {
		l.read()
	}
}

func (l *Lexer) loc() token.Loc {
	return token.NewLoc(l.filename, l.line, l.column)
}

func (l *Lexer) emit(kind token.Kind, loc token.Loc, lexeme string) (token.Token, error) {
	l.last = kind
	return token.Token{Kind: kind, Loc: loc, Lexeme: lexeme}, nil
}

func (l *Lexer) semi(loc token.Loc) (token.Token, error) {
	return l.emit(token.Semi, loc, "")
}

// Next returns the next token from the input.
func (l *Lexer) Next() (token.Token, error) {
	if tok, ok, err := l.skipWhitespace(); ok || err != nil {
		return tok, err
	}

	start := l.loc()

	if l.eof() {
		if token.NeedsSemicolon(l.last) {
			return l.semi(start)
		}
		return l.emit(token.Eof, start, "")
	}

	if kind, n := matchOperator(l.src[l.pos:]); n > 0 {
		l.readN(n)
		return l.emit(kind, start, "")
	}

	ch := l.peek()
	switch {
	case ch == '.':
		if isDigit(l.peekAt(1)) {
			return l.scanFloatFraction(start, l.pos)
		}
		l.read()
		return l.emit(token.Dot, start, "")
	case isLetter(ch):
		word := l.scanIdentifier()
		kind := token.Lookup(word)
		if kind == token.Id {
			return l.emit(kind, start, word)
		}
		return l.emit(kind, start, "")
	case isDigit(ch):
		return l.scanNumber(start)
	case ch == '"':
		return l.scanString(start)
	case ch == '`':
		return l.scanRawString(start)
	case ch == '\'':
		return l.scanRune(start)
	}

	return token.Token{}, diag.NewChar(diag.UnrecognizedCharacter, start, ch)
}

// skipWhitespace consumes blanks and comments. It reports ok when a
// semicolon was synthesized in their place.
func (l *Lexer) skipWhitespace() (token.Token, bool, error) {
	for !l.eof() {
		switch ch := l.peek(); {
		case ch == '\n':
			if token.NeedsSemicolon(l.last) {
				// The newline stays in the buffer and is skipped on the
				// next call, when last is Semi.
				tok, err := l.semi(l.loc())
				return tok, true, err
			}
			l.read()
		case ch == ' ' || ch == '\t' || ch == '\r':
			l.read()
		case ch == '/' && l.peekAt(1) == '/':
			for !l.eof() && l.peek() != '\n' {
				l.read()
			}
		case ch == '/' && l.peekAt(1) == '*':
			start := l.loc()
			sawNewline, err := l.skipBlockComment(start)
			if err != nil {
				return token.Token{}, false, err
			}
			if sawNewline && token.NeedsSemicolon(l.last) {
				tok, err := l.semi(start)
				return tok, true, err
			}
		default:
			return token.Token{}, false, nil
		}
	}
	return token.Token{}, false, nil
}

// skipBlockComment consumes a /* */ comment starting at the cursor.
func (l *Lexer) skipBlockComment(start token.Loc) (bool, error) {
	l.readN(2)
	sawNewline := false
	for {
		if l.eof() {
			return false, diag.New(diag.TrailingBlockComment, start)
		}
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.readN(2)
			return sawNewline, nil
		}
		if l.peek() == '\n' {
			sawNewline = true
		}
		l.read()
	}
}

func (l *Lexer) scanIdentifier() string {
	start := l.pos
	for !l.eof() && (isLetter(l.peek()) || isDigit(l.peek())) {
		l.read()
	}
	return string(l.src[start:l.pos])
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOctDigit(ch byte) bool {
	return ch >= '0' && ch <= '7'
}

func isHexDigit(ch byte) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
