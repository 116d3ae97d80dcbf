package token

import "fmt"

// Kind identifies the lexical class of a token. The value of each fixed-form
// kind is its source spelling.
type Kind string

// Token is a single lexical unit.
type Token struct {
	Kind   Kind
	Loc    Loc
	Lexeme string // set only for identifiers and literals
}

// String renders the token for debugging output.
func (t Token) String() string {
	if t.Lexeme == "" && !t.Kind.HasLexeme() {
		return fmt.Sprintf("%s %s", t.Loc, t.Kind)
	}
	return fmt.Sprintf("%s %s %q", t.Loc, t.Kind, t.Lexeme)
}

// Token kinds
const (
	// None is the lexer's initial "previous token" and never emitted.
	None Kind = ""
	Eof  Kind = "<eof>"

	// Keywords
	Break    Kind = "break"
	Case     Kind = "case"
	Continue Kind = "continue"
	Default  Kind = "default"
	Else     Kind = "else"
	For      Kind = "for"
	Func     Kind = "func"
	If       Kind = "if"
	Package  Kind = "package"
	Return   Kind = "return"
	Struct   Kind = "struct"
	Switch   Kind = "switch"
	Type     Kind = "type"
	Var      Kind = "var"

	// GoLite builtins that are reserved words
	Append  Kind = "append"
	Print   Kind = "print"
	Println Kind = "println"

	// Identifiers and literals
	Blank  Kind = "_"
	Id     Kind = "<id>"
	Int    Kind = "<int>"
	IntOct Kind = "<int-oct>"
	IntHex Kind = "<int-hex>"
	Float  Kind = "<float>"
	String Kind = "<string>"
	Rune   Kind = "<rune>"

	// Arithmetic
	Plus      Kind = "+"
	Minus     Kind = "-"
	Star      Kind = "*"
	Slash     Kind = "/"
	Percent   Kind = "%"
	PlusEq    Kind = "+="
	MinusEq   Kind = "-="
	StarEq    Kind = "*="
	SlashEq   Kind = "/="
	PercentEq Kind = "%="

	// Bitwise
	Bitand       Kind = "&"
	Bitor        Kind = "|"
	Bitnot       Kind = "^"
	BitandEq     Kind = "&="
	BitorEq      Kind = "|="
	LeftShift    Kind = "<<"
	RightShift   Kind = ">>"
	BitClear     Kind = "&^"
	LeftShiftEq  Kind = "<<="
	RightShiftEq Kind = ">>="

	// Logical and comparison
	And  Kind = "&&"
	Or   Kind = "||"
	Not  Kind = "!"
	Incr Kind = "++"
	Decr Kind = "--"
	Eq   Kind = "=="
	Ne   Kind = "!="
	Lt   Kind = "<"
	Le   Kind = "<="
	Gt   Kind = ">"
	Ge   Kind = ">="

	Assign  Kind = "="
	ColonEq Kind = ":="

	// Delimiters
	LParen   Kind = "("
	RParen   Kind = ")"
	LBracket Kind = "["
	RBracket Kind = "]"
	LBrace   Kind = "{"
	RBrace   Kind = "}"
	Comma    Kind = ","
	Dot      Kind = "."
	Semi     Kind = ";"
	Colon    Kind = ":"
)

var keywords = map[string]Kind{
	"break":    Break,
	"case":     Case,
	"continue": Continue,
	"default":  Default,
	"else":     Else,
	"for":      For,
	"func":     Func,
	"if":       If,
	"package":  Package,
	"return":   Return,
	"struct":   Struct,
	"switch":   Switch,
	"type":     Type,
	"var":      Var,
	"append":   Append,
	"print":    Print,
	"println":  Println,
}

// Lookup maps an identifier to its keyword kind, Blank for "_", or Id.
func Lookup(word string) Kind {
	if word == "_" {
		return Blank
	}
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return Id
}

// String returns the source spelling of the kind.
func (k Kind) String() string {
	if k == None {
		return "<none>"
	}
	return string(k)
}

// HasLexeme reports whether tokens of this kind carry source text.
func (k Kind) HasLexeme() bool {
	switch k {
	case Id, Int, IntOct, IntHex, Float, String, Rune:
		return true
	default:
		return false
	}
}

// IsIntLiteral reports whether k is one of the integer literal kinds.
func (k Kind) IsIntLiteral() bool {
	return k == Int || k == IntOct || k == IntHex
}

// NeedsSemicolon reports whether a newline following a token of kind k
// terminates a statement.
func NeedsSemicolon(k Kind) bool {
	switch k {
	case Id, Blank, Int, IntOct, IntHex, Float, String, Rune,
		Break, Continue, Return, Incr, Decr,
		RParen, RBracket, RBrace, Eof:
		return true
	default:
		return false
	}
}
