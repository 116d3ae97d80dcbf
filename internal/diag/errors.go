package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gnuvince/gore/internal/token"
)

// Kind is the closed set of failures the front end can report.
type Kind int

const (
	Internal Kind = iota

	// Lexical errors
	UnrecognizedCharacter
	TrailingBlockComment
	MalformedHexLiteral
	MalformedOctLiteral
	TrailingString
	TrailingRune
	InvalidEscape
	NewlineInString
	NewlineInRune
	EmptyRune

	// Syntactic errors
	MissingPackageDeclaration
	MissingPackageName
	ExpectedDeclaration
	ExpectedExpression
	ExpectedStatement
	InvalidVarDecl
	VarExprLengthMismatch
	InvalidTypeDecl
	ExpectedParamList
	MissingLexeme
	UnexpectedToken
	InvalidBreak
	InvalidContinue
	InvalidLValue
	InvalidShortDecl
	MultipleDefaults
	InvalidIntLiteral
)

var kindMessages = map[Kind]string{
	Internal: "internal compiler error",

	UnrecognizedCharacter: "unrecognized character",
	TrailingBlockComment:  "unfinished block comment",
	MalformedHexLiteral:   "malformed hexadecimal literal",
	MalformedOctLiteral:   "malformed octal literal",
	TrailingString:        "unfinished string literal",
	TrailingRune:          "unfinished rune literal",
	InvalidEscape:         "invalid escape code",
	NewlineInString:       "newline in interpreted string literal",
	NewlineInRune:         "newline in rune literal",
	EmptyRune:             "empty rune literal",

	MissingPackageDeclaration: "missing package declaration",
	MissingPackageName:        "package name is missing",
	ExpectedDeclaration:       "expected declaration",
	ExpectedExpression:        "expected expression",
	ExpectedStatement:         "expression is not a statement",
	InvalidVarDecl:            "invalid var declaration",
	VarExprLengthMismatch:     "variable list and expression list must have the same length",
	InvalidTypeDecl:           "invalid type declaration",
	ExpectedParamList:         "expected parameter list",
	MissingLexeme:             "lexeme is missing",
	UnexpectedToken:           "unexpected token",
	InvalidBreak:              "break is not in a loop or switch",
	InvalidContinue:           "continue is not in a loop",
	InvalidLValue:             "cannot assign to expression",
	InvalidShortDecl:          "non-name on left side of :=",
	MultipleDefaults:          "multiple defaults in switch",
	InvalidIntLiteral:         "integer literal out of range",
}

// String returns the base message for the kind.
func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("diag.Kind(%d)", int(k))
}

// Code returns the stable identifier of the kind, e.g. E007.
func (k Kind) Code() Code {
	return Code(fmt.Sprintf("E%03d", int(k)))
}

// IsLexical reports whether the kind belongs to the scanner family.
func (k Kind) IsLexical() bool {
	return k >= UnrecognizedCharacter && k <= EmptyRune
}

// Error is a located front-end failure. Payload fields are only meaningful
// for the kinds that use them:
//   - Char: UnrecognizedCharacter, InvalidEscape
//   - Got, Want: UnexpectedToken (Want may be empty)
//   - Detail: free-form context for any kind
type Error struct {
	Kind   Kind
	Loc    token.Loc
	Char   byte
	Got    token.Kind
	Want   []token.Kind
	Detail string
}

// New constructs an error without payload.
func New(kind Kind, loc token.Loc) *Error {
	return &Error{Kind: kind, Loc: loc}
}

// NewChar constructs an error about a single offending byte.
func NewChar(kind Kind, loc token.Loc, ch byte) *Error {
	return &Error{Kind: kind, Loc: loc, Char: ch}
}

// NewUnexpected constructs an UnexpectedToken error.
func NewUnexpected(got token.Token, want ...token.Kind) *Error {
	return &Error{Kind: UnexpectedToken, Loc: got.Loc, Got: got.Kind, Want: want}
}

// Newf constructs an error with a formatted detail.
func Newf(kind Kind, loc token.Loc, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Loc: loc, Detail: fmt.Sprintf(format, args...)}
}

// Message renders the error without its location.
func (e *Error) Message() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())

	switch e.Kind {
	case UnrecognizedCharacter, InvalidEscape:
		fmt.Fprintf(&b, " %q", e.Char)
	case UnexpectedToken:
		if e.Got != token.None {
			fmt.Fprintf(&b, " `%s`", e.Got)
		}
		if len(e.Want) > 0 {
			b.WriteString(", expected ")
			for i, k := range e.Want {
				if i > 0 {
					if i == len(e.Want)-1 {
						b.WriteString(" or ")
					} else {
						b.WriteString(", ")
					}
				}
				fmt.Fprintf(&b, "`%s`", k)
			}
		}
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Error implements the error interface as "loc: message (Ennn)".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Loc, e.Message(), e.Kind.Code())
}

// Stage reports which front-end phase produced the error.
func (e *Error) Stage() Stage {
	if e.Kind.IsLexical() {
		return StageLexer
	}
	return StageParser
}

// KindOf returns the kind of a front-end error and whether err is one.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return Internal, false
}
