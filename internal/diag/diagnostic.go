package diag

import (
	"fmt"
	"strings"

	"github.com/gnuvince/gore/internal/token"
)

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const SeverityError Severity = "error"

// Code is a stable identifier for a diagnostic.
type Code string

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Loc      token.Loc
	Width    int // number of columns to underline, at least 1
	Notes    []string
	Help     string
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// ToDiagnostic converts a front-end error into a shared diagnostic structure.
func (e *Error) ToDiagnostic() Diagnostic {
	d := Diagnostic{
		Stage:    e.Stage(),
		Severity: SeverityError,
		Code:     e.Kind.Code(),
		Message:  e.Message(),
		Loc:      e.Loc,
		Width:    1,
	}
	if e.Kind == UnexpectedToken && e.Got != token.None && !e.Got.HasLexeme() {
		d.Width = len(e.Got.String())
	}

	switch e.Kind {
	case TrailingBlockComment:
		d = d.WithHelp("close the comment with `*/`")
	case MalformedHexLiteral:
		d = d.WithHelp("a hexadecimal literal needs at least one digit after `0x`")
	case MalformedOctLiteral:
		d = d.WithHelp("integer literals starting with `0` are octal and may only use digits 0-7")
	case InvalidEscape:
		d = d.WithHelp(`valid escapes are \a \b \f \n \r \t \v \\ and the quote character`)
	case NewlineInString:
		d = d.WithHelp("use a raw string (`...`) for multi-line text")
	case VarExprLengthMismatch:
		d = d.WithHelp("provide one expression per name, or none")
	case InvalidVarDecl:
		d = d.WithHelp("a variable needs a type, an initializer, or both")
	case InvalidBreak:
		d = d.WithNote("break may only appear inside a for loop or a switch")
	case InvalidContinue:
		d = d.WithNote("continue may only appear inside a for loop")
	case UnexpectedToken:
		if len(e.Want) > 0 {
			want := make([]string, len(e.Want))
			for i, k := range e.Want {
				want[i] = "`" + k.String() + "`"
			}
			d = d.WithHelp(fmt.Sprintf("expected %s here", strings.Join(want, " or ")))
		}
	}

	return d
}
