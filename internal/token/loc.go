package token

import "fmt"

// Loc identifies a position in a source file. Lines and columns are 1-based
// and counted in bytes.
type Loc struct {
	Filename string
	Line     int
	Column   int
}

// NewLoc constructs a location.
func NewLoc(filename string, line, column int) Loc {
	return Loc{Filename: filename, Line: line, Column: column}
}

// String returns the location as file:line:col.
func (l Loc) String() string {
	if l.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
	}
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// IsValid returns true if the location points into a file.
func (l Loc) IsValid() bool {
	return l.Line > 0 && l.Column > 0
}
