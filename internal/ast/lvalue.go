package ast

import "github.com/gnuvince/gore/internal/token"

// IdentLValue assigns to a named variable.
type IdentLValue struct {
	Name *Ident
}

func NewIdentLValue(name *Ident) *IdentLValue { return &IdentLValue{Name: name} }

func (l *IdentLValue) Loc() token.Loc { return l.Name.Loc() }
func (*IdentLValue) lvalueNode()      {}

// BlankLValue discards the assigned value.
type BlankLValue struct {
	loc token.Loc
}

func NewBlankLValue(loc token.Loc) *BlankLValue { return &BlankLValue{loc: loc} }

func (l *BlankLValue) Loc() token.Loc { return l.loc }
func (*BlankLValue) lvalueNode()      {}

// IndexLValue assigns to an element, e.g. a[i] = x.
type IndexLValue struct {
	X     LValue
	Index Expr
	loc   token.Loc
}

func NewIndexLValue(x LValue, index Expr, loc token.Loc) *IndexLValue {
	return &IndexLValue{X: x, Index: index, loc: loc}
}

func (l *IndexLValue) Loc() token.Loc { return l.loc }
func (*IndexLValue) lvalueNode()      {}

// FieldLValue assigns to a struct field, e.g. p.x = 1.
type FieldLValue struct {
	X     LValue
	Field *Ident
	loc   token.Loc
}

func NewFieldLValue(x LValue, field *Ident, loc token.Loc) *FieldLValue {
	return &FieldLValue{X: x, Field: field, loc: loc}
}

func (l *FieldLValue) Loc() token.Loc { return l.loc }
func (*FieldLValue) lvalueNode()      {}
