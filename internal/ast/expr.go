package ast

import "github.com/gnuvince/gore/internal/token"

// Ident represents an identifier.
type Ident struct {
	Name string
	loc  token.Loc
}

// Loc returns the identifier location.
func (i *Ident) Loc() token.Loc { return i.loc }

// NewIdent constructs an identifier node.
func NewIdent(name string, loc token.Loc) *Ident {
	return &Ident{Name: name, loc: loc}
}

// IsBlank reports whether the identifier is the blank identifier.
func (i *Ident) IsBlank() bool { return i.Name == "_" }

func (*Ident) exprNode() {}

// IntLit represents an integer literal. Octal and hexadecimal literals are
// stored by value.
type IntLit struct {
	Value int64
	loc   token.Loc
}

// Loc returns the literal location.
func (l *IntLit) Loc() token.Loc { return l.loc }

// NewIntLit constructs an integer literal node.
func NewIntLit(value int64, loc token.Loc) *IntLit {
	return &IntLit{Value: value, loc: loc}
}

func (*IntLit) exprNode() {}

// FloatLit represents a floating-point literal.
type FloatLit struct {
	Value float64
	loc   token.Loc
}

// Loc returns the literal location.
func (l *FloatLit) Loc() token.Loc { return l.loc }

// NewFloatLit constructs a float literal node.
func NewFloatLit(value float64, loc token.Loc) *FloatLit {
	return &FloatLit{Value: value, loc: loc}
}

func (*FloatLit) exprNode() {}

// StringLit represents a string literal with escapes already decoded.
type StringLit struct {
	Value string
	loc   token.Loc
}

// Loc returns the literal location.
func (l *StringLit) Loc() token.Loc { return l.loc }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, loc token.Loc) *StringLit {
	return &StringLit{Value: value, loc: loc}
}

func (*StringLit) exprNode() {}

// RuneLit represents a rune literal.
type RuneLit struct {
	Value rune
	loc   token.Loc
}

// Loc returns the literal location.
func (l *RuneLit) Loc() token.Loc { return l.loc }

// NewRuneLit constructs a rune literal node.
func NewRuneLit(value rune, loc token.Loc) *RuneLit {
	return &RuneLit{Value: value, loc: loc}
}

func (*RuneLit) exprNode() {}

// UnaryExpr represents a prefix operator application.
type UnaryExpr struct {
	Op  UnaryOp
	X   Expr
	loc token.Loc
}

// Loc returns the operator location.
func (e *UnaryExpr) Loc() token.Loc { return e.loc }

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op UnaryOp, x Expr, loc token.Loc) *UnaryExpr {
	return &UnaryExpr{Op: op, X: x, loc: loc}
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr represents a binary operator application.
type BinaryExpr struct {
	Op  BinOp
	X   Expr
	Y   Expr
	loc token.Loc
}

// Loc returns the operator location.
func (e *BinaryExpr) Loc() token.Loc { return e.loc }

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op BinOp, x, y Expr, loc token.Loc) *BinaryExpr {
	return &BinaryExpr{Op: op, X: x, Y: y, loc: loc}
}

func (*BinaryExpr) exprNode() {}

// AppendExpr represents append(slice, elem).
type AppendExpr struct {
	Slice Expr
	Elem  Expr
	loc   token.Loc
}

// Loc returns the location of the append keyword.
func (e *AppendExpr) Loc() token.Loc { return e.loc }

// NewAppendExpr constructs an append node.
func NewAppendExpr(slice, elem Expr, loc token.Loc) *AppendExpr {
	return &AppendExpr{Slice: slice, Elem: elem, loc: loc}
}

func (*AppendExpr) exprNode() {}

// CallExpr represents f(args). The callee is always a name; conversions to
// named types such as int(x) also parse as calls.
type CallExpr struct {
	Func *Ident
	Args []Expr
	loc  token.Loc
}

// Loc returns the callee location.
func (e *CallExpr) Loc() token.Loc { return e.loc }

// NewCallExpr constructs a call node.
func NewCallExpr(fn *Ident, args []Expr, loc token.Loc) *CallExpr {
	return &CallExpr{Func: fn, Args: args, loc: loc}
}

func (*CallExpr) exprNode() {}

// CastExpr represents a conversion to a slice or array type, e.g. []int(x).
type CastExpr struct {
	Type Type
	X    Expr
	loc  token.Loc
}

// Loc returns the location of the type.
func (e *CastExpr) Loc() token.Loc { return e.loc }

// NewCastExpr constructs a conversion node.
func NewCastExpr(typ Type, x Expr, loc token.Loc) *CastExpr {
	return &CastExpr{Type: typ, X: x, loc: loc}
}

func (*CastExpr) exprNode() {}

// IndexExpr represents x[index].
type IndexExpr struct {
	X     Expr
	Index Expr
	loc   token.Loc
}

// Loc returns the location of the opening bracket.
func (e *IndexExpr) Loc() token.Loc { return e.loc }

// NewIndexExpr constructs an index node.
func NewIndexExpr(x, index Expr, loc token.Loc) *IndexExpr {
	return &IndexExpr{X: x, Index: index, loc: loc}
}

func (*IndexExpr) exprNode() {}

// FieldExpr represents x.field.
type FieldExpr struct {
	X     Expr
	Field *Ident
	loc   token.Loc
}

// Loc returns the location of the dot.
func (e *FieldExpr) Loc() token.Loc { return e.loc }

// NewFieldExpr constructs a field access node.
func NewFieldExpr(x Expr, field *Ident, loc token.Loc) *FieldExpr {
	return &FieldExpr{X: x, Field: field, loc: loc}
}

func (*FieldExpr) exprNode() {}
