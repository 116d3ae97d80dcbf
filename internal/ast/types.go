package ast

import "github.com/gnuvince/gore/internal/token"

// NamedType refers to a type by name, e.g. int or point.
type NamedType struct {
	Name *Ident
	loc  token.Loc
}

// Loc returns the type location.
func (t *NamedType) Loc() token.Loc { return t.loc }

// NewNamedType constructs a named type node.
func NewNamedType(name *Ident, loc token.Loc) *NamedType {
	return &NamedType{Name: name, loc: loc}
}

func (*NamedType) typeNode() {}

// SliceType represents []Elem.
type SliceType struct {
	Elem Type
	loc  token.Loc
}

// Loc returns the type location.
func (t *SliceType) Loc() token.Loc { return t.loc }

// NewSliceType constructs a slice type node.
func NewSliceType(elem Type, loc token.Loc) *SliceType {
	return &SliceType{Elem: elem, loc: loc}
}

func (*SliceType) typeNode() {}

// ArrayType represents [Len]Elem.
type ArrayType struct {
	Len  int64
	Elem Type
	loc  token.Loc
}

// Loc returns the type location.
func (t *ArrayType) Loc() token.Loc { return t.loc }

// NewArrayType constructs an array type node.
func NewArrayType(length int64, elem Type, loc token.Loc) *ArrayType {
	return &ArrayType{Len: length, Elem: elem, loc: loc}
}

func (*ArrayType) typeNode() {}

// StructType represents struct { fields }. Each field has its own Param
// even when declared in a group such as `x, y int`.
type StructType struct {
	Fields []*Param
	loc    token.Loc
}

// Loc returns the type location.
func (t *StructType) Loc() token.Loc { return t.loc }

// NewStructType constructs a struct type node.
func NewStructType(fields []*Param, loc token.Loc) *StructType {
	return &StructType{Fields: fields, loc: loc}
}

func (*StructType) typeNode() {}

// FuncType represents func(params) result.
type FuncType struct {
	Params []Type
	Result Type // *VoidType when omitted
	loc    token.Loc
}

// Loc returns the type location.
func (t *FuncType) Loc() token.Loc { return t.loc }

// NewFuncType constructs a function type node.
func NewFuncType(params []Type, result Type, loc token.Loc) *FuncType {
	return &FuncType{Params: params, Result: result, loc: loc}
}

func (*FuncType) typeNode() {}

// VoidType is the result type of a function that returns nothing.
type VoidType struct {
	loc token.Loc
}

// Loc returns the location where the result type would have appeared.
func (t *VoidType) Loc() token.Loc { return t.loc }

// NewVoidType constructs a void type node.
func NewVoidType(loc token.Loc) *VoidType {
	return &VoidType{loc: loc}
}

func (*VoidType) typeNode() {}

// CloneType returns a deep copy of t. Grouped declarations such as
// `var a, b [3]int` give every name its own copy so that no node is
// reachable twice from the root.
func CloneType(t Type) Type {
	switch t := t.(type) {
	case nil:
		return nil
	case *NamedType:
		return NewNamedType(NewIdent(t.Name.Name, t.Name.loc), t.loc)
	case *SliceType:
		return NewSliceType(CloneType(t.Elem), t.loc)
	case *ArrayType:
		return NewArrayType(t.Len, CloneType(t.Elem), t.loc)
	case *StructType:
		fields := make([]*Param, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = NewParam(NewIdent(f.Name.Name, f.Name.loc), CloneType(f.Type), f.loc)
		}
		return NewStructType(fields, t.loc)
	case *FuncType:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = CloneType(p)
		}
		return NewFuncType(params, CloneType(t.Result), t.loc)
	case *VoidType:
		return NewVoidType(t.loc)
	}
	return t
}
