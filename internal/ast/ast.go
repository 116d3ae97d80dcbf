package ast

import "github.com/gnuvince/gore/internal/token"

// Node represents any AST node with an associated source location.
type Node interface {
	Loc() token.Loc
}

// Decl represents a declaration, at top level or inside a function body.
type Decl interface {
	Node
	declNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Type represents a type expression.
type Type interface {
	Node
	typeNode()
}

// LValue represents the target of an assignment.
type LValue interface {
	Node
	lvalueNode()
}

// File represents a parsed compilation unit.
type File struct {
	Package *Ident
	Decls   []Decl
	loc     token.Loc
}

// Loc returns the location of the package clause.
func (f *File) Loc() token.Loc { return f.loc }

// NewFile constructs a file node.
func NewFile(pkg *Ident, decls []Decl, loc token.Loc) *File {
	return &File{
		Package: pkg,
		Decls:   decls,
		loc:     loc,
	}
}

// VarDecl declares one variable. At least one of Type and Value is set.
type VarDecl struct {
	Name  *Ident
	Type  Type // nil if omitted
	Value Expr // nil if omitted
	loc   token.Loc
}

// Loc returns the declaration location.
func (d *VarDecl) Loc() token.Loc { return d.loc }

// NewVarDecl constructs a variable declaration node.
func NewVarDecl(name *Ident, typ Type, value Expr, loc token.Loc) *VarDecl {
	return &VarDecl{
		Name:  name,
		Type:  typ,
		Value: value,
		loc:   loc,
	}
}

// declNode marks VarDecl as a declaration.
func (*VarDecl) declNode() {}

// TypeDecl binds a name to a type.
type TypeDecl struct {
	Name *Ident
	Type Type
	loc  token.Loc
}

// Loc returns the declaration location.
func (d *TypeDecl) Loc() token.Loc { return d.loc }

// NewTypeDecl constructs a type declaration node.
func NewTypeDecl(name *Ident, typ Type, loc token.Loc) *TypeDecl {
	return &TypeDecl{
		Name: name,
		Type: typ,
		loc:  loc,
	}
}

// declNode marks TypeDecl as a declaration.
func (*TypeDecl) declNode() {}

// FuncDecl represents a function declaration.
type FuncDecl struct {
	Name   *Ident
	Params []*Param
	Result Type // *VoidType when the function returns nothing
	Body   []Stmt
	loc    token.Loc
}

// Loc returns the declaration location.
func (d *FuncDecl) Loc() token.Loc { return d.loc }

// NewFuncDecl constructs a function declaration node.
func NewFuncDecl(name *Ident, params []*Param, result Type, body []Stmt, loc token.Loc) *FuncDecl {
	return &FuncDecl{
		Name:   name,
		Params: params,
		Result: result,
		Body:   body,
		loc:    loc,
	}
}

// declNode marks FuncDecl as a declaration.
func (*FuncDecl) declNode() {}

// Param is a function parameter or a struct field.
type Param struct {
	Name *Ident
	Type Type
	loc  token.Loc
}

// Loc returns the parameter location.
func (p *Param) Loc() token.Loc { return p.loc }

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ Type, loc token.Loc) *Param {
	return &Param{
		Name: name,
		Type: typ,
		loc:  loc,
	}
}
