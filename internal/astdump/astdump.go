// Package astdump renders token streams and syntax trees as YAML documents.
//
// Every tree node becomes a mapping tagged with its variant name, e.g.
//
//	!BinaryExpr
//	loc: main.go:3:11
//	op: +
//	x: !Ident {loc: main.go:3:9, name: a}
//	y: ...
package astdump

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/token"
)

// Encode writes n as a single YAML document.
func Encode(w io.Writer, n *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

func str(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func integer(v int64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)}
}

func boolean(v bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}
}

func null() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func seq(items ...*yaml.Node) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	n.Content = append(n.Content, items...)
	return n
}

// variant starts a mapping tagged !name with its location as the first key.
func variant(name string, loc token.Loc) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!" + name}
	return field(n, "loc", str(loc.String()))
}

func field(m *yaml.Node, key string, value *yaml.Node) *yaml.Node {
	m.Content = append(m.Content, str(key), value)
	return m
}

// Tokens renders a token stream as a sequence of {kind, loc, lexeme} maps.
func Tokens(toks []token.Token) *yaml.Node {
	out := seq()
	for _, tok := range toks {
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
		field(n, "kind", str(tok.Kind.String()))
		field(n, "loc", str(tok.Loc.String()))
		if tok.Kind.HasLexeme() {
			field(n, "lexeme", str(tok.Lexeme))
		}
		out.Content = append(out.Content, n)
	}
	return out
}

// File renders a whole compilation unit.
func File(f *ast.File) *yaml.Node {
	n := variant("File", f.Loc())
	field(n, "package", ident(f.Package))
	decls := seq()
	for _, d := range f.Decls {
		decls.Content = append(decls.Content, Node(d))
	}
	return field(n, "decls", decls)
}

// Node renders any tree node. A nil node renders as null.
func Node(node ast.Node) *yaml.Node {
	switch n := node.(type) {
	case nil:
		return null()
	case *ast.File:
		return File(n)
	case ast.Decl:
		return decl(n)
	case ast.Stmt:
		return stmt(n)
	case ast.Expr:
		return expr(n)
	case ast.Type:
		return typ(n)
	case ast.LValue:
		return lvalue(n)
	case *ast.Param:
		return param(n)
	case *ast.CaseClause:
		return caseClause(n)
	}
	return null()
}

func ident(id *ast.Ident) *yaml.Node {
	if id == nil {
		return null()
	}
	return flow(field(variant("Ident", id.Loc()), "name", str(id.Name)))
}

func idents(ids []*ast.Ident) *yaml.Node {
	out := seq()
	for _, id := range ids {
		out.Content = append(out.Content, ident(id))
	}
	return out
}

func param(p *ast.Param) *yaml.Node {
	n := variant("Param", p.Loc())
	field(n, "name", ident(p.Name))
	return field(n, "type", typ(p.Type))
}

func decl(d ast.Decl) *yaml.Node {
	switch d := d.(type) {
	case *ast.VarDecl:
		n := variant("VarDecl", d.Loc())
		field(n, "name", ident(d.Name))
		field(n, "type", typ(d.Type))
		return field(n, "value", expr(d.Value))
	case *ast.TypeDecl:
		n := variant("TypeDecl", d.Loc())
		field(n, "name", ident(d.Name))
		return field(n, "type", typ(d.Type))
	case *ast.FuncDecl:
		n := variant("FuncDecl", d.Loc())
		field(n, "name", ident(d.Name))
		params := seq()
		for _, p := range d.Params {
			params.Content = append(params.Content, param(p))
		}
		field(n, "params", params)
		field(n, "result", typ(d.Result))
		return field(n, "body", stmts(d.Body))
	}
	return null()
}
