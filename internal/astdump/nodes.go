package astdump

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gnuvince/gore/internal/ast"
)

// stmts renders a statement list; a nil list (an absent branch) is null.
func stmts(list []ast.Stmt) *yaml.Node {
	if list == nil {
		return null()
	}
	out := seq()
	for _, s := range list {
		out.Content = append(out.Content, stmt(s))
	}
	return out
}

func exprs(list []ast.Expr) *yaml.Node {
	out := seq()
	for _, e := range list {
		out.Content = append(out.Content, expr(e))
	}
	return out
}

func caseClause(c *ast.CaseClause) *yaml.Node {
	n := variant("CaseClause", c.Loc())
	field(n, "exprs", exprs(c.Exprs))
	return field(n, "body", stmts(c.Body))
}

func ifStmt(s *ast.IfStmt) *yaml.Node {
	if s == nil {
		return null()
	}
	n := variant("IfStmt", s.Loc())
	field(n, "init", stmt(s.Init))
	field(n, "cond", expr(s.Cond))
	field(n, "then", stmts(s.Then))
	field(n, "else", stmts(s.Else))
	return field(n, "else_if", ifStmt(s.ElseIf))
}

func stmt(s ast.Stmt) *yaml.Node {
	switch s := s.(type) {
	case *ast.EmptyStmt:
		return variant("EmptyStmt", s.Loc())
	case *ast.BreakStmt:
		return variant("BreakStmt", s.Loc())
	case *ast.ContinueStmt:
		return variant("ContinueStmt", s.Loc())
	case *ast.ReturnStmt:
		return field(variant("ReturnStmt", s.Loc()), "value", expr(s.Value))
	case *ast.PrintStmt:
		n := variant("PrintStmt", s.Loc())
		field(n, "newline", boolean(s.Newline))
		return field(n, "args", exprs(s.Args))
	case *ast.VarDeclStmt:
		return field(variant("VarDeclStmt", s.Loc()), "decl", decl(s.Decl))
	case *ast.TypeDeclStmt:
		return field(variant("TypeDeclStmt", s.Loc()), "decl", decl(s.Decl))
	case *ast.ShortVarDecl:
		n := variant("ShortVarDecl", s.Loc())
		field(n, "names", idents(s.Names))
		return field(n, "values", exprs(s.Values))
	case *ast.AssignStmt:
		n := variant("AssignStmt", s.Loc())
		targets := seq()
		for _, t := range s.Targets {
			targets.Content = append(targets.Content, lvalue(t))
		}
		field(n, "targets", targets)
		return field(n, "values", exprs(s.Values))
	case *ast.OpAssignStmt:
		n := variant("OpAssignStmt", s.Loc())
		field(n, "op", str(s.Op.String()))
		field(n, "target", lvalue(s.Target))
		return field(n, "value", expr(s.Value))
	case *ast.IncDecStmt:
		n := variant("IncDecStmt", s.Loc())
		field(n, "inc", boolean(s.Inc))
		return field(n, "target", lvalue(s.Target))
	case *ast.CallStmt:
		n := variant("CallStmt", s.Loc())
		field(n, "func", ident(s.Func))
		return field(n, "args", exprs(s.Args))
	case *ast.BlockStmt:
		return field(variant("BlockStmt", s.Loc()), "stmts", stmts(s.Stmts))
	case *ast.IfStmt:
		return ifStmt(s)
	case *ast.LoopStmt:
		return field(variant("LoopStmt", s.Loc()), "body", stmts(s.Body))
	case *ast.WhileStmt:
		n := variant("WhileStmt", s.Loc())
		field(n, "cond", expr(s.Cond))
		return field(n, "body", stmts(s.Body))
	case *ast.ForStmt:
		n := variant("ForStmt", s.Loc())
		field(n, "init", stmt(s.Init))
		field(n, "cond", expr(s.Cond))
		field(n, "post", stmt(s.Post))
		return field(n, "body", stmts(s.Body))
	case *ast.SwitchStmt:
		n := variant("SwitchStmt", s.Loc())
		field(n, "init", stmt(s.Init))
		field(n, "tag", expr(s.Tag))
		cases := seq()
		for _, c := range s.Cases {
			cases.Content = append(cases.Content, caseClause(c))
		}
		field(n, "cases", cases)
		return field(n, "default", stmts(s.Default))
	}
	return null()
}

func expr(e ast.Expr) *yaml.Node {
	switch e := e.(type) {
	case *ast.Ident:
		return ident(e)
	case *ast.IntLit:
		return flow(field(variant("IntLit", e.Loc()), "value", integer(e.Value)))
	case *ast.FloatLit:
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(e.Value, 'g', -1, 64)}
		return flow(field(variant("FloatLit", e.Loc()), "value", v))
	case *ast.StringLit:
		v := str(e.Value)
		v.Style = yaml.DoubleQuotedStyle
		return flow(field(variant("StringLit", e.Loc()), "value", v))
	case *ast.RuneLit:
		return flow(field(variant("RuneLit", e.Loc()), "value", str(strconv.QuoteRune(e.Value))))
	case *ast.UnaryExpr:
		n := variant("UnaryExpr", e.Loc())
		field(n, "op", str(e.Op.String()))
		return field(n, "x", expr(e.X))
	case *ast.BinaryExpr:
		n := variant("BinaryExpr", e.Loc())
		field(n, "op", str(e.Op.String()))
		field(n, "x", expr(e.X))
		return field(n, "y", expr(e.Y))
	case *ast.AppendExpr:
		n := variant("AppendExpr", e.Loc())
		field(n, "slice", expr(e.Slice))
		return field(n, "elem", expr(e.Elem))
	case *ast.CallExpr:
		n := variant("CallExpr", e.Loc())
		field(n, "func", ident(e.Func))
		return field(n, "args", exprs(e.Args))
	case *ast.CastExpr:
		n := variant("CastExpr", e.Loc())
		field(n, "type", typ(e.Type))
		return field(n, "x", expr(e.X))
	case *ast.IndexExpr:
		n := variant("IndexExpr", e.Loc())
		field(n, "x", expr(e.X))
		return field(n, "index", expr(e.Index))
	case *ast.FieldExpr:
		n := variant("FieldExpr", e.Loc())
		field(n, "x", expr(e.X))
		return field(n, "field", ident(e.Field))
	}
	return null()
}

func typ(t ast.Type) *yaml.Node {
	switch t := t.(type) {
	case *ast.NamedType:
		return flow(field(variant("NamedType", t.Loc()), "name", str(t.Name.Name)))
	case *ast.SliceType:
		return field(variant("SliceType", t.Loc()), "elem", typ(t.Elem))
	case *ast.ArrayType:
		n := variant("ArrayType", t.Loc())
		field(n, "len", integer(t.Len))
		return field(n, "elem", typ(t.Elem))
	case *ast.StructType:
		fields := seq()
		for _, f := range t.Fields {
			fields.Content = append(fields.Content, param(f))
		}
		return field(variant("StructType", t.Loc()), "fields", fields)
	case *ast.FuncType:
		params := seq()
		for _, p := range t.Params {
			params.Content = append(params.Content, typ(p))
		}
		n := field(variant("FuncType", t.Loc()), "params", params)
		return field(n, "result", typ(t.Result))
	case *ast.VoidType:
		return flow(variant("VoidType", t.Loc()))
	}
	return null()
}

func lvalue(l ast.LValue) *yaml.Node {
	switch l := l.(type) {
	case *ast.IdentLValue:
		return flow(field(variant("IdentLValue", l.Loc()), "name", str(l.Name.Name)))
	case *ast.BlankLValue:
		return flow(variant("BlankLValue", l.Loc()))
	case *ast.IndexLValue:
		n := variant("IndexLValue", l.Loc())
		field(n, "x", lvalue(l.X))
		return field(n, "index", expr(l.Index))
	case *ast.FieldLValue:
		n := variant("FieldLValue", l.Loc())
		field(n, "x", lvalue(l.X))
		return field(n, "field", ident(l.Field))
	}
	return null()
}

// flow keeps leaf nodes on one line.
func flow(n *yaml.Node) *yaml.Node {
	n.Style = yaml.FlowStyle
	return n
}
