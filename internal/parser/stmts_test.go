package parser_test

import (
	"testing"

	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
)

func wrapBody(body string) string {
	return "package main\nfunc f() {\n" + body + "\n}\n"
}

// mustParseBody parses body as the statements of a function.
func mustParseBody(t *testing.T, body string) []ast.Stmt {
	t.Helper()

	file := mustParse(t, wrapBody(body))
	fn, ok := file.Decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", file.Decls[0])
	}
	return fn.Body
}

func mustParseStmt(t *testing.T, body string) ast.Stmt {
	t.Helper()

	stmts := mustParseBody(t, body)
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement for %q, got %d", body, len(stmts))
	}
	return stmts[0]
}

func TestParseStatementForms(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{";", "*ast.EmptyStmt"},
		{"x := 1", "*ast.ShortVarDecl"},
		{"a, b := 1, 2", "*ast.ShortVarDecl"},
		{"x = 1", "*ast.AssignStmt"},
		{"a, b = b, a", "*ast.AssignStmt"},
		{"x += 2", "*ast.OpAssignStmt"},
		{"x++", "*ast.IncDecStmt"},
		{"x--", "*ast.IncDecStmt"},
		{"f(1, 2)", "*ast.CallStmt"},
		{"print(x)", "*ast.PrintStmt"},
		{"println()", "*ast.PrintStmt"},
		{"return", "*ast.ReturnStmt"},
		{"return x + 1", "*ast.ReturnStmt"},
		{"{ x++ }", "*ast.BlockStmt"},
		{"var y int", "*ast.VarDeclStmt"},
		{"type t int", "*ast.TypeDeclStmt"},
		{"if x { }", "*ast.IfStmt"},
		{"for { }", "*ast.LoopStmt"},
		{"for x { }", "*ast.WhileStmt"},
		{"for ;; { }", "*ast.ForStmt"},
		{"switch { }", "*ast.SwitchStmt"},
	}

	for i, tt := range tests {
		stmt := mustParseStmt(t, tt.input)
		if got := typeName(stmt); got != tt.expected {
			t.Fatalf("tests[%d] - statement type wrong for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestParseStatementList(t *testing.T) {
	stmts := mustParseBody(t, "x := 1\ny := 2; z := 3\n\nprintln(x, y, z)")
	if len(stmts) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(stmts))
	}

	stmts = mustParseBody(t, "var (a int; b, c = 1, 2)\ntype (p int; q string)")
	if len(stmts) != 5 {
		t.Fatalf("expected 5 statements, got %d", len(stmts))
	}
	for i := 0; i < 3; i++ {
		if _, ok := stmts[i].(*ast.VarDeclStmt); !ok {
			t.Fatalf("stmts[%d] - expected *ast.VarDeclStmt, got %T", i, stmts[i])
		}
	}
	for i := 3; i < 5; i++ {
		if _, ok := stmts[i].(*ast.TypeDeclStmt); !ok {
			t.Fatalf("stmts[%d] - expected *ast.TypeDeclStmt, got %T", i, stmts[i])
		}
	}
}

func TestParseShortVarDecl(t *testing.T) {
	stmt := mustParseStmt(t, "a, _ := 1, f()").(*ast.ShortVarDecl)
	if len(stmt.Names) != 2 || len(stmt.Values) != 2 {
		t.Fatalf("expected 2 names and 2 values, got %d and %d", len(stmt.Names), len(stmt.Values))
	}
	if stmt.Names[0].Name != "a" || !stmt.Names[1].IsBlank() {
		t.Fatalf("unexpected names %q, %q", stmt.Names[0].Name, stmt.Names[1].Name)
	}
	if _, ok := stmt.Values[1].(*ast.CallExpr); !ok {
		t.Fatalf("expected a call, got %T", stmt.Values[1])
	}
}

func TestParseAssignTargets(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"x = 1", "*ast.IdentLValue"},
		{"_ = x", "*ast.BlankLValue"},
		{"a[i] = 1", "*ast.IndexLValue"},
		{"p.x = 1", "*ast.FieldLValue"},
		{"a[i].f = 1", "*ast.FieldLValue"},
		{"p.xs[0] = 1", "*ast.IndexLValue"},
	}

	for i, tt := range tests {
		stmt, ok := mustParseStmt(t, tt.input).(*ast.AssignStmt)
		if !ok {
			t.Fatalf("tests[%d] - expected *ast.AssignStmt for %q", i, tt.input)
		}
		if got := typeName(stmt.Targets[0]); got != tt.expected {
			t.Fatalf("tests[%d] - target type wrong for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}

	stmt := mustParseStmt(t, "a[i].f = 1").(*ast.AssignStmt)
	field := stmt.Targets[0].(*ast.FieldLValue)
	index, ok := field.X.(*ast.IndexLValue)
	if !ok {
		t.Fatalf("expected an index target under the field, got %T", field.X)
	}
	if base, ok := index.X.(*ast.IdentLValue); !ok || base.Name.Name != "a" {
		t.Fatalf("expected base a, got %#v", index.X)
	}
	if field.Field.Name != "f" {
		t.Fatalf("expected field f, got %q", field.Field.Name)
	}
}

func TestParseOpAssign(t *testing.T) {
	tests := []struct {
		input    string
		expected ast.BinOp
	}{
		{"x += 1", ast.OpAdd},
		{"x -= 1", ast.OpSub},
		{"x *= 1", ast.OpMul},
		{"x /= 1", ast.OpDiv},
		{"x %= 1", ast.OpRem},
		{"x &= 1", ast.OpBitAnd},
		{"x |= 1", ast.OpBitOr},
		{"x <<= 1", ast.OpShl},
		{"x >>= 1", ast.OpShr},
	}

	for i, tt := range tests {
		stmt := mustParseStmt(t, tt.input).(*ast.OpAssignStmt)
		if stmt.Op != tt.expected {
			t.Fatalf("tests[%d] - op wrong for %q. expected=%q, got=%q", i, tt.input, tt.expected, stmt.Op)
		}
	}

	incr := mustParseStmt(t, "a[0]++").(*ast.IncDecStmt)
	if !incr.Inc {
		t.Fatalf("expected an increment")
	}
	if _, ok := incr.Target.(*ast.IndexLValue); !ok {
		t.Fatalf("expected an index target, got %T", incr.Target)
	}
	if decr := mustParseStmt(t, "x--").(*ast.IncDecStmt); decr.Inc {
		t.Fatalf("expected a decrement")
	}
}

func TestParsePrintAndCall(t *testing.T) {
	p := mustParseStmt(t, "print(a, b,\n\tc,\n)").(*ast.PrintStmt)
	if p.Newline {
		t.Fatalf("print should not add a newline")
	}
	if len(p.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(p.Args))
	}

	pl := mustParseStmt(t, "println()").(*ast.PrintStmt)
	if !pl.Newline || len(pl.Args) != 0 {
		t.Fatalf("expected println with no args, got %+v", pl)
	}

	call := mustParseStmt(t, "g(x, 2)").(*ast.CallStmt)
	if call.Func.Name != "g" || len(call.Args) != 2 {
		t.Fatalf("expected g with 2 args, got %s with %d", call.Func.Name, len(call.Args))
	}

	ret := mustParseStmt(t, "return").(*ast.ReturnStmt)
	if ret.Value != nil {
		t.Fatalf("expected a bare return, got %T", ret.Value)
	}
	stmts := mustParseBody(t, "{ return }")
	if inner := stmts[0].(*ast.BlockStmt); len(inner.Stmts) != 1 {
		t.Fatalf("expected 1 statement in the block, got %d", len(inner.Stmts))
	}
}

func TestParseEmptyStatements(t *testing.T) {
	stmts := mustParseBody(t, ";\n;")
	if len(stmts) != 2 {
		t.Fatalf("expected 2 empty statements, got %d", len(stmts))
	}
	for i, stmt := range stmts {
		if _, ok := stmt.(*ast.EmptyStmt); !ok {
			t.Fatalf("stmts[%d] - expected *ast.EmptyStmt, got %T", i, stmt)
		}
	}
}

func TestParseStatementErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected diag.Kind
	}{
		{"x", diag.ExpectedStatement},
		{"1 + 2", diag.ExpectedStatement},
		{"append(s, 1)", diag.ExpectedStatement},
		{"1 := 2", diag.InvalidShortDecl},
		{"a.b := 2", diag.InvalidShortDecl},
		{"f() = 1", diag.InvalidLValue},
		{"x + 1 = 2", diag.InvalidLValue},
		{"_[0] = 1", diag.InvalidLValue},
		{"_.x = 1", diag.InvalidLValue},
		{"1++", diag.InvalidLValue},
		{"a, b = 1", diag.VarExprLengthMismatch},
		{"a := 1, 2", diag.VarExprLengthMismatch},
		{"a, b++", diag.UnexpectedToken},
		{"a, b += 1", diag.UnexpectedToken},
		{"a, b", diag.UnexpectedToken},
		{"a[0](1)", diag.UnexpectedToken},
		{"x =", diag.ExpectedExpression},
		{"print x", diag.UnexpectedToken},
		{"print(x", diag.UnexpectedToken},
		{"x := 1 y := 2", diag.UnexpectedToken},
		{"else { }", diag.ExpectedExpression},
		{"func g() { }", diag.ExpectedExpression},
	}

	for i, tt := range tests {
		if got := parseErrorKind(t, wrapBody(tt.input)); got != tt.expected {
			t.Fatalf("tests[%d] - wrong error for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}
