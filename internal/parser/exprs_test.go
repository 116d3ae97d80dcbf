package parser_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/gnuvince/gore/internal/ast"
	"github.com/gnuvince/gore/internal/diag"
)

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

// mustParseExpr parses src as the initializer of a package-level variable.
func mustParseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	decls := mustParseDecls(t, "var v = "+src)
	return decls[0].(*ast.VarDecl).Value
}

// render prints an expression fully parenthesized so that tests can assert
// on its shape.
func render(e ast.Node) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.IntLit:
		return strconv.FormatInt(e.Value, 10)
	case *ast.FloatLit:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *ast.StringLit:
		return strconv.Quote(e.Value)
	case *ast.RuneLit:
		return strconv.QuoteRune(e.Value)
	case *ast.UnaryExpr:
		return "(" + e.Op.String() + render(e.X) + ")"
	case *ast.BinaryExpr:
		return "(" + render(e.X) + " " + e.Op.String() + " " + render(e.Y) + ")"
	case *ast.CallExpr:
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			args[i] = render(a)
		}
		return e.Func.Name + "(" + strings.Join(args, ", ") + ")"
	case *ast.IndexExpr:
		return render(e.X) + "[" + render(e.Index) + "]"
	case *ast.FieldExpr:
		return render(e.X) + "." + e.Field.Name
	case *ast.AppendExpr:
		return "append(" + render(e.Slice) + ", " + render(e.Elem) + ")"
	case *ast.CastExpr:
		return "cast(" + render(e.Type) + ", " + render(e.X) + ")"
	case *ast.NamedType:
		return e.Name.Name
	case *ast.SliceType:
		return "[]" + render(e.Elem)
	case *ast.ArrayType:
		return "[" + strconv.FormatInt(e.Len, 10) + "]" + render(e.Elem)
	}
	return fmt.Sprintf("<%T>", e)
}

func TestParseOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b * c", "(a + (b * c))"},
		{"a * b + c", "((a * b) + c)"},
		{"a - b - c", "((a - b) - c)"},
		{"a / b * c", "((a / b) * c)"},
		{"a || b && c", "(a || (b && c))"},
		{"a && b || c", "((a && b) || c)"},
		{"a == b || c < d", "((a == b) || (c < d))"},
		{"a + b == c", "((a + b) == c)"},
		{"a <= b != c", "((a <= b) != c)"},
		{"a | b ^ c & d", "((a | b) ^ (c & d))"},
		{"a << 2 + 1", "((a << 2) + 1)"},
		{"a >> b % c", "((a >> b) % c)"},
		{"a &^ b & c", "((a &^ b) & c)"},
		{"-a * b", "((-a) * b)"},
		{"!!a", "(!(!a))"},
		{"^a + +b", "((^a) + (+b))"},
		{"-(a + b)", "(-(a + b))"},
		{"(a + b) * c", "((a + b) * c)"},
		{"a > b && c >= d", "((a > b) && (c >= d))"},
	}

	for i, tt := range tests {
		got := render(mustParseExpr(t, tt.input))
		if got != tt.expected {
			t.Fatalf("tests[%d] - wrong tree for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestParsePrimaryExpressions(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"f(a, b + 1)[i].x", "f(a, (b + 1))[i].x"},
		{"f()", "f()"},
		{"f(\n\ta,\n\tb,\n)", "f(a, b)"},
		{"a[i][j]", "a[i][j]"},
		{"p.q.r", "p.q.r"},
		{"append(s, 1)", "append(s, 1)"},
		{"append(append(s, 1), g(2))", "append(append(s, 1), g(2))"},
		{"[]int(x)", "cast([]int, x)"},
		{"[4]float64(y)[0]", "cast([4]float64, y)[0]"},
		{"int(x) + 1", "(int(x) + 1)"},
		{"-f(x).y", "(-f(x).y)"},
	}

	for i, tt := range tests {
		got := render(mustParseExpr(t, tt.input))
		if got != tt.expected {
			t.Fatalf("tests[%d] - wrong tree for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"42", "42"},
		{"0", "0"},
		{"017", "15"},
		{"0x1F", "31"},
		{"0XfF", "255"},
		{"9223372036854775807", "9223372036854775807"},
		{"1.5", "1.5"},
		{".5", "0.5"},
		{"5.", "5"},
		{`"hi\n"`, `"hi\n"`},
		{`""`, `""`},
		{"`raw\\n`", `"raw\\n"`},
		{`'a'`, `'a'`},
		{`'\t'`, `'\t'`},
		{`'\''`, `'\''`},
	}

	for i, tt := range tests {
		got := render(mustParseExpr(t, tt.input))
		if got != tt.expected {
			t.Fatalf("tests[%d] - wrong literal for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}

func TestParseExprLocations(t *testing.T) {
	e := mustParseExpr(t, "a + b * c")
	bin := e.(*ast.BinaryExpr)
	// "var v = a + b * c" on line 2: the + is at column 11.
	if bin.Loc().Line != 2 || bin.Loc().Column != 11 {
		t.Fatalf("expected the operator at 2:11, got %s", bin.Loc())
	}
	if bin.X.Loc().Column != 9 {
		t.Fatalf("expected a at column 9, got %d", bin.X.Loc().Column)
	}
}

func TestParseExprErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected diag.Kind
	}{
		{"", diag.ExpectedExpression},
		{"+", diag.ExpectedExpression},
		{"a +", diag.ExpectedExpression},
		{"(a + b", diag.UnexpectedToken},
		{"a[1", diag.UnexpectedToken},
		{"a.1", diag.UnexpectedToken},
		{"a[0](1)", diag.UnexpectedToken},
		{"1(2)", diag.UnexpectedToken},
		{"_(2)", diag.UnexpectedToken},
		{"f(a b)", diag.UnexpectedToken},
		{"f(,)", diag.ExpectedExpression},
		{"append(s)", diag.UnexpectedToken},
		{"append s", diag.UnexpectedToken},
		{"[]int", diag.UnexpectedToken},
		{"[]int()", diag.ExpectedExpression},
		{"9223372036854775808", diag.InvalidIntLiteral},
		{"0xFFFFFFFFFFFFFFFFF", diag.InvalidIntLiteral},
		{"{", diag.ExpectedExpression},
	}

	for i, tt := range tests {
		src := "package main\nvar v = " + tt.input + "\n"
		if got := parseErrorKind(t, src); got != tt.expected {
			t.Fatalf("tests[%d] - wrong error for %q. expected=%q, got=%q", i, tt.input, tt.expected, got)
		}
	}
}
