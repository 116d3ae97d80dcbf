package lexer

import "github.com/gnuvince/gore/internal/token"

type operator struct {
	text string
	kind token.Kind
}

// operators is ordered longest first so that the first match is the
// longest one, e.g. "<<=" before "<<" before "<".
var operators = []operator{
	{"<<=", token.LeftShiftEq},
	{">>=", token.RightShiftEq},

	{":=", token.ColonEq},
	{"+=", token.PlusEq},
	{"-=", token.MinusEq},
	{"*=", token.StarEq},
	{"/=", token.SlashEq},
	{"%=", token.PercentEq},
	{"|=", token.BitorEq},
	{"&=", token.BitandEq},
	{"++", token.Incr},
	{"--", token.Decr},
	{"<<", token.LeftShift},
	{">>", token.RightShift},
	{"&^", token.BitClear},
	{"&&", token.And},
	{"||", token.Or},
	{"==", token.Eq},
	{"!=", token.Ne},
	{"<=", token.Le},
	{">=", token.Ge},

	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"&", token.Bitand},
	{"|", token.Bitor},
	{"^", token.Bitnot},
	{"!", token.Not},
	{"<", token.Lt},
	{">", token.Gt},
	{"=", token.Assign},
	{"(", token.LParen},
	{")", token.RParen},
	{"[", token.LBracket},
	{"]", token.RBracket},
	{"{", token.LBrace},
	{"}", token.RBrace},
	{",", token.Comma},
	{";", token.Semi},
	{":", token.Colon},
}

// matchOperator returns the kind and length of the operator at the start
// of src, or a zero length if there is none.
func matchOperator(src []byte) (token.Kind, int) {
	for _, op := range operators {
		if len(src) >= len(op.text) && string(src[:len(op.text)]) == op.text {
			return op.kind, len(op.text)
		}
	}
	return token.None, 0
}
