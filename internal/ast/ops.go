package ast

// BinOp enumerates binary operators.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpRem
	OpBitAnd
	OpBitOr
	OpBitXor
	OpBitClear
	OpShl
	OpShr
	OpAnd
	OpOr
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

var binOpNames = [...]string{
	OpAdd:      "+",
	OpSub:      "-",
	OpMul:      "*",
	OpDiv:      "/",
	OpRem:      "%",
	OpBitAnd:   "&",
	OpBitOr:    "|",
	OpBitXor:   "^",
	OpBitClear: "&^",
	OpShl:      "<<",
	OpShr:      ">>",
	OpAnd:      "&&",
	OpOr:       "||",
	OpEq:       "==",
	OpNe:       "!=",
	OpLt:       "<",
	OpLe:       "<=",
	OpGt:       ">",
	OpGe:       ">=",
}

// String returns the operator as written in source.
func (op BinOp) String() string {
	if op < 0 || int(op) >= len(binOpNames) {
		return "?"
	}
	return binOpNames[op]
}

// UnaryOp enumerates prefix operators.
type UnaryOp int

const (
	OpPos UnaryOp = iota
	OpNeg
	OpNot
	OpBitNot
)

// String returns the operator as written in source.
func (op UnaryOp) String() string {
	switch op {
	case OpPos:
		return "+"
	case OpNeg:
		return "-"
	case OpNot:
		return "!"
	case OpBitNot:
		return "^"
	}
	return "?"
}
