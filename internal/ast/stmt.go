package ast

import "github.com/gnuvince/gore/internal/token"

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	loc token.Loc
}

func NewEmptyStmt(loc token.Loc) *EmptyStmt { return &EmptyStmt{loc: loc} }

func (s *EmptyStmt) Loc() token.Loc { return s.loc }
func (*EmptyStmt) stmtNode()        {}

// BreakStmt exits the innermost loop or switch.
type BreakStmt struct {
	loc token.Loc
}

func NewBreakStmt(loc token.Loc) *BreakStmt { return &BreakStmt{loc: loc} }

func (s *BreakStmt) Loc() token.Loc { return s.loc }
func (*BreakStmt) stmtNode()        {}

// ContinueStmt starts the next iteration of the innermost loop.
type ContinueStmt struct {
	loc token.Loc
}

func NewContinueStmt(loc token.Loc) *ContinueStmt { return &ContinueStmt{loc: loc} }

func (s *ContinueStmt) Loc() token.Loc { return s.loc }
func (*ContinueStmt) stmtNode()        {}

// ReturnStmt represents a return statement. Value is nil for a bare return.
type ReturnStmt struct {
	Value Expr
	loc   token.Loc
}

func NewReturnStmt(value Expr, loc token.Loc) *ReturnStmt {
	return &ReturnStmt{Value: value, loc: loc}
}

func (s *ReturnStmt) Loc() token.Loc { return s.loc }
func (*ReturnStmt) stmtNode()        {}

// PrintStmt is print(...) or, with Newline set, println(...).
type PrintStmt struct {
	Args    []Expr
	Newline bool
	loc     token.Loc
}

func NewPrintStmt(args []Expr, newline bool, loc token.Loc) *PrintStmt {
	return &PrintStmt{Args: args, Newline: newline, loc: loc}
}

func (s *PrintStmt) Loc() token.Loc { return s.loc }
func (*PrintStmt) stmtNode()        {}

// VarDeclStmt is a variable declaration inside a function body.
type VarDeclStmt struct {
	Decl *VarDecl
}

func NewVarDeclStmt(decl *VarDecl) *VarDeclStmt { return &VarDeclStmt{Decl: decl} }

func (s *VarDeclStmt) Loc() token.Loc { return s.Decl.Loc() }
func (*VarDeclStmt) stmtNode()        {}

// TypeDeclStmt is a type declaration inside a function body.
type TypeDeclStmt struct {
	Decl *TypeDecl
}

func NewTypeDeclStmt(decl *TypeDecl) *TypeDeclStmt { return &TypeDeclStmt{Decl: decl} }

func (s *TypeDeclStmt) Loc() token.Loc { return s.Decl.Loc() }
func (*TypeDeclStmt) stmtNode()        {}

// ShortVarDecl is `a, b := x, y`. A blank name is stored as "_".
type ShortVarDecl struct {
	Names  []*Ident
	Values []Expr
	loc    token.Loc
}

func NewShortVarDecl(names []*Ident, values []Expr, loc token.Loc) *ShortVarDecl {
	return &ShortVarDecl{Names: names, Values: values, loc: loc}
}

func (s *ShortVarDecl) Loc() token.Loc { return s.loc }
func (*ShortVarDecl) stmtNode()        {}

// AssignStmt is `a, b = x, y`.
type AssignStmt struct {
	Targets []LValue
	Values  []Expr
	loc     token.Loc
}

func NewAssignStmt(targets []LValue, values []Expr, loc token.Loc) *AssignStmt {
	return &AssignStmt{Targets: targets, Values: values, loc: loc}
}

func (s *AssignStmt) Loc() token.Loc { return s.loc }
func (*AssignStmt) stmtNode()        {}

// OpAssignStmt is a compound assignment such as `a += x`.
type OpAssignStmt struct {
	Target LValue
	Op     BinOp
	Value  Expr
	loc    token.Loc
}

func NewOpAssignStmt(target LValue, op BinOp, value Expr, loc token.Loc) *OpAssignStmt {
	return &OpAssignStmt{Target: target, Op: op, Value: value, loc: loc}
}

func (s *OpAssignStmt) Loc() token.Loc { return s.loc }
func (*OpAssignStmt) stmtNode()        {}

// IncDecStmt is `x++` (Inc) or `x--`.
type IncDecStmt struct {
	Target LValue
	Inc    bool
	loc    token.Loc
}

func NewIncDecStmt(target LValue, inc bool, loc token.Loc) *IncDecStmt {
	return &IncDecStmt{Target: target, Inc: inc, loc: loc}
}

func (s *IncDecStmt) Loc() token.Loc { return s.loc }
func (*IncDecStmt) stmtNode()        {}

// CallStmt is a function call evaluated for its effects.
type CallStmt struct {
	Func *Ident
	Args []Expr
	loc  token.Loc
}

func NewCallStmt(fn *Ident, args []Expr, loc token.Loc) *CallStmt {
	return &CallStmt{Func: fn, Args: args, loc: loc}
}

func (s *CallStmt) Loc() token.Loc { return s.loc }
func (*CallStmt) stmtNode()        {}

// BlockStmt is a braced statement list with its own scope.
type BlockStmt struct {
	Stmts []Stmt
	loc   token.Loc
}

func NewBlockStmt(stmts []Stmt, loc token.Loc) *BlockStmt {
	return &BlockStmt{Stmts: stmts, loc: loc}
}

func (s *BlockStmt) Loc() token.Loc { return s.loc }
func (*BlockStmt) stmtNode()        {}

// IfStmt represents if, if-else and if-else-if chains. At most one of Else
// and ElseIf is set; a nil Else with a nil ElseIf means there is no else
// branch.
type IfStmt struct {
	Init   Stmt // nil if absent
	Cond   Expr
	Then   []Stmt
	Else   []Stmt
	ElseIf *IfStmt
	loc    token.Loc
}

func NewIfStmt(init Stmt, cond Expr, then, els []Stmt, elseIf *IfStmt, loc token.Loc) *IfStmt {
	return &IfStmt{Init: init, Cond: cond, Then: then, Else: els, ElseIf: elseIf, loc: loc}
}

// HasElse reports whether the statement has an else branch of either form.
func (s *IfStmt) HasElse() bool { return s.Else != nil || s.ElseIf != nil }

func (s *IfStmt) Loc() token.Loc { return s.loc }
func (*IfStmt) stmtNode()        {}

// LoopStmt is the infinite loop `for { ... }`.
type LoopStmt struct {
	Body []Stmt
	loc  token.Loc
}

func NewLoopStmt(body []Stmt, loc token.Loc) *LoopStmt {
	return &LoopStmt{Body: body, loc: loc}
}

func (s *LoopStmt) Loc() token.Loc { return s.loc }
func (*LoopStmt) stmtNode()        {}

// WhileStmt is `for cond { ... }`.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	loc  token.Loc
}

func NewWhileStmt(cond Expr, body []Stmt, loc token.Loc) *WhileStmt {
	return &WhileStmt{Cond: cond, Body: body, loc: loc}
}

func (s *WhileStmt) Loc() token.Loc { return s.loc }
func (*WhileStmt) stmtNode()        {}

// ForStmt is the three-clause loop. Any clause may be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body []Stmt
	loc  token.Loc
}

func NewForStmt(init Stmt, cond Expr, post Stmt, body []Stmt, loc token.Loc) *ForStmt {
	return &ForStmt{Init: init, Cond: cond, Post: post, Body: body, loc: loc}
}

func (s *ForStmt) Loc() token.Loc { return s.loc }
func (*ForStmt) stmtNode()        {}

// CaseClause is one `case e1, e2: body` arm of a switch.
type CaseClause struct {
	Exprs []Expr
	Body  []Stmt
	loc   token.Loc
}

func NewCaseClause(exprs []Expr, body []Stmt, loc token.Loc) *CaseClause {
	return &CaseClause{Exprs: exprs, Body: body, loc: loc}
}

func (c *CaseClause) Loc() token.Loc { return c.loc }

// SwitchStmt represents an expression switch. Tag is nil for `switch { ... }`.
type SwitchStmt struct {
	Init    Stmt
	Tag     Expr
	Cases   []*CaseClause
	Default []Stmt
	loc     token.Loc
}

func NewSwitchStmt(init Stmt, tag Expr, cases []*CaseClause, def []Stmt, loc token.Loc) *SwitchStmt {
	return &SwitchStmt{Init: init, Tag: tag, Cases: cases, Default: def, loc: loc}
}

func (s *SwitchStmt) Loc() token.Loc { return s.loc }
func (*SwitchStmt) stmtNode()        {}
