package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *File:
		if n.Package != nil {
			Walk(n.Package, fn)
		}
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	case *VarDecl:
		Walk(n.Name, fn)
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *TypeDecl:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	case *FuncDecl:
		Walk(n.Name, fn)
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Result != nil {
			Walk(n.Result, fn)
		}
		walkStmts(n.Body, fn)

	case *Param:
		Walk(n.Name, fn)
		Walk(n.Type, fn)

	// Statements
	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *PrintStmt:
		walkExprs(n.Args, fn)

	case *VarDeclStmt:
		Walk(n.Decl, fn)

	case *TypeDeclStmt:
		Walk(n.Decl, fn)

	case *ShortVarDecl:
		for _, name := range n.Names {
			Walk(name, fn)
		}
		walkExprs(n.Values, fn)

	case *AssignStmt:
		for _, target := range n.Targets {
			Walk(target, fn)
		}
		walkExprs(n.Values, fn)

	case *OpAssignStmt:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *IncDecStmt:
		Walk(n.Target, fn)

	case *CallStmt:
		Walk(n.Func, fn)
		walkExprs(n.Args, fn)

	case *BlockStmt:
		walkStmts(n.Stmts, fn)

	case *IfStmt:
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		Walk(n.Cond, fn)
		walkStmts(n.Then, fn)
		walkStmts(n.Else, fn)
		if n.ElseIf != nil {
			Walk(n.ElseIf, fn)
		}

	case *LoopStmt:
		walkStmts(n.Body, fn)

	case *WhileStmt:
		Walk(n.Cond, fn)
		walkStmts(n.Body, fn)

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Post != nil {
			Walk(n.Post, fn)
		}
		walkStmts(n.Body, fn)

	case *SwitchStmt:
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		if n.Tag != nil {
			Walk(n.Tag, fn)
		}
		for _, c := range n.Cases {
			Walk(c, fn)
		}
		walkStmts(n.Default, fn)

	case *CaseClause:
		walkExprs(n.Exprs, fn)
		walkStmts(n.Body, fn)

	// Expressions
	case *UnaryExpr:
		Walk(n.X, fn)

	case *BinaryExpr:
		Walk(n.X, fn)
		Walk(n.Y, fn)

	case *AppendExpr:
		Walk(n.Slice, fn)
		Walk(n.Elem, fn)

	case *CallExpr:
		Walk(n.Func, fn)
		walkExprs(n.Args, fn)

	case *CastExpr:
		Walk(n.Type, fn)
		Walk(n.X, fn)

	case *IndexExpr:
		Walk(n.X, fn)
		Walk(n.Index, fn)

	case *FieldExpr:
		Walk(n.X, fn)
		Walk(n.Field, fn)

	// Types
	case *NamedType:
		Walk(n.Name, fn)

	case *SliceType:
		Walk(n.Elem, fn)

	case *ArrayType:
		Walk(n.Elem, fn)

	case *StructType:
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *FuncType:
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.Result != nil {
			Walk(n.Result, fn)
		}

	// Assignment targets
	case *IdentLValue:
		Walk(n.Name, fn)

	case *IndexLValue:
		Walk(n.X, fn)
		Walk(n.Index, fn)

	case *FieldLValue:
		Walk(n.X, fn)
		Walk(n.Field, fn)
	}
}

func walkStmts(stmts []Stmt, fn func(Node) bool) {
	for _, stmt := range stmts {
		Walk(stmt, fn)
	}
}

func walkExprs(exprs []Expr, fn func(Node) bool) {
	for _, expr := range exprs {
		Walk(expr, fn)
	}
}
