package ast

// Walk traverses the tree starting from node, calling fn for each node in
// source order. If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *AppExpr:
		Walk(n.Fn, fn)
		Walk(n.Arg, fn)

	case *LambdaExpr:
		Walk(n.Param, fn)
		Walk(n.Body, fn)

	case *BinopExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *IfBranch:
		Walk(n.Cond, fn)
		Walk(n.Body, fn)

	case *MultiIfExpr:
		for _, branch := range n.Branches {
			Walk(branch, fn)
		}

	case *LetExpr:
		for _, def := range n.Defs {
			Walk(def, fn)
		}
		Walk(n.Body, fn)

	case *CaseAlt:
		Walk(n.Pattern, fn)
		Walk(n.Body, fn)

	case *CaseExpr:
		Walk(n.Scrutinee, fn)
		for _, alt := range n.Alts {
			Walk(alt, fn)
		}

	case *ListExpr:
		for _, e := range n.Elements {
			Walk(e, fn)
		}

	case *RangeExpr:
		Walk(n.Low, fn)
		Walk(n.High, fn)

	case *TupleExpr:
		for _, e := range n.Elements {
			Walk(e, fn)
		}

	case *RecordField:
		Walk(&n.Name, fn)
		Walk(n.Value, fn)

	case *RecordExpr:
		for _, f := range n.Fields {
			Walk(f, fn)
		}

	case *RecordInsertExpr:
		Walk(n.Base, fn)
		Walk(&n.Field, fn)
		Walk(n.Value, fn)

	case *RecordRemoveExpr:
		Walk(n.Base, fn)
		Walk(&n.Field, fn)

	case *RecordModifyExpr:
		Walk(n.Base, fn)
		for _, u := range n.Updates {
			Walk(u, fn)
		}

	case *AccessExpr:
		Walk(n.Receiver, fn)
		Walk(&n.Field, fn)

	case *LiteralPattern:
		Walk(n.Value, fn)

	case *CtorPattern:
		for _, a := range n.Args {
			Walk(a, fn)
		}

	case *TuplePattern:
		for _, e := range n.Elements {
			Walk(e, fn)
		}

	case *ListPattern:
		for _, e := range n.Elements {
			Walk(e, fn)
		}

	case *RecordPattern:
		for i := range n.Fields {
			Walk(&n.Fields[i], fn)
		}

	case *AliasPattern:
		Walk(n.Pattern, fn)
		Walk(&n.Name, fn)

	case *TypeCon:
		for _, a := range n.Args {
			Walk(a, fn)
		}

	case *FuncType:
		Walk(n.Arg, fn)
		Walk(n.Result, fn)

	case *TupleType:
		for _, e := range n.Elements {
			Walk(e, fn)
		}

	case *TypeField:
		Walk(&n.Name, fn)
		Walk(n.Type, fn)

	case *RecordType:
		if n.Ext != nil {
			Walk(n.Ext, fn)
		}
		for _, f := range n.Fields {
			Walk(f, fn)
		}

	case *ValueDef:
		Walk(n.Head, fn)
		Walk(n.Body, fn)

	case *TypeAnnotation:
		Walk(&n.Name, fn)
		Walk(n.Type, fn)

	case *FixityDecl:
		for i := range n.Ops {
			Walk(&n.Ops[i], fn)
		}

	case *Program:
		for _, decl := range n.Decls {
			Walk(decl, fn)
		}

	// Leaf nodes have no children.
	case *Ident, *IntLiteral, *FloatLiteral, *StringLiteral, *CharLiteral,
		*BoolLiteral, *ShaderLiteral, *VarExpr, *VarPattern,
		*WildcardPattern, *TypeVar:
	}
}
