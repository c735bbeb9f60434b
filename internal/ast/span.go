package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Before reports whether p comes strictly before q in document order.
func (p Position) Before(q Position) bool {
	return p.Offset < q.Offset
}

// MergeSpans returns the smallest span that covers both nodes.
// The nodes may appear in either document order.
func MergeSpans(a, b Node) (Position, Position) {
	start := a.NodePos()
	if b.NodePos().Before(start) {
		start = b.NodePos()
	}
	end := a.NodeEndPos()
	if end.Before(b.NodeEndPos()) {
		end = b.NodeEndPos()
	}
	return start, end
}

// Respan stamps node with the exact span of src and returns it. Desugaring
// uses this when a synthesized node conceptually occupies the same source
// text as an existing one, so diagnostics keep pointing at real code.
func Respan[N Node](src Node, node N) N {
	node.setSpan(src.NodePos(), src.NodeEndPos())
	return node
}

// Spanned stamps node with an explicit span and returns it. Parsing uses
// this to widen a node to cover enclosing delimiters, like the parentheses
// around a grouped expression.
func Spanned[N Node](node N, pos, end Position) N {
	node.setSpan(pos, end)
	return node
}

// MakeFunction right-folds argument patterns over body, producing nested
// single-argument lambdas. Every lambda inherits the body's span: downstream
// diagnostics attribute the whole function to one source range. Surface
// syntax that wants a wider span for the outermost lambda re-spans it after
// the fold.
func MakeFunction(args []Pattern, body Expr) Expr {
	fn := body
	for i := len(args) - 1; i >= 0; i-- {
		fn = Respan(body, &LambdaExpr{Param: args[i], Body: fn})
	}
	return fn
}
