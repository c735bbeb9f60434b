package operators

import (
	"fmt"

	"nire/internal/ast"
)

// Op is one operator occurrence inside a flat chain, as gathered by the
// expression parser before restructuring.
type Op struct {
	Name string
	Pos  ast.Position
}

// ConflictError reports two operators that cannot be chained without
// parentheses: either they share a precedence level with different
// associativity, or a non-associative level appears more than once.
type ConflictError struct {
	First  string
	Second string
	Pos    ast.Position
}

func (e *ConflictError) Error() string {
	if e.First == e.Second {
		return fmt.Sprintf("operator %q is not associative, use parentheses", e.First)
	}
	return fmt.Sprintf("cannot chain %q and %q without parentheses", e.First, e.Second)
}

// Resolve restructures a flat binary-operator chain into a tree honoring
// the table's precedences and associativities. operands must hold exactly
// len(ops)+1 expressions, interleaved with ops in source order. Every built
// node's span is the merge of its operands' spans.
func Resolve(table *Table, operands []ast.Expr, ops []Op) (ast.Expr, error) {
	if len(ops) == 0 {
		return operands[0], nil
	}

	// Split at the loosest level present.
	min := ops[0]
	minPrec := table.Lookup(min.Name).Precedence
	for _, op := range ops[1:] {
		if p := table.Lookup(op.Name).Precedence; p < minPrec {
			min, minPrec = op, p
		}
	}

	assoc := table.Lookup(min.Name).Assoc
	seen := 0
	for _, op := range ops {
		f := table.Lookup(op.Name)
		if f.Precedence != minPrec {
			continue
		}
		if f.Assoc != assoc {
			return nil, &ConflictError{First: min.Name, Second: op.Name, Pos: op.Pos}
		}
		seen++
		if assoc == None && seen > 1 {
			return nil, &ConflictError{First: min.Name, Second: op.Name, Pos: op.Pos}
		}
	}

	var at int
	switch assoc {
	case Right:
		// First occurrence, so the rest of the level nests to the right.
		at = first(table, ops, minPrec)
	default:
		at = last(table, ops, minPrec)
	}

	left, err := Resolve(table, operands[:at+1], ops[:at])
	if err != nil {
		return nil, err
	}
	right, err := Resolve(table, operands[at+1:], ops[at+1:])
	if err != nil {
		return nil, err
	}

	pos, end := ast.MergeSpans(left, right)
	return &ast.BinopExpr{Pos: pos, EndPos: end, Op: ops[at].Name, Left: left, Right: right}, nil
}

func first(table *Table, ops []Op, prec int) int {
	for i, op := range ops {
		if table.Lookup(op.Name).Precedence == prec {
			return i
		}
	}
	return 0
}

func last(table *Table, ops []Op, prec int) int {
	at := 0
	for i, op := range ops {
		if table.Lookup(op.Name).Precedence == prec {
			at = i
		}
	}
	return at
}
