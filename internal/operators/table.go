package operators

import "sort"

// Assoc is an operator's associativity.
type Assoc int

const (
	Left Assoc = iota
	Right
	None
)

// Keyword renders the associativity as its surface keyword.
func (a Assoc) Keyword() string {
	switch a {
	case Right:
		return "infixr"
	case None:
		return "infix"
	}
	return "infixl"
}

// Fixity is the precedence/associativity pair for one operator. Higher
// precedence binds tighter; the range is 0 through 9.
type Fixity struct {
	Precedence int
	Assoc      Assoc
}

// defaultFixity is what operators missing from a table get.
var defaultFixity = Fixity{Precedence: 9, Assoc: Left}

// Table maps operator names to fixities. Tables are immutable: Extend
// returns a new table, so a parse started with one table never sees writes
// from another.
type Table struct {
	fixities map[string]Fixity
}

// NewTable copies fixities into a fresh table.
func NewTable(fixities map[string]Fixity) *Table {
	t := &Table{fixities: make(map[string]Fixity, len(fixities))}
	for op, f := range fixities {
		t.fixities[op] = f
	}
	return t
}

// DefaultTable carries the standard prelude fixities.
func DefaultTable() *Table {
	return NewTable(map[string]Fixity{
		"<<": {9, Right},
		">>": {9, Left},
		"^":  {8, Right},
		"*":  {7, Left},
		"/":  {7, Left},
		"//": {7, Left},
		"%":  {7, Left},
		"+":  {6, Left},
		"-":  {6, Left},
		"++": {5, Right},
		"::": {5, Right},
		"==": {4, None},
		"/=": {4, None},
		"<":  {4, None},
		">":  {4, None},
		"<=": {4, None},
		">=": {4, None},
		"&&": {3, Right},
		"||": {2, Right},
		"<|": {0, Right},
		"|>": {0, Left},
	})
}

// Lookup returns the operator's fixity, or the default (9, left) for
// operators the table does not know.
func (t *Table) Lookup(op string) Fixity {
	if f, ok := t.fixities[op]; ok {
		return f
	}
	return defaultFixity
}

// Operators lists every operator the table knows, sorted by name.
func (t *Table) Operators() []string {
	ops := make([]string, 0, len(t.fixities))
	for op := range t.fixities {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Extend returns a new table with the given operators set to (prec, assoc).
// The receiver is left untouched.
func (t *Table) Extend(prec int, assoc Assoc, ops ...string) *Table {
	next := NewTable(t.fixities)
	for _, op := range ops {
		next.fixities[op] = Fixity{Precedence: prec, Assoc: assoc}
	}
	return next
}
