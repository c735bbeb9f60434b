package ast

// Pattern is implemented by every binding pattern node.
type Pattern interface {
	Node
	isPattern()
}

// VarPattern binds a name. Function and operator definitions use a
// VarPattern head carrying the defined name.
type VarPattern struct {
	Pos    Position
	EndPos Position
	Name   string
}

// WildcardPattern is "_": matches anything, binds nothing.
type WildcardPattern struct {
	Pos    Position
	EndPos Position
}

// LiteralPattern matches a literal value. Value is always one of the
// literal expression nodes.
type LiteralPattern struct {
	Pos    Position
	EndPos Position
	Value  Expr
}

// CtorPattern is a constructor applied to zero or more argument patterns.
// Cons chains use the "::" constructor, right-nested: "x :: xs" is
// CtorPattern("::", [x, xs]).
type CtorPattern struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []Pattern
}

type TuplePattern struct {
	Pos      Position
	EndPos   Position
	Elements []Pattern
}

type ListPattern struct {
	Pos      Position
	EndPos   Position
	Elements []Pattern
}

// RecordPattern destructures named fields: "{ x, y }".
type RecordPattern struct {
	Pos    Position
	EndPos Position
	Fields []Ident
}

// AliasPattern binds the whole match as well: "pattern as name".
type AliasPattern struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Name    Ident
}

func (*VarPattern) isPattern() {}

func (*WildcardPattern) isPattern() {}

func (*LiteralPattern) isPattern() {}

func (*CtorPattern) isPattern() {}

func (*TuplePattern) isPattern() {}

func (*ListPattern) isPattern() {}

func (*RecordPattern) isPattern() {}

func (*AliasPattern) isPattern() {}
