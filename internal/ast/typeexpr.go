package ast

// TypeExpr is implemented by every type expression node. Type expressions
// appear only in annotations; nothing here is checked or inferred.
type TypeExpr interface {
	Node
	isTypeExpr()
}

// TypeVar is a lowercase type variable like "a".
type TypeVar struct {
	Pos    Position
	EndPos Position
	Name   string
}

// TypeCon is a (possibly qualified) type constructor applied to zero or
// more arguments.
// Example: "Dict String Int"
type TypeCon struct {
	Pos    Position
	EndPos Position
	Name   string
	Args   []TypeExpr
}

// FuncType is one arrow step; "a -> b -> c" nests to the right.
type FuncType struct {
	Pos    Position
	EndPos Position
	Arg    TypeExpr
	Result TypeExpr
}

// TupleType has arity 0 (unit) or arity >= 2, like TupleExpr.
type TupleType struct {
	Pos      Position
	EndPos   Position
	Elements []TypeExpr
}

// TypeField is one "name : Type" pair of a record type.
type TypeField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// RecordType is "{ a : Int, b : String }", or the extensible form
// "{ r | a : Int }" when Ext is set.
type RecordType struct {
	Pos    Position
	EndPos Position
	Ext    *Ident
	Fields []*TypeField
}

func (*TypeVar) isTypeExpr() {}

func (*TypeCon) isTypeExpr() {}

func (*FuncType) isTypeExpr() {}

func (*TupleType) isTypeExpr() {}

func (*RecordType) isTypeExpr() {}
