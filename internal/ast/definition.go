package ast

// Definition is what a let block holds: value definitions and type
// annotations, interleaved in source order.
type Definition interface {
	Node
	isDefinition()
}

// Decl is a top-level declaration. Everything a Definition can be, plus
// fixity declarations, which are only legal at the top level.
type Decl interface {
	Node
	isDecl()
}

// ValueDef binds a head pattern to a body expression. Function and operator
// definitions arrive pre-desugared: the head is a VarPattern with the name,
// the body a MakeFunction fold over the argument patterns. A non-name head
// ("(a, b) = e") is a plain destructuring binding.
type ValueDef struct {
	Pos    Position
	EndPos Position
	Head   Pattern
	Body   Expr
}

// TypeAnnotation is a standalone "name : Type" declaration. Pairing it with
// its ValueDef happens in a later stage.
type TypeAnnotation struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Type   TypeExpr
}

// FixityDecl sets precedence and associativity for operators, e.g.
// "infixl 6 + -". Assoc keeps the surface keyword: "infixl", "infixr" or
// "infix". It affects the parsing of later declarations only.
type FixityDecl struct {
	Pos        Position
	EndPos     Position
	Assoc      string
	Precedence int
	Ops        []Ident
}

// Program is one parsed translation unit.
type Program struct {
	Pos    Position
	EndPos Position
	Decls  []Decl
}

func (*ValueDef) isDefinition() {}

func (*TypeAnnotation) isDefinition() {}

func (*ValueDef) isDecl() {}

func (*TypeAnnotation) isDecl() {}

func (*FixityDecl) isDecl() {}
