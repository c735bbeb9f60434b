package ast

// Expr is implemented by every expression node. The unexported marker keeps
// the set closed: all expression construction happens inside the parser.
type Expr interface {
	Node
	isExpr()
}

// Ident represents any identifier occurrence that is not itself an
// expression, like record field names or annotation heads.
// Example: "balance" in "{ account | balance <- 0 }"
type Ident struct {
	Pos    Position
	EndPos Position
	Value  string
}

// IntLiteral is a decimal or hexadecimal integer literal.
type IntLiteral struct {
	Pos    Position
	EndPos Position
	Value  int64
}

// FloatLiteral is a floating point literal. The surface form always has a
// digit before the dot, so ".5" is never a float.
type FloatLiteral struct {
	Pos    Position
	EndPos Position
	Value  float64
}

// StringLiteral holds the decoded text, escapes already applied.
type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

type CharLiteral struct {
	Pos    Position
	EndPos Position
	Value  rune
}

// BoolLiteral never comes from source text directly: True and False are
// constructor variables. It is synthesized by desugaring, e.g. the implicit
// guard of a two-branch conditional.
type BoolLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// ShaderLiteral is the raw payload of a "[glsl| ... |]" block. ID is derived
// from the opening bracket's location ("line:column") and is unique per
// source occurrence; Source has carriage returns stripped.
type ShaderLiteral struct {
	Pos    Position
	EndPos Position
	ID     string
	Source string
	Tag    string
}

// VarExpr is a raw variable or operator-as-identifier reference, resolved in
// a later stage. Qualified references keep their dotted spelling.
// Example: "x", "List.map", "+"
type VarExpr struct {
	Pos    Position
	EndPos Position
	Name   string
}

// AppExpr is one binary application step. Chains of juxtaposed terms nest
// left-associatively: "f a b" is App(App(f, a), b), never an n-ary node.
type AppExpr struct {
	Pos    Position
	EndPos Position
	Fn     Expr
	Arg    Expr
}

// LambdaExpr binds exactly one argument. Multi-argument surface syntax
// desugars to nested lambdas via MakeFunction.
type LambdaExpr struct {
	Pos    Position
	EndPos Position
	Param  Pattern
	Body   Expr
}

// BinopExpr is a binary operator application, already restructured for
// precedence and associativity.
type BinopExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// IfBranch is one (condition, result) pair of a MultiIfExpr.
type IfBranch struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   Expr
}

// MultiIfExpr is an ordered guard chain. A two-branch "if c then t else e"
// desugars to two branches, the second guarded by a True literal spanning
// the else expression. There is no implicit fallback.
type MultiIfExpr struct {
	Pos      Position
	EndPos   Position
	Branches []*IfBranch
}

// LetExpr scopes an ordered block of definitions (value definitions and
// type annotations, in source order) to its body.
type LetExpr struct {
	Pos    Position
	EndPos Position
	Defs   []Definition
	Body   Expr
}

// CaseAlt is one "pattern -> expr" alternative.
type CaseAlt struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Body    Expr
}

type CaseExpr struct {
	Pos       Position
	EndPos    Position
	Scrutinee Expr
	Alts      []*CaseAlt
}

// ListExpr is a comma-separated list literal.
// Example: "[1, 2, 3]"
type ListExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// RangeExpr is an enumerable range literal.
// Example: "[1..n]"
type RangeExpr struct {
	Pos    Position
	EndPos Position
	Low    Expr
	High   Expr
}

// TupleExpr has arity 0 (unit) or arity >= 2. Single-element
// parenthesization never constructs a tuple.
type TupleExpr struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// RecordField is one "name = value" (or "name <- value") pair inside record
// literals and record-modify forms.
type RecordField struct {
	Pos    Position
	EndPos Position
	Name   Ident
	Value  Expr
}

// RecordExpr is a record literal. Duplicate field names are syntactically
// legal here; later stages may reject them.
type RecordExpr struct {
	Pos    Position
	EndPos Position
	Fields []*RecordField
}

// RecordInsertExpr adds one field to a base record: "{ r | k = v }".
type RecordInsertExpr struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Field  Ident
	Value  Expr
}

// RecordRemoveExpr drops one field from a base record: "{ r - k }".
type RecordRemoveExpr struct {
	Pos    Position
	EndPos Position
	Base   Expr
	Field  Ident
}

// RecordModifyExpr replaces existing fields: "{ r | k <- v, k2 <- v2 }".
type RecordModifyExpr struct {
	Pos     Position
	EndPos  Position
	Base    Expr
	Updates []*RecordField
}

// AccessExpr is a field projection, either written postfix ("r.x") or
// produced by desugaring an accessor function (".x").
type AccessExpr struct {
	Pos      Position
	EndPos   Position
	Receiver Expr
	Field    Ident
}

func (*IntLiteral) isExpr() {}

func (*FloatLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*CharLiteral) isExpr() {}

func (*BoolLiteral) isExpr() {}

func (*ShaderLiteral) isExpr() {}

func (*VarExpr) isExpr() {}

func (*AppExpr) isExpr() {}

func (*LambdaExpr) isExpr() {}

func (*BinopExpr) isExpr() {}

func (*MultiIfExpr) isExpr() {}

func (*LetExpr) isExpr() {}

func (*CaseExpr) isExpr() {}

func (*ListExpr) isExpr() {}

func (*RangeExpr) isExpr() {}

func (*TupleExpr) isExpr() {}

func (*RecordExpr) isExpr() {}

func (*RecordInsertExpr) isExpr() {}

func (*RecordRemoveExpr) isExpr() {}

func (*RecordModifyExpr) isExpr() {}

func (*AccessExpr) isExpr() {}
