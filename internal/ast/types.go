package ast

type NodeType int

// regenerate nodetype_string.go with `go generate ./internal/ast`
//
//go:generate stringer -type=NodeType
const (
	// Special / error
	ILLEGAL NodeType = iota

	// Identifiers
	IDENT

	// Literals
	INT_LITERAL
	FLOAT_LITERAL
	STRING_LITERAL
	CHAR_LITERAL
	BOOL_LITERAL
	SHADER_LITERAL

	// Expressions
	VAR_EXPR
	APP_EXPR
	LAMBDA_EXPR
	BINOP_EXPR
	MULTI_IF_EXPR
	IF_BRANCH
	LET_EXPR
	CASE_EXPR
	CASE_ALT
	LIST_EXPR
	RANGE_EXPR
	TUPLE_EXPR
	RECORD_EXPR
	RECORD_FIELD
	RECORD_INSERT_EXPR
	RECORD_REMOVE_EXPR
	RECORD_MODIFY_EXPR
	ACCESS_EXPR

	// Patterns
	VAR_PATTERN
	WILDCARD_PATTERN
	LITERAL_PATTERN
	CTOR_PATTERN
	TUPLE_PATTERN
	LIST_PATTERN
	RECORD_PATTERN
	ALIAS_PATTERN

	// Type expressions
	TYPE_VAR
	TYPE_CON
	FUNC_TYPE
	TUPLE_TYPE
	RECORD_TYPE
	TYPE_FIELD

	// Definitions and declarations
	VALUE_DEF
	TYPE_ANNOTATION
	FIXITY_DECL
	PROGRAM
)
