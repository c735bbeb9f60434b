package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENT      // lowercase-initial name, possibly qualified (List.map)
	CAPIDENT   // uppercase-initial name, possibly qualified (Maybe.Just)
	INFIXIDENT // backtick-quoted name used infix (`div`)
	UNDERSCORE
	NUMBER
	HEX_NUMBER
	FLOAT
	STRING
	CHAR
	SHADER

	// Keywords
	LET
	IN
	CASE
	OF
	IF
	THEN
	ELSE
	AS
	INFIX
	INFIXL
	INFIXR

	// Structural operator runs; every other symbol run is OPERATOR
	EQUALS
	ARROW
	LARROW
	BAR
	COLON
	DOTDOT
	DOT
	MINUS
	AT
	BACKSLASH
	OPERATOR

	// Brackets + separators
	LEFT_PAREN
	RIGHT_PAREN
	LEFT_BRACKET
	RIGHT_BRACKET
	LEFT_BRACE
	RIGHT_BRACE
	COMMA
	SEMICOLON
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}
