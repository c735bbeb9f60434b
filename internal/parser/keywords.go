package parser

var KEYWORDS = map[string]TokenType{
	"let":    LET,
	"in":     IN,
	"case":   CASE,
	"of":     OF,
	"if":     IF,
	"then":   THEN,
	"else":   ELSE,
	"as":     AS,
	"infix":  INFIX,
	"infixl": INFIXL,
	"infixr": INFIXR,
}
