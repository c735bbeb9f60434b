package operators

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Fixity files are the project-level operator configuration: one
// declaration per operator group, same surface syntax as in-source fixity
// declarations.
//
//	-- arrows bind loosest
//	infixr 0 <~
//	infixl 4 `andThen`

var fixityLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `--[^\n]*`},

		// Keywords (order matters: longest first)
		{Name: "Keyword", Pattern: `infixl|infixr|infix`},

		// Identifiers and integers
		{Name: "Ident", Pattern: `[a-z][a-zA-Z0-9_']*`},
		{Name: "Int", Pattern: `[0-9]+`},

		// Operator names, symbolic or backtick-quoted
		{Name: "Operator", Pattern: "[+\\-/*=.<>:&|^?%#@~!$]+|`[a-zA-Z][a-zA-Z0-9_.']*`"},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})

type fixityFile struct {
	Decls []*fixityDecl `@@*`
}

type fixityDecl struct {
	Assoc string   `@("infixl" | "infixr" | "infix")`
	Prec  int      `@Int`
	Ops   []string `( @Operator | @Ident ) { @Operator | @Ident }`
}

// AssocFromKeyword maps the surface keyword of a fixity declaration to its
// associativity.
func AssocFromKeyword(keyword string) (Assoc, error) {
	switch keyword {
	case "infixl":
		return Left, nil
	case "infixr":
		return Right, nil
	case "infix":
		return None, nil
	}
	return Left, fmt.Errorf("unknown fixity keyword %q", keyword)
}

// ParseTable parses fixity declarations and returns the default table
// extended by them, later declarations winning.
func ParseTable(filename, source string) (*Table, error) {
	parser, err := participle.Build[fixityFile](
		participle.Lexer(fixityLexer),
		participle.Elide("Whitespace"),
		participle.Elide("Comment"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build fixity parser: %w", err)
	}

	file, err := parser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}

	table := DefaultTable()
	for _, decl := range file.Decls {
		assoc, err := AssocFromKeyword(decl.Assoc)
		if err != nil {
			return nil, err
		}
		if decl.Prec < 0 || decl.Prec > 9 {
			return nil, fmt.Errorf("%s: precedence %d is out of range 0..9", filename, decl.Prec)
		}
		ops := make([]string, len(decl.Ops))
		for i, op := range decl.Ops {
			ops[i] = strings.Trim(op, "`")
		}
		table = table.Extend(decl.Prec, assoc, ops...)
	}
	return table, nil
}
