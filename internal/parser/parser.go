package parser

import (
	"nire/internal/ast"
	"nire/internal/operators"
)

// Parser walks the scanner's token stream with a cursor and a required
// indentation column. A token that starts its own line at or left of
// the required column is invisible to the active production (it reads
// as end of input), which is how layout terminates nested constructs.
type Parser struct {
	filename  string
	tokens    []Token
	current   int
	indent    int
	itemStart int // index of the current block item's first token, exempt from the column rule
	table     *operators.Table
}

func NewParser(filename string, tokens []Token, table *operators.Table) *Parser {
	if table == nil {
		table = operators.DefaultTable()
	}
	return &Parser{
		filename: filename,
		tokens:   tokens,
		table:    table,
	}
}

// parserState is a full cursor snapshot; restoring one undoes every
// side effect of a speculative parse.
type parserState struct {
	current   int
	indent    int
	itemStart int
}

func (p *Parser) save() parserState {
	return parserState{current: p.current, indent: p.indent, itemStart: p.itemStart}
}

func (p *Parser) restore(s parserState) {
	p.current, p.indent, p.itemStart = s.current, s.indent, s.itemStart
}

// ParseExpression parses source as exactly one expression followed only
// by end of input.
func ParseExpression(filename, source string, table *operators.Table) (ast.Expr, error) {
	p, err := newSourceParser(filename, source, table)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParseDefinition parses source as exactly one definition (a value
// definition or a type annotation). The definition's start column pins
// the minimum indentation for its continuation lines.
func ParseDefinition(filename, source string, table *operators.Table) (ast.Definition, error) {
	p, err := newSourceParser(filename, source, table)
	if err != nil {
		return nil, err
	}
	if first := p.peekRaw(); first.Type != EOF {
		p.indent = first.Position.Column
		p.itemStart = p.current
	}
	def, err := p.parseDef()
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return def, nil
}

// ParseProgram parses a whole translation unit: a virtual block of
// declarations laid out at the first declaration's column. Fixity
// declarations take effect for the declarations after them.
func ParseProgram(filename, source string, table *operators.Table) (*ast.Program, error) {
	p, err := newSourceParser(filename, source, table)
	if err != nil {
		return nil, err
	}

	if p.peekRaw().Type == EOF {
		end := p.makePos(p.peekRaw())
		return &ast.Program{Pos: end, EndPos: end}, nil
	}

	decls, err := layoutBlock(p, "a declaration", (*Parser).parseDecl)
	if err != nil {
		return nil, err
	}
	if err := p.expectEnd(); err != nil {
		return nil, err
	}

	pos := decls[0].NodePos()
	end := decls[len(decls)-1].NodeEndPos()
	return &ast.Program{Pos: pos, EndPos: end, Decls: decls}, nil
}

func newSourceParser(filename, source string, table *operators.Table) (*Parser, error) {
	scanner := NewScanner(source)
	tokens := scanner.ScanTokens()
	if len(scanner.errors) > 0 {
		return nil, ScanErrors(scanner.errors)
	}
	return NewParser(filename, tokens, table), nil
}

func (p *Parser) expectEnd() error {
	if tok := p.peekRaw(); tok.Type != EOF {
		return &SyntaxError{Expected: "end of input", Position: tok.Position}
	}
	return nil
}
