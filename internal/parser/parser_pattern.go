package parser

import "nire/internal/ast"

// parsePattern parses a full pattern: constructor applications, cons
// chains, and trailing `as` aliases. Cons binds tighter than `as`, so
// `x :: xs as list` aliases the whole chain.
func (p *Parser) parsePattern() (ast.Pattern, error) {
	pat, err := p.parseConsPattern()
	if err != nil {
		return nil, err
	}
	for p.match(AS) {
		name, err := p.consume(IDENT, "a name for the pattern alias")
		if err != nil {
			return nil, err
		}
		pat = &ast.AliasPattern{Pos: pat.NodePos(), EndPos: p.makeEndPos(name), Pattern: pat, Name: p.makeIdent(name)}
	}
	return pat, nil
}

func (p *Parser) parseConsPattern() (ast.Pattern, error) {
	pat, err := p.parsePatternApp()
	if err != nil {
		return nil, err
	}
	tok, ok := p.peekBinop()
	if !ok || tok.Lexeme != "::" {
		return pat, nil
	}
	p.advance()
	rest, err := p.parseConsPattern()
	if err != nil {
		return nil, err
	}
	pos, end := ast.MergeSpans(pat, rest)
	return &ast.CtorPattern{Pos: pos, EndPos: end, Name: "::", Args: []ast.Pattern{pat, rest}}, nil
}

// parsePatternApp parses a constructor applied to argument patterns.
func (p *Parser) parsePatternApp() (ast.Pattern, error) {
	tok := p.peek()
	if tok.Type != CAPIDENT || tok.Lexeme == "True" || tok.Lexeme == "False" {
		return p.parsePatternTerm()
	}
	p.advance()

	var args []ast.Pattern
	end := p.makeEndPos(tok)
	for p.startsPatternTerm() {
		arg, err := p.parsePatternTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		end = arg.NodeEndPos()
	}
	return &ast.CtorPattern{Pos: p.makePos(tok), EndPos: end, Name: tok.Lexeme, Args: args}, nil
}

// parsePatternTerm parses one atomic pattern. Constructors here take
// no arguments; parenthesize an applied constructor to nest it.
func (p *Parser) parsePatternTerm() (ast.Pattern, error) {
	tok := p.peek()
	switch tok.Type {
	case UNDERSCORE:
		p.advance()
		return &ast.WildcardPattern{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok)}, nil
	case IDENT:
		p.advance()
		return &ast.VarPattern{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case CAPIDENT:
		p.advance()
		if tok.Lexeme == "True" || tok.Lexeme == "False" {
			lit := &ast.BoolLiteral{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: tok.Lexeme == "True"}
			return &ast.LiteralPattern{Pos: lit.Pos, EndPos: lit.EndPos, Value: lit}, nil
		}
		return &ast.CtorPattern{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case NUMBER, HEX_NUMBER, FLOAT, STRING, CHAR:
		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.LiteralPattern{Pos: lit.NodePos(), EndPos: lit.NodeEndPos(), Value: lit}, nil
	case LEFT_PAREN:
		return p.parseParenPattern()
	case LEFT_BRACKET:
		return p.parseListPattern()
	case LEFT_BRACE:
		return p.parseRecordPattern()
	}
	return nil, &SyntaxError{Expected: "a pattern", Position: tok.Position}
}

func (p *Parser) parseParenPattern() (ast.Pattern, error) {
	open := p.advance()

	if p.check(RIGHT_PAREN) {
		closing := p.advance()
		return &ast.TuplePattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing)}, nil
	}

	first, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if !p.check(COMMA) {
		closing, err := p.consume(RIGHT_PAREN, "')'")
		if err != nil {
			return nil, err
		}
		return ast.Spanned(first, p.makePos(open), p.makeEndPos(closing)), nil
	}

	elements := []ast.Pattern{first}
	for p.match(COMMA) {
		el, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	closing, err := p.consume(RIGHT_PAREN, "')' to close the tuple pattern")
	if err != nil {
		return nil, err
	}
	return &ast.TuplePattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Elements: elements}, nil
}

func (p *Parser) parseListPattern() (ast.Pattern, error) {
	open := p.advance()

	if p.check(RIGHT_BRACKET) {
		closing := p.advance()
		return &ast.ListPattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing)}, nil
	}

	var elements []ast.Pattern
	for {
		el, err := p.parsePattern()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if !p.match(COMMA) {
			break
		}
	}
	closing, err := p.consume(RIGHT_BRACKET, "']' to close the list pattern")
	if err != nil {
		return nil, err
	}
	return &ast.ListPattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Elements: elements}, nil
}

func (p *Parser) parseRecordPattern() (ast.Pattern, error) {
	open := p.advance()

	var fields []ast.Ident
	for {
		name, err := p.consume(IDENT, "a field name")
		if err != nil {
			return nil, err
		}
		fields = append(fields, p.makeIdent(name))
		if !p.match(COMMA) {
			break
		}
	}
	closing, err := p.consume(RIGHT_BRACE, "'}' to close the record pattern")
	if err != nil {
		return nil, err
	}
	return &ast.RecordPattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Fields: fields}, nil
}
