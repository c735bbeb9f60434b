package parser

import "nire/internal/ast"

// parseType parses a full type expression. Arrows nest to the right.
func (p *Parser) parseType() (ast.TypeExpr, error) {
	arg, err := p.parseTypeApp()
	if err != nil {
		return nil, err
	}
	if !p.match(ARROW) {
		return arg, nil
	}
	result, err := p.parseType()
	if err != nil {
		return nil, err
	}
	pos, end := ast.MergeSpans(arg, result)
	return &ast.FuncType{Pos: pos, EndPos: end, Arg: arg, Result: result}, nil
}

// parseTypeApp parses a constructor applied to argument types.
func (p *Parser) parseTypeApp() (ast.TypeExpr, error) {
	tok := p.peek()
	if tok.Type != CAPIDENT {
		return p.parseTypeTerm()
	}
	p.advance()

	var args []ast.TypeExpr
	end := p.makeEndPos(tok)
	for p.startsTypeTerm() {
		arg, err := p.parseTypeTerm()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		end = arg.NodeEndPos()
	}
	return &ast.TypeCon{Pos: p.makePos(tok), EndPos: end, Name: tok.Lexeme, Args: args}, nil
}

func (p *Parser) startsTypeTerm() bool {
	switch p.peek().Type {
	case IDENT, CAPIDENT, LEFT_PAREN, LEFT_BRACE:
		return true
	}
	return false
}

// parseTypeTerm parses one atomic type.
func (p *Parser) parseTypeTerm() (ast.TypeExpr, error) {
	tok := p.peek()
	switch tok.Type {
	case IDENT:
		p.advance()
		return &ast.TypeVar{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case CAPIDENT:
		p.advance()
		return &ast.TypeCon{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case LEFT_PAREN:
		return p.parseParenType()
	case LEFT_BRACE:
		return p.parseRecordType()
	}
	return nil, &SyntaxError{Expected: "a type", Position: tok.Position}
}

func (p *Parser) parseParenType() (ast.TypeExpr, error) {
	open := p.advance()

	if p.check(RIGHT_PAREN) {
		closing := p.advance()
		return &ast.TupleType{Pos: p.makePos(open), EndPos: p.makeEndPos(closing)}, nil
	}

	first, err := p.parseType()
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

	elements := []ast.TypeExpr{first}
	for p.match(COMMA) {
		el, err := p.parseType()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
	}
	closing, err := p.consume(RIGHT_PAREN, "')' to close the tuple type")
	if err != nil {
		return nil, err
	}
	return &ast.TupleType{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Elements: elements}, nil
}

// parseRecordType parses `{ a : Int, b : String }` and the extensible
// form `{ r | a : Int }`.
func (p *Parser) parseRecordType() (ast.TypeExpr, error) {
	open := p.advance()

	if p.check(RIGHT_BRACE) {
		closing := p.advance()
		return &ast.RecordType{Pos: p.makePos(open), EndPos: p.makeEndPos(closing)}, nil
	}

	first, err := p.consume(IDENT, "a field name or the record type variable")
	if err != nil {
		return nil, err
	}

	var ext *ast.Ident
	nameTok := first
	if p.match(BAR) {
		extIdent := p.makeIdent(first)
		ext = &extIdent
		nameTok, err = p.consume(IDENT, "a field name")
		if err != nil {
			return nil, err
		}
	}

	var fields []*ast.TypeField
	for {
		if _, err := p.consume(COLON, "':' after the field name"); err != nil {
			return nil, err
		}
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		name := p.makeIdent(nameTok)
		fields = append(fields, &ast.TypeField{Pos: name.Pos, EndPos: ty.NodeEndPos(), Name: name, Type: ty})
		if !p.match(COMMA) {
			break
		}
		nameTok, err = p.consume(IDENT, "a field name")
		if err != nil {
			return nil, err
		}
	}

	closing, err := p.consume(RIGHT_BRACE, "'}' to close the record type")
	if err != nil {
		return nil, err
	}
	return &ast.RecordType{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Ext: ext, Fields: fields}, nil
}
