package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"nire/internal/ast"
)

// parseTerm parses one atomic or self-delimited term and folds any
// record-access chain onto it.
func (p *Parser) parseTerm() (ast.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return p.parseAccessChain(atom)
}

func (p *Parser) parseAtom() (ast.Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case IDENT:
		p.advance()
		return &ast.VarExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case CAPIDENT:
		p.advance()
		switch tok.Lexeme {
		case "True", "False":
			return &ast.BoolLiteral{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Value: tok.Lexeme == "True"}, nil
		}
		return &ast.VarExpr{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), Name: tok.Lexeme}, nil
	case NUMBER, HEX_NUMBER, FLOAT, STRING, CHAR:
		return p.parseLiteral()
	case SHADER:
		p.advance()
		id := fmt.Sprintf("%d:%d", tok.Position.Line, tok.Position.Column)
		source := strings.ReplaceAll(tok.Lexeme, "\r", "")
		return &ast.ShaderLiteral{Pos: p.makePos(tok), EndPos: p.makeEndPos(tok), ID: id, Source: source, Tag: "glsl"}, nil
	case MINUS:
		return p.parseNegation()
	case DOT:
		return p.parseAccessorFunction()
	case AT:
		return p.parseModifierFunction()
	case LEFT_PAREN:
		return p.parseParenTerm()
	case LEFT_BRACKET:
		return p.parseListTerm()
	case LEFT_BRACE:
		return p.parseRecordTerm()
	}
	return nil, &SyntaxError{Expected: "an expression", Position: tok.Position}
}

// parseLiteral parses exactly one literal token.
func (p *Parser) parseLiteral() (ast.Expr, error) {
	tok := p.peek()
	pos, end := p.makePos(tok), p.makeEndPos(tok)
	switch tok.Type {
	case NUMBER, HEX_NUMBER:
		p.advance()
		value, err := strconv.ParseInt(tok.Lexeme, 0, 64)
		if err != nil {
			return nil, &SyntaxError{Expected: "an integer literal that fits in 64 bits", Position: tok.Position}
		}
		return &ast.IntLiteral{Pos: pos, EndPos: end, Value: value}, nil
	case FLOAT:
		p.advance()
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &SyntaxError{Expected: "a representable float literal", Position: tok.Position}
		}
		return &ast.FloatLiteral{Pos: pos, EndPos: end, Value: value}, nil
	case STRING:
		p.advance()
		return &ast.StringLiteral{Pos: pos, EndPos: end, Value: tok.Lexeme}, nil
	case CHAR:
		p.advance()
		r, _ := utf8.DecodeRuneInString(tok.Lexeme)
		return &ast.CharLiteral{Pos: pos, EndPos: end, Value: r}, nil
	}
	return nil, &SyntaxError{Expected: "a literal", Position: tok.Position}
}

// parseNegation handles a '-' in term position. It is negation only
// when the minus touches the term it negates; `- x` is left for the
// binary-operator grammar and fails here.
func (p *Parser) parseNegation() (ast.Expr, error) {
	minus := p.advance()
	if !p.adjacent(minus, p.peekRaw()) {
		return nil, &SyntaxError{Expected: "an expression", Position: minus.Position}
	}
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	zero := &ast.IntLiteral{Pos: p.makePos(minus), EndPos: p.makeEndPos(minus), Value: 0}
	pos, end := ast.MergeSpans(zero, term)
	return &ast.BinopExpr{Pos: pos, EndPos: end, Op: "-", Left: zero, Right: term}, nil
}

// parseAccessChain folds `expr.field` chains. The dot must touch both
// sides; `record .name` instead applies record to an accessor function.
func (p *Parser) parseAccessChain(expr ast.Expr) (ast.Expr, error) {
	for p.check(DOT) && p.adjacent(p.previous(), p.peek()) {
		dot := p.advance()
		next := p.peekRaw()
		if next.Type != IDENT || !p.adjacent(dot, next) {
			return nil, &SyntaxError{Expected: "a field name after '.'", Position: next.Position}
		}
		p.advance()
		field := p.makeIdent(next)
		expr = &ast.AccessExpr{Pos: expr.NodePos(), EndPos: field.EndPos, Receiver: expr, Field: field}
	}
	return expr, nil
}

// parseAccessorFunction desugars `.name` into a function that reads the
// field: \_ -> _.name.
func (p *Parser) parseAccessorFunction() (ast.Expr, error) {
	dot := p.advance()
	next := p.peekRaw()
	if next.Type != IDENT || !p.adjacent(dot, next) {
		return nil, &SyntaxError{Expected: "a field name after '.'", Position: next.Position}
	}
	p.advance()
	field := p.makeIdent(next)

	pos, end := p.makePos(dot), field.EndPos
	receiver := &ast.VarExpr{Pos: pos, EndPos: end, Name: "_"}
	access := &ast.AccessExpr{Pos: pos, EndPos: end, Receiver: receiver, Field: field}
	param := &ast.VarPattern{Pos: pos, EndPos: end, Name: "_"}
	return &ast.LambdaExpr{Pos: pos, EndPos: end, Param: param, Body: access}, nil
}

// parseModifierFunction desugars `@name` into a function that replaces
// the field: \r v -> { r | name <- v }.
func (p *Parser) parseModifierFunction() (ast.Expr, error) {
	at := p.advance()
	next := p.peekRaw()
	if next.Type != IDENT || !p.adjacent(at, next) {
		return nil, &SyntaxError{Expected: "a field name after '@'", Position: next.Position}
	}
	p.advance()
	field := p.makeIdent(next)

	pos, end := p.makePos(at), field.EndPos
	record := &ast.VarExpr{Pos: pos, EndPos: end, Name: "r"}
	value := &ast.VarExpr{Pos: pos, EndPos: end, Name: "v"}
	update := &ast.RecordField{Pos: pos, EndPos: end, Name: field, Value: value}
	modify := &ast.RecordModifyExpr{Pos: pos, EndPos: end, Base: record, Updates: []*ast.RecordField{update}}
	params := []ast.Pattern{
		&ast.VarPattern{Pos: pos, EndPos: end, Name: "r"},
		&ast.VarPattern{Pos: pos, EndPos: end, Name: "v"},
	}
	return ast.MakeFunction(params, modify), nil
}

// parseListTerm parses `[]`, `[e, ...]`, and `[low..high]`.
func (p *Parser) parseListTerm() (ast.Expr, error) {
	open := p.advance()

	if p.match(RIGHT_BRACKET) {
		return &ast.ListExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(p.previous())}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.match(DOTDOT) {
		high, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(RIGHT_BRACKET, "']' to close the range")
		if err != nil {
			return nil, err
		}
		return &ast.RangeExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Low: first, High: high}, nil
	}

	elements := []ast.Expr{first}
	for p.match(COMMA) {
		element, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	closing, err := p.consume(RIGHT_BRACKET, "']' to close the list")
	if err != nil {
		return nil, err
	}
	return &ast.ListExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Elements: elements}, nil
}

// parseParenTerm parses `()`, operator sections, tuple constructors,
// parenthesized expressions, and tuples.
func (p *Parser) parseParenTerm() (ast.Expr, error) {
	open := p.advance()

	if p.match(RIGHT_PAREN) {
		return &ast.TupleExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(p.previous())}, nil
	}

	// (+) and friends become two-argument functions.
	if opTok, ok := p.peekBinop(); ok {
		saved := p.save()
		p.advance()
		if p.match(RIGHT_PAREN) {
			return p.makeSection(open, opTok, p.previous()), nil
		}
		p.restore(saved)
	}

	// (,), (,,), ... become tuple-building functions.
	if p.check(COMMA) {
		commas := 0
		for p.match(COMMA) {
			commas++
		}
		closing, err := p.consume(RIGHT_PAREN, "')' to close the tuple constructor")
		if err != nil {
			return nil, err
		}
		return p.makeTupleConstructor(open, closing, commas+1), nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.check(COMMA) {
		elements := []ast.Expr{first}
		for p.match(COMMA) {
			element, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			elements = append(elements, element)
		}
		closing, err := p.consume(RIGHT_PAREN, "')' to close the tuple")
		if err != nil {
			return nil, err
		}
		return &ast.TupleExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Elements: elements}, nil
	}

	closing, err := p.consume(RIGHT_PAREN, "')'")
	if err != nil {
		return nil, err
	}
	// The parentheses join the expression's span.
	return ast.Spanned(first, p.makePos(open), p.makeEndPos(closing)), nil
}

func (p *Parser) makeSection(open, op, closing Token) ast.Expr {
	pos, end := p.makePos(open), p.makeEndPos(closing)
	left := &ast.VarExpr{Pos: pos, EndPos: end, Name: "x"}
	right := &ast.VarExpr{Pos: pos, EndPos: end, Name: "y"}
	body := &ast.BinopExpr{Pos: pos, EndPos: end, Op: opName(op), Left: left, Right: right}
	params := []ast.Pattern{
		&ast.VarPattern{Pos: pos, EndPos: end, Name: "x"},
		&ast.VarPattern{Pos: pos, EndPos: end, Name: "y"},
	}
	return ast.MakeFunction(params, body)
}

func (p *Parser) makeTupleConstructor(open, closing Token, arity int) ast.Expr {
	pos, end := p.makePos(open), p.makeEndPos(closing)
	params := make([]ast.Pattern, arity)
	elements := make([]ast.Expr, arity)
	for i := range params {
		name := fmt.Sprintf("v%d", i)
		params[i] = &ast.VarPattern{Pos: pos, EndPos: end, Name: name}
		elements[i] = &ast.VarExpr{Pos: pos, EndPos: end, Name: name}
	}
	tuple := &ast.TupleExpr{Pos: pos, EndPos: end, Elements: elements}
	return ast.MakeFunction(params, tuple)
}

// parseRecordTerm dispatches the brace forms on the first label and the
// token after it: `{}`, `{ k = v, ... }`, `{ r - k }`,
// `{ r - k | k2 = v }`, `{ r | k = v }`, and `{ r | k <- v, ... }`.
func (p *Parser) parseRecordTerm() (ast.Expr, error) {
	open := p.advance()

	if p.match(RIGHT_BRACE) {
		return &ast.RecordExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(p.previous())}, nil
	}

	firstTok, err := p.consume(IDENT, "a field name or the record to update")
	if err != nil {
		return nil, err
	}
	first := p.makeIdent(firstTok)

	switch {
	case p.match(MINUS):
		return p.parseRecordRemove(open, first)
	case p.match(BAR):
		return p.parseRecordUpdate(open, first)
	case p.check(EQUALS):
		return p.parseRecordLiteral(open, first)
	}
	return nil, &SyntaxError{Expected: "'=', '|', or '-' after the record's first field", Position: p.peek().Position}
}

func (p *Parser) parseRecordLiteral(open Token, first ast.Ident) (ast.Expr, error) {
	var fields []*ast.RecordField
	name := first
	for {
		if _, err := p.consume(EQUALS, "'=' after the field name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fields = append(fields, &ast.RecordField{Pos: name.Pos, EndPos: value.NodeEndPos(), Name: name, Value: value})
		if !p.match(COMMA) {
			break
		}
		tok, err := p.consume(IDENT, "a field name")
		if err != nil {
			return nil, err
		}
		name = p.makeIdent(tok)
	}
	closing, err := p.consume(RIGHT_BRACE, "'}' to close the record")
	if err != nil {
		return nil, err
	}
	return &ast.RecordExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Fields: fields}, nil
}

func (p *Parser) parseRecordRemove(open Token, base ast.Ident) (ast.Expr, error) {
	fieldTok, err := p.consume(IDENT, "the field name to remove")
	if err != nil {
		return nil, err
	}
	field := p.makeIdent(fieldTok)
	baseVar := &ast.VarExpr{Pos: base.Pos, EndPos: base.EndPos, Name: base.Value}

	if p.match(BAR) {
		// { r - k | k2 = v } removes k, then inserts k2.
		nameTok, err := p.consume(IDENT, "the field name to insert")
		if err != nil {
			return nil, err
		}
		name := p.makeIdent(nameTok)
		if _, err := p.consume(EQUALS, "'=' after the field name"); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(RIGHT_BRACE, "'}' to close the record update")
		if err != nil {
			return nil, err
		}
		remove := &ast.RecordRemoveExpr{Pos: p.makePos(open), EndPos: field.EndPos, Base: baseVar, Field: field}
		return &ast.RecordInsertExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Base: remove, Field: name, Value: value}, nil
	}

	closing, err := p.consume(RIGHT_BRACE, "'}' to close the record update")
	if err != nil {
		return nil, err
	}
	return &ast.RecordRemoveExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Base: baseVar, Field: field}, nil
}

func (p *Parser) parseRecordUpdate(open Token, base ast.Ident) (ast.Expr, error) {
	baseVar := &ast.VarExpr{Pos: base.Pos, EndPos: base.EndPos, Name: base.Value}

	nameTok, err := p.consume(IDENT, "a field name")
	if err != nil {
		return nil, err
	}
	name := p.makeIdent(nameTok)

	// { r | k = v } inserts a single new field.
	if p.match(EQUALS) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		closing, err := p.consume(RIGHT_BRACE, "'}' to close the record update")
		if err != nil {
			return nil, err
		}
		return &ast.RecordInsertExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Base: baseVar, Field: name, Value: value}, nil
	}

	if _, err := p.consume(LARROW, "'<-' or '=' after the field name"); err != nil {
		return nil, err
	}
	var updates []*ast.RecordField
	for {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		updates = append(updates, &ast.RecordField{Pos: name.Pos, EndPos: value.NodeEndPos(), Name: name, Value: value})
		if !p.match(COMMA) {
			break
		}
		nameTok, err := p.consume(IDENT, "a field name")
		if err != nil {
			return nil, err
		}
		name = p.makeIdent(nameTok)
		if _, err := p.consume(LARROW, "'<-' after the field name"); err != nil {
			return nil, err
		}
	}
	closing, err := p.consume(RIGHT_BRACE, "'}' to close the record update")
	if err != nil {
		return nil, err
	}
	return &ast.RecordModifyExpr{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Base: baseVar, Updates: updates}, nil
}
