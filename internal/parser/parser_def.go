package parser

import (
	"fmt"
	"strconv"

	"nire/internal/ast"
	"nire/internal/operators"
)

// parseDecl parses one top-level declaration. Fixity declarations are
// only legal at the top level; everything else is a plain definition.
func (p *Parser) parseDecl() (ast.Decl, error) {
	switch p.peek().Type {
	case INFIX, INFIXL, INFIXR:
		return p.parseFixityDecl()
	}
	def, err := p.parseDef()
	if err != nil {
		return nil, err
	}
	return def.(ast.Decl), nil
}

// parseDef parses one definition: a standalone type annotation or a
// value definition.
func (p *Parser) parseDef() (ast.Definition, error) {
	if name, ok := p.parseAnnotationHead(); ok {
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return &ast.TypeAnnotation{Pos: name.Pos, EndPos: ty.NodeEndPos(), Name: name, Type: ty}, nil
	}
	return p.parseValueDef()
}

// parseAnnotationHead recognizes `name :` and `(op) :` without
// committing: when the shape is not there the cursor is restored and
// the tokens are left for the value-definition parser.
func (p *Parser) parseAnnotationHead() (ast.Ident, bool) {
	s := p.save()

	if p.check(IDENT) {
		name := p.advance()
		if p.match(COLON) {
			return p.makeIdent(name), true
		}
	} else if p.operatorHeadAhead() {
		open := p.advance()
		opTok := p.advance()
		closing := p.advance()
		if p.match(COLON) {
			return ast.Ident{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Value: opName(opTok)}, true
		}
	}

	p.restore(s)
	return ast.Ident{}, false
}

// operatorHeadAhead reports whether the cursor sits on a parenthesized
// operator name, `(` op `)`, as used by annotation and definition heads.
func (p *Parser) operatorHeadAhead() bool {
	if !p.check(LEFT_PAREN) {
		return false
	}
	switch p.tokens[p.current+1].Type {
	case OPERATOR, MINUS, INFIXIDENT:
		return p.tokens[p.current+2].Type == RIGHT_PAREN
	}
	return false
}

// parseValueDef parses the three value-definition shapes: a function
// definition `name args... = body`, an infix-operator definition
// `left OP right = body`, and a destructuring binding `pattern = body`.
func (p *Parser) parseValueDef() (ast.Definition, error) {
	head, err := p.parseDefHead()
	if err != nil {
		return nil, err
	}

	// Infix shorthand: the first pattern was the left argument.
	if opTok, ok := p.peekBinop(); ok {
		p.advance()
		right, err := p.parsePatternTerm()
		if err != nil {
			return nil, err
		}
		body, err := p.parseDefBody(fmt.Sprintf("the definition of the operator (a %s b = ...)", opName(opTok)))
		if err != nil {
			return nil, err
		}
		name := &ast.VarPattern{Pos: p.makePos(opTok), EndPos: p.makeEndPos(opTok), Name: opName(opTok)}
		return &ast.ValueDef{
			Pos:    head.NodePos(),
			EndPos: body.NodeEndPos(),
			Head:   name,
			Body:   ast.MakeFunction([]ast.Pattern{head, right}, body),
		}, nil
	}

	if name, ok := head.(*ast.VarPattern); ok {
		var params []ast.Pattern
		for p.startsPatternTerm() {
			param, err := p.parsePatternTerm()
			if err != nil {
				return nil, err
			}
			params = append(params, param)
		}
		body, err := p.parseDefBody(fmt.Sprintf("the definition of a variable (%s = ...)", name.Name))
		if err != nil {
			return nil, err
		}
		if len(params) > 0 {
			body = ast.MakeFunction(params, body)
		}
		return &ast.ValueDef{Pos: head.NodePos(), EndPos: body.NodeEndPos(), Head: head, Body: body}, nil
	}

	// A non-name head is a destructuring binding; it takes no arguments.
	body, err := p.parseDefBody("'=' after the pattern")
	if err != nil {
		return nil, err
	}
	return &ast.ValueDef{Pos: head.NodePos(), EndPos: body.NodeEndPos(), Head: head, Body: body}, nil
}

// parseDefHead parses the first pattern of a definition. A
// parenthesized operator is allowed here (and only here), so
// `(<|) f x = f x` defines an operator in prefix form.
func (p *Parser) parseDefHead() (ast.Pattern, error) {
	if p.operatorHeadAhead() {
		open := p.advance()
		opTok := p.advance()
		closing := p.advance()
		return &ast.VarPattern{Pos: p.makePos(open), EndPos: p.makeEndPos(closing), Name: opName(opTok)}, nil
	}
	return p.parsePatternTerm()
}

func (p *Parser) parseDefBody(expected string) (ast.Expr, error) {
	if _, err := p.consume(EQUALS, expected); err != nil {
		return nil, err
	}
	return p.parseExpr()
}

func (p *Parser) startsPatternTerm() bool {
	switch p.peek().Type {
	case IDENT, CAPIDENT, UNDERSCORE, NUMBER, HEX_NUMBER, FLOAT, STRING, CHAR,
		LEFT_PAREN, LEFT_BRACKET, LEFT_BRACE:
		return true
	}
	return false
}

// parseFixityDecl parses `infixl 6 + -` style declarations and applies
// them to the table immediately, so the named operators group correctly
// in every later declaration.
func (p *Parser) parseFixityDecl() (ast.Decl, error) {
	kw := p.advance()

	levelTok, err := p.consume(NUMBER, "a precedence level between 0 and 9")
	if err != nil {
		return nil, err
	}
	level, convErr := strconv.Atoi(levelTok.Lexeme)
	if convErr != nil || level > 9 {
		return nil, &SyntaxError{Expected: "a precedence level between 0 and 9", Position: levelTok.Position}
	}

	var ops []ast.Ident
	var names []string
	for {
		opTok, ok := p.peekBinop()
		if !ok {
			break
		}
		p.advance()
		ops = append(ops, ast.Ident{Pos: p.makePos(opTok), EndPos: p.makeEndPos(opTok), Value: opName(opTok)})
		names = append(names, opName(opTok))
	}
	if len(ops) == 0 {
		return nil, &SyntaxError{Expected: "at least one operator to declare", Position: p.peek().Position}
	}

	assoc, err := operators.AssocFromKeyword(kw.Lexeme)
	if err != nil {
		return nil, &SyntaxError{Expected: "'infix', 'infixl', or 'infixr'", Position: kw.Position}
	}
	p.table = p.table.Extend(level, assoc, names...)

	return &ast.FixityDecl{
		Pos:        p.makePos(kw),
		EndPos:     ops[len(ops)-1].EndPos,
		Assoc:      kw.Lexeme,
		Precedence: level,
		Ops:        ops,
	}, nil
}
