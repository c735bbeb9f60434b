package parser

import (
	"nire/internal/ast"
	"nire/internal/operators"
)

// parseExpr is the entry point for any expression.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if expr, ok, err := p.parseControlExpr(); ok || err != nil {
		return expr, err
	}
	return p.parseBinopExpr()
}

// parseControlExpr recognizes the keyword-led forms. ok reports whether
// one was found; when it is false the cursor has not moved.
func (p *Parser) parseControlExpr() (ast.Expr, bool, error) {
	switch p.peek().Type {
	case IF:
		expr, err := p.parseIf()
		return expr, true, err
	case BACKSLASH:
		expr, err := p.parseLambda()
		return expr, true, err
	case CASE:
		expr, err := p.parseCase()
		return expr, true, err
	case LET:
		expr, err := p.parseLet()
		return expr, true, err
	}
	return nil, false, nil
}

// parseBinopExpr gathers a flat operator chain — operands and the
// operators between them — and hands it to the fixity table to
// restructure. A control form may close the chain as its final operand,
// so `f x <| \y -> y` needs no parentheses.
func (p *Parser) parseBinopExpr() (ast.Expr, error) {
	first, err := p.parseApp()
	if err != nil {
		return nil, err
	}

	operands := []ast.Expr{first}
	var ops []operators.Op

	for {
		opTok, ok := p.peekBinop()
		if !ok {
			break
		}
		p.advance()
		ops = append(ops, operators.Op{Name: opName(opTok), Pos: p.makePos(opTok)})

		if ctrl, isCtrl, err := p.parseControlExpr(); isCtrl || err != nil {
			if err != nil {
				return nil, err
			}
			operands = append(operands, ctrl)
			break
		}

		operand, err := p.parseApp()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}

	return operators.Resolve(p.table, operands, ops)
}

// peekBinop reports whether the next visible token can act as a binary
// operator in a chain.
func (p *Parser) peekBinop() (Token, bool) {
	tok := p.peek()
	switch tok.Type {
	case OPERATOR, MINUS, INFIXIDENT:
		return tok, true
	}
	return Token{}, false
}

func opName(tok Token) string {
	return tok.Lexeme
}

// parseApp parses a run of juxtaposed terms and folds it into
// left-associative applications.
func (p *Parser) parseApp() (ast.Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.startsArgument() {
		arg, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		pos, end := ast.MergeSpans(expr, arg)
		expr = &ast.AppExpr{Pos: pos, EndPos: end, Fn: expr, Arg: arg}
	}

	return expr, nil
}

// startsArgument reports whether the next visible token begins another
// application argument. A '-' qualifies only when it touches the term
// after it and not the term before it, which keeps `f -x` an
// application of a negation while `f - x` and `f-x` stay subtraction.
func (p *Parser) startsArgument() bool {
	tok := p.peek()
	switch tok.Type {
	case IDENT, CAPIDENT, NUMBER, HEX_NUMBER, FLOAT, STRING, CHAR, SHADER,
		LEFT_PAREN, LEFT_BRACKET, LEFT_BRACE:
		return true
	case MINUS:
		return p.adjacent(tok, p.tokens[p.current+1]) && !p.adjacent(p.previous(), tok)
	case DOT, AT:
		next := p.tokens[p.current+1]
		return next.Type == IDENT && p.adjacent(tok, next)
	}
	return false
}

// parseIf parses both conditional forms: `if c then t else e` and the
// guarded `if | c1 -> e1 | c2 -> e2 ...`. Both desugar to a MultiIf;
// the two-branch form gets a second branch whose condition is a
// boolean-true literal spanning the else expression.
func (p *Parser) parseIf() (ast.Expr, error) {
	ifTok := p.advance()

	if p.check(BAR) {
		return p.parseGuardedIf(ifTok)
	}

	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(THEN, "'then' after the condition"); err != nil {
		return nil, err
	}
	thenExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ELSE, "an 'else' branch"); err != nil {
		return nil, err
	}
	elseExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	truePos, trueEnd := elseExpr.NodePos(), elseExpr.NodeEndPos()
	alwaysTrue := &ast.BoolLiteral{Pos: truePos, EndPos: trueEnd, Value: true}

	return &ast.MultiIfExpr{
		Pos:    p.makePos(ifTok),
		EndPos: elseExpr.NodeEndPos(),
		Branches: []*ast.IfBranch{
			{Pos: cond.NodePos(), EndPos: thenExpr.NodeEndPos(), Cond: cond, Body: thenExpr},
			{Pos: truePos, EndPos: trueEnd, Cond: alwaysTrue, Body: elseExpr},
		},
	}, nil
}

func (p *Parser) parseGuardedIf(ifTok Token) (ast.Expr, error) {
	var branches []*ast.IfBranch
	for p.match(BAR) {
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(ARROW, "'->' after the guard condition"); err != nil {
			return nil, err
		}
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		branches = append(branches, &ast.IfBranch{Pos: cond.NodePos(), EndPos: body.NodeEndPos(), Cond: cond, Body: body})
	}
	return &ast.MultiIfExpr{
		Pos:      p.makePos(ifTok),
		EndPos:   branches[len(branches)-1].EndPos,
		Branches: branches,
	}, nil
}

// parseLambda parses `\p1 p2 ... -> body`, currying multiple argument
// patterns into nested single-argument functions.
func (p *Parser) parseLambda() (ast.Expr, error) {
	slash := p.advance()

	var params []ast.Pattern
	for !p.check(ARROW) && !p.isAtEnd() {
		param, err := p.parsePatternTerm()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	if len(params) == 0 {
		return nil, &SyntaxError{Expected: "an argument pattern after '\\'", Position: p.peek().Position}
	}
	if _, err := p.consume(ARROW, "'->' after the lambda arguments"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	fn := ast.MakeFunction(params, body)
	return ast.Spanned(fn, p.makePos(slash), body.NodeEndPos()), nil
}

func (p *Parser) parseCase() (ast.Expr, error) {
	caseTok := p.advance()

	scrutinee, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(OF, "'of' after the case subject"); err != nil {
		return nil, err
	}

	alts, err := block(p, "a case branch", (*Parser).parseCaseAlt)
	if err != nil {
		return nil, err
	}

	return &ast.CaseExpr{
		Pos:       p.makePos(caseTok),
		EndPos:    alts[len(alts)-1].EndPos,
		Scrutinee: scrutinee,
		Alts:      alts,
	}, nil
}

func (p *Parser) parseCaseAlt() (*ast.CaseAlt, error) {
	pattern, err := p.parsePattern()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(ARROW, "'->' after the branch pattern"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.CaseAlt{Pos: pattern.NodePos(), EndPos: body.NodeEndPos(), Pattern: pattern, Body: body}, nil
}

func (p *Parser) parseLet() (ast.Expr, error) {
	letTok := p.advance()

	defs, err := block(p, "a definition", (*Parser).parseDef)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(IN, "'in' after the definitions"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.LetExpr{Pos: p.makePos(letTok), EndPos: body.NodeEndPos(), Defs: defs, Body: body}, nil
}
