package parser

import "nire/internal/ast"

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(tt TokenType, expected string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, &SyntaxError{Expected: expected, Position: p.peek().Position}
}

// peek returns the next token the active production may consume. An
// offside token — one that starts its own line at or left of the
// required indentation column — reads as end of input; its position is
// kept so errors still point somewhere sensible.
func (p *Parser) peek() Token {
	tok := p.tokens[p.current]
	if p.offside(p.current) {
		return Token{Type: EOF, Position: tok.Position, EndPosition: tok.Position}
	}
	return tok
}

// peekRaw bypasses the indentation rule; block drivers use it to look
// at the token that stopped an item.
func (p *Parser) peekRaw() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) offside(i int) bool {
	if i == p.itemStart {
		return false
	}
	tok := p.tokens[i]
	if tok.Type == EOF {
		return false
	}
	return p.startsLine(i) && tok.Position.Column <= p.indent
}

// startsLine reports whether token i is the first token on its line.
func (p *Parser) startsLine(i int) bool {
	if i == 0 {
		return true
	}
	return p.tokens[i].Position.Line > p.tokens[i-1].EndPosition.Line
}

// adjacent reports whether b begins exactly where a ends, with no
// whitespace or comment between.
func (p *Parser) adjacent(a, b Token) bool {
	return a.EndPosition.Offset == b.Position.Offset
}

func (p *Parser) makePos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.Position.Offset,
		Line:     tok.Position.Line,
		Column:   tok.Position.Column,
	}
}

func (p *Parser) makeEndPos(tok Token) ast.Position {
	return ast.Position{
		Filename: p.filename,
		Offset:   tok.EndPosition.Offset,
		Line:     tok.EndPosition.Line,
		Column:   tok.EndPosition.Column,
	}
}

// makeIdent creates an ast.Ident from a token
func (p *Parser) makeIdent(tok Token) ast.Ident {
	return ast.Ident{
		Pos:    p.makePos(tok),
		EndPos: p.makeEndPos(tok),
		Value:  tok.Lexeme,
	}
}
