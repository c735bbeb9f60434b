package parser

import "fmt"

// block parses a non-empty sequence of same-kind items, either between
// explicit braces with ';' separators or laid out one per line at the
// column established by the first item.
func block[T any](p *Parser, what string, item func(*Parser) (T, error)) ([]T, error) {
	if p.check(LEFT_BRACE) && !p.recordPatternAhead() {
		p.advance()
		return bracedBlock(p, what, item)
	}
	return layoutBlock(p, what, item)
}

// recordPatternAhead reports whether the '{' at the cursor opens a
// record pattern like `{a, b}` rather than an explicit block. The two
// collide at `let {x, y} = pair ...` and `case r of {a} -> a`.
func (p *Parser) recordPatternAhead() bool {
	i := p.current + 1
	if p.tokens[i].Type != IDENT {
		return false
	}
	i++
	for p.tokens[i].Type == COMMA && p.tokens[i+1].Type == IDENT {
		i += 2
	}
	return p.tokens[i].Type == RIGHT_BRACE
}

// bracedBlock parses `{ item ; item ; ... }`. Inside the braces the
// column rule is suspended; the brackets carry the structure.
func bracedBlock[T any](p *Parser, what string, item func(*Parser) (T, error)) ([]T, error) {
	opened := p.previous()
	saved := p.indent
	p.indent = 0
	defer func() { p.indent = saved }()

	var items []T
	for {
		it, err := item(p)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
		if !p.match(SEMICOLON) {
			break
		}
	}
	if !p.match(RIGHT_BRACE) {
		return nil, &LayoutError{
			Message:  fmt.Sprintf("the block opened at %d:%d is missing a closing '}'", opened.Position.Line, opened.Position.Column),
			Position: p.peekRaw().Position,
		}
	}
	return items, nil
}

// layoutBlock parses a virtual block. The first item's column becomes
// the reference column: a later line starting at exactly that column
// begins the next item, a line starting left of it ends the block
// without being consumed, and an item's own continuation lines must sit
// strictly right of it.
func layoutBlock[T any](p *Parser, what string, item func(*Parser) (T, error)) ([]T, error) {
	first := p.peek()
	if first.Type == EOF {
		return nil, &LayoutError{Message: "expected " + what, Position: p.peekRaw().Position}
	}
	ref := first.Position.Column

	saved := p.indent
	defer func() { p.indent = saved }()

	var items []T
	for {
		p.indent = ref
		p.itemStart = p.current

		start := p.current
		it, err := item(p)
		if err != nil {
			if len(items) == 0 && p.current == start {
				return nil, &LayoutError{Message: "expected " + what, Position: p.peekRaw().Position}
			}
			return nil, err
		}
		items = append(items, it)

		next := p.peekRaw()
		if next.Type == EOF || !p.startsLine(p.current) || next.Position.Column != ref {
			return items, nil
		}
	}
}
