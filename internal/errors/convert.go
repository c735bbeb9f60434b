package errors

import (
	"strings"

	"nire/internal/ast"
	"nire/internal/operators"
	"nire/internal/parser"
)

// FromScan classifies one scanner error into a coded diagnostic.
func FromScan(err parser.ScanError) CompilerError {
	code := ErrorMalformedLiteral
	switch {
	case strings.HasPrefix(err.Message, "unexpected character"):
		code = ErrorUnexpectedCharacter
	case strings.HasPrefix(err.Message, "unterminated"):
		code = ErrorUnterminatedLiteral
	}

	length := err.Length
	if length <= 0 {
		length = 1
	}
	return CompilerError{
		Level:    Error,
		Code:     code,
		Message:  err.Message,
		Position: position(err.Position),
		Length:   length,
	}
}

// FromParse classifies any error a parser entry point returns into
// renderable diagnostics. A scanner failure carries every problem the
// scanner found, so one error may expand to several diagnostics.
func FromParse(err error) []CompilerError {
	switch e := err.(type) {
	case parser.ScanErrors:
		out := make([]CompilerError, len(e))
		for i, scanErr := range e {
			out[i] = FromScan(scanErr)
		}
		return out

	case parser.ScanError:
		return []CompilerError{FromScan(e)}

	case *parser.SyntaxError:
		return []CompilerError{{
			Level:    Error,
			Code:     ErrorSyntax,
			Message:  "expected " + e.Expected,
			Position: position(e.Position),
			Length:   1,
		}}

	case *parser.LayoutError:
		diag := CompilerError{
			Level:    Error,
			Code:     ErrorLayout,
			Message:  e.Message,
			Position: position(e.Position),
			Length:   1,
		}
		if strings.Contains(e.Message, "missing a closing") {
			diag.Suggestions = append(diag.Suggestions, Suggestion{Message: "add a '}' to close the block"})
		} else {
			diag.HelpText = "a block needs at least one item, and every item must start in the same column"
		}
		return []CompilerError{diag}

	case *operators.ConflictError:
		return []CompilerError{{
			Level:    Error,
			Code:     ErrorOperatorConflict,
			Message:  e.Error(),
			Position: e.Pos,
			Length:   len(e.Second),
			Suggestions: []Suggestion{
				{Message: "parenthesize one side of the chain to make the grouping explicit"},
			},
		}}
	}

	return []CompilerError{{Level: Error, Message: err.Error()}}
}

func position(p parser.Position) ast.Position {
	return ast.Position{Offset: p.Offset, Line: p.Line, Column: p.Column}
}
