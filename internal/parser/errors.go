package parser

import "fmt"

// SyntaxError reports a committed parse failure: the construct named by
// Expected was required at Position and is not there. Expected reads as
// the object of "expected ...", e.g. "an 'else' branch".
type SyntaxError struct {
	Expected string
	Position Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: expected %s", e.Position.Line, e.Position.Column, e.Expected)
}

// LayoutError reports a violation of the indentation rules: a block
// whose first item is missing, or an explicit block left unterminated.
type LayoutError struct {
	Message  string
	Position Position
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}
