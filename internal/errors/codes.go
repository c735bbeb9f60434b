package errors

// Error codes for the nire front end. Codes appear in rendered
// diagnostics and in editor output so a problem keeps a stable
// identity across the toolchain.
//
// Error code ranges:
// E0001-E0099: Lexical errors
// E0100-E0199: Parse errors
// E0200-E0299: Reserved for type checking
// E0300-E0399: Reserved for module resolution

const (
	// E0001: A character no token can start with
	ErrorUnexpectedCharacter = "E0001"

	// E0002: A literal or comment left open at end of input
	ErrorUnterminatedLiteral = "E0002"

	// E0003: A literal that opened correctly but is malformed inside
	ErrorMalformedLiteral = "E0003"

	// E0101: A construct the grammar requires is missing
	ErrorSyntax = "E0101"

	// E0102: An indentation block violating the layout rules
	ErrorLayout = "E0102"

	// E0103: Operators chained without a defined grouping
	ErrorOperatorConflict = "E0103"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character cannot start any token"
	case ErrorUnterminatedLiteral:
		return "Literal or comment is missing its closing delimiter"
	case ErrorMalformedLiteral:
		return "Literal is not well formed"
	case ErrorSyntax:
		return "Source does not match the grammar at this point"
	case ErrorLayout:
		return "Indentation violates the layout rules"
	case ErrorOperatorConflict:
		return "Operator chain has no defined grouping without parentheses"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0001" && code < "E0100":
		return "Lexical"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	default:
		return "Unknown"
	}
}
