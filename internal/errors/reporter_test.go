package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nire/internal/ast"
	"nire/internal/parser"
)

func TestErrorReporter(t *testing.T) {
	source := "inc n = if n > 0 then n + 1"

	_, err := parser.ParseProgram("test.ni", source, nil)
	require.Error(t, err)

	diags := FromParse(err)
	require.Len(t, diags, 1)

	reporter := NewErrorReporter("test.ni", source)
	formatted := reporter.FormatError(diags[0])

	assert.Contains(t, formatted, "error["+ErrorSyntax+"]")
	assert.Contains(t, formatted, "expected an 'else' branch")
	assert.Contains(t, formatted, "test.ni:1:28")
	assert.Contains(t, formatted, "inc n = if n > 0 then n + 1")
	assert.Contains(t, formatted, "^")
}

func TestScanErrorClassification(t *testing.T) {
	cases := map[string]string{
		"§":      ErrorUnexpectedCharacter,
		`"ab`:    ErrorUnterminatedLiteral,
		"{- x":   ErrorUnterminatedLiteral,
		"''":     ErrorMalformedLiteral,
		"0xZ":    ErrorMalformedLiteral,
		`"a\qb"`: ErrorMalformedLiteral,
	}
	for source, code := range cases {
		_, errs := parser.Scan(source)
		require.NotEmpty(t, errs, "source: %s", source)
		diag := FromScan(errs[0])
		assert.Equal(t, code, diag.Code, "source: %s", source)
		assert.Equal(t, Error, diag.Level)
		assert.Positive(t, diag.Length)
	}
}

func TestScanFailureExpandsToEveryDiagnostic(t *testing.T) {
	_, err := parser.ParseExpression("test.ni", "§ §", nil)
	require.Error(t, err)

	diags := FromParse(err)
	require.Len(t, diags, 2)
	assert.Equal(t, ErrorUnexpectedCharacter, diags[0].Code)
	assert.Equal(t, ErrorUnexpectedCharacter, diags[1].Code)
}

func TestLayoutDiagnosticCarriesAdvice(t *testing.T) {
	_, err := parser.ParseProgram("test.ni", "main =\n  case x of", nil)
	require.Error(t, err)

	diags := FromParse(err)
	require.Len(t, diags, 1)
	assert.Equal(t, ErrorLayout, diags[0].Code)
	assert.Contains(t, diags[0].Message, "expected a case branch")
	assert.Contains(t, diags[0].HelpText, "same column")
}

func TestUnclosedBlockSuggestsTheFix(t *testing.T) {
	_, err := parser.ParseExpression("test.ni", "let { x = 1 in x", nil)
	require.Error(t, err)

	diags := FromParse(err)
	require.Len(t, diags, 1)
	assert.Equal(t, ErrorLayout, diags[0].Code)
	require.Len(t, diags[0].Suggestions, 1)
	assert.Contains(t, diags[0].Suggestions[0].Message, "close the block")
}

func TestConflictDiagnosticMarksTheSecondOperator(t *testing.T) {
	source := "a == b == c"
	_, err := parser.ParseExpression("test.ni", source, nil)
	require.Error(t, err)

	diags := FromParse(err)
	require.Len(t, diags, 1)
	diag := diags[0]
	assert.Equal(t, ErrorOperatorConflict, diag.Code)
	assert.Contains(t, diag.Message, "not associative")
	assert.Equal(t, 7, diag.Position.Offset)
	assert.Equal(t, 2, diag.Length)
	require.Len(t, diag.Suggestions, 1)
	assert.Contains(t, diag.Suggestions[0].Message, "parenthesize")

	reporter := NewErrorReporter("test.ni", source)
	formatted := reporter.FormatError(diag)
	assert.Contains(t, formatted, "help:")
}

func TestWarningFormatting(t *testing.T) {
	reporter := NewErrorReporter("test.ni", "x = 1")
	formatted := reporter.FormatError(CompilerError{
		Level:    Warning,
		Message:  "this binding shadows an earlier one",
		Position: ast.Position{Line: 1, Column: 1},
		Length:   1,
	})

	assert.Contains(t, formatted, "warning:")
	assert.Contains(t, formatted, "shadows")
}

func TestSourceWindowShowsNeighboringLines(t *testing.T) {
	source := "a = 1\nb = ?\nc = 3"
	reporter := NewErrorReporter("test.ni", source)
	formatted := reporter.FormatError(CompilerError{
		Level:    Error,
		Code:     ErrorUnexpectedCharacter,
		Message:  "unexpected character '?'",
		Position: ast.Position{Line: 2, Column: 5},
		Length:   1,
	})

	assert.Contains(t, formatted, "a = 1")
	assert.Contains(t, formatted, "b = ?")
	assert.Contains(t, formatted, "c = 3")
	assert.Contains(t, formatted, "test.ni:2:5")
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.ni", "let variable = value")

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestCodeMetadata(t *testing.T) {
	assert.Equal(t, "Lexical", GetErrorCategory(ErrorUnexpectedCharacter))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorSyntax))
	assert.Equal(t, "Unknown", GetErrorCategory("E0500"))

	assert.Contains(t, GetErrorDescription(ErrorLayout), "layout")
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

func TestHeaderWithoutCode(t *testing.T) {
	reporter := NewErrorReporter("test.ni", "x")
	formatted := reporter.FormatError(CompilerError{
		Level:    Error,
		Message:  "something went wrong",
		Position: ast.Position{Line: 1, Column: 1},
	})

	assert.Contains(t, formatted, "error: something went wrong")
}
