package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplicitBracesParseLikeLayout(t *testing.T) {
	layout := `let
  x = 1
  y = x
in y`
	braced := "let { x = 1; y = x } in y"
	assert.Equal(t, exprString(t, layout), exprString(t, braced))

	layoutCase := `case n of
  0 -> a
  _ -> b`
	bracedCase := "case n of { 0 -> a; _ -> b }"
	assert.Equal(t, exprString(t, layoutCase), exprString(t, bracedCase))
}

func TestBlockEndsAtDedent(t *testing.T) {
	// `in` sits left of the definitions, so it ends the block.
	source := `let
    a = 1
    b = 2
  in a + b`
	assert.Equal(t, "(let { a = 1 ; b = 2 } in (a + b))", exprString(t, source))
}

func TestItemContinuationMustIndentPastItsColumn(t *testing.T) {
	// The literal belongs to x's definition only when indented past x.
	good := `let
  x =
    1
in x`
	assert.Equal(t, "(let { x = 1 } in x)", exprString(t, good))

	// At x's own column the line reads as a new definition and fails.
	bad := `let
  x =
  1
in x`
	_, err := ParseExpression("test.ni", bad, nil)
	assert.Error(t, err)
}

func TestSameColumnLineStartsNewItem(t *testing.T) {
	source := `case n of
  0 -> a
  1 -> b
  _ -> c`
	assert.Equal(t, "(case n of { 0 -> a ; 1 -> b ; _ -> c })", exprString(t, source))
}

func TestEmptyBlockIsALayoutError(t *testing.T) {
	_, err := ParseExpression("test.ni", "let\nin x", nil)
	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Message, "expected a definition")

	_, err = ParseExpression("test.ni", "case n of", nil)
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Message, "expected a case branch")
}

func TestUnterminatedExplicitBlock(t *testing.T) {
	_, err := ParseExpression("test.ni", "let { x = 1 in x", nil)
	var layoutErr *LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Contains(t, layoutErr.Message, "missing a closing '}'")
	assert.Contains(t, layoutErr.Message, "1:5", "the message should name where the block opened")
}

func TestRecordPatternIsNotAnExplicitBlock(t *testing.T) {
	// `{a, b}` after let opens a destructuring definition, not a block.
	assert.Equal(t,
		"(let { {a, b} = pair } in a)",
		exprString(t, "let {a, b} = pair in a"))

	// Same shape as a case branch pattern.
	assert.Equal(t,
		"(case r of { {x} -> x })",
		exprString(t, "case r of {x} -> x"))

	// With `=` inside, the braces are an explicit block again.
	assert.Equal(t,
		"(let { a = 1 } in a)",
		exprString(t, "let { a = 1 } in a"))
}

func TestLetOnOneLine(t *testing.T) {
	assert.Equal(t, "(let { x = 1 } in x)", exprString(t, "let x = 1 in x"))
}

func TestNestedLetKeepsOuterBlockAlive(t *testing.T) {
	source := `let
  a = let
        b = 1
      in b
  c = 2
in a + c`
	assert.Equal(t,
		"(let { a = (let { b = 1 } in b) ; c = 2 } in (a + c))",
		exprString(t, source))
}

func TestOffsideTokenIsInvisibleToNestedParsers(t *testing.T) {
	// The second alternative of the outer case must not be swallowed by
	// the inner one.
	source := `case x of
  a -> case a of
         1 -> one
  _ -> fallback`
	assert.Equal(t,
		"(case x of { a -> (case a of { 1 -> one }) ; _ -> fallback })",
		exprString(t, source))
}
