package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nire/internal/ast"
	"nire/internal/operators"
)

func mustParseExpr(t *testing.T, source string) ast.Expr {
	t.Helper()
	expr, err := ParseExpression("test.ni", source, nil)
	require.NoError(t, err, "source: %s", source)
	return expr
}

// exprString parses source and prints the tree in the fully
// parenthesized canonical form, which makes grouping assertions exact.
func exprString(t *testing.T, source string) string {
	t.Helper()
	return mustParseExpr(t, source).String()
}

func TestApplicationNestsLeft(t *testing.T) {
	assert.Equal(t, "((f a) b)", exprString(t, "f a b"))
	assert.Equal(t, "((f (g a)) b)", exprString(t, "f (g a) b"))
}

func TestOperatorPrecedence(t *testing.T) {
	cases := map[string]string{
		"a + b * c":    "(a + (b * c))",
		"a * b + c":    "((a * b) + c)",
		"f x + g y":    "((f x) + (g y))",
		"a && b || c":  "((a && b) || c)",
		"a + b ++ cs":  "((a + b) ++ cs)",
		"n `div` 2":    "(n div 2)",
		"a * b ** c":   "(a * (b ** c))", // unknown operators bind at the top level
		"a == b && c":  "((a == b) && c)",
		"f <| g <| x":  "(f <| (g <| x))",
		"x |> f |> g":  "((x |> f) |> g)",
		"a - b - c":    "((a - b) - c)",
		"a ^ b ^ c":    "(a ^ (b ^ c))",
		"x :: y :: ys": "(x :: (y :: ys))",
	}
	for source, want := range cases {
		assert.Equal(t, want, exprString(t, source), "source: %s", source)
	}
}

func TestNonAssociativeOperatorsRefuseToChain(t *testing.T) {
	_, err := ParseExpression("test.ni", "a == b == c", nil)
	var conflict *operators.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "==", conflict.First)

	_, err = ParseExpression("test.ni", "a < b > c", nil)
	require.ErrorAs(t, err, &conflict)
}

func TestCustomTableChangesGrouping(t *testing.T) {
	table, err := operators.ParseTable("fixities.nfx", "infixr 5 <+>")
	require.NoError(t, err)

	expr, err := ParseExpression("test.ni", "a <+> b <+> c", table)
	require.NoError(t, err)
	assert.Equal(t, "(a <+> (b <+> c))", expr.String())

	// The same chain leans left under the default table.
	assert.Equal(t, "((a <+> b) <+> c)", exprString(t, "a <+> b <+> c"))
}

func TestNegationVersusSubtraction(t *testing.T) {
	cases := map[string]string{
		"f -x":   "(f (0 - x))",
		"f - x":  "(f - x)",
		"f-x":    "(f - x)",
		"a -b":   "(a (0 - b))",
		"-x":     "(0 - x)",
		"- x":    "",
		"1 +-x":  "(1 +- x)", // +- is one operator token
		"f -x.y": "(f (0 - x.y))",
	}
	for source, want := range cases {
		if want == "" {
			_, err := ParseExpression("test.ni", source, nil)
			assert.Error(t, err, "source: %s", source)
			continue
		}
		assert.Equal(t, want, exprString(t, source), "source: %s", source)
	}
}

func TestIfDesugarsToGuards(t *testing.T) {
	assert.Equal(t, "(if | a -> b | True -> c)", exprString(t, "if a then b else c"))
	assert.Equal(t,
		"(if | (x < 0) -> neg | otherwise -> pos)",
		exprString(t, "if | x < 0 -> neg | otherwise -> pos"))
}

func TestElseGuardSpansElseExpression(t *testing.T) {
	expr := mustParseExpr(t, "if a then b else foo bar")
	multi, ok := expr.(*ast.MultiIfExpr)
	require.True(t, ok)
	require.Len(t, multi.Branches, 2)

	last := multi.Branches[1]
	guard, ok := last.Cond.(*ast.BoolLiteral)
	require.True(t, ok, "the implicit guard should be a boolean literal")
	assert.True(t, guard.Value)
	assert.Equal(t, last.Body.NodePos(), guard.Pos, "guard should start where the else expression starts")
	assert.Equal(t, last.Body.NodeEndPos(), guard.EndPos, "guard should end where the else expression ends")
}

func TestMissingElseBranch(t *testing.T) {
	_, err := ParseExpression("test.ni", "if a then b", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "an 'else' branch", syntaxErr.Expected)
}

func TestLambdaCurriesParameters(t *testing.T) {
	assert.Equal(t, "(\\x -> (\\y -> (x + y)))", exprString(t, "\\x y -> x + y"))
	assert.Equal(t, "(\\(a, b) -> a)", exprString(t, "\\(a, b) -> a"))
	assert.Equal(t, "(\\x -> x)", exprString(t, "λx -> x"))
}

func TestLambdaSpanCoversWholeForm(t *testing.T) {
	source := "\\x y -> x + y"
	expr := mustParseExpr(t, source)
	assert.Equal(t, 0, expr.NodePos().Offset)
	assert.Equal(t, len(source), expr.NodeEndPos().Offset)

	// The inner lambda keeps the body span.
	inner := expr.(*ast.LambdaExpr).Body.(*ast.LambdaExpr)
	assert.Equal(t, 8, inner.Pos.Offset, "inner lambda should span the body only")
}

func TestCaseWithLayout(t *testing.T) {
	source := `case n of
  0 -> zero
  _ -> other`
	assert.Equal(t, "(case n of { 0 -> zero ; _ -> other })", exprString(t, source))
}

func TestNestedCaseEndsAtOuterColumn(t *testing.T) {
	source := `case m of
  0 -> case n of
         1 -> a
         2 -> b
  _ -> c`
	assert.Equal(t,
		"(case m of { 0 -> (case n of { 1 -> a ; 2 -> b }) ; _ -> c })",
		exprString(t, source))
}

func TestLetBindsDefinitionsInOrder(t *testing.T) {
	assert.Equal(t, "(let { x = 1 } in x)", exprString(t, "let x = 1 in x"))

	source := `let
  a = 1
  b = a
in b`
	assert.Equal(t, "(let { a = 1 ; b = a } in b)", exprString(t, source))
}

func TestLetAcceptsAnnotations(t *testing.T) {
	source := `let
  inc : Int -> Int
  inc n = n + 1
in inc 41`
	assert.Equal(t,
		"(let { inc : (Int -> Int) ; inc = (\\n -> (n + 1)) } in (inc 41))",
		exprString(t, source))
}

func TestControlFormClosesOperatorChain(t *testing.T) {
	assert.Equal(t, "((f x) <| (\\y -> y))", exprString(t, "f x <| \\y -> y"))
	assert.Equal(t, "(a + (if | c -> t | True -> e))", exprString(t, "a + if c then t else e"))
	assert.Equal(t,
		"(total + (let { x = 1 } in x))",
		exprString(t, "total + let x = 1 in x"))
}

func TestParseExpressionRejectsTrailingInput(t *testing.T) {
	_, err := ParseExpression("test.ni", "x ,", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "end of input", syntaxErr.Expected)
}

func TestSpansNestWithinRoot(t *testing.T) {
	source := `let x = {r - f | g = [1..n]} in case x of
  (a, _) :: rest -> \y -> a + y
  _ -> .field x`
	root := mustParseExpr(t, source)

	ast.Walk(root, func(n ast.Node) bool {
		assert.False(t, n.NodeEndPos().Before(n.NodePos()),
			"node %q has an inverted span", n.String())
		assert.False(t, n.NodePos().Before(root.NodePos()),
			"node %q starts before the root", n.String())
		assert.False(t, root.NodeEndPos().Before(n.NodeEndPos()),
			"node %q ends after the root", n.String())
		return true
	})
}
