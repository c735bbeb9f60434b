package parser

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nire/internal/ast"
)

func mustParseDef(t *testing.T, source string) ast.Definition {
	t.Helper()
	def, err := ParseDefinition("test.ni", source, nil)
	require.NoError(t, err, "source: %s", source)
	return def
}

func mustParseProgram(t *testing.T, source string) *ast.Program {
	t.Helper()
	program, err := ParseProgram("test.ni", source, nil)
	require.NoError(t, err, "source: %s", source)
	return program
}

func TestSimpleDefinition(t *testing.T) {
	def := mustParseDef(t, "x = 1")
	assert.Equal(t, "x = 1", def.String())
}

func TestFunctionDefinitionCurries(t *testing.T) {
	def := mustParseDef(t, "f x y = x")
	assert.Equal(t, "f = (\\x -> (\\y -> x))", def.String())
}

func TestInfixOperatorDefinition(t *testing.T) {
	cases := []struct {
		source string
		name   string
	}{
		{"a `foo` b = a", "foo"},
		{"x <+> y = add x y", "<+>"},
		{"a - b = subtract a b", "-"},
	}
	for _, tc := range cases {
		def := mustParseDef(t, tc.source)
		vd, ok := def.(*ast.ValueDef)
		require.True(t, ok, "source: %s", tc.source)

		head, ok := vd.Head.(*ast.VarPattern)
		require.True(t, ok, "the operator should become the defined name")
		assert.Equal(t, tc.name, head.Name)

		outer, ok := vd.Body.(*ast.LambdaExpr)
		require.True(t, ok, "the arguments should curry")
		_, ok = outer.Body.(*ast.LambdaExpr)
		assert.True(t, ok, "expected exactly two curried arguments")
	}
}

func TestPrefixOperatorDefinition(t *testing.T) {
	def := mustParseDef(t, "(<|) f x = f x")
	assert.Equal(t, "<| = (\\f -> (\\x -> (f x)))", def.String())
}

func TestDestructuringDefinition(t *testing.T) {
	assert.Equal(t, "(a, b) = pair", mustParseDef(t, "(a, b) = pair").String())
	assert.Equal(t, "{x, y} = point", mustParseDef(t, "{x, y} = point").String())
	assert.Equal(t, "(x :: rest) = items", mustParseDef(t, "(x :: rest) = items").String())
}

func TestDestructuringTakesNoArguments(t *testing.T) {
	_, err := ParseDefinition("test.ni", "(a, b) c = pair", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "'=' after the pattern", syntaxErr.Expected)
}

func TestTypeAnnotation(t *testing.T) {
	def := mustParseDef(t, "f : Int -> Int")
	assert.Equal(t, "f : (Int -> Int)", def.String())

	opAnn := mustParseDef(t, "(+) : Int -> Int -> Int")
	ann, ok := opAnn.(*ast.TypeAnnotation)
	require.True(t, ok)
	assert.Equal(t, "+", ann.Name.Value)
	assert.Equal(t, "+ : (Int -> (Int -> Int))", opAnn.String())
}

func TestDefinitionBodyMayContinueIndented(t *testing.T) {
	def := mustParseDef(t, "f x =\n  x + 1")
	assert.Equal(t, "f = (\\x -> (x + 1))", def.String())
}

func TestDefinitionBodyMustIndentPastTheHead(t *testing.T) {
	_, err := ParseDefinition("test.ni", "f =\nx", nil)
	assert.Error(t, err, "a body at the definition's own column is outside it")
}

func TestMissingEqualsNamesTheVariable(t *testing.T) {
	_, err := ParseDefinition("test.ni", "f x", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "the definition of a variable (f = ...)", syntaxErr.Expected)
}

func TestParseDefinitionRejectsTrailingInput(t *testing.T) {
	_, err := ParseDefinition("test.ni", "x = 1\ny = 2", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "end of input", syntaxErr.Expected)
}

func TestProgramInterleavesDeclarationKinds(t *testing.T) {
	source := `double : Int -> Int
double x = x * 2

result = double 21`
	program := mustParseProgram(t, source)
	require.Len(t, program.Decls, 3)

	_, ok := program.Decls[0].(*ast.TypeAnnotation)
	assert.True(t, ok, "first declaration should be the annotation")
	assert.Equal(t,
		"double : (Int -> Int)\ndouble = (\\x -> (x * 2))\nresult = (double 21)",
		program.String())
}

func TestFixityDeclarationAffectsLaterDeclarations(t *testing.T) {
	source := `infixr 5 <+>
f = a <+> b <+> c`
	program := mustParseProgram(t, source)
	require.Len(t, program.Decls, 2)

	fixity, ok := program.Decls[0].(*ast.FixityDecl)
	require.True(t, ok)
	assert.Equal(t, "infixr", fixity.Assoc)
	assert.Equal(t, 5, fixity.Precedence)
	assert.Equal(t, "f = (a <+> (b <+> c))", program.Decls[1].String())
}

func TestFixityDeclarationDoesNotLeakIntoTheCallerTable(t *testing.T) {
	source := `infixl 3 <*>
g = a <*> b`
	mustParseProgram(t, source)

	// A fresh parse with the default table must not see the declaration.
	expr := mustParseExpr(t, "a <*> b <*> c * d")
	assert.Equal(t, "(((a <*> b) <*> c) * d)", expr.String(), "<*> should be back at the default level 9")
}

func TestFixityDeclarationErrors(t *testing.T) {
	cases := map[string]string{
		"infixl 12 +": "a precedence level between 0 and 9",
		"infixl + 6":  "a precedence level between 0 and 9",
		"infixl 6":    "at least one operator to declare",
	}
	for source, want := range cases {
		_, err := ParseProgram("test.ni", source, nil)
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "source: %s", source)
		assert.Equal(t, want, syntaxErr.Expected, "source: %s", source)
	}
}

func TestFixityDeclarationIsTopLevelOnly(t *testing.T) {
	_, err := ParseExpression("test.ni", "let infixl 5 + in x", nil)
	assert.Error(t, err)
}

func TestProgramDeclarationsShareAColumn(t *testing.T) {
	_, err := ParseProgram("test.ni", "f = 1\n g = 2", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "end of input", syntaxErr.Expected)
}

func TestOperatorAtDeclarationColumnIsNotAContinuation(t *testing.T) {
	_, err := ParseProgram("test.ni", "f = 1\n+ 2", nil)
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "a pattern", syntaxErr.Expected)
}

func TestIndentedLineContinuesTheDeclaration(t *testing.T) {
	program := mustParseProgram(t, "f = g\n     x")
	require.Len(t, program.Decls, 1)
	assert.Equal(t, "f = (g x)", program.Decls[0].String())
}

func TestEmptyProgram(t *testing.T) {
	program := mustParseProgram(t, "")
	assert.Empty(t, program.Decls)

	program = mustParseProgram(t, "-- only a comment\n")
	assert.Empty(t, program.Decls)
}

func TestProgramSpanCoversAllDeclarations(t *testing.T) {
	source := "a = 1\nb = 2"
	program := mustParseProgram(t, source)
	assert.Equal(t, 0, program.Pos.Offset)
	assert.Equal(t, len(source), program.EndPos.Offset)
}

func TestInfixDefinitionsDesugarUniformly(t *testing.T) {
	ops := []string{"+", "<>", "`compose`", "//"}
	for _, op := range ops {
		source := fmt.Sprintf("a %s b = body", op)
		def := mustParseDef(t, source)
		vd, ok := def.(*ast.ValueDef)
		require.True(t, ok, "source: %s", source)
		head := vd.Head.(*ast.VarPattern)
		assert.NotEqual(t, "a", head.Name, "the left argument must not become the name")
		assert.Equal(t, 0, vd.Pos.Offset, "the definition starts at the left argument")
		assert.Equal(t, len(source), vd.EndPos.Offset)
	}
}
