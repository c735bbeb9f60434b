package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(t *testing.T, source string) string {
	t.Helper()
	tokens, errs := Scan(source)
	require.Empty(t, errs, "scan should succeed")
	p := NewParser("test.ni", tokens, nil)
	ty, err := p.parseType()
	require.NoError(t, err, "source: %s", source)
	return ty.String()
}

func TestTypeForms(t *testing.T) {
	cases := map[string]string{
		"Int":            "Int",
		"a":              "a",
		"Maybe a":        "(Maybe a)",
		"Dict.Dict k v":  "(Dict.Dict k v)",
		"List (Maybe a)": "(List (Maybe a))",
		"()":             "()",
		"(Int)":          "Int",
		"(Int, String)":  "(Int, String)",
		"{}":             "{}",
		"{x : Int}":      "{x : Int}",
		"{x : a, y : a}": "{x : a, y : a}",
		"{r | x : Int}":  "{r | x : Int}",
		"a -> b":         "(a -> b)",
		"a -> b -> c":    "(a -> (b -> c))",
		"(a -> b) -> c":  "((a -> b) -> c)",
		"Maybe (a -> b)": "(Maybe (a -> b))",
		"List a -> a":    "((List a) -> a)",
		"(a, b) -> a":    "((a, b) -> a)",
	}
	for source, want := range cases {
		assert.Equal(t, want, typeString(t, source), "source: %s", source)
	}
}

func TestArrowIsRightAssociative(t *testing.T) {
	got := typeString(t, "(a -> b) -> List a -> List b")
	assert.Equal(t, "((a -> b) -> ((List a) -> (List b)))", got)
}

func TestTypeErrors(t *testing.T) {
	cases := map[string]string{
		"->":              "a type",
		"{x}":             "':' after the field name",
		"{x : Int":        "'}' to close the record type",
		"(Int, String":    "')' to close the tuple type",
		"{r | x : Int, }": "a field name",
		"{1 : Int}":       "a field name or the record type variable",
	}
	for source, want := range cases {
		tokens, errs := Scan(source)
		require.Empty(t, errs)
		p := NewParser("test.ni", tokens, nil)
		_, err := p.parseType()
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "source: %s", source)
		assert.Equal(t, want, syntaxErr.Expected, "source: %s", source)
	}
}

func TestTypeSpans(t *testing.T) {
	source := "Maybe a -> List a"
	tokens, errs := Scan(source)
	require.Empty(t, errs)
	p := NewParser("test.ni", tokens, nil)
	ty, err := p.parseType()
	require.NoError(t, err)
	assert.Equal(t, 0, ty.NodePos().Offset)
	assert.Equal(t, len(source), ty.NodeEndPos().Offset)
}

func TestAnnotationUsesFullTypeGrammar(t *testing.T) {
	def := mustParseDef(t, "map : (a -> b) -> List a -> List b")
	assert.Equal(t, "map : ((a -> b) -> ((List a) -> (List b)))", def.String())
}
