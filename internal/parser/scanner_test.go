package parser

import (
	"testing"
)

func scanTypes(t *testing.T, input string, expected []TokenType) []Token {
	t.Helper()
	tokens, errs := Scan(input)
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(tokens) != len(expected)+1 {
		t.Fatalf("expected %d tokens plus EOF, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %v, got %v (%q)", i, exp, tokens[i].Type, tokens[i].Lexeme)
		}
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Errorf("expected trailing EOF, got %v", tokens[len(tokens)-1].Type)
	}
	return tokens
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "let in case of if then else as infix infixl infixr letter x' _hidden _"
	scanTypes(t, input, []TokenType{
		LET, IN, CASE, OF, IF, THEN, ELSE, AS, INFIX, INFIXL, INFIXR,
		IDENT, IDENT, IDENT, UNDERSCORE,
	})
}

func TestQualifiedNames(t *testing.T) {
	tokens := scanTypes(t, "List.map Maybe.Just r.x", []TokenType{
		IDENT, CAPIDENT, IDENT, DOT, IDENT,
	})
	if tokens[0].Lexeme != "List.map" {
		t.Errorf("expected a qualified variable in one token, got %q", tokens[0].Lexeme)
	}
	if tokens[1].Lexeme != "Maybe.Just" {
		t.Errorf("expected a qualified constructor in one token, got %q", tokens[1].Lexeme)
	}
	// r.x stays three tokens so the parser can see the access dot.
	if tokens[2].Lexeme != "r" || tokens[4].Lexeme != "x" {
		t.Errorf("expected r.x split into r, ., x; got %q %q %q", tokens[2].Lexeme, tokens[3].Lexeme, tokens[4].Lexeme)
	}
}

func TestNumbers(t *testing.T) {
	tokens := scanTypes(t, "42 0 0x1F 0XaB 3.14 1e9 6.02e-23 5.", []TokenType{
		NUMBER, NUMBER, HEX_NUMBER, HEX_NUMBER, FLOAT, FLOAT, FLOAT, NUMBER, DOT,
	})
	if tokens[2].Lexeme != "0x1F" {
		t.Errorf("expected hex lexeme 0x1F, got %q", tokens[2].Lexeme)
	}
	if tokens[4].Lexeme != "3.14" {
		t.Errorf("expected float lexeme 3.14, got %q", tokens[4].Lexeme)
	}
}

func TestRangeDotsStayOutOfNumbers(t *testing.T) {
	scanTypes(t, "[1..n]", []TokenType{
		LEFT_BRACKET, NUMBER, DOTDOT, IDENT, RIGHT_BRACKET,
	})
}

func TestOperators(t *testing.T) {
	tokens := scanTypes(t, "= -> <- | : .. . - @ :: ++ <=< -.", []TokenType{
		EQUALS, ARROW, LARROW, BAR, COLON, DOTDOT, DOT, MINUS, AT,
		OPERATOR, OPERATOR, OPERATOR, OPERATOR,
	})
	if tokens[9].Lexeme != "::" || tokens[12].Lexeme != "-." {
		t.Errorf("operator lexemes wrong: %q %q", tokens[9].Lexeme, tokens[12].Lexeme)
	}
}

func TestMaximalMunchKeepsOperatorRunsTogether(t *testing.T) {
	// `+-` is one operator, not a plus followed by a negation.
	tokens := scanTypes(t, "1 +-x", []TokenType{NUMBER, OPERATOR, IDENT})
	if tokens[1].Lexeme != "+-" {
		t.Errorf("expected one +- operator, got %q", tokens[1].Lexeme)
	}
}

func TestStringEscapes(t *testing.T) {
	tokens := scanTypes(t, `"he said \"hi\"\n"`, []TokenType{STRING})
	if tokens[0].Lexeme != "he said \"hi\"\n" {
		t.Errorf("escapes not applied: %q", tokens[0].Lexeme)
	}
}

func TestCharLiterals(t *testing.T) {
	tokens := scanTypes(t, `'a' '\n' 'λ'`, []TokenType{CHAR, CHAR, CHAR})
	if tokens[0].Lexeme != "a" || tokens[1].Lexeme != "\n" || tokens[2].Lexeme != "λ" {
		t.Errorf("char lexemes wrong: %q %q %q", tokens[0].Lexeme, tokens[1].Lexeme, tokens[2].Lexeme)
	}
}

func TestInfixIdentifier(t *testing.T) {
	tokens := scanTypes(t, "a `div` b", []TokenType{IDENT, INFIXIDENT, IDENT})
	if tokens[1].Lexeme != "div" {
		t.Errorf("expected bare name between backticks, got %q", tokens[1].Lexeme)
	}
}

func TestLambdaGlyph(t *testing.T) {
	scanTypes(t, `λx -> x`, []TokenType{BACKSLASH, IDENT, ARROW, IDENT})
}

func TestShaderBlock(t *testing.T) {
	input := "[glsl|\nvoid main() {}\n|]"
	tokens := scanTypes(t, input, []TokenType{SHADER})
	if tokens[0].Lexeme != "\nvoid main() {}\n" {
		t.Errorf("shader payload wrong: %q", tokens[0].Lexeme)
	}
	if tokens[0].Position.Line != 1 || tokens[0].EndPosition.Line != 3 {
		t.Errorf("shader should span lines 1-3, got %d-%d", tokens[0].Position.Line, tokens[0].EndPosition.Line)
	}
}

func TestComments(t *testing.T) {
	input := "a -- trailing\nb {- block {- nested -} still -} c"
	scanTypes(t, input, []TokenType{IDENT, IDENT, IDENT})
}

func TestTokenOffsetsTrackAdjacency(t *testing.T) {
	tokens, errs := Scan("f -x")
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	f, minus, x := tokens[0], tokens[1], tokens[2]
	if f.EndPosition.Offset == minus.Position.Offset {
		t.Errorf("f and - are separated by a space, offsets must not touch")
	}
	if minus.EndPosition.Offset != x.Position.Offset {
		t.Errorf("- and x touch, expected end offset %d to equal start offset %d", minus.EndPosition.Offset, x.Position.Offset)
	}
}

func TestPositionsAreOneBasedAndTrackLines(t *testing.T) {
	tokens, errs := Scan("a\n  bb")
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("expected a at 1:1, got %d:%d", tokens[0].Position.Line, tokens[0].Position.Column)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 3 {
		t.Errorf("expected bb at 2:3, got %d:%d", tokens[1].Position.Line, tokens[1].Position.Column)
	}
	if tokens[1].EndPosition.Column != 5 {
		t.Errorf("expected bb to end before column 5, got %d", tokens[1].EndPosition.Column)
	}
}

func TestScanErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"unterminated string", `"abc`, "unterminated string"},
		{"string with newline", "\"abc\ndef\"", "unterminated string"},
		{"empty char", "''", "empty character literal"},
		{"unterminated char", "'a", "unterminated character literal"},
		{"bad escape", `"\q"`, `invalid escape sequence '\q' in string`},
		{"unterminated shader", "[glsl| void", "unterminated shader block"},
		{"unterminated block comment", "{- oops", "unterminated block comment"},
		{"empty backticks", "a `` b", "expected a name between the backticks"},
		{"stray character", "§", `unexpected character '§'`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := Scan(tc.input)
			if len(errs) == 0 {
				t.Fatalf("expected a scan error for %q", tc.input)
			}
			if errs[0].Message != tc.want {
				t.Errorf("expected %q, got %q", tc.want, errs[0].Message)
			}
		})
	}
}
