package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type Token struct {
	Type        TokenType
	Lexeme      string
	Position    Position
	EndPosition Position // just past the token's last character
}

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	startLine   int
	startColumn int
	column      int
	errors      []ScanError
}

type ScanError struct {
	Message  string
	Position Position // line, column, offset
	Length   int      // optional: how many characters it covers
}

func (e ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

// ScanErrors bundles every problem the scanner found so drivers can
// report them all before giving up.
type ScanErrors []ScanError

func (e ScanErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// Scan tokenizes source in one shot for callers outside this package.
func Scan(source string) ([]Token, []ScanError) {
	s := NewScanner(source)
	tokens := s.ScanTokens()
	return tokens, s.errors
}

func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	end := Position{Line: s.line, Column: s.column, Offset: s.current}
	s.tokens = append(s.tokens, Token{Type: EOF, Position: end, EndPosition: end})
	return s.tokens
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	// Simple single-character tokens
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case ']':
		s.addToken(RIGHT_BRACKET)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case ';':
		s.addToken(SEMICOLON)
	case '\\':
		s.addToken(BACKSLASH)

	// Openers with a second meaning
	case '[':
		s.scanLeftBracket()
	case '{':
		if s.matchNext('-') {
			s.scanBlockComment()
		} else {
			s.addToken(LEFT_BRACE)
		}
	case '-':
		if s.matchNext('-') {
			s.scanLineComment()
		} else {
			s.scanOperator()
		}

	// Quoted forms
	case '"':
		s.scanString()
	case '\'':
		s.scanChar()
	case '`':
		s.scanInfixIdentifier()

	// Whitespace (ignored)
	case ' ', '\r', '\t':
	case '\n':
		// Handled in advance()

	default:
		s.scanDefault(c)
	}
}

func (s *Scanner) scanDefault(c byte) {
	switch {
	case isDigit(c):
		s.scanNumber()
	case isNameStart(c):
		s.scanName()
	case isSymbolChar(c):
		s.scanOperator()
	default:
		r, size := utf8.DecodeRuneInString(s.source[s.start:])
		for i := 1; i < size; i++ {
			s.advance()
		}
		if r == 'λ' {
			s.addToken(BACKSLASH)
			return
		}
		s.reportError(fmt.Sprintf("unexpected character %q", r))
	}
}

// scanLeftBracket distinguishes a plain '[' from the opener of a raw
// shader block `[glsl| ... |]`.
func (s *Scanner) scanLeftBracket() {
	if !strings.HasPrefix(s.source[s.current:], "glsl|") {
		s.addToken(LEFT_BRACKET)
		return
	}
	for range "glsl|" {
		s.advance()
	}

	payloadStart := s.current
	for !s.isAtEnd() {
		if s.peek() == '|' && s.peekNext() == ']' {
			payload := s.source[payloadStart:s.current]
			s.advance()
			s.advance()
			s.addTokenLexeme(SHADER, payload)
			return
		}
		s.advance()
	}
	s.reportError("unterminated shader block")
}

// scanOperator munches the longest run of symbol characters; a handful
// of exact runs are structural and everything else is a plain OPERATOR.
func (s *Scanner) scanOperator() {
	for isSymbolChar(s.peek()) {
		s.advance()
	}
	switch s.source[s.start:s.current] {
	case "=":
		s.addToken(EQUALS)
	case "->":
		s.addToken(ARROW)
	case "<-":
		s.addToken(LARROW)
	case "|":
		s.addToken(BAR)
	case ":":
		s.addToken(COLON)
	case "..":
		s.addToken(DOTDOT)
	case ".":
		s.addToken(DOT)
	case "-":
		s.addToken(MINUS)
	case "@":
		s.addToken(AT)
	default:
		s.addToken(OPERATOR)
	}
}

// scanName lexes identifiers and keywords. A dotted chain that starts
// with an uppercase segment lexes as one qualified name (`List.map`,
// `Maybe.Just`) and the final segment decides between variable and
// constructor; `r.x` stays three tokens so field access keeps its dot.
func (s *Scanner) scanName() {
	for isNameChar(s.peek()) {
		s.advance()
	}
	text := s.source[s.start:s.current]

	if text == "_" {
		s.addToken(UNDERSCORE)
		return
	}
	if tt, ok := KEYWORDS[text]; ok {
		s.addToken(tt)
		return
	}

	last := text
	for isUpper(last[0]) && s.peek() == '.' && isNameStart(s.peekNext()) {
		s.advance()
		segStart := s.current
		for isNameChar(s.peek()) {
			s.advance()
		}
		last = s.source[segStart:s.current]
	}

	if isUpper(last[0]) {
		s.addToken(CAPIDENT)
	} else {
		s.addToken(IDENT)
	}
}

func (s *Scanner) scanNumber() {
	if s.source[s.start] == '0' && (s.peek() == 'x' || s.peek() == 'X') {
		s.advance()
		if !isHexDigit(s.peek()) {
			s.reportError("invalid hex literal: expected hex digit after 0x")
			return
		}
		for isHexDigit(s.peek()) {
			s.advance()
		}
		s.addToken(HEX_NUMBER)
		return
	}

	for isDigit(s.peek()) {
		s.advance()
	}

	isFloat := false
	// A '.' continues a number only when a digit follows, so the dots
	// in `[1..n]` stay their own token.
	if s.peek() == '.' && isDigit(s.peekNext()) {
		isFloat = true
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	if c := s.peek(); c == 'e' || c == 'E' {
		i := s.current + 1
		if i < len(s.source) && (s.source[i] == '+' || s.source[i] == '-') {
			i++
		}
		if i < len(s.source) && isDigit(s.source[i]) {
			isFloat = true
			for s.current < i {
				s.advance()
			}
			for isDigit(s.peek()) {
				s.advance()
			}
		}
	}

	if isFloat {
		s.addToken(FLOAT)
	} else {
		s.addToken(NUMBER)
	}
}

// scanString lexes a double-quoted string, processing escapes so the
// token's lexeme is the string's value.
func (s *Scanner) scanString() {
	var value strings.Builder
	for !s.isAtEnd() && s.peek() != '"' && s.peek() != '\n' {
		c := s.advance()
		if c != '\\' {
			value.WriteByte(c)
			continue
		}
		if s.isAtEnd() {
			break
		}
		esc, ok := unescape(s.advance())
		if !ok {
			s.reportError(fmt.Sprintf("invalid escape sequence '\\%c' in string", esc))
		}
		value.WriteByte(esc)
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("unterminated string")
		return
	}
	s.advance()
	s.addTokenLexeme(STRING, value.String())
}

func (s *Scanner) scanChar() {
	if s.isAtEnd() {
		s.reportError("unterminated character literal")
		return
	}
	if s.peek() == '\'' {
		s.advance()
		s.reportError("empty character literal")
		return
	}

	var value string
	if s.peek() == '\\' {
		s.advance()
		if s.isAtEnd() {
			s.reportError("unterminated character literal")
			return
		}
		esc, ok := unescape(s.advance())
		if !ok {
			s.reportError(fmt.Sprintf("invalid escape sequence '\\%c' in character literal", esc))
		}
		value = string(rune(esc))
	} else {
		r, size := utf8.DecodeRuneInString(s.source[s.current:])
		for i := 0; i < size; i++ {
			s.advance()
		}
		value = string(r)
	}

	if !s.matchNext('\'') {
		s.reportError("unterminated character literal")
		return
	}
	s.addTokenLexeme(CHAR, value)
}

// scanInfixIdentifier lexes a backtick-quoted name; the token's lexeme
// is the bare name between the backticks.
func (s *Scanner) scanInfixIdentifier() {
	nameStart := s.current
	for !s.isAtEnd() && s.peek() != '`' && s.peek() != '\n' {
		s.advance()
	}
	if s.isAtEnd() || s.peek() == '\n' {
		s.reportError("unterminated infix identifier")
		return
	}
	name := s.source[nameStart:s.current]
	s.advance()
	if name == "" {
		s.reportError("expected a name between the backticks")
		return
	}
	s.addTokenLexeme(INFIXIDENT, name)
}

func (s *Scanner) scanLineComment() {
	for !s.isAtEnd() && s.peek() != '\n' {
		s.advance()
	}
}

// Block comments nest.
func (s *Scanner) scanBlockComment() {
	depth := 1
	for !s.isAtEnd() && depth > 0 {
		switch {
		case s.peek() == '{' && s.peekNext() == '-':
			s.advance()
			s.advance()
			depth++
		case s.peek() == '-' && s.peekNext() == '}':
			s.advance()
			s.advance()
			depth--
		default:
			s.advance()
		}
	}
	if depth > 0 {
		s.reportError("unterminated block comment")
	}
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) matchNext(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

func (s *Scanner) addToken(tokenType TokenType) {
	s.addTokenLexeme(tokenType, s.source[s.start:s.current])
}

func (s *Scanner) addTokenLexeme(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:        tokenType,
		Lexeme:      lexeme,
		Position:    Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		EndPosition: Position{Line: s.line, Column: s.column, Offset: s.current},
	})
}

func (s *Scanner) reportError(message string) {
	s.errors = append(s.errors, ScanError{
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	})
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// Helper functions.

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') ||
		('a' <= c && c <= 'f') ||
		('A' <= c && c <= 'F')
}

func isLower(c byte) bool {
	return 'a' <= c && c <= 'z'
}

func isUpper(c byte) bool {
	return 'A' <= c && c <= 'Z'
}

func isNameStart(c byte) bool {
	return isLower(c) || isUpper(c) || c == '_'
}

func isNameChar(c byte) bool {
	return isNameStart(c) || isDigit(c) || c == '\''
}

func isSymbolChar(c byte) bool {
	return strings.IndexByte("+-/*=.<>:&|^?%#@~!$", c) >= 0
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case '\\', '"', '\'':
		return c, true
	}
	return c, false
}
