/*
File    : rexxcore/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// NewToken builds a Token with no position metadata, for comparison against
// scanned tokens where only Type and Literal matter to the test.
func NewToken(tokenType TokenType, literal string) Token {
	return Token{Type: tokenType, Literal: literal}
}

func stripPos(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, tok := range tokens {
		out[i] = NewToken(tok.Type, tok.Literal)
	}
	return out
}

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens_Arithmetic(t *testing.T) {
	tests := []tokenCase{
		{
			Input: "X = 1 + 2",
			Expected: []Token{
				NewToken(IDENTIFIER_ID, "X"),
				NewToken(EQ_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
			},
		},
		{
			Input: "SAY A.B.1 || 'x'",
			Expected: []Token{
				NewToken(SAY_KEY, "SAY"),
				NewToken(IDENTIFIER_ID, "A.B.1"),
				NewToken(CONCAT_OP, "||"),
				NewToken(STRING_LIT, "x"),
			},
		},
		{
			Input: "IF X \\= 3 THEN SAY 'ok'",
			Expected: []Token{
				NewToken(IF_KEY, "IF"),
				NewToken(IDENTIFIER_ID, "X"),
				NewToken(NE_OP, "\\="),
				NewToken(NUMBER_LIT, "3"),
				NewToken(THEN_KEY, "THEN"),
				NewToken(SAY_KEY, "SAY"),
				NewToken(STRING_LIT, "ok"),
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		got := stripPos(lex.ConsumeTokens())
		assert.Equal(t, tc.Expected, got, "input: %q", tc.Input)
	}
}

func TestLexer_NewlineIsSignificant(t *testing.T) {
	lex := NewLexer("SAY 1\nSAY 2")
	got := stripPos(lex.ConsumeTokens())
	expected := []Token{
		NewToken(SAY_KEY, "SAY"),
		NewToken(NUMBER_LIT, "1"),
		NewToken(NEWLINE_TYPE, "\n"),
		NewToken(SAY_KEY, "SAY"),
		NewToken(NUMBER_LIT, "2"),
	}
	assert.Equal(t, expected, got)
}

func TestLexer_DoubledQuoteEscape(t *testing.T) {
	lex := NewLexer(`SAY 'don''t'`)
	got := stripPos(lex.ConsumeTokens())
	expected := []Token{
		NewToken(SAY_KEY, "SAY"),
		NewToken(STRING_LIT, "don't"),
	}
	assert.Equal(t, expected, got)
}

func TestLexer_BlockCommentOnly(t *testing.T) {
	lex := NewLexer("/* comment\nspanning lines */ SAY 1")
	got := stripPos(lex.ConsumeTokens())
	expected := []Token{
		NewToken(SAY_KEY, "SAY"),
		NewToken(NUMBER_LIT, "1"),
	}
	assert.Equal(t, expected, got)
}

func TestLexer_ArrowBothForms(t *testing.T) {
	for _, src := range []string{"X -> UPPER", "X → UPPER"} {
		lex := NewLexer(src)
		got := stripPos(lex.ConsumeTokens())
		assert.Equal(t, ARROW_OP, got[1].Type, "input: %q", src)
	}
}

func TestLexer_NumberFormats(t *testing.T) {
	tests := []tokenCase{
		{Input: "42", Expected: []Token{NewToken(NUMBER_LIT, "42")}},
		{Input: "3.14", Expected: []Token{NewToken(NUMBER_LIT, "3.14")}},
		{Input: "1E9", Expected: []Token{NewToken(NUMBER_LIT, "1E9")}},
		{Input: "1.5E-3", Expected: []Token{NewToken(NUMBER_LIT, "1.5E-3")}},
	}
	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		got := stripPos(lex.ConsumeTokens())
		assert.Equal(t, tc.Expected, got, "input: %q", tc.Input)
	}
}

func TestLexer_UnterminatedStringIsInvalid(t *testing.T) {
	lex := NewLexer(`SAY 'oops`)
	tokens := lex.ConsumeTokens()
	assert.Equal(t, INVALID_TYPE, tokens[len(tokens)-1].Type)
}
