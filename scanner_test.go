package lox

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	tokens, errs := NewScanner("(){},.-+;*/ ! != = == > >= < <=").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []TokenKind{
		TokenLeftParen, TokenRightParen, TokenLeftBrace, TokenRightBrace,
		TokenComma, TokenDot, TokenMinus, TokenPlus, TokenSemicolon, TokenStar, TokenSlash,
		TokenBang, TokenBangEqual, TokenEqual, TokenEqualEqual,
		TokenGreater, TokenGreaterEqual, TokenLess, TokenLessEqual,
		TokenEOF,
	}, kindsOf(tokens))
}

func TestScanTokensLineComment(t *testing.T) {
	tokens, errs := NewScanner("1 // a comment\n2").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []TokenKind{TokenNumber, TokenNumber, TokenEOF}, kindsOf(tokens))
	require.Equal(t, 1, tokens[0].Line)
	require.Equal(t, 2, tokens[1].Line)
}

func TestScanTokensString(t *testing.T) {
	tokens, errs := NewScanner(`"hello world"`).ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, TokenString, tokens[0].Kind)
	require.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanTokensMultilineString(t *testing.T) {
	tokens, errs := NewScanner("\"a\nb\"\n1").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, "a\nb", tokens[0].Literal)
	// The NUMBER after the multi-line string should be on line 3.
	require.Equal(t, TokenNumber, tokens[1].Kind)
	require.Equal(t, 3, tokens[1].Line)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	_, errs := NewScanner(`"unterminated`).ScanTokens()
	require.Len(t, errs, 1)
	require.Equal(t, "Unterminated string.", errs[0].message)
}

func TestScanTokensNumber(t *testing.T) {
	tokens, errs := NewScanner("123.456").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, TokenNumber, tokens[0].Kind)
	require.Equal(t, 123.456, tokens[0].Literal)
}

// 123.foo must tokenize as NUMBER(123) DOT IDENTIFIER: a trailing "."  not
// followed by a digit is not consumed by the number scan (§4.1, §8).
func TestScanTokensNumberDotIdentifier(t *testing.T) {
	tokens, errs := NewScanner("123.foo").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []TokenKind{TokenNumber, TokenDot, TokenIdentifier, TokenEOF}, kindsOf(tokens))
	require.Equal(t, 123.0, tokens[0].Literal)
}

func TestScanTokensIdentifiersAndKeywords(t *testing.T) {
	tokens, errs := NewScanner("var x = foo and bar").ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []TokenKind{
		TokenVar, TokenIdentifier, TokenEqual, TokenIdentifier, TokenAnd, TokenIdentifier, TokenEOF,
	}, kindsOf(tokens))
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	_, errs := NewScanner("@").ScanTokens()
	require.Len(t, errs, 1)
	require.Equal(t, "Unexpected character.", errs[0].message)
}

func TestScanTokensAlwaysEndsWithEOF(t *testing.T) {
	for _, src := range []string{"", "  ", "1 + 1;", "@@@"} {
		tokens, _ := NewScanner(src).ScanTokens()
		require.NotEmpty(t, tokens)
		require.Equal(t, TokenEOF, tokens[len(tokens)-1].Kind)
	}
}
