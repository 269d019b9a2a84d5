/*
File: rexxcore/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
)

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdentContinuation reports whether c can continue a symbol once it has
// started. REXX symbols may contain letters, digits, and the punctuation
// characters !?@#$_, plus an embedded '.' for compound-symbol tails
// (A.B.C) — the '.' is only consumed when it is immediately followed by a
// letter, a digit, '_' or another '.', so a trailing '.' used as a clause
// separator is left alone.
func isIdentContinuation(lex *Lexer) bool {
	c := lex.Current
	if isAlpha(c) || isDigitASCII(c) || c == '_' || c == '!' || c == '?' || c == '@' || c == '#' || c == '$' {
		return true
	}
	if c == '.' {
		next := lex.Peek()
		return isAlpha(next) || isDigitASCII(next) || next == '_' || next == '.'
	}
	return false
}

// readIdentifier scans a symbol (plain or compound) starting at the
// lexer's current position and classifies it via lookupIdent.
func readIdentifier(lex *Lexer) Token {
	position := lex.Position
	lex.Advance()
	for isIdentContinuation(lex) {
		lex.Advance()
	}
	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, lex.Line, lex.Column)
}

// readNumber scans a REXX numeric literal: digits, an optional decimal
// point, and an optional exponent (e.g. 42, 3.14, 1E9, 1.5E-3).
func readNumber(lex *Lexer) Token {
	start := lex.Position
	src := lex.Src
	n := lex.SrcLength

	i := start
	for i < n && isDigitASCII(src[i]) {
		i++
	}
	if i < n && src[i] == '.' {
		i++
		for i < n && isDigitASCII(src[i]) {
			i++
		}
	}
	if i < n && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < n && (src[j] == '+' || src[j] == '-') {
			j++
		}
		if j < n && isDigitASCII(src[j]) {
			i = j
			for i < n && isDigitASCII(src[i]) {
				i++
			}
		}
	}

	lex.Column += i - start
	lex.Position = i
	if i >= n {
		lex.Current = 0
		lex.Position = n
	} else {
		lex.Current = src[i]
	}
	return NewTokenWithMetadata(NUMBER_LIT, src[start:i], lex.Line, lex.Column)
}

// readStringLiteral scans a REXX string literal delimited by quote, which
// is either '"' or '\''. REXX escapes an embedded delimiter by doubling it
// (e.g. 'don''t') rather than with a backslash, since REXX strings have no
// backslash-escape convention.
func readStringLiteral(lex *Lexer, quote byte) Token {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for {
		if lex.Current == 0 || lex.Current == '\n' {
			return NewTokenWithMetadata(INVALID_TYPE, builder.String(), startLine, startCol)
		}
		if lex.Current == quote {
			if lex.Peek() == quote {
				builder.WriteByte(quote)
				lex.Advance()
				lex.Advance()
				continue
			}
			lex.Advance() // consume closing quote
			break
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}
	return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startCol)
}
