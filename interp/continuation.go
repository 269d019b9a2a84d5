/*
File    : rexxcore/interp/continuation.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import "github.com/akashmaji946/rexxcore/lexer"

// NeedsMoreInput reports whether src ends mid-construct and the REPL
// should keep reading lines before handing the accumulated text to
// Interpreter.Execute, rather than trying (and failing) to parse a half-finished
// DO/SELECT block or a dangling THEN/ELSE. It tokenizes the whole buffer
// with Lexer.ConsumeTokens, the same full-tokenize-without-parse pass the
// teacher keeps around for exactly this kind of lookahead, and checks two
// things: whether every DO/SELECT opener has a matching END, and whether
// the last meaningful token is a keyword that is always followed by more
// clauses on a later line.
func NeedsMoreInput(src string) bool {
	lex := lexer.NewLexer(src)
	tokens := lex.ConsumeTokens()
	if len(tokens) == 0 {
		return false
	}

	depth := 0
	for _, t := range tokens {
		switch t.Type {
		case lexer.DO_KEY, lexer.SELECT_KEY:
			depth++
		case lexer.END_KEY:
			if depth > 0 {
				depth--
			}
		}
	}
	if depth > 0 {
		return true
	}

	meaningful := tokens
	for len(meaningful) > 0 && meaningful[len(meaningful)-1].Type == lexer.NEWLINE_TYPE {
		meaningful = meaningful[:len(meaningful)-1]
	}
	if len(meaningful) == 0 {
		return false
	}

	switch meaningful[len(meaningful)-1].Type {
	case lexer.THEN_KEY, lexer.ELSE_KEY, lexer.OTHERWISE_KEY:
		return true
	default:
		return false
	}
}
