/*
File    : rexxcore/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/rexxcore/lexer"

// Precedence levels for the expression Pratt parser, lowest to highest.
// Concatenation sits between comparison and additive, REXX's own ordering:
// addition binds tighter, so A || B + C reads as A || (B + C) and
// "1" || 2 + 3 yields "15".
const (
	LOWEST = iota
	OR_PREC
	AND_PREC
	COMPARE_PREC
	CONCAT_PREC
	ADD_PREC
	MUL_PREC
	POW_PREC
	PREFIX_PREC
)

var precedences = map[lexer.TokenType]int{
	lexer.OR_OP:     OR_PREC,
	lexer.AND_OP:    AND_PREC,
	lexer.EQ_OP:     COMPARE_PREC,
	lexer.NE_OP:     COMPARE_PREC,
	lexer.SEQ_OP:    COMPARE_PREC,
	lexer.SNE_OP:    COMPARE_PREC,
	lexer.GT_OP:     COMPARE_PREC,
	lexer.LT_OP:     COMPARE_PREC,
	lexer.GE_OP:     COMPARE_PREC,
	lexer.LE_OP:     COMPARE_PREC,
	lexer.CONCAT_OP: CONCAT_PREC,
	lexer.PLUS_OP:   ADD_PREC,
	lexer.MINUS_OP:  ADD_PREC,
	lexer.MUL_OP:    MUL_PREC,
	lexer.DIV_OP:    MUL_PREC,
	lexer.IDIV_OP:   MUL_PREC,
	lexer.MOD_OP:    MUL_PREC,
	lexer.POW_OP:    POW_PREC,
}

func getPrecedence(t lexer.TokenType) int {
	if p, ok := precedences[t]; ok {
		return p
	}
	return LOWEST
}

// canStartExpr reports whether a token of type t can lead a primary
// expression, used to detect REXX's abuttal (operator-less) concatenation:
// two expressions written adjacent to each other concatenate, exactly as
// if "||" appeared between them.
func canStartExpr(t lexer.TokenType) bool {
	switch t {
	case lexer.NUMBER_LIT, lexer.STRING_LIT, lexer.IDENTIFIER_ID, lexer.LEFT_PAREN,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.NOT_OP:
		return true
	default:
		return false
	}
}
