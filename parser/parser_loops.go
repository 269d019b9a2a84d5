/*
File    : rexxcore/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

DO/END parsing for every repetition form: plain DO/END, DO n (repeat
count), DO var=from TO to [BY by], DO WHILE cond, DO UNTIL cond, and
DO FOREVER. The counted and WHILE/UNTIL forms may combine (DO i=1 TO 10
WHILE cond), matching REXX's own grammar.
*/
package parser

import (
	"github.com/akashmaji946/rexxcore/lexer"
	"github.com/akashmaji946/rexxcore/value"
)

func (par *Parser) parseDoClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume DO

	// No skipClauseSeparators here: a loop-spec keyword (WHILE, FOREVER, a
	// control variable, a repeat count, ...) always shares DO's own source
	// line. If a newline follows DO directly, parseLoopSpec's own check
	// below sees it and correctly reports no spec at all, rather than
	// treating the next line's body as if it were loop-spec content.
	spec := par.parseLoopSpec()

	par.skipClauseSeparators()
	var body []Clause
	for par.CurrToken.Type != lexer.END_KEY && par.CurrToken.Type != lexer.EOF_TYPE {
		clause := par.parseClause()
		if clause != nil {
			body = append(body, clause)
		}
		par.skipClauseSeparators()
	}

	if par.CurrToken.Type == lexer.END_KEY {
		par.advance() // consume END
		if par.CurrToken.Type == lexer.IDENTIFIER_ID {
			par.advance() // consume optional END label
		}
	} else {
		par.addError("PARSER ERROR: DO without matching END")
	}

	return &DoClause{At: at, Spec: spec, Body: body}
}

// parseLoopSpec reads the repetition control that may follow DO, leaving
// CurrToken at the clause terminator that precedes the loop body (or, for
// a plain DO, at whatever followed DO itself). Returns nil for a bare
// DO/END with no control clause at all — REXX's infinite DO, which exec
// rejects with a LOOP error rather than running (spec's safety carve-out;
// IF/SELECT bodies never see this, since parseClauseOrBlock unwraps a
// DO/END block used there into a plain body instead of a DoClause).
func (par *Parser) parseLoopSpec() *LoopSpec {
	switch par.CurrToken.Type {
	case lexer.NEWLINE_TYPE, lexer.END_KEY, lexer.EOF_TYPE:
		return nil

	case lexer.FOREVER_KEY:
		par.advance() // consume FOREVER
		return &LoopSpec{Forever: true}

	case lexer.WHILE_KEY:
		par.advance() // consume WHILE
		cond := par.parseExpression(LOWEST)
		par.advance()
		return &LoopSpec{While: cond}

	case lexer.UNTIL_KEY:
		par.advance() // consume UNTIL
		cond := par.parseExpression(LOWEST)
		par.advance()
		return &LoopSpec{Until: cond}

	case lexer.IDENTIFIER_ID:
		if par.NextToken.Type == lexer.EQ_OP {
			return par.parseCountedLoopSpec()
		}
		// DO n: bare repeat-count expression, n may itself be an expression
		// built from identifiers (e.g. DO COUNT).
		repeat := par.parseExpression(LOWEST)
		par.advance()
		return par.parseTrailingLoopModifiers(&LoopSpec{Repeat: repeat})

	default:
		repeat := par.parseExpression(LOWEST)
		par.advance()
		return par.parseTrailingLoopModifiers(&LoopSpec{Repeat: repeat})
	}
}

func (par *Parser) parseCountedLoopSpec() *LoopSpec {
	sym := value.ParseSymbol(par.CurrToken.Literal)
	par.advance() // consume control variable
	par.advance() // consume '='
	from := par.parseExpression(LOWEST)

	spec := &LoopSpec{ControlVar: &sym, From: from}

	if par.NextToken.Type == lexer.TO_KEY {
		par.advance() // move onto TO
		par.advance() // consume TO
		spec.To = par.parseExpression(LOWEST)
	}
	if par.NextToken.Type == lexer.BY_KEY {
		par.advance() // move onto BY
		par.advance() // consume BY
		spec.By = par.parseExpression(LOWEST)
	}
	par.advance() // move CurrToken onto whatever follows the control clause
	return par.parseTrailingLoopModifiers(spec)
}

// parseTrailingLoopModifiers handles a WHILE or UNTIL condition appended
// after a counted or repeat-count DO header.
func (par *Parser) parseTrailingLoopModifiers(spec *LoopSpec) *LoopSpec {
	switch par.CurrToken.Type {
	case lexer.WHILE_KEY:
		par.advance() // consume WHILE
		spec.While = par.parseExpression(LOWEST)
		par.advance()
	case lexer.UNTIL_KEY:
		par.advance() // consume UNTIL
		spec.Until = par.parseExpression(LOWEST)
		par.advance()
	}
	return spec
}
