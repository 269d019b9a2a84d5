/*
File    : rexxcore/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

IF/THEN/ELSE and SELECT/WHEN/OTHERWISE/END parsing. Both forms use a
single clause or a DO/END block as each branch's body, the same two
shapes REXX itself allows after THEN/ELSE/WHEN.
*/
package parser

import "github.com/akashmaji946/rexxcore/lexer"

func (par *Parser) parseIfClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume IF
	cond := par.parseExpression(LOWEST)
	if !par.expectAdvance(lexer.THEN_KEY) {
		return &IfClause{At: at, Cond: cond}
	}
	par.advance() // consume THEN
	par.skipClauseSeparators()
	thenBody := par.parseClauseOrBlock()

	par.skipClauseSeparators()
	var elseBody []Clause
	if par.CurrToken.Type == lexer.ELSE_KEY {
		par.advance() // consume ELSE
		par.skipClauseSeparators()
		elseBody = par.parseClauseOrBlock()
	}
	return &IfClause{At: at, Cond: cond, ThenBody: thenBody, ElseBody: elseBody}
}

// parseClauseOrBlock parses either a single clause or, when CurrToken is
// DO, a full DO...END block and unwraps its body — THEN/ELSE/WHEN all
// take one statement's worth of body where DO/END groups several.
func (par *Parser) parseClauseOrBlock() []Clause {
	if par.CurrToken.Type == lexer.DO_KEY {
		block := par.parseDoClause().(*DoClause)
		return block.Body
	}
	clause := par.parseClause()
	if clause == nil {
		return nil
	}
	return []Clause{clause}
}

func (par *Parser) parseSelectClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume SELECT
	par.skipClauseSeparators()

	var whens []WhenBranch
	for par.CurrToken.Type == lexer.WHEN_KEY {
		par.advance() // consume WHEN
		cond := par.parseExpression(LOWEST)
		if !par.expectAdvance(lexer.THEN_KEY) {
			break
		}
		par.advance() // consume THEN
		par.skipClauseSeparators()
		body := par.parseClauseOrBlock()
		whens = append(whens, WhenBranch{Cond: cond, Body: body})
		par.skipClauseSeparators()
	}

	var otherwise []Clause
	if par.CurrToken.Type == lexer.OTHERWISE_KEY {
		par.advance() // consume OTHERWISE
		par.skipClauseSeparators()
		for par.CurrToken.Type != lexer.END_KEY && par.CurrToken.Type != lexer.EOF_TYPE {
			clause := par.parseClause()
			if clause != nil {
				otherwise = append(otherwise, clause)
			}
			par.skipClauseSeparators()
		}
	}

	if par.CurrToken.Type == lexer.END_KEY {
		par.advance() // consume END
		if par.CurrToken.Type == lexer.IDENTIFIER_ID {
			par.advance() // consume optional END label
		}
	} else {
		par.addError("PARSER ERROR: SELECT without matching END")
	}

	return &SelectClause{At: at, Whens: whens, Otherwise: otherwise}
}
