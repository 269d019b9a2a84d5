/*
File    : rexxcore/parser/parser_clauses.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

parseClause is the top-level clause dispatcher: REXX clauses are either
led by a reserved keyword (the lexer tags keywords wherever they occur,
so a keyword-spelled word is never read as a variable; a non-keyword such
as COUNT is an ordinary symbol) or fall through to an assignment (IDENT = expr), a label (IDENT:), or the
catch-all host-command form.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/rexxcore/lexer"
	"github.com/akashmaji946/rexxcore/value"
)

func (par *Parser) parseClause() Clause {
	switch par.CurrToken.Type {
	case lexer.SAY_KEY:
		return par.parseSayClause()
	case lexer.PULL_KEY:
		return par.parsePullClause()
	case lexer.PARSE_KEY:
		return par.parseParseValueClause()
	case lexer.IF_KEY:
		return par.parseIfClause()
	case lexer.DO_KEY:
		return par.parseDoClause()
	case lexer.SELECT_KEY:
		return par.parseSelectClause()
	case lexer.LEAVE_KEY:
		return par.parseLeaveClause()
	case lexer.ITERATE_KEY:
		return par.parseIterateClause()
	case lexer.SIGNAL_KEY:
		return par.parseSignalClause()
	case lexer.CALL_KEY:
		return par.parseCallClause()
	case lexer.RETURN_KEY:
		return par.parseReturnClause()
	case lexer.EXIT_KEY:
		return par.parseExitClause()
	case lexer.ADDRESS_KEY:
		return par.parseAddressClause()
	case lexer.NOP_KEY:
		at := par.CurrToken.Line
		par.advance()
		return &NopClause{At: at}
	case lexer.DROP_KEY:
		return par.parseDropClause()
	case lexer.IDENTIFIER_ID:
		if par.NextToken.Type == lexer.COLON_DELIM {
			at := par.CurrToken.Line
			name := par.CurrToken.Literal
			par.advance() // consume identifier
			par.advance() // consume ':'
			return &LabelClause{At: at, Name: name}
		}
		if par.NextToken.Type == lexer.EQ_OP {
			return par.parseAssignClause()
		}
		return par.parseCommandClause()
	default:
		return par.parseCommandClause()
	}
}

func (par *Parser) parseSayClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume SAY
	if par.CurrToken.Type == lexer.NEWLINE_TYPE || par.CurrToken.Type == lexer.EOF_TYPE {
		return &SayClause{At: at, Expr: &Literal{At: at, Val: value.Str("")}}
	}
	expr := par.parseExpression(LOWEST)
	par.advance()
	return &SayClause{At: at, Expr: expr}
}

func (par *Parser) parsePullClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume PULL
	var vars []value.Symbol
	for par.CurrToken.Type == lexer.IDENTIFIER_ID {
		vars = append(vars, value.ParseSymbol(par.CurrToken.Literal))
		if par.NextToken.Type != lexer.IDENTIFIER_ID {
			par.advance()
			break
		}
		par.advance()
	}
	return &PullClause{At: at, Vars: vars}
}

// parseParseValueClause handles "PARSE VALUE expr WITH var".
func (par *Parser) parseParseValueClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume PARSE
	if par.CurrToken.Type != lexer.VALUE_KEY {
		par.addError(fmt.Sprintf("[%d] PARSER ERROR: only PARSE VALUE is supported, got PARSE %s",
			at, par.CurrToken.Literal))
		return &ParseValueClause{At: at}
	}
	par.advance() // consume VALUE
	expr := par.parseExpression(LOWEST)
	if !par.expectAdvance(lexer.WITH_KEY) {
		return &ParseValueClause{At: at, Expr: expr}
	}
	par.advance() // consume WITH, CurrToken now the variable
	sym := value.ParseSymbol(par.CurrToken.Literal)
	par.advance() // move CurrToken onto the clause terminator
	return &ParseValueClause{At: at, Expr: expr, Var: sym}
}

func (par *Parser) parseAssignClause() Clause {
	at := par.CurrToken.Line
	target := value.ParseSymbol(par.CurrToken.Literal)
	par.advance() // consume identifier
	par.advance() // consume '='
	expr := par.parseExpression(LOWEST)
	par.advance() // move CurrToken onto the clause terminator
	return &AssignClause{At: at, Target: target, Expr: expr}
}

func (par *Parser) parseLeaveClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume LEAVE
	label := ""
	if par.CurrToken.Type == lexer.IDENTIFIER_ID {
		label = par.CurrToken.Literal
		par.advance()
	}
	return &LeaveClause{At: at, Label: label}
}

func (par *Parser) parseIterateClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume ITERATE
	label := ""
	if par.CurrToken.Type == lexer.IDENTIFIER_ID {
		label = par.CurrToken.Literal
		par.advance()
	}
	return &IterateClause{At: at, Label: label}
}

func (par *Parser) parseSignalClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume SIGNAL
	if par.CurrToken.Type == lexer.ON_KEY || par.CurrToken.Type == lexer.OFF_KEY {
		enable := par.CurrToken.Type == lexer.ON_KEY
		par.advance() // consume ON/OFF
		condition := par.CurrToken.Literal
		par.advance() // consume condition name
		label := ""
		if par.CurrToken.Literal == "NAME" {
			par.advance()
			label = par.CurrToken.Literal
			par.advance()
		}
		return &SignalOnClause{At: at, Condition: condition, Label: label, Enable: enable}
	}
	label := par.CurrToken.Literal
	par.advance()
	return &SignalClause{At: at, Label: label}
}

func (par *Parser) parseCallClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume CALL
	name := par.CurrToken.Literal
	if par.NextToken.Type != lexer.LEFT_PAREN {
		par.advance()
		return &CallClause{At: at, Name: name, Label: true}
	}
	par.advance()                  // consume name, CurrToken is '('
	args := par.parseArgList()     // leaves CurrToken at ')'
	par.advance()                  // consume ')'
	return &CallClause{At: at, Name: name, Args: args}
}

func (par *Parser) parseReturnClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume RETURN
	if par.CurrToken.Type == lexer.NEWLINE_TYPE || par.CurrToken.Type == lexer.EOF_TYPE {
		return &ReturnClause{At: at}
	}
	expr := par.parseExpression(LOWEST)
	par.advance()
	return &ReturnClause{At: at, Expr: expr}
}

func (par *Parser) parseExitClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume EXIT
	if par.CurrToken.Type == lexer.NEWLINE_TYPE || par.CurrToken.Type == lexer.EOF_TYPE {
		return &ExitClause{At: at}
	}
	expr := par.parseExpression(LOWEST)
	par.advance()
	return &ExitClause{At: at, Expr: expr}
}

func (par *Parser) parseAddressClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume ADDRESS
	target := par.CurrToken.Literal
	par.advance()
	return &AddressClause{At: at, Target: target}
}

func (par *Parser) parseDropClause() Clause {
	at := par.CurrToken.Line
	par.advance() // consume DROP
	var syms []value.Symbol
	for par.CurrToken.Type == lexer.IDENTIFIER_ID {
		syms = append(syms, value.ParseSymbol(par.CurrToken.Literal))
		if par.NextToken.Type != lexer.IDENTIFIER_ID {
			par.advance()
			break
		}
		par.advance()
	}
	return &DropClause{At: at, Symbols: syms}
}

// parseCommandClause parses any clause that isn't a recognized keyword
// form as a bare expression, dispatched at execution time to the current
// ADDRESS target.
func (par *Parser) parseCommandClause() Clause {
	at := par.CurrToken.Line
	expr := par.parseExpression(LOWEST)
	par.advance()
	return &CommandClause{At: at, Expr: expr}
}
