/*
File    : rexxcore/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package parser implements a Pratt (top-down operator precedence) parser
for expressions and plain recursive-descent, keyword-led parsing for
clauses — REXX clauses are introduced by a leading keyword (IF, DO, SAY,
...) or fall through to a bare assignment/command, so there is no
ambiguity that needs Pratt-style precedence at the clause level the way
there is for expressions.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/rexxcore/lexer"
	"github.com/akashmaji946/rexxcore/value"
)

type unaryParseFunction func() Expr
type binaryParseFunction func(left Expr) Expr

// Parser holds all state needed to turn source text into a Clause list:
// the lexer, a two-token lookahead, the Pratt function maps, and a
// collected error list (parse errors never panic, so a REPL or file run
// can report every syntax problem found rather than just the first).
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	UnaryFuncs  map[lexer.TokenType]unaryParseFunction
	BinaryFuncs map[lexer.TokenType]binaryParseFunction

	Errors []string
}

// NewParser creates a Parser over src and primes its two-token lookahead.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.init()
	return par
}

func (par *Parser) init() {
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER_LIT)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING_LIT)
	par.registerUnaryFuncs(par.parseIdentifierOrCall, lexer.IDENTIFIER_ID)
	par.registerUnaryFuncs(par.parseParenthesizedExpression, lexer.LEFT_PAREN)
	par.registerUnaryFuncs(par.parsePrefixExpression, lexer.PLUS_OP, lexer.MINUS_OP, lexer.NOT_OP)

	par.registerBinaryFuncs(par.parseBinaryExpression,
		lexer.PLUS_OP, lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP, lexer.IDIV_OP, lexer.MOD_OP, lexer.POW_OP,
		lexer.EQ_OP, lexer.NE_OP, lexer.SEQ_OP, lexer.SNE_OP, lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP,
		lexer.AND_OP, lexer.OR_OP)
	par.registerBinaryFuncs(par.parseConcatExpression, lexer.CONCAT_OP)

	par.advance()
	par.advance()
}

// registerUnaryFuncs associates fn with each given token type as a prefix
// (expression-leading) parse function.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.UnaryFuncs[t] = fn
	}
}

// registerBinaryFuncs associates fn with each given token type as an infix
// parse function.
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...lexer.TokenType) {
	for _, t := range types {
		par.BinaryFuncs[t] = fn
	}
}

// advance shifts the two-token lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks NextToken against expected and, if it matches,
// advances so that the expected token becomes CurrToken; otherwise it
// records an error and leaves position unchanged.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: expected %s, got %s",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type))
		return false
	}
	return true
}

func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any parse errors were collected.
func (par *Parser) HasErrors() bool { return len(par.Errors) > 0 }

// GetErrors returns every parse error collected so far.
func (par *Parser) GetErrors() []string { return par.Errors }

// skipClauseSeparators consumes any run of NEWLINE tokens (blank lines and
// semicolons alike collapse to the same token), leaving CurrToken at the
// first token of the next clause, or at EOF.
func (par *Parser) skipClauseSeparators() {
	for par.CurrToken.Type == lexer.NEWLINE_TYPE {
		par.advance()
	}
}

// Parse consumes the whole token stream and returns the program as an
// ordered Clause list.
func (par *Parser) Parse() []Clause {
	var clauses []Clause
	par.skipClauseSeparators()
	for par.CurrToken.Type != lexer.EOF_TYPE {
		clause := par.parseClause()
		if clause != nil {
			clauses = append(clauses, clause)
		}
		par.skipClauseSeparators()
	}
	return clauses
}

// parseExpression is the Pratt loop: it parses one prefix/primary
// expression, then repeatedly extends it with infix operators (or, absent
// a recognized operator, with REXX's abuttal concatenation) as long as
// their precedence is greater than the caller's floor.
func (par *Parser) parseExpression(precedence int) Expr {
	unaryFn, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: unexpected token %s in expression",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Type))
		return nil
	}
	left := unaryFn()
	if left == nil {
		return nil
	}

	for !isExprTerminator(par.NextToken.Type) {
		if fn, ok := par.BinaryFuncs[par.NextToken.Type]; ok && precedence < getPrecedence(par.NextToken.Type) {
			par.advance()
			left = fn(left)
			continue
		}
		if precedence < CONCAT_PREC && canStartExpr(par.NextToken.Type) {
			par.advance()
			right := par.parseExpression(CONCAT_PREC)
			left = &Concat{At: ExprLine(left), Left: left, Right: right}
			continue
		}
		break
	}
	return left
}

func isExprTerminator(t lexer.TokenType) bool {
	switch t {
	case lexer.NEWLINE_TYPE, lexer.EOF_TYPE, lexer.RIGHT_PAREN, lexer.COMMA_DELIM,
		lexer.THEN_KEY, lexer.TO_KEY, lexer.BY_KEY, lexer.WHILE_KEY, lexer.UNTIL_KEY, lexer.WITH_KEY:
		return true
	default:
		return false
	}
}

func (par *Parser) parseNumberLiteral() Expr {
	tok := par.CurrToken
	n, ok := value.Str(tok.Literal).Number()
	if !ok {
		par.addError(fmt.Sprintf("[%d:%d] PARSER ERROR: malformed number %q", tok.Line, tok.Column, tok.Literal))
		return nil
	}
	return &Literal{At: tok.Line, Val: value.Num(n)}
}

func (par *Parser) parseStringLiteral() Expr {
	tok := par.CurrToken
	return &Literal{At: tok.Line, Val: value.Str(tok.Literal)}
}

// parseIdentifierOrCall parses a symbol reference, or — when immediately
// followed by '(' — a builtin function call.
func (par *Parser) parseIdentifierOrCall() Expr {
	tok := par.CurrToken
	if par.NextToken.Type == lexer.LEFT_PAREN {
		name := tok.Literal
		par.advance() // consume identifier, CurrToken is now '('
		args := par.parseArgList()
		return &FuncCall{At: tok.Line, Name: name, Args: args}
	}
	return &VarRef{At: tok.Line, Sym: value.ParseSymbol(tok.Literal)}
}

// parseArgList parses a parenthesized, comma-separated expression list.
// CurrToken must be LEFT_PAREN on entry; on return CurrToken is the
// matching RIGHT_PAREN.
func (par *Parser) parseArgList() []Expr {
	var args []Expr
	if par.NextToken.Type == lexer.RIGHT_PAREN {
		par.advance()
		return args
	}
	par.advance()
	args = append(args, par.parseExpression(LOWEST))
	for par.NextToken.Type == lexer.COMMA_DELIM {
		par.advance()
		par.advance()
		args = append(args, par.parseExpression(LOWEST))
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return args
	}
	return args
}

func (par *Parser) parseParenthesizedExpression() Expr {
	par.advance() // consume '('
	inner := par.parseExpression(LOWEST)
	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return inner
	}
	return inner
}

func (par *Parser) parsePrefixExpression() Expr {
	tok := par.CurrToken
	par.advance()
	operand := par.parseExpression(PREFIX_PREC)
	return &Unary{At: tok.Line, Op: string(tok.Type), Operand: operand}
}

func (par *Parser) parseBinaryExpression(left Expr) Expr {
	tok := par.CurrToken
	prec := getPrecedence(tok.Type)
	par.advance()
	right := par.parseExpression(prec)
	return &Binary{At: ExprLine(left), Op: string(tok.Type), Left: left, Right: right}
}

func (par *Parser) parseConcatExpression(left Expr) Expr {
	par.advance()
	right := par.parseExpression(CONCAT_PREC)
	return &Concat{At: ExprLine(left), Left: left, Right: right, Explicit: true}
}
