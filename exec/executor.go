/*
File    : rexxcore/exec/executor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package exec runs a parsed clause list. It is the one package that knows
about control flow: every clause either executes immediately or produces
a Termination that unwinds some number of enclosing constructs (a DO
loop, an IF/SELECT body, or the whole routine). Termination is this
package's equivalent of the teacher's Break/Continue sentinel objects
(eval/eval_loops.go), generalized from two kinds to REXX's five.
*/
package exec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/rexxcore/address"
	"github.com/akashmaji946/rexxcore/eval"
	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/rexxerr"
	"github.com/akashmaji946/rexxcore/value"
)

// TermKind classifies why a clause sequence stopped early.
type TermKind int

const (
	TermReturn TermKind = iota
	TermExit
	TermSignal
	TermLeave
	TermIterate
)

// Termination carries an early-exit signal up through nested Run calls
// until something is positioned to consume it: a DO loop consumes Leave
// and Iterate, the top-level routine loop consumes Signal by jumping to
// the label, and Return/Exit propagate all the way out.
type Termination struct {
	Kind  TermKind
	Label string
	Value value.Value
}

// Executor runs a parsed program against an Evaluator (variables and
// functions), an address.Registry (host command dispatch), and I/O
// streams for SAY/PULL.
type Executor struct {
	Eval    *eval.Evaluator
	Address *address.Registry
	Out     io.Writer
	In      *bufio.Reader

	Program []parser.Clause
	Labels  map[string]int
	Traps   map[rexxerr.Category]string
}

// New builds an Executor. Call Load before RunProgram.
func New(ev *eval.Evaluator, addr *address.Registry, out io.Writer, in io.Reader) *Executor {
	return &Executor{
		Eval:    ev,
		Address: addr,
		Out:     out,
		In:      bufio.NewReader(in),
		Traps:   make(map[rexxerr.Category]string),
	}
}

// Load installs a program and indexes its top-level labels, ready for
// RunProgram, SIGNAL, and CALL to resolve jumps against.
func (ex *Executor) Load(program []parser.Clause) {
	ex.Program = program
	ex.Labels = make(map[string]int, len(program))
	for i, c := range program {
		if label, ok := c.(*parser.LabelClause); ok {
			ex.Labels[strings.ToUpper(label.Name)] = i
		}
	}
}

// RunProgram executes the loaded program from its first clause to
// completion (RETURN, EXIT, or falling off the end).
func (ex *Executor) RunProgram() error {
	_, err := ex.runFrom(0)
	return err
}

// runFrom executes Program starting at index i, following internal
// SIGNAL jumps itself (a SIGNAL never needs to propagate further once a
// label is found, since labels are routine-wide), and returns whatever
// Termination first reaches it that isn't a Signal it could resolve.
func (ex *Executor) runFrom(i int) (*Termination, error) {
	for i < len(ex.Program) {
		term, err := ex.execClauseTrapped(ex.Program[i])
		if err != nil {
			return nil, err
		}
		if term != nil {
			if term.Kind == TermSignal {
				idx, ok := ex.Labels[strings.ToUpper(term.Label)]
				if !ok {
					return nil, rexxerr.New(rexxerr.Signal, 0, "", "SIGNAL to undefined label %q", term.Label)
				}
				i = idx
				continue
			}
			return term, nil
		}
		i++
	}
	return nil, nil
}

// execClauseTrapped wraps execClause with SIGNAL ON condition trapping:
// a RexxError whose category has an armed trap becomes a jump to that
// trap's label instead of propagating as a Go error.
func (ex *Executor) execClauseTrapped(c parser.Clause) (*Termination, error) {
	term, err := ex.execClause(c)
	if err == nil {
		return term, nil
	}
	rerr, ok := err.(*rexxerr.RexxError)
	if !ok {
		return nil, err
	}
	label, armed := ex.Traps[rerr.Category]
	if !armed {
		return nil, err
	}
	return &Termination{Kind: TermSignal, Label: label}, nil
}

// Run executes a clause list (a DO/IF/SELECT body, or a WHEN arm) and
// returns the first Termination any clause in it produces, or nil if the
// whole list ran to completion.
func (ex *Executor) Run(body []parser.Clause) (*Termination, error) {
	for _, c := range body {
		term, err := ex.execClauseTrapped(c)
		if err != nil {
			return nil, err
		}
		if term != nil {
			return term, nil
		}
	}
	return nil, nil
}

func (ex *Executor) execClause(c parser.Clause) (*Termination, error) {
	switch n := c.(type) {
	case *parser.SayClause:
		return nil, ex.execSay(n)
	case *parser.PullClause:
		return nil, ex.execPull(n)
	case *parser.ParseValueClause:
		return nil, ex.execParseValue(n)
	case *parser.AssignClause:
		return nil, ex.execAssign(n)
	case *parser.IfClause:
		return ex.execIf(n)
	case *parser.DoClause:
		return ex.execDo(n)
	case *parser.SelectClause:
		return ex.execSelect(n)
	case *parser.LeaveClause:
		return &Termination{Kind: TermLeave, Label: n.Label}, nil
	case *parser.IterateClause:
		return &Termination{Kind: TermIterate, Label: n.Label}, nil
	case *parser.SignalClause:
		return &Termination{Kind: TermSignal, Label: n.Label}, nil
	case *parser.SignalOnClause:
		ex.execSignalOn(n)
		return nil, nil
	case *parser.CallClause:
		return ex.execCall(n)
	case *parser.ReturnClause:
		return ex.execReturn(n)
	case *parser.ExitClause:
		return ex.execExit(n)
	case *parser.AddressClause:
		ex.Address.SetCurrent(n.Target)
		return nil, nil
	case *parser.NopClause:
		return nil, nil
	case *parser.DropClause:
		for _, sym := range n.Symbols {
			ex.Eval.Store.Drop(sym)
		}
		return nil, nil
	case *parser.LabelClause:
		return nil, nil
	case *parser.CommandClause:
		return nil, ex.execCommand(n)
	default:
		return nil, rexxerr.New(rexxerr.Syntax, parser.Line(c), "", "cannot execute clause of type %T", c)
	}
}

func (ex *Executor) execSay(n *parser.SayClause) error {
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ex.Out, v.String())
	return err
}

// execPull reads one line of input and distributes its blank-delimited
// words across the target variables, upper-cased (REXX's PULL always
// folds to upper case, unlike PARSE VALUE). The last variable receives
// all the remaining words once every other variable has taken its word,
// REXX's own "leftover" rule; those words are rejoined with single blanks,
// so runs of whitespace in the input are not kept.
func (ex *Executor) execPull(n *parser.PullClause) error {
	line, _ := ex.In.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Fields(line)

	for i, sym := range n.Vars {
		if i == len(n.Vars)-1 && len(fields) > i {
			rest := strings.Join(fields[i:], " ")
			ex.Eval.Store.Set(sym, value.Str(strings.ToUpper(rest)))
			continue
		}
		if i < len(fields) {
			ex.Eval.Store.Set(sym, value.Str(strings.ToUpper(fields[i])))
		} else {
			ex.Eval.Store.Set(sym, value.Str(""))
		}
	}
	return nil
}

func (ex *Executor) execParseValue(n *parser.ParseValueClause) error {
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return err
	}
	ex.Eval.Store.Set(n.Var, v)
	return nil
}

func (ex *Executor) execAssign(n *parser.AssignClause) error {
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return err
	}
	ex.Eval.Store.Set(n.Target, v)
	return nil
}

func (ex *Executor) execIf(n *parser.IfClause) (*Termination, error) {
	cond, err := ex.evalBool(n.Cond)
	if err != nil {
		return nil, err
	}
	if cond {
		return ex.Run(n.ThenBody)
	}
	if n.ElseBody != nil {
		return ex.Run(n.ElseBody)
	}
	return nil, nil
}

func (ex *Executor) execSignalOn(n *parser.SignalOnClause) {
	category := rexxerr.Category(strings.ToUpper(n.Condition))
	if n.Enable {
		ex.Traps[category] = n.Label
	} else {
		delete(ex.Traps, category)
	}
}

// execCall dispatches to a label-named subroutine (running the program
// from that label's index until it RETURNs or falls off the end) or, for
// a bare function name, calls a builtin for its side effects and
// discards the result.
func (ex *Executor) execCall(n *parser.CallClause) (*Termination, error) {
	if !n.Label {
		args, err := ex.evalArgs(n.Args)
		if err != nil {
			return nil, err
		}
		_, _, err = ex.Eval.Functions.Call(n.Name, args)
		if err != nil {
			return nil, rexxerr.New(rexxerr.Arith, n.At, "", "%s", err.Error())
		}
		return nil, nil
	}

	idx, ok := ex.Labels[strings.ToUpper(n.Name)]
	if !ok {
		return nil, rexxerr.New(rexxerr.Signal, n.At, "", "CALL to undefined label %q", n.Name)
	}
	term, err := ex.runFrom(idx)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, nil
	}
	if term.Kind == TermReturn {
		ex.Eval.Store.Set(resultSymbol(), term.Value)
		return nil, nil
	}
	return term, nil
}

func (ex *Executor) execReturn(n *parser.ReturnClause) (*Termination, error) {
	if n.Expr == nil {
		return &Termination{Kind: TermReturn}, nil
	}
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return nil, err
	}
	return &Termination{Kind: TermReturn, Value: v}, nil
}

func (ex *Executor) execExit(n *parser.ExitClause) (*Termination, error) {
	if n.Expr == nil {
		return &Termination{Kind: TermExit}, nil
	}
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return nil, err
	}
	return &Termination{Kind: TermExit, Value: v}, nil
}

func (ex *Executor) execCommand(n *parser.CommandClause) error {
	v, err := ex.Eval.Eval(n.Expr)
	if err != nil {
		return err
	}
	result, rc, err := ex.Address.Execute(v.String())
	if err != nil {
		return rexxerr.New(rexxerr.Command, n.At, "", "%s", err.Error())
	}
	ex.Eval.Store.Set(rcSymbol(), value.Num(float64(rc)))
	ex.Eval.Store.Set(resultSymbol(), result)
	return nil
}

func (ex *Executor) evalArgs(exprs []parser.Expr) ([]value.Value, error) {
	args := make([]value.Value, len(exprs))
	for i, a := range exprs {
		v, err := ex.Eval.Eval(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (ex *Executor) evalBool(e parser.Expr) (bool, error) {
	v, err := ex.Eval.Eval(e)
	if err != nil {
		return false, err
	}
	b, ok := v.Bool()
	if !ok {
		return false, rexxerr.New(rexxerr.Syntax, parser.ExprLine(e), "",
			"condition must be a valid logical value (\"0\" or \"1\"): %q", v.String())
	}
	return b, nil
}

func (ex *Executor) evalNumeric(e parser.Expr) (float64, error) {
	v, err := ex.Eval.Eval(e)
	if err != nil {
		return 0, err
	}
	n, ok := v.Number()
	if !ok {
		return 0, rexxerr.New(rexxerr.Arith, parser.ExprLine(e), "", "not a number: %q", v.String())
	}
	return n, nil
}

func resultSymbol() value.Symbol { return value.ParseSymbol("RESULT") }
func rcSymbol() value.Symbol     { return value.ParseSymbol("RC") }
