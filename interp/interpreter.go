/*
File    : rexxcore/interp/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package interp is the single aggregate owner of a running interpreter: the
variable pool, the function registry, the ADDRESS target registry, the
executor that ties them together, and the bits of state a REPL or file
runner needs on top (source history, accumulated input lines). It plays
the role the teacher's eval.Evaluator{Par, Scp, Builtins, Writer} struct
plays for go-mix, just split across the packages this core actually has.
*/
package interp

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/rexxcore/address"
	"github.com/akashmaji946/rexxcore/eval"
	"github.com/akashmaji946/rexxcore/exec"
	"github.com/akashmaji946/rexxcore/function"
	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/store"
)

// Interpreter wires a Store, a function Registry, an address Registry, and
// an Executor into one long-lived session. A single Interpreter is used for
// the whole lifetime of a file run or a REPL session, so variables and
// ADDRESS target selection persist the way they do in a real REXX session.
type Interpreter struct {
	Store     *store.Store
	Functions *function.Registry
	Eval      *eval.Evaluator
	Address   *address.Registry
	Exec      *exec.Executor
	Out       io.Writer
	In        io.Reader

	// SourceLines accumulates every line of source this session has seen,
	// file or REPL, 1-indexed by position for diagnostics that want to
	// quote the offending line back to the user.
	SourceLines []string

	// History records each chunk of REPL input fed to Execute, distinct
	// from a line editor's own history (which only knows about keystrokes,
	// not REXX clause boundaries).
	History []string
}

// New builds a fresh Interpreter. out receives SAY output (ADDRESS command
// output is not written there; it is bound to RESULT); in feeds PULL.
func New(out io.Writer, in io.Reader) *Interpreter {
	st := store.New()
	fns := function.NewRegistry()
	ev := eval.New(st, fns)
	addr := address.NewRegistry()
	return &Interpreter{
		Store:     st,
		Functions: fns,
		Eval:      ev,
		Address:   addr,
		Exec:      exec.New(ev, addr, out, in),
		Out:       out,
		In:        in,
	}
}

func (it *Interpreter) recordSource(src string) {
	it.SourceLines = append(it.SourceLines, strings.Split(src, "\n")...)
}

// RunFile parses src as a complete program and runs it from the top,
// resolving SIGNAL and CALL against every label the whole file defines.
// This is the entry point file mode uses; a program's labels only ever
// span a single RunFile call.
func (it *Interpreter) RunFile(src string) error {
	it.recordSource(src)
	p := parser.NewParser(src)
	clauses := p.Parse()
	if p.HasErrors() {
		return fmt.Errorf("parse error: %s", strings.Join(p.GetErrors(), "; "))
	}
	it.Exec.Load(clauses)
	return it.Exec.RunProgram()
}

// Execute parses and runs one piece of REPL input against the session's
// already-accumulated variable state. Unlike RunFile, a chunk is run with
// Executor.Run rather than Load+RunProgram: REPL input is never indexed
// into Executor.Labels and Run does not follow jumps, so a label typed at
// the REPL is never a jump target, even within the same chunk. A SIGNAL
// ends the chunk and comes back as the returned Termination; a CALL to a
// label fails as undefined unless an earlier RunFile on this Interpreter
// loaded that label. A subroutine meant to be CALLed belongs in a file.
// On a parse or run error the error is returned but Store is left exactly
// as it was after the last successful clause — there is no rollback.
func (it *Interpreter) Execute(src string) (*exec.Termination, error) {
	it.History = append(it.History, src)
	it.recordSource(src)
	p := parser.NewParser(src)
	clauses := p.Parse()
	if p.HasErrors() {
		return nil, fmt.Errorf("parse error: %s", strings.Join(p.GetErrors(), "; "))
	}
	return it.Exec.Run(clauses)
}

// NeedsMoreInput reports whether src looks like an unterminated clause or
// block and a REPL should keep collecting lines before calling Execute.
func (it *Interpreter) NeedsMoreInput(src string) bool {
	return NeedsMoreInput(src)
}

// Vars returns the names of every bound top-level symbol, in the order
// they were first set, for a REPL ".vars" style inspection command.
func (it *Interpreter) Vars() []string {
	return it.Store.Entries()
}

// Reset discards all session state and starts a fresh Store, function
// Registry, and address Registry, keeping the same output/input streams.
// History and SourceLines are preserved as a record of the session so far.
func (it *Interpreter) Reset() {
	st := store.New()
	fns := function.NewRegistry()
	ev := eval.New(st, fns)
	addr := address.NewRegistry()
	it.Store = st
	it.Functions = fns
	it.Eval = ev
	it.Address = addr
	it.Exec = exec.New(ev, addr, it.Out, it.In)
}
