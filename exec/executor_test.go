/*
File    : rexxcore/exec/executor_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package exec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/rexxcore/address"
	"github.com/akashmaji946/rexxcore/eval"
	"github.com/akashmaji946/rexxcore/function"
	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/rexxerr"
	"github.com/akashmaji946/rexxcore/store"
	"github.com/akashmaji946/rexxcore/value"
)

func run(t *testing.T, src string) (string, *Executor) {
	t.Helper()
	out, ex, err := runAllowError(t, src)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	return out, ex
}

func runAllowError(t *testing.T, src string) (string, *Executor, error) {
	t.Helper()
	p := parser.NewParser(src)
	clauses := p.Parse()
	if p.HasErrors() {
		t.Fatalf("parse errors: %v", p.GetErrors())
	}
	var out bytes.Buffer
	ex := New(eval.New(store.New(), function.NewRegistry()), address.NewRegistry(), &out, strings.NewReader(""))
	ex.Load(clauses)
	err := ex.RunProgram()
	return out.String(), ex, err
}

func TestExecutor_Say(t *testing.T) {
	out, _ := run(t, `SAY "hello"`)
	if out != "hello\n" {
		t.Errorf("expected %q, got %q", "hello\n", out)
	}
}

func TestExecutor_AssignThenSay(t *testing.T) {
	out, _ := run(t, "X = 5\nSAY X")
	if out != "5\n" {
		t.Errorf("expected %q, got %q", "5\n", out)
	}
}

func TestExecutor_IfThenElse(t *testing.T) {
	out, _ := run(t, "IF 1 = 1 THEN\nSAY \"yes\"\nELSE\nSAY \"no\"")
	if out != "yes\n" {
		t.Errorf("expected %q, got %q", "yes\n", out)
	}
}

func TestExecutor_CountedDoLoop(t *testing.T) {
	out, _ := run(t, "DO I = 1 TO 3\nSAY I\nEND")
	if out != "1\n2\n3\n" {
		t.Errorf("expected 1..3, got %q", out)
	}
}

func TestExecutor_DoLoopWithStep(t *testing.T) {
	out, _ := run(t, "DO I = 10 TO 0 BY -5\nSAY I\nEND")
	if out != "10\n5\n0\n" {
		t.Errorf("expected 10,5,0, got %q", out)
	}
}

func TestExecutor_ControlVariablePersistsAfterLoop(t *testing.T) {
	_, ex := run(t, "DO I = 1 TO 3\nEND\nSAY I")
	v, ok := ex.Eval.Store.Get(value.ParseSymbol("I"))
	if !ok {
		t.Fatal("expected I to be bound after loop")
	}
	if v.String() != "4" {
		t.Errorf("expected control variable to be 4 after loop exit, got %s", v.String())
	}
}

func TestExecutor_LeaveStopsLoop(t *testing.T) {
	out, _ := run(t, "DO I = 1 TO 10\nIF I = 3 THEN\nLEAVE\nSAY I\nEND")
	if out != "1\n2\n" {
		t.Errorf("expected 1,2, got %q", out)
	}
}

func TestExecutor_IterateSkipsRestOfBody(t *testing.T) {
	out, _ := run(t, "DO I = 1 TO 3\nIF I = 2 THEN\nITERATE\nSAY I\nEND")
	if out != "1\n3\n" {
		t.Errorf("expected 1,3, got %q", out)
	}
}

func TestExecutor_DoWhileLoop(t *testing.T) {
	out, _ := run(t, "X = 0\nDO WHILE X < 3\nSAY X\nX = X + 1\nEND")
	if out != "0\n1\n2\n" {
		t.Errorf("expected 0,1,2, got %q", out)
	}
}

func TestExecutor_SelectWhenOtherwise(t *testing.T) {
	out, _ := run(t, "X = 2\nSELECT\nWHEN X = 1 THEN\nSAY \"one\"\nWHEN X = 2 THEN\nSAY \"two\"\nOTHERWISE\nSAY \"other\"\nEND")
	if out != "two\n" {
		t.Errorf("expected two, got %q", out)
	}
}

func TestExecutor_SelectNoMatchNoOtherwiseIsSilent(t *testing.T) {
	out, _ := run(t, "X = 99\nSELECT\nWHEN X = 1 THEN\nSAY \"one\"\nEND\nSAY \"after\"")
	if out != "after\n" {
		t.Errorf("expected only 'after', got %q", out)
	}
}

func TestExecutor_CallAndReturnSetsResult(t *testing.T) {
	src := "CALL DOUBLER\nSAY RESULT\nEXIT\nDOUBLER:\nRETURN 42"
	out, _ := run(t, src)
	if out != "42\n" {
		t.Errorf("expected 42, got %q", out)
	}
}

func TestExecutor_SignalJumpsToLabel(t *testing.T) {
	src := "SIGNAL SKIP\nSAY \"unreachable\"\nSKIP:\nSAY \"reached\""
	out, _ := run(t, src)
	if out != "reached\n" {
		t.Errorf("expected only 'reached', got %q", out)
	}
}

func TestExecutor_DropResetsToDefaultName(t *testing.T) {
	_, ex := run(t, "X = 5\nDROP X")
	v, ok := ex.Eval.Store.Get(value.ParseSymbol("X"))
	if ok {
		t.Fatal("expected X to be unbound after DROP")
	}
	if v.String() != "X" {
		t.Errorf("expected default-to-name X, got %s", v.String())
	}
}

func TestExecutor_AddressDispatchesCommand(t *testing.T) {
	out, _ := run(t, "\"hello command\"")
	if out != "" {
		t.Errorf("expected no SAY output, got %q", out)
	}
}

func TestExecutor_PullReadsInputLine(t *testing.T) {
	p := parser.NewParser("PULL NAME\nSAY NAME")
	clauses := p.Parse()
	var out bytes.Buffer
	ex := New(eval.New(store.New(), function.NewRegistry()), address.NewRegistry(), &out, strings.NewReader("world\n"))
	ex.Load(clauses)
	if err := ex.RunProgram(); err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if out.String() != "WORLD\n" {
		t.Errorf("expected WORLD, got %q", out.String())
	}
}

func TestExecutor_DescendingRangeWithoutByCountsDown(t *testing.T) {
	out, _ := run(t, "DO I = 5 TO 1\nSAY I\nEND")
	if out != "5\n4\n3\n2\n1\n" {
		t.Errorf("expected 5,4,3,2,1, got %q", out)
	}
}

func TestExecutor_DescendingRangeControlVariableEndsOneBelow(t *testing.T) {
	_, ex := run(t, "DO I = 5 TO 1\nEND")
	v, ok := ex.Eval.Store.Get(value.ParseSymbol("I"))
	if !ok {
		t.Fatal("expected I to be bound after loop")
	}
	if v.String() != "0" {
		t.Errorf("expected control variable to be 0 after loop exit, got %s", v.String())
	}
}

func TestExecutor_DoLoopRestoresPriorControlVariableBinding(t *testing.T) {
	_, ex := run(t, "I = 99\nDO I = 1 TO 3\nEND")
	v, ok := ex.Eval.Store.Get(value.ParseSymbol("I"))
	if !ok {
		t.Fatal("expected I to still be bound")
	}
	if v.String() != "99" {
		t.Errorf("expected prior binding 99 restored, got %s", v.String())
	}
}

func TestExecutor_DoLoopByZeroIsLoopError(t *testing.T) {
	_, _, err := runAllowError(t, "DO I = 1 TO 10 BY 0\nSAY I\nEND")
	if err == nil {
		t.Fatal("expected a LOOP error for BY 0, got none")
	}
	rerr, ok := err.(*rexxerr.RexxError)
	if !ok || rerr.Category != rexxerr.Loop {
		t.Errorf("expected a LOOP category error, got %v", err)
	}
}

func TestExecutor_BareDoIsRejectedAsInfinite(t *testing.T) {
	_, _, err := runAllowError(t, "DO\nSAY \"x\"\nEND")
	if err == nil {
		t.Fatal("expected a LOOP error for bare DO, got none")
	}
	rerr, ok := err.(*rexxerr.RexxError)
	if !ok || rerr.Category != rexxerr.Loop {
		t.Errorf("expected a LOOP category error, got %v", err)
	}
}

func TestExecutor_DoForeverWithoutLeaveHitsIterationCap(t *testing.T) {
	_, _, err := runAllowError(t, "DO FOREVER\nNOP\nEND")
	if err == nil {
		t.Fatal("expected a LOOP error once the iteration cap is hit, got none")
	}
	rerr, ok := err.(*rexxerr.RexxError)
	if !ok || rerr.Category != rexxerr.Loop {
		t.Errorf("expected a LOOP category error, got %v", err)
	}
}
