/*
File    : rexxcore/interp/interpreter_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newSession() (*Interpreter, *bytes.Buffer) {
	var out bytes.Buffer
	return New(&out, strings.NewReader("")), &out
}

func TestInterpreter_RunFile(t *testing.T) {
	it, out := newSession()
	err := it.RunFile("SAY \"hello\"\nX = 2 + 3\nSAY X")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hello\n5\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestInterpreter_RunFile_LabelsSpanWholeFile(t *testing.T) {
	it, out := newSession()
	err := it.RunFile("CALL GREET\nEXIT\nGREET:\nSAY \"hi\"\nRETURN")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hi\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestInterpreter_Execute_PersistsVariablesAcrossChunks(t *testing.T) {
	it, out := newSession()
	if _, err := it.Execute("X = 10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := it.Execute("SAY X + 5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "15\n" {
		t.Errorf("got %q", out.String())
	}
}

func TestInterpreter_Execute_ReportsParseErrors(t *testing.T) {
	it, _ := newSession()
	_, err := it.Execute("SAY (")
	if err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestInterpreter_RecordsSourceLines(t *testing.T) {
	it, _ := newSession()
	if _, err := it.Execute("SAY \"one\"\nSAY \"two\""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(it.SourceLines) != 2 {
		t.Errorf("expected 2 recorded source lines, got %d: %v", len(it.SourceLines), it.SourceLines)
	}
}

func TestInterpreter_Vars_ReturnsBoundNamesInOrder(t *testing.T) {
	it, _ := newSession()
	if _, err := it.Execute("B = 1\nA = 2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vars := it.Vars()
	if len(vars) != 2 || vars[0] != "B" || vars[1] != "A" {
		t.Errorf("expected [B A] in insertion order, got %v", vars)
	}
}

func TestInterpreter_Reset_ClearsVariablesButKeepsHistory(t *testing.T) {
	it, _ := newSession()
	if _, err := it.Execute("X = 1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	it.Reset()
	if len(it.Vars()) != 0 {
		t.Errorf("expected no bound variables after Reset, got %v", it.Vars())
	}
	if len(it.History) != 1 {
		t.Errorf("expected History to survive Reset, got %v", it.History)
	}
}

func TestNeedsMoreInput_OpenDoBlock(t *testing.T) {
	if !NeedsMoreInput("DO I = 1 TO 3\nSAY I") {
		t.Error("expected an unterminated DO block to need more input")
	}
}

func TestNeedsMoreInput_ClosedDoBlock(t *testing.T) {
	if NeedsMoreInput("DO I = 1 TO 3\nSAY I\nEND") {
		t.Error("expected a closed DO block to not need more input")
	}
}

func TestNeedsMoreInput_TrailingThen(t *testing.T) {
	if !NeedsMoreInput("IF X = 1 THEN") {
		t.Error("expected a trailing THEN to need more input")
	}
}

func TestNeedsMoreInput_CompleteOneLiner(t *testing.T) {
	if NeedsMoreInput("SAY \"done\"") {
		t.Error("expected a complete clause to not need more input")
	}
}

func TestNeedsMoreInput_NestedSelectAndDo(t *testing.T) {
	src := "SELECT\nWHEN X = 1 THEN\nDO\nSAY 1\nEND\nEND"
	if NeedsMoreInput(src) {
		t.Error("expected balanced nested SELECT/DO to not need more input")
	}
	if !NeedsMoreInput(strings.TrimSuffix(src, "\nEND")) {
		t.Error("expected one missing END to still need more input")
	}
}

func TestLoadConfig_AppliesAddressAndRuntimeFacts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rexxcore.yaml")
	contents := "address: system\nruntime:\n  host: build-agent\n  os: linux\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	it, _ := newSession()
	it.ApplyConfig(cfg)

	if it.Address.Current() != "SYSTEM" {
		t.Errorf("expected ADDRESS to be SYSTEM, got %s", it.Address.Current())
	}
	if _, err := it.Execute("SAY RUNTIME.HOST"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
