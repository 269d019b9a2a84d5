/*
File    : rexxcore/address/address_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_DefaultsToDiagnostic(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "DIAGNOSTIC", r.Current())
	result, rc, err := r.Execute("whatever command")
	assert.NoError(t, err)
	assert.Equal(t, 0, rc)
	assert.Equal(t, "whatever command", result.String())
}

func TestRegistry_SwitchTarget(t *testing.T) {
	r := NewRegistry()
	r.SetCurrent("system")
	assert.Equal(t, "SYSTEM", r.Current())
}

func TestRegistry_UnknownTargetIsNoop(t *testing.T) {
	r := NewRegistry()
	r.SetCurrent("NOSUCHTARGET")
	assert.Equal(t, "DIAGNOSTIC", r.Current())
}

func TestShellTarget_RunsCommand(t *testing.T) {
	target := &ShellTarget{Shell: "/bin/sh"}
	result, rc, err := target.Execute("echo hello")
	assert.NoError(t, err)
	assert.Equal(t, 0, rc)
	assert.Equal(t, "hello", result.String())
}

func TestDiagnosticTarget_RecordsHistory(t *testing.T) {
	d := &DiagnosticTarget{}
	d.Execute("one")
	d.Execute("two")
	assert.Equal(t, []string{"one", "two"}, d.History)
}
