/*
File    : rexxcore/address/address.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package address implements REXX's ADDRESS environment concept: a host
command string (any clause the parser couldn't recognize as a keyword
form) is handed to whichever Target is currently selected, rather than
being evaluated as an expression. The default target merely echoes the
command as a diagnostic; a host embedding this interpreter can swap in
a Target that actually talks to a shell, a database, or any other
external system.
*/
package address

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/akashmaji946/rexxcore/value"
)

// Target executes a host command string and returns its result value
// plus the return-code REXX convention expects in the RC variable.
type Target interface {
	Name() string
	Execute(command string) (result value.Value, rc int, err error)
}

// Registry holds the named targets an interpreter can switch between via
// ADDRESS <name>.
type Registry struct {
	targets map[string]Target
	current string
}

// NewRegistry builds a Registry seeded with the "DIAGNOSTIC" target and a
// "SYSTEM" target that runs commands through /bin/sh. Both are always
// registered; whether /bin/sh exists is only found out when a SYSTEM
// command runs.
func NewRegistry() *Registry {
	r := &Registry{targets: make(map[string]Target)}
	r.Add(&DiagnosticTarget{})
	r.Add(&ShellTarget{Shell: "/bin/sh"})
	r.current = "DIAGNOSTIC"
	return r
}

// Add registers t, addressable by t.Name() (case-insensitive).
func (r *Registry) Add(t Target) {
	r.targets[strings.ToUpper(t.Name())] = t
}

// SetCurrent switches the active target by name; it is a no-op (keeping
// the previous target active) if name is not registered, matching REXX's
// tolerant handling of an ADDRESS to an environment the host doesn't
// implement.
func (r *Registry) SetCurrent(name string) {
	if _, ok := r.targets[strings.ToUpper(name)]; ok {
		r.current = strings.ToUpper(name)
	}
}

// Current returns the name of the active target.
func (r *Registry) Current() string { return r.current }

// Execute dispatches command to the active target.
func (r *Registry) Execute(command string) (value.Value, int, error) {
	t, ok := r.targets[r.current]
	if !ok {
		return value.Str(""), -1, nil
	}
	return t.Execute(command)
}

// DiagnosticTarget never touches the outside world: it records the
// command it would have run and reports success. Useful as the default
// so a program that never issues an explicit ADDRESS still runs safely
// under any host, and for tests that assert on command text rather than
// running a subprocess.
type DiagnosticTarget struct {
	History []string
}

func (d *DiagnosticTarget) Name() string { return "DIAGNOSTIC" }

func (d *DiagnosticTarget) Execute(command string) (value.Value, int, error) {
	d.History = append(d.History, command)
	return value.Str(command), 0, nil
}

// ShellTarget runs each command through an external shell, the way
// ADDRESS SYSTEM behaves against the host operating system.
type ShellTarget struct {
	Shell string
}

func (s *ShellTarget) Name() string { return "SYSTEM" }

func (s *ShellTarget) Execute(command string) (value.Value, int, error) {
	shell := s.Shell
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.Command(shell, "-c", command)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	rc := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		rc = exitErr.ExitCode()
		err = nil
	} else if err != nil {
		rc = -1
	}
	return value.Str(strings.TrimRight(out.String(), "\n")), rc, err
}
