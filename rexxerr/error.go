/*
File    : rexxcore/rexxerr/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package rexxerr is the error type for evaluation and execution: eval and
exec failures produce a RexxError carrying the offending source line.
Parse errors are not RexxErrors: the parser collects them as strings and
interp returns them as a plain error. Control-flow unwinding (SIGNAL,
RETURN, LEAVE, ...) uses exec.Termination, not an error.
*/
package rexxerr

import "fmt"

// Category classifies what kind of failure occurred, matching the
// condition names a SIGNAL ON trap would recognize.
type Category string

const (
	Syntax  Category = "SYNTAX"
	Arith   Category = "ARITH"  // numeric operation on a non-numeric operand
	Loop    Category = "LOOP"   // bare DO, DO ... BY 0, or DO iteration cap exceeded
	Command Category = "ERROR"  // ADDRESS command failure
	Signal  Category = "SIGNAL" // SIGNAL to an undefined label
)

// Location pinpoints where in the source an error occurred.
type Location struct {
	Line       int
	SourceFile string
	SourceLine string
}

// RexxError is the error value returned by eval and exec, and passed on by
// interp for run-time failures. It implements the standard error interface.
type RexxError struct {
	Message  string
	Category Category
	Location Location
}

func (e *RexxError) Error() string {
	if e.Location.Line > 0 {
		return fmt.Sprintf("%d: %s: %s", e.Location.Line, e.Category, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// New builds a RexxError with a formatted message at the given location.
func New(category Category, line int, sourceLine string, format string, args ...interface{}) *RexxError {
	return &RexxError{
		Message:  fmt.Sprintf(format, args...),
		Category: category,
		Location: Location{Line: line, SourceLine: sourceLine},
	}
}
