/*
File    : rexxcore/function/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package function holds the registry of builtin functions callable from
REXX expressions. Every builtin takes already-evaluated Value arguments
and returns a Value or an error. Apart from the table of open streams
that the file-stream functions keep (io.go), the registry holds no
evaluation state; that table is not synchronized, so a Registry is not
safe to share between interpreters running concurrently.
*/
package function

import (
	"fmt"

	"github.com/akashmaji946/rexxcore/value"
)

// Func is the signature every builtin function implements.
type Func func(args []value.Value) (value.Value, error)

// Registry maps upper-cased function names to their implementation.
// REXX function names are case-insensitive, so Call upper-cases before
// lookup; Names preserves registration order for help/REPL listings.
type Registry struct {
	funcs map[string]Func
	names []string
}

// NewRegistry builds a Registry pre-populated with the standard builtin
// set (see builtins.go) and the classic file-stream functions (io.go).
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	registerBuiltins(r)
	registerStreamBuiltins(r)
	return r
}

// Register adds or replaces a function under name, used both by
// registerBuiltins and by hosts that want to extend the registry with
// their own callbacks (e.g. an ADDRESS target exposing helper functions).
func (r *Registry) Register(name string, fn Func) {
	upper := upperASCII(name)
	if _, exists := r.funcs[upper]; !exists {
		r.names = append(r.names, upper)
	}
	r.funcs[upper] = fn
}

// Call invokes the named function. found is false if no function with
// that name is registered, letting the caller decide how to treat an
// unknown-function reference (REXX itself differs between "undefined
// function" as a hard error versus the caller's own convention).
func (r *Registry) Call(name string, args []value.Value) (result value.Value, found bool, err error) {
	fn, ok := r.funcs[upperASCII(name)]
	if !ok {
		return value.Null(), false, nil
	}
	result, err = fn(args)
	if err != nil {
		return value.Null(), true, fmt.Errorf("%s: %w", name, err)
	}
	return result, true, nil
}

// Names returns every registered function name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
