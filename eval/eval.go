/*
File    : rexxcore/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package eval evaluates parser.Expr nodes against a store.Store and a
function.Registry. It knows nothing about clauses or control flow — that
is exec's job — which keeps expression evaluation reusable from both the
statement executor and, eventually, any host embedding just the
expression language (e.g. a template engine evaluating a single REXX
expression).
*/
package eval

import (
	"github.com/akashmaji946/rexxcore/function"
	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/rexxerr"
	"github.com/akashmaji946/rexxcore/store"
	"github.com/akashmaji946/rexxcore/value"
)

// Evaluator holds everything expression evaluation needs: the variable
// pool and the builtin function registry. Evaluator carries no other
// state, so the same instance is reused unchanged across clauses within
// one interpreter run.
type Evaluator struct {
	Store     *store.Store
	Functions *function.Registry
}

// New builds an Evaluator over the given store and function registry.
func New(st *store.Store, fns *function.Registry) *Evaluator {
	return &Evaluator{Store: st, Functions: fns}
}

// Eval is the dispatch entry point: it routes each Expr node to its
// specific evaluation handler.
func (e *Evaluator) Eval(expr parser.Expr) (value.Value, error) {
	switch n := expr.(type) {
	case *parser.Literal:
		return n.Val, nil
	case *parser.VarRef:
		return e.evalVarRef(n)
	case *parser.Unary:
		return e.evalUnary(n)
	case *parser.Binary:
		return e.evalBinary(n)
	case *parser.Concat:
		return e.evalConcat(n)
	case *parser.FuncCall:
		return e.evalFuncCall(n)
	default:
		return value.Null(), rexxerr.New(rexxerr.Syntax, parser.ExprLine(expr), "",
			"cannot evaluate expression of type %T", expr)
	}
}

func (e *Evaluator) evalVarRef(n *parser.VarRef) (value.Value, error) {
	v, ok := e.Store.Get(n.Sym)
	if !ok {
		return value.Str(n.Sym.Name()), nil
	}
	return v, nil
}

func (e *Evaluator) evalFuncCall(n *parser.FuncCall) (value.Value, error) {
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.Eval(a)
		if err != nil {
			return value.Null(), err
		}
		args[i] = v
	}
	result, found, err := e.Functions.Call(n.Name, args)
	if err != nil {
		return value.Null(), rexxerr.New(rexxerr.Arith, n.At, "", "%s", err.Error())
	}
	if !found {
		return value.Null(), rexxerr.New(rexxerr.Syntax, n.At, "", "undefined function %s", n.Name)
	}
	return result, nil
}
