/*
File    : rexxcore/exec/loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

DO loop iteration for every LoopSpec shape. A single driver handles all
of them uniformly: an optional bound on how many times to run (counted
control variable or a bare repeat count), and optional WHILE/UNTIL
conditions layered on top — exactly as REXX allows combining them (DO
i = 1 TO 10 WHILE cond is valid REXX).
*/
package exec

import (
	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/rexxerr"
	"github.com/akashmaji946/rexxcore/value"
)

// maxWhileIterations caps any loop with no bound derivable at parse/entry
// time (DO WHILE, DO UNTIL alone, DO FOREVER, and the bare infinite DO
// rejected below) so a runaway condition fails fast with a LOOP error
// instead of hanging the interpreter (spec §4.5 WHILE safety net).
const maxWhileIterations = 10000

func (ex *Executor) execDo(d *parser.DoClause) (*Termination, error) {
	spec := d.Spec
	if spec == nil {
		// A standalone "DO ... END" with no control clause at all is
		// REXX's bare infinite DO: always an error at execution, never
		// silently run once (spec §4.2/§4.5). IF/SELECT bodies never
		// reach here — parseClauseOrBlock unwraps their DO/END block into
		// a plain body instead of leaving it as a DoClause.
		return nil, rexxerr.New(rexxerr.Loop, d.At, "", "DO without a loop or repeat specification is infinite")
	}

	counted := spec.ControlVar != nil
	var current, step, limit float64
	hasLimit := false
	step = 1

	if counted {
		from, err := ex.evalNumeric(spec.From)
		if err != nil {
			return nil, err
		}
		current = from
		if spec.To != nil {
			limit, err = ex.evalNumeric(spec.To)
			if err != nil {
				return nil, err
			}
			hasLimit = true
		}
		if spec.By != nil {
			step, err = ex.evalNumeric(spec.By)
			if err != nil {
				return nil, err
			}
			if step == 0 {
				return nil, rexxerr.New(rexxerr.Loop, d.At, "", "DO loop BY step must not be zero")
			}
		} else if hasLimit && current > limit {
			// No explicit BY: direction follows start vs end (spec §4.5
			// RANGE), so a descending range counts down by default.
			step = -1
		}

		prior, hadPrior := ex.Eval.Store.Get(*spec.ControlVar)
		defer func() {
			if hadPrior {
				ex.Eval.Store.Set(*spec.ControlVar, prior)
			}
		}()
		ex.Eval.Store.Set(*spec.ControlVar, value.Num(current))
	}

	repeatCount := -1
	if spec.Repeat != nil {
		n, err := ex.evalNumeric(spec.Repeat)
		if err != nil {
			return nil, err
		}
		repeatCount = int(n)
	}

	unbounded := !(counted && hasLimit) && repeatCount < 0

	done := 0
	for {
		if repeatCount >= 0 && done >= repeatCount {
			break
		}
		if counted && hasLimit {
			if step >= 0 && current > limit {
				break
			}
			if step < 0 && current < limit {
				break
			}
		}
		if spec.While != nil {
			cond, err := ex.evalBool(spec.While)
			if err != nil {
				return nil, err
			}
			if !cond {
				break
			}
		}
		if unbounded && done >= maxWhileIterations {
			return nil, rexxerr.New(rexxerr.Loop, d.At, "", "DO loop exceeded %d iterations without terminating", maxWhileIterations)
		}

		term, err := ex.Run(d.Body)
		if err != nil {
			return nil, err
		}
		stop := false
		if term != nil {
			// A LEAVE/ITERATE naming another loop's control variable passes
			// through to the enclosing loop it names.
			if (term.Kind == TermLeave || term.Kind == TermIterate) && term.Label != "" &&
				(!counted || value.ParseSymbol(term.Label).Name() != spec.ControlVar.Name()) {
				return term, nil
			}
			switch term.Kind {
			case TermLeave:
				stop = true
			case TermIterate:
				// absorbed: fall through to the per-iteration update below
			default:
				return term, nil
			}
		}
		if stop {
			break
		}

		done++
		if counted {
			current += step
			ex.Eval.Store.Set(*spec.ControlVar, value.Num(current))
		}

		if spec.Until != nil {
			cond, err := ex.evalBool(spec.Until)
			if err != nil {
				return nil, err
			}
			if cond {
				break
			}
		}

		if !spec.Forever && !counted && repeatCount < 0 && spec.While == nil && spec.Until == nil {
			break
		}
	}
	return nil, nil
}
