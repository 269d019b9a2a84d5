/*
File    : rexxcore/exec/select.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package exec

import "github.com/akashmaji946/rexxcore/parser"

// execSelect evaluates each WHEN in order and runs the first whose
// condition is true. A SELECT with no matching WHEN and no OTHERWISE
// completes silently rather than raising an error.
func (ex *Executor) execSelect(s *parser.SelectClause) (*Termination, error) {
	for _, w := range s.Whens {
		matched, err := ex.evalBool(w.Cond)
		if err != nil {
			return nil, err
		}
		if matched {
			return ex.Run(w.Body)
		}
	}
	if s.Otherwise != nil {
		return ex.Run(s.Otherwise)
	}
	return nil, nil
}
