/*
File    : rexxcore/eval/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Binary and unary operator semantics: numeric arithmetic, REXX's dual
numeric/string comparison rule (compare numerically when both operands
look like numbers, otherwise compare as strings), the logical operators
restricted to "0"/"1" operands, and concatenation (both explicit || and
abuttal, which share evaluation once parsing has told them apart).
*/
package eval

import (
	"strings"

	"github.com/akashmaji946/rexxcore/parser"
	"github.com/akashmaji946/rexxcore/rexxerr"
	"github.com/akashmaji946/rexxcore/value"
)

func (e *Evaluator) evalUnary(n *parser.Unary) (value.Value, error) {
	operand, err := e.Eval(n.Operand)
	if err != nil {
		return value.Null(), err
	}
	switch n.Op {
	case "+":
		num, ok := operand.Number()
		if !ok {
			return value.Null(), numericError(n.At, operand)
		}
		return value.Num(num), nil
	case "-":
		num, ok := operand.Number()
		if !ok {
			return value.Null(), numericError(n.At, operand)
		}
		return value.Num(-num), nil
	case "\\":
		b, ok := operand.Bool()
		if !ok {
			return value.Null(), boolError(n.At, operand)
		}
		return boolValue(!b), nil
	default:
		return value.Null(), rexxerr.New(rexxerr.Syntax, n.At, "", "unknown unary operator %q", n.Op)
	}
}

func (e *Evaluator) evalBinary(n *parser.Binary) (value.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return value.Null(), err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return value.Null(), err
	}

	switch n.Op {
	case "+", "-", "*", "/", "%", "//", "**":
		return evalArith(n.At, n.Op, left, right)
	case "=", "\\=", "==", "\\==", ">", "<", ">=", "<=":
		return evalCompare(n.Op, left, right), nil
	case "&", "|":
		return evalLogical(n.At, n.Op, left, right)
	default:
		return value.Null(), rexxerr.New(rexxerr.Syntax, n.At, "", "unknown binary operator %q", n.Op)
	}
}

func evalArith(line int, op string, left, right value.Value) (value.Value, error) {
	l, ok := left.Number()
	if !ok {
		return value.Null(), numericError(line, left)
	}
	r, ok := right.Number()
	if !ok {
		return value.Null(), numericError(line, right)
	}
	switch op {
	case "+":
		return value.Num(l + r), nil
	case "-":
		return value.Num(l - r), nil
	case "*":
		return value.Num(l * r), nil
	case "/":
		if r == 0 {
			return value.Null(), rexxerr.New(rexxerr.Arith, line, "", "division by zero")
		}
		return value.Num(l / r), nil
	case "%":
		if r == 0 {
			return value.Null(), rexxerr.New(rexxerr.Arith, line, "", "division by zero")
		}
		return value.Num(float64(int64(l / r))), nil
	case "//":
		if r == 0 {
			return value.Null(), rexxerr.New(rexxerr.Arith, line, "", "division by zero")
		}
		quotient := float64(int64(l / r))
		return value.Num(l - quotient*r), nil
	case "**":
		return value.Num(ipow(l, r)), nil
	default:
		return value.Null(), rexxerr.New(rexxerr.Arith, line, "", "unsupported arithmetic operator %q", op)
	}
}

func ipow(base, exp float64) float64 {
	result := 1.0
	neg := exp < 0
	n := int(exp)
	if neg {
		n = -n
	}
	for i := 0; i < n; i++ {
		result *= base
	}
	if neg {
		return 1 / result
	}
	return result
}

// evalCompare applies REXX's comparison rule: when both operands parse as
// numbers, compare numerically; otherwise compare the string forms. "=="
// and "\==" never fall back to numeric comparison (strict string
// equality, REXX's one exception to the rule).
func evalCompare(op string, left, right value.Value) value.Value {
	if op == "==" || op == "\\==" {
		equal := left.String() == right.String()
		if op == "\\==" {
			equal = !equal
		}
		return boolValue(equal)
	}

	lnum, lok := left.Number()
	rnum, rok := right.Number()
	if lok && rok {
		return boolValue(compareNumeric(op, lnum, rnum))
	}
	return boolValue(compareString(op, left.String(), right.String()))
}

func compareNumeric(op string, l, r float64) bool {
	switch op {
	case "=":
		return l == r
	case "\\=":
		return l != r
	case ">":
		return l > r
	case "<":
		return l < r
	case ">=":
		return l >= r
	case "<=":
		return l <= r
	}
	return false
}

func compareString(op, l, r string) bool {
	cmp := strings.Compare(l, r)
	switch op {
	case "=":
		return cmp == 0
	case "\\=":
		return cmp != 0
	case ">":
		return cmp > 0
	case "<":
		return cmp < 0
	case ">=":
		return cmp >= 0
	case "<=":
		return cmp <= 0
	}
	return false
}

func evalLogical(line int, op string, left, right value.Value) (value.Value, error) {
	l, ok := left.Bool()
	if !ok {
		return value.Null(), boolError(line, left)
	}
	r, ok := right.Bool()
	if !ok {
		return value.Null(), boolError(line, right)
	}
	switch op {
	case "&":
		return boolValue(l && r), nil
	case "|":
		return boolValue(l || r), nil
	default:
		return value.Null(), rexxerr.New(rexxerr.Syntax, line, "", "unknown logical operator %q", op)
	}
}

func (e *Evaluator) evalConcat(n *parser.Concat) (value.Value, error) {
	left, err := e.Eval(n.Left)
	if err != nil {
		return value.Null(), err
	}
	right, err := e.Eval(n.Right)
	if err != nil {
		return value.Null(), err
	}
	if n.Explicit {
		return value.Str(left.String() + right.String()), nil
	}
	return value.Str(left.String() + " " + right.String()), nil
}

func boolValue(b bool) value.Value {
	if b {
		return value.Num(1)
	}
	return value.Num(0)
}

func numericError(line int, v value.Value) error {
	return rexxerr.New(rexxerr.Arith, line, "", "not a number: %q", v.String())
}

func boolError(line int, v value.Value) error {
	return rexxerr.New(rexxerr.Arith, line, "", "not a valid logical value (must be \"0\" or \"1\"): %q", v.String())
}
