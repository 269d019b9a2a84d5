/*
File    : rexxcore/function/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Standard builtin functions: string manipulation, numeric helpers, and
type inspection, the set a small REXX program actually reaches for.
Each builtin is deliberately forgiving about argument count the way
classic REXX builtins are (a missing optional argument takes its
documented default rather than erroring).
*/
package function

import (
	"fmt"
	"math"
	"strings"

	"github.com/akashmaji946/rexxcore/value"
)

func registerBuiltins(r *Registry) {
	r.Register("UPPER", biUpper)
	r.Register("LOWER", biLower)
	r.Register("LENGTH", biLength)
	r.Register("SUBSTR", biSubstr)
	r.Register("POS", biPos)
	r.Register("STRIP", biStrip)
	r.Register("WORDS", biWords)
	r.Register("WORD", biWord)
	r.Register("WORDPOS", biWordPos)
	r.Register("ABS", biAbs)
	r.Register("MAX", biMax)
	r.Register("MIN", biMin)
	r.Register("REVERSE", biReverse)
	r.Register("DATATYPE", biDatatype)
	r.Register("TRUNC", biTrunc)
	r.Register("LEFT", biLeft)
	r.Register("RIGHT", biRight)
	r.Register("COPIES", biCopies)
	r.Register("TRANSLATE", biTranslate)
	r.Register("DELSTR", biDelstr)
	r.Register("INSERT", biInsert)
	r.Register("SIGN", biSign)
}

func argStr(args []value.Value, i int, def string) string {
	if i >= len(args) {
		return def
	}
	return args[i].String()
}

func argNum(args []value.Value, i int, def float64) (float64, error) {
	if i >= len(args) {
		return def, nil
	}
	n, ok := args[i].Number()
	if !ok {
		return 0, fmt.Errorf("argument %d is not numeric: %q", i+1, args[i].String())
	}
	return n, nil
}

func requireArgs(args []value.Value, n int, name string) error {
	if len(args) < n {
		return fmt.Errorf("%s requires at least %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

func biUpper(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "UPPER"); err != nil {
		return value.Null(), err
	}
	return value.Str(strings.ToUpper(args[0].String())), nil
}

func biLower(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "LOWER"); err != nil {
		return value.Null(), err
	}
	return value.Str(strings.ToLower(args[0].String())), nil
}

func biLength(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "LENGTH"); err != nil {
		return value.Null(), err
	}
	return value.Num(float64(len(args[0].String()))), nil
}

// biSubstr implements SUBSTR(string, start [, length [, pad]]); start is
// 1-indexed, matching REXX string addressing throughout this package.
func biSubstr(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "SUBSTR"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	start, err := argNum(args, 1, 1)
	if err != nil {
		return value.Null(), err
	}
	pad := argStr(args, 3, " ")
	from := int(start) - 1
	if from < 0 {
		from = 0
	}
	length := len(s) - from
	if len(args) >= 3 {
		l, err := argNum(args, 2, float64(length))
		if err != nil {
			return value.Null(), err
		}
		length = int(l)
	}
	out := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		idx := from + i
		if idx >= 0 && idx < len(s) {
			out = append(out, s[idx])
		} else {
			out = append(out, pad...)
		}
	}
	return value.Str(string(out)), nil
}

func biPos(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "POS"); err != nil {
		return value.Null(), err
	}
	needle := args[0].String()
	haystack := args[1].String()
	start := 0
	if n, err := argNum(args, 2, 1); err == nil && len(args) >= 3 {
		start = int(n) - 1
		if start < 0 {
			start = 0
		}
	}
	if start > len(haystack) {
		return value.Num(0), nil
	}
	idx := strings.Index(haystack[start:], needle)
	if idx < 0 {
		return value.Num(0), nil
	}
	return value.Num(float64(idx + start + 1)), nil
}

// biStrip implements STRIP(string [, option [, char]]) where option is
// B (both, default), L (leading), or T (trailing).
func biStrip(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "STRIP"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	option := strings.ToUpper(argStr(args, 1, "B"))
	cut := argStr(args, 2, " ")
	if cut == "" {
		cut = " "
	}
	switch option {
	case "L":
		return value.Str(strings.TrimLeft(s, cut)), nil
	case "T":
		return value.Str(strings.TrimRight(s, cut)), nil
	default:
		return value.Str(strings.Trim(s, cut)), nil
	}
}

func biWords(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "WORDS"); err != nil {
		return value.Null(), err
	}
	return value.Num(float64(len(strings.Fields(args[0].String())))), nil
}

func biWord(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "WORD"); err != nil {
		return value.Null(), err
	}
	words := strings.Fields(args[0].String())
	n, err := argNum(args, 1, 1)
	if err != nil {
		return value.Null(), err
	}
	i := int(n)
	if i < 1 || i > len(words) {
		return value.Str(""), nil
	}
	return value.Str(words[i-1]), nil
}

func biWordPos(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "WORDPOS"); err != nil {
		return value.Null(), err
	}
	needle := args[0].String()
	words := strings.Fields(args[1].String())
	for i, w := range words {
		if w == needle {
			return value.Num(float64(i + 1)), nil
		}
	}
	return value.Num(0), nil
}

func biAbs(args []value.Value) (value.Value, error) {
	n, err := argNum(args, 0, 0)
	if err != nil || len(args) == 0 {
		if err == nil {
			err = fmt.Errorf("ABS requires a numeric argument")
		}
		return value.Null(), err
	}
	return value.Num(math.Abs(n)), nil
}

func biSign(args []value.Value) (value.Value, error) {
	n, err := argNum(args, 0, 0)
	if err != nil || len(args) == 0 {
		if err == nil {
			err = fmt.Errorf("SIGN requires a numeric argument")
		}
		return value.Null(), err
	}
	switch {
	case n > 0:
		return value.Num(1), nil
	case n < 0:
		return value.Num(-1), nil
	default:
		return value.Num(0), nil
	}
}

func biMax(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "MAX"); err != nil {
		return value.Null(), err
	}
	best, ok := args[0].Number()
	if !ok {
		return value.Null(), fmt.Errorf("MAX argument 1 is not numeric: %q", args[0].String())
	}
	for i := 1; i < len(args); i++ {
		n, ok := args[i].Number()
		if !ok {
			return value.Null(), fmt.Errorf("MAX argument %d is not numeric: %q", i+1, args[i].String())
		}
		if n > best {
			best = n
		}
	}
	return value.Num(best), nil
}

func biMin(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "MIN"); err != nil {
		return value.Null(), err
	}
	best, ok := args[0].Number()
	if !ok {
		return value.Null(), fmt.Errorf("MIN argument 1 is not numeric: %q", args[0].String())
	}
	for i := 1; i < len(args); i++ {
		n, ok := args[i].Number()
		if !ok {
			return value.Null(), fmt.Errorf("MIN argument %d is not numeric: %q", i+1, args[i].String())
		}
		if n < best {
			best = n
		}
	}
	return value.Num(best), nil
}

func biReverse(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "REVERSE"); err != nil {
		return value.Null(), err
	}
	s := []byte(args[0].String())
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return value.Str(string(s)), nil
}

// biDatatype implements a simplified DATATYPE(x): "NUM" for a valid REXX
// number, "CHAR" otherwise. The full REXX builtin also recognizes "WHOLE",
// "BIN" and other categories, which this core does not distinguish given
// its single float64 numeric representation (Open Question (b)).
func biDatatype(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "DATATYPE"); err != nil {
		return value.Null(), err
	}
	if args[0].IsNumeric() {
		return value.Str("NUM"), nil
	}
	return value.Str("CHAR"), nil
}

func biTrunc(args []value.Value) (value.Value, error) {
	n, err := argNum(args, 0, 0)
	if err != nil || len(args) == 0 {
		if err == nil {
			err = fmt.Errorf("TRUNC requires a numeric argument")
		}
		return value.Null(), err
	}
	decimals, err := argNum(args, 1, 0)
	if err != nil {
		return value.Null(), err
	}
	scale := math.Pow(10, decimals)
	return value.Num(math.Trunc(n*scale) / scale), nil
}

func biLeft(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "LEFT"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	n, err := argNum(args, 1, float64(len(s)))
	if err != nil {
		return value.Null(), err
	}
	pad := argStr(args, 2, " ")
	length := int(n)
	out := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		if i < len(s) {
			out = append(out, s[i])
		} else {
			out = append(out, pad...)
		}
	}
	return value.Str(string(out)), nil
}

func biRight(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "RIGHT"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	n, err := argNum(args, 1, float64(len(s)))
	if err != nil {
		return value.Null(), err
	}
	pad := argStr(args, 2, " ")
	length := int(n)
	if length <= len(s) {
		return value.Str(s[len(s)-length:]), nil
	}
	out := make([]byte, 0, length)
	for i := 0; i < length-len(s); i++ {
		out = append(out, pad...)
	}
	out = append(out, s...)
	return value.Str(string(out)), nil
}

func biCopies(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "COPIES"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	n, err := argNum(args, 1, 0)
	if err != nil {
		return value.Null(), err
	}
	if n < 0 {
		n = 0
	}
	return value.Str(strings.Repeat(s, int(n))), nil
}

func biTranslate(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 1, "TRANSLATE"); err != nil {
		return value.Null(), err
	}
	s := []byte(args[0].String())
	if len(args) < 3 {
		return value.Str(strings.ToUpper(string(s))), nil
	}
	to := []byte(args[1].String())
	from := []byte(args[2].String())
	for i, c := range s {
		if idx := indexByte(from, c); idx >= 0 && idx < len(to) {
			s[i] = to[idx]
		}
	}
	return value.Str(string(s)), nil
}

func indexByte(s []byte, b byte) int {
	for i, c := range s {
		if c == b {
			return i
		}
	}
	return -1
}

func biDelstr(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "DELSTR"); err != nil {
		return value.Null(), err
	}
	s := args[0].String()
	start, err := argNum(args, 1, 0)
	if err != nil {
		return value.Null(), err
	}
	from := int(start) - 1
	length := len(s) - from
	if len(args) >= 3 {
		l, err := argNum(args, 2, float64(length))
		if err != nil {
			return value.Null(), err
		}
		length = int(l)
	}
	if from < 0 || from >= len(s) {
		return value.Str(s), nil
	}
	end := from + length
	if end > len(s) {
		end = len(s)
	}
	return value.Str(s[:from] + s[end:]), nil
}

func biInsert(args []value.Value) (value.Value, error) {
	if err := requireArgs(args, 2, "INSERT"); err != nil {
		return value.Null(), err
	}
	insert := args[0].String()
	target := args[1].String()
	pos, err := argNum(args, 2, 0)
	if err != nil {
		return value.Null(), err
	}
	at := int(pos)
	if at < 0 {
		at = 0
	}
	if at > len(target) {
		at = len(target)
	}
	return value.Str(target[:at] + insert + target[at:]), nil
}
