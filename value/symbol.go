/*
File    : rexxcore/value/symbol.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import "strings"

// Symbol is a parsed REXX variable reference: an upper-cased stem name and
// the (possibly empty) dotted tail that follows it, e.g. "A.I.1" parses to
// Stem "A", Tail ["I", "1"].
type Symbol struct {
	Stem string
	Tail []string
}

// ParseSymbol splits raw (as lexed, mixed case preserved by the caller for
// diagnostics) into a Symbol. Both the stem and each tail segment are
// upper-cased, since REXX symbol names are case-insensitive.
func ParseSymbol(raw string) Symbol {
	parts := strings.Split(raw, ".")
	stem := strings.ToUpper(parts[0])
	var tail []string
	for _, p := range parts[1:] {
		tail = append(tail, strings.ToUpper(p))
	}
	return Symbol{Stem: stem, Tail: tail}
}

// Name reconstructs the dotted canonical name of the symbol, the form used
// in error messages and in default-to-name resolution for compound
// symbols. Tail segments are taken literally, with no variable
// substitution: "A.I" names tail "I" whatever I is bound to, and an unset
// "A.I" reads back as "A.I".
func (s Symbol) Name() string {
	return JoinTail(s.Stem, s.Tail)
}

// IsCompound reports whether the symbol has a tail at all.
func (s Symbol) IsCompound() bool {
	return len(s.Tail) > 0
}
