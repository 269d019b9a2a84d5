/*
File    : rexxcore/store/store.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package store holds the variable pool a single interpreter instance owns:
a flat, insertion-ordered map from stem name to Value, with compound-symbol
tails materialized lazily on first write. Unlike a lexically-scoped
interpreter's parent-chain scope, a Store never links to another Store —
REXX's PROCEDURE EXPOSE semantics give a called routine a fresh store, not
a child scope closing over the caller's, so there is no Parent pointer
here at all (an intentional divergence, see DESIGN.md).
*/
package store

import (
	"github.com/akashmaji946/rexxcore/value"
)

// Store is the variable pool for one interpreter instance or one called
// routine's private variable set.
type Store struct {
	keys    []string
	symbols map[string]*value.Value
}

// New creates an empty Store.
func New() *Store {
	return &Store{symbols: make(map[string]*value.Value)}
}

// Get resolves sym against the store. If the stem has never been set, the
// REXX default-to-name rule applies: the returned Value is the symbol's
// own uppercased name and ok is false, letting the caller distinguish "was
// bound" from "read as its own name" without a separate existence check.
func (s *Store) Get(sym value.Symbol) (value.Value, bool) {
	root, exists := s.symbols[sym.Stem]
	if !exists {
		return value.Str(sym.Name()), false
	}
	if !sym.IsCompound() {
		return *root, true
	}
	if root.Kind() != value.KindCompound || root.Compound() == nil {
		return value.Str(sym.Name()), false
	}
	return s.walkGet(sym.Stem, nil, root.Compound(), sym.Tail)
}

// walkGet descends the tail path one segment at a time. A miss at any
// level — the key was never set, or it was set to something other than a
// further Compound while tail segments remain — reads back as the full
// dotted name rebuilt up to and including the segment that missed, per the
// default-to-name rule applied one level down into a compound symbol.
func (s *Store) walkGet(stem string, consumed []string, c *value.Compound, tail []string) (value.Value, bool) {
	key := tail[0]
	path := append(append([]string{}, consumed...), key)
	v, ok := c.Get(key)
	if len(tail) == 1 {
		if !ok {
			return value.Str(value.JoinTail(stem, path)), false
		}
		return v, true
	}
	if !ok || v.Kind() != value.KindCompound || v.Compound() == nil {
		return value.Str(value.JoinTail(stem, path)), false
	}
	return s.walkGet(stem, path, v.Compound(), tail[1:])
}

// Set binds sym to v, creating intermediate Compound nodes for any
// unestablished tail segments (A.1.2 = "x" creates A as a compound with
// tail "1" holding a nested compound with tail "2" = "x", exactly the way
// a first write to a dotted name establishes its whole path).
func (s *Store) Set(sym value.Symbol, v value.Value) {
	if !sym.IsCompound() {
		s.bind(sym.Stem, v)
		return
	}
	root, exists := s.symbols[sym.Stem]
	var comp *value.Compound
	if exists && root.Kind() == value.KindCompound && root.Compound() != nil {
		comp = root.Compound()
	} else {
		comp = value.NewCompoundNode(value.Str(sym.Stem))
		s.bind(sym.Stem, value.NewCompound(comp))
	}
	s.walkSet(comp, sym.Tail, v)
}

func (s *Store) walkSet(c *value.Compound, tail []string, v value.Value) {
	if len(tail) == 1 {
		c.Set(tail[0], v)
		return
	}
	existing, ok := c.Get(tail[0])
	var next *value.Compound
	if ok && existing.Kind() == value.KindCompound && existing.Compound() != nil {
		next = existing.Compound()
	} else {
		next = value.NewCompoundNode(existing)
		c.Set(tail[0], value.NewCompound(next))
	}
	s.walkSet(next, tail[1:], v)
}

func (s *Store) bind(stem string, v value.Value) {
	if _, exists := s.symbols[stem]; !exists {
		s.keys = append(s.keys, stem)
	}
	s.symbols[stem] = &v
}

// Drop reverts sym to default-to-name. DROP on a bare stem removes its
// binding and the whole tree. DROP on a compound tail does not remove the
// tail entry: it rebinds that entry to the symbol's own dotted name, so it
// reads back as that name but Get still reports it as bound.
func (s *Store) Drop(sym value.Symbol) {
	if !sym.IsCompound() {
		delete(s.symbols, sym.Stem)
		s.removeKey(sym.Stem)
		return
	}
	root, exists := s.symbols[sym.Stem]
	if !exists || root.Kind() != value.KindCompound || root.Compound() == nil {
		return
	}
	comp := root.Compound()
	for _, key := range sym.Tail[:len(sym.Tail)-1] {
		next, ok := comp.Get(key)
		if !ok || next.Kind() != value.KindCompound || next.Compound() == nil {
			return
		}
		comp = next.Compound()
	}
	comp.Set(sym.Tail[len(sym.Tail)-1], value.Str(sym.Name()))
}

func (s *Store) removeKey(stem string) {
	for i, k := range s.keys {
		if k == stem {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			return
		}
	}
}

// Entries returns bound stem names in insertion order, for deterministic
// REPL ".vars" style enumeration.
func (s *Store) Entries() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}
