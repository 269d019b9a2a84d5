/*
File    : rexxcore/store/store_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package store

import (
	"testing"

	"github.com/akashmaji946/rexxcore/value"
	"github.com/stretchr/testify/assert"
)

func TestStore_DefaultToName(t *testing.T) {
	s := New()
	v, ok := s.Get(value.ParseSymbol("UNSET"))
	assert.False(t, ok)
	assert.Equal(t, "UNSET", v.String())
}

func TestStore_SimpleSetGet(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("X"), value.Num(5))
	v, ok := s.Get(value.ParseSymbol("X"))
	assert.True(t, ok)
	assert.Equal(t, "5", v.String())
}

func TestStore_CompoundSetGet(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("A.1"), value.Str("apple"))
	s.Set(value.ParseSymbol("A.2"), value.Str("pear"))

	v, ok := s.Get(value.ParseSymbol("A.1"))
	assert.True(t, ok)
	assert.Equal(t, "apple", v.String())

	// An unset tail reads back as the default-to-name form one level down.
	v, ok = s.Get(value.ParseSymbol("A.3"))
	assert.False(t, ok)
	assert.Equal(t, "A.3", v.String())
}

func TestStore_NestedCompound(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("A.1.2"), value.Str("x"))
	v, ok := s.Get(value.ParseSymbol("A.1.2"))
	assert.True(t, ok)
	assert.Equal(t, "x", v.String())
}

func TestStore_NestedCompoundUnsetTailReadsFullDottedName(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("A.B.C"), value.Str("x"))
	v, ok := s.Get(value.ParseSymbol("A.B.D"))
	assert.False(t, ok)
	assert.Equal(t, "A.B.D", v.String())
}

func TestStore_DropResetsToDefaultName(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("X"), value.Num(5))
	s.Drop(value.ParseSymbol("X"))
	v, ok := s.Get(value.ParseSymbol("X"))
	assert.False(t, ok)
	assert.Equal(t, "X", v.String())
}

func TestStore_EntriesInsertionOrder(t *testing.T) {
	s := New()
	s.Set(value.ParseSymbol("B"), value.Num(1))
	s.Set(value.ParseSymbol("A"), value.Num(2))
	assert.Equal(t, []string{"B", "A"}, s.Entries())
}
