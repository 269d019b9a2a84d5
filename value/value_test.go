/*
File    : rexxcore/value/value_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_StringAndNumber(t *testing.T) {
	v := Num(42)
	assert.Equal(t, "42", v.String())
	n, ok := v.Number()
	assert.True(t, ok)
	assert.Equal(t, float64(42), n)
}

func TestValue_NumberFormattingDropsTrailingZero(t *testing.T) {
	assert.Equal(t, "3.5", Num(3.5).String())
	assert.Equal(t, "4", Num(4.0).String())
}

func TestValue_BoolRequiresExactZeroOrOne(t *testing.T) {
	b, ok := Str("1").Bool()
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = Str("yes").Bool()
	assert.False(t, ok)
}

func TestValue_IsNumeric(t *testing.T) {
	assert.True(t, Str("  12.5  ").IsNumeric())
	assert.False(t, Str("hello").IsNumeric())
}

func TestSymbol_ParseAndName(t *testing.T) {
	sym := ParseSymbol("a.i.1")
	assert.Equal(t, "A", sym.Stem)
	assert.Equal(t, []string{"I", "1"}, sym.Tail)
	assert.Equal(t, "A.I.1", sym.Name())
	assert.True(t, sym.IsCompound())
}

func TestCompound_GetSetDefault(t *testing.T) {
	c := NewCompoundNode(Str("A.1")) // default-to-name seed
	_, ok := c.Get("5")
	assert.False(t, ok)

	c.Set("5", Str("apple"))
	got, ok := c.Get("5")
	assert.True(t, ok)
	assert.Equal(t, "apple", got.String())
	assert.Equal(t, []string{"5"}, c.Entries())
}
