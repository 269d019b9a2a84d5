/*
File    : rexxcore/function/io_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package function

import (
	"path/filepath"
	"testing"

	"github.com/akashmaji946/rexxcore/value"
	"github.com/stretchr/testify/assert"
)

func TestStream_LineoutThenLinein(t *testing.T) {
	r := NewRegistry()
	path := filepath.Join(t.TempDir(), "out.txt")

	call(t, r, "LINEOUT", value.Str(path), value.Str("first"))
	call(t, r, "LINEOUT", value.Str(path), value.Str("second"))
	call(t, r, "STREAM", value.Str(path), value.Num(0), value.Str("CLOSE"))

	assert.Equal(t, "first", call(t, r, "LINEIN", value.Str(path)).String())
	assert.Equal(t, "second", call(t, r, "LINEIN", value.Str(path)).String())
}

func TestStream_CharoutThenCharin(t *testing.T) {
	r := NewRegistry()
	path := filepath.Join(t.TempDir(), "chars.txt")

	call(t, r, "CHAROUT", value.Str(path), value.Str("hello"))
	call(t, r, "STREAM", value.Str(path), value.Num(0), value.Str("CLOSE"))

	assert.Equal(t, "hel", call(t, r, "CHARIN", value.Str(path), value.Num(3)).String())
	assert.Equal(t, "lo", call(t, r, "CHARIN", value.Str(path), value.Num(2)).String())
}

func TestStream_OpenReportsReady(t *testing.T) {
	r := NewRegistry()
	path := filepath.Join(t.TempDir(), "fresh.txt")
	assert.Equal(t, "READY", call(t, r, "STREAM", value.Str(path), value.Num(0), value.Str("OPEN")).String())
}
