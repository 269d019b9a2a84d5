/*
File    : rexxcore/function/io.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

REXX addresses files through named byte/line streams rather than handle
objects passed around as values — STREAM/LINEIN/LINEOUT/CHARIN/CHAROUT all
take the file name itself as the first argument and the registry tracks
the open handle behind the scenes. This is the stream-function idiom the
teacher's own file package (file/file.go) built as a stateful FileObject
value type; adapted here to REXX's nameless-handle convention, the same
fopen/fread/fwrite/fseek/ftell operations survive as a small internal
fileTable instead of a user-visible object kind, since this Value union
has no handle Kind to carry one.
*/
package function

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/rexxcore/value"
)

// fileTable is per-Registry state: every Registry built by NewRegistry
// owns its own table, so this does not revisit the "registry holds no
// evaluation state" property across separate interpreter instances —
// only within the one instance that opened the streams.
type fileTable struct {
	files   map[string]*os.File
	readers map[string]*bufio.Reader
}

func newFileTable() *fileTable {
	return &fileTable{files: make(map[string]*os.File), readers: make(map[string]*bufio.Reader)}
}

func (t *fileTable) open(name string, flag int) (*os.File, error) {
	if f, ok := t.files[name]; ok {
		return f, nil
	}
	f, err := os.OpenFile(name, flag, 0644)
	if err != nil {
		return nil, err
	}
	t.files[name] = f
	return f, nil
}

func (t *fileTable) reader(name string) (*bufio.Reader, error) {
	if r, ok := t.readers[name]; ok {
		return r, nil
	}
	f, err := t.open(name, os.O_RDONLY|os.O_CREATE)
	if err != nil {
		return nil, err
	}
	r := bufio.NewReader(f)
	t.readers[name] = r
	return r, nil
}

func (t *fileTable) close(name string) error {
	delete(t.readers, name)
	f, ok := t.files[name]
	if !ok {
		return nil
	}
	delete(t.files, name)
	return f.Close()
}

// registerStreamBuiltins registers REXX's classic file-stream functions
// against a fileTable owned by this call's closures.
func registerStreamBuiltins(r *Registry) {
	ft := newFileTable()

	r.Register("LINEIN", func(args []value.Value) (value.Value, error) {
		if err := requireArgs(args, 1, "LINEIN"); err != nil {
			return value.Value{}, err
		}
		name := argStr(args, 0, "")
		reader, err := ft.reader(name)
		if err != nil {
			return value.Value{}, fmt.Errorf("LINEIN: %w", err)
		}
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return value.Value{}, fmt.Errorf("LINEIN: %w", err)
		}
		return value.Str(trimNewline(line)), nil
	})

	r.Register("LINEOUT", func(args []value.Value) (value.Value, error) {
		if err := requireArgs(args, 2, "LINEOUT"); err != nil {
			return value.Value{}, err
		}
		name := argStr(args, 0, "")
		text := argStr(args, 1, "")
		f, err := ft.open(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
		if err != nil {
			return value.Value{}, fmt.Errorf("LINEOUT: %w", err)
		}
		if _, err := f.WriteString(text + "\n"); err != nil {
			return value.Value{}, fmt.Errorf("LINEOUT: %w", err)
		}
		return value.Num(0), nil
	})

	r.Register("CHARIN", func(args []value.Value) (value.Value, error) {
		if err := requireArgs(args, 1, "CHARIN"); err != nil {
			return value.Value{}, err
		}
		name := argStr(args, 0, "")
		n, err := argNum(args, 1, 1)
		if err != nil {
			return value.Value{}, err
		}
		reader, err := ft.reader(name)
		if err != nil {
			return value.Value{}, fmt.Errorf("CHARIN: %w", err)
		}
		buf := make([]byte, int(n))
		read, err := io.ReadFull(reader, buf)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return value.Value{}, fmt.Errorf("CHARIN: %w", err)
		}
		return value.Str(string(buf[:read])), nil
	})

	r.Register("CHAROUT", func(args []value.Value) (value.Value, error) {
		if err := requireArgs(args, 2, "CHAROUT"); err != nil {
			return value.Value{}, err
		}
		name := argStr(args, 0, "")
		text := argStr(args, 1, "")
		f, err := ft.open(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND)
		if err != nil {
			return value.Value{}, fmt.Errorf("CHAROUT: %w", err)
		}
		if _, err := f.WriteString(text); err != nil {
			return value.Value{}, fmt.Errorf("CHAROUT: %w", err)
		}
		return value.Num(0), nil
	})

	r.Register("STREAM", func(args []value.Value) (value.Value, error) {
		if err := requireArgs(args, 1, "STREAM"); err != nil {
			return value.Value{}, err
		}
		name := argStr(args, 0, "")
		op := argStr(args, 2, "")
		switch upperASCII(op) {
		case "CLOSE":
			if err := ft.close(name); err != nil {
				return value.Str("ERROR"), nil
			}
			return value.Str("READY"), nil
		default:
			if _, err := ft.open(name, os.O_RDWR|os.O_CREATE); err != nil {
				return value.Str("ERROR"), nil
			}
			return value.Str("READY"), nil
		}
	})
}

func trimNewline(s string) string {
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '\r' {
		s = s[:len(s)-1]
	}
	return s
}
