/*
File    : rexxcore/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for rexxcore. The REPL
provides an interactive environment where users can:
- Enter REXX clauses line by line, or across several lines for a DO/
  SELECT block or a dangling THEN/ELSE
- See immediate SAY output and evaluation errors as they happen
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing and talks to
the core only through interp.Interpreter's public contract (Execute,
NeedsMoreInput, Vars, Reset) — it is explicitly not part of the core.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/rexxcore/interp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for REPL output.
// - blueColor: decorative lines and separators
// - yellowColor: evaluation diagnostics (source echoed back on error)
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the configuration for one interactive session: the banner,
// version/author/license strings shown at startup, and the prompt.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to rexxcore!")
	cyanColor.Fprintf(writer, "%s\n", "Type your REXX code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit, '.vars' to list bound variables, '.reset' to clear session state")
	cyanColor.Fprintf(writer, "%s\n", "A line left open by DO/SELECT or a trailing THEN/ELSE continues onto the next prompt")
	blueColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. reader feeds PULL inside
// executed clauses; readline itself always edits against the process's
// own stdin, exactly as the teacher's REPL does (reader is accepted for
// signature parity with file-mode callers, not wired into readline).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	it := interp.New(writer, reader)

	var pending strings.Builder

	for {
		prompt := r.Prompt
		if pending.Len() > 0 {
			pad := len(r.Prompt) - 2
			if pad < 0 {
				pad = 0
			}
			prompt = strings.Repeat(" ", pad) + ">> "
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \t\r")
		if pending.Len() == 0 {
			switch trimmed {
			case "":
				continue
			case ".exit":
				writer.Write([]byte("Good Bye!\n"))
				return
			case ".vars":
				r.printVars(writer, it)
				continue
			case ".reset":
				it.Reset()
				cyanColor.Fprintln(writer, "session reset")
				continue
			}
		}

		pending.WriteString(line)
		pending.WriteString("\n")
		rl.SaveHistory(line)

		src := pending.String()
		if it.NeedsMoreInput(src) {
			continue
		}
		pending.Reset()

		r.executeWithRecovery(writer, src, it)
	}
}

func (r *Repl) printVars(writer io.Writer, it *interp.Interpreter) {
	names := it.Vars()
	if len(names) == 0 {
		cyanColor.Fprintln(writer, "(no bound variables)")
		return
	}
	for _, name := range names {
		yellowColor.Fprintln(writer, name)
	}
}

// executeWithRecovery runs one chunk of source through the interpreter
// with panic recovery: unlike file mode, the REPL always returns to the
// prompt afterward, error or not, so a mistake never ends the session.
func (r *Repl) executeWithRecovery(writer io.Writer, src string, it *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	if _, err := it.Execute(src); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
