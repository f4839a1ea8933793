/*
File   : golox/repl/repl.go
Package: repl
*/

// Package repl implements the interactive Read-Eval-Print Loop described
// in the spec's external-interfaces section. It is presentation only: it
// owns line editing and color, and hands every line to the driver package,
// which owns the actual lex/parse/eval pipeline. The interpreter it
// creates is never replaced, so bindings made on one line stay visible on
// the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gomix-lang/golox/driver"
	"github.com/gomix-lang/golox/interpreter"
)

// Prompt is the REPL's input prompt, shown before every line.
const Prompt = "> "

var errorColor = color.New(color.FgRed)

// Repl is a single interactive session. Banner is printed once at
// startup; it may be empty.
type Repl struct {
	Banner string
}

// New creates a Repl with the given startup banner.
func New(banner string) *Repl {
	return &Repl{Banner: banner}
}

// Start runs the read-eval-print loop against writer until the user types
// `.exit` or sends EOF (Ctrl+D), at which point it returns normally. A
// runtime, parse, or scan error on one line is printed and the loop
// re-prompts; it never terminates the session.
func (r *Repl) Start(writer io.Writer) error {
	if r.Banner != "" {
		io.WriteString(writer, r.Banner+"\n")
	}

	rl, err := readline.New(Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := interpreter.New()
	interp.Writer = writer

	for {
		line, err := rl.Readline()
		if err != nil { // EOF (Ctrl+D) or read error
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			return nil
		}
		rl.SaveHistory(line)

		if err := driver.Run(interp, line); err != nil {
			errorColor.Fprintln(writer, err.Error())
		}
	}
}
