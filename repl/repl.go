/*
File   : monkey/repl/repl.go
Package: repl
*/

// Package repl implements the Monkey Read-Eval-Print Loop, adapted from
// the teacher's own repl.go: a readline-backed prompt with colored output,
// persistent across lines environment, and panic recovery around each
// line's parse+eval so a runtime bug never takes the whole session down
// (§6's REPL contract).
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gophermonkey/monkey/eval"
	"github.com/gophermonkey/monkey/lexer"
	"github.com/gophermonkey/monkey/object"
	"github.com/gophermonkey/monkey/parser"
)

const exitCommand = ".exit"

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
  __  __             _
 |  \/  | ___  _ __ | | _____ _   _
 | |\/| |/ _ \| '_ \| |/ / _ \ | | |
 | |  | | (_) | | | |   <  __/ |_| |
 |_|  |_|\___/|_| |_|_|\_\___|\__, |
                               |___/
`

// Repl holds the cosmetic configuration the teacher's Repl struct carries
// (banner, version, prompt), trimmed to what SPEC_FULL.md's REPL actually
// prints — no separate Author/License fields, since Monkey's REPL banner
// names neither.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New returns a Repl configured with Monkey's banner, version, and prompt.
func New() *Repl {
	return &Repl{Banner: banner, Version: "0.1.0", Prompt: "monkey>> "}
}

func (r *Repl) printBanner(writer io.Writer) {
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintln(writer, strings.Repeat("-", 40))
	yellowColor.Fprintf(writer, "Monkey %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type Monkey code and press enter.")
	cyanColor.Fprintln(writer, "Type '.exit' to quit.")
	blueColor.Fprintln(writer, strings.Repeat("-", 40))
}

// Start runs the REPL loop until the user types .exit or sends EOF
// (Ctrl+D). Every line is parsed and evaluated against the same
// *object.Environment, so `let` bindings and function definitions persist
// across lines (§6).
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(writer, "Good Bye!")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == exitCommand {
			fmt.Fprintln(writer, "Good Bye!")
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, env)
	}
}

// evalLine parses and evaluates a single line, printing its result or
// error, with a panic recovery boundary so an evaluator bug surfaces as a
// message rather than crashing the session.
func (r *Repl) evalLine(writer io.Writer, line string, env *object.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	l := lexer.New(line)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := eval.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	if str, ok := result.(*object.String); ok {
		yellowColor.Fprintf(writer, "%q\n", str.Value)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
