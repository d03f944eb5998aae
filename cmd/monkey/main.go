/*
File   : monkey/cmd/monkey/main.go
Package: main
*/

// Command monkey is the Monkey interpreter's CLI entry point. With no
// arguments it starts an interactive REPL; given a single file path it
// evaluates that file and exits, per §6. Mode dispatch follows
// conneroisu/gix's main.go (REPL vs. file-argument), rebuilt on
// github.com/spf13/cobra rather than the stdlib flag package, since Cobra
// is the pack's CLI-framework entry and the teacher itself ships no CLI
// worth keeping (its main.go is a demo, not a command shell — see
// DESIGN.md).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophermonkey/monkey/eval"
	"github.com/gophermonkey/monkey/lexer"
	"github.com/gophermonkey/monkey/object"
	"github.com/gophermonkey/monkey/parser"
	"github.com/gophermonkey/monkey/repl"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monkey [file]",
		Short: "Monkey is a tree-walking interpreter for the Monkey language",
		Long: "Monkey evaluates Monkey source files or, given no arguments, " +
			"starts an interactive REPL.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				repl.New().Start(os.Stdout)
				return nil
			}
			return runFile(args[0])
		},
	}
	return cmd
}

// runFile reads path, evaluates it in a fresh environment, and prints the
// result of its final statement. A parse or evaluation error is printed
// to standard error and returned through cobra's Execute, after which main
// exits with status 1 (§6's "non-zero on any uncaught error").
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	l := lexer.New(string(src))
	p := parser.New(l)
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) > 0 {
		for _, msg := range errs {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("parse error in %s", path)
	}

	env := object.NewEnvironment()
	result := eval.Eval(program, env)

	if result != nil && result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return fmt.Errorf("evaluation error in %s", path)
	}

	if result != nil {
		fmt.Println(result.Inspect())
	}
	return nil
}
