/*
File   : monkey/eval/builtins.go
Package: eval
*/
package eval

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gophermonkey/monkey/object"
)

// stdin is the buffered reader `input` reads a line from. It is a package
// variable, not a fresh bufio.Reader per call, because bufio.Reader
// buffers ahead of what it returns — a new reader per call would drop
// already-buffered input on a REPL session that calls `input` more than
// once. Grounded on std/io.go's prompt-then-bufio.Reader.ReadString('\n')
// approach in the teacher's stdlib.
var stdin = bufio.NewReader(os.Stdin)

// builtins is the fixed table of built-in functions §4.4 defines, modeled
// on the registry pattern in the teacher's objects/builtins.go.
var builtins = map[string]*object.Builtin{
	"len":   {Fn: builtinLen},
	"puts":  {Fn: builtinPuts},
	"input": {Fn: builtinInput},
}

// builtinLen returns the character count of a String argument (§4.4).
func builtinLen(args ...object.Object) object.Object {
	if len(args) != 1 {
		return newError("len takes 1 argument(s), got %d", len(args))
	}

	str, ok := args[0].(*object.String)
	if !ok {
		return newError("len takes STRING, got %s", args[0].Type())
	}

	return &object.Integer{Value: int64(utf8.RuneCountInString(str.Value))}
}

// builtinPuts prints each argument's canonical form on its own line,
// exactly as Inspect renders it (so strings print without surrounding
// quotes, unlike the REPL's own result echo), and always returns NULL.
func builtinPuts(args ...object.Object) object.Object {
	for _, arg := range args {
		fmt.Println(arg.Inspect())
	}
	return object.NULL
}

// builtinInput optionally prints a prompt, then reads and returns one
// line from standard input with its trailing newline stripped.
func builtinInput(args ...object.Object) object.Object {
	if len(args) > 1 {
		return newError("input takes 0 or 1 argument(s), got %d", len(args))
	}

	if len(args) == 1 {
		prompt, ok := args[0].(*object.String)
		if !ok {
			return newError("input takes STRING, got %s", args[0].Type())
		}
		fmt.Print(prompt.Value)
	}

	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return &object.String{Value: ""}
	}

	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}

	return &object.String{Value: line}
}
