/*
File   : monkey/object/environment.go
Package: object
*/
package object

// Environment is a mapping from identifier name to Object, plus an
// optional outer reference to a parent environment. Lookup walks the outer
// chain; Set always writes to the innermost frame (§3.4). This is the Go
// counterpart of the teacher's scope.Scope, trimmed to the one binding form
// (`let`) the spec has — no Consts/LetVars/LetTypes bookkeeping, since
// Monkey never reassigns a `let` name.
type Environment struct {
	store map[string]Object
	outer *Environment
}

// NewEnvironment creates a root environment with no parent — the top-level
// scope a REPL session or file-mode run starts from.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// NewEnclosedEnvironment creates a child environment whose outer is the
// given environment. Function calls use this to bind parameters in a fresh
// frame without disturbing the captured closure environment (§3.4, §4.3).
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{store: make(map[string]Object), outer: outer}
}

// Get looks up name in this environment, then walks outward through outer
// frames until it is found or the chain is exhausted.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this environment — never in an outer frame,
// even if name already exists there. A `let` inside a function body, which
// runs in its own frame, shadows an outer binding of the same name rather
// than mutating it. An `if` block has no frame of its own, so a `let` there
// writes to the enclosing frame.
func (e *Environment) Set(name string, val Object) Object {
	e.store[name] = val
	return val
}
