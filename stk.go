// Package stk runs programs written in stk, a small language of stack
// declarations, output and input:
//
//	stack name : text <- "world"
//	in -> name
//	out <- "hello, " + name + "\n"
//
// Source text is lexed, parsed and then executed by a tree-walking VM.
package stk

import (
	"io"

	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/config"
	"git.sr.ht/~mango/stk/lexer"
	"git.sr.ht/~mango/stk/parser"
	"git.sr.ht/~mango/stk/vm"
	"git.sr.ht/~mango/stk/vm/vars"
)

// Compile lexes and parses src.
func Compile(src string, strict bool) (ast.Program, error) {
	l := lexer.New(src)
	l.Strict = strict
	toks, err := l.Run()
	if err != nil {
		return nil, err
	}
	return parser.Parse(toks)
}

// Run compiles and executes src against a fresh environment.
func Run(src string, in io.Reader, out io.Writer) error {
	prog, err := Compile(src, false)
	if err != nil {
		return err
	}
	return vm.New(in, out).Run(prog)
}

// Interpreter executes successive pieces of source against one
// environment, reusing compiled programs for source it has seen before.  It
// is not safe for concurrent use.
type Interpreter struct {
	vm     *vm.VM
	cache  *Cache
	strict bool
}

// New returns an interpreter configured by cfg.
func New(cfg config.Config, in io.Reader, out io.Writer) (*Interpreter, error) {
	c, err := NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Interpreter{
		vm:     vm.New(in, out),
		cache:  c,
		strict: cfg.Strict,
	}, nil
}

// Compile is like the package-level Compile but goes through the cache.
func (i *Interpreter) Compile(src string) (ast.Program, error) {
	return i.cache.Compile(src, i.strict)
}

// Exec compiles and runs src.  Variables declared by earlier calls remain
// visible.
func (i *Interpreter) Exec(src string) error {
	prog, err := i.Compile(src)
	if err != nil {
		return err
	}
	return i.vm.Run(prog)
}

func (i *Interpreter) Env() *vars.Env {
	return i.vm.Env()
}
