package vm

import (
	"bufio"
	"io"

	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/builtin"
	"git.sr.ht/~mango/stk/log"
	"git.sr.ht/~mango/stk/vm/vars"
)

// VM runs programs against a single environment.  Successive calls to Run
// share that environment, which is what the interactive loop relies on.
type VM struct {
	in  *bufio.Reader
	out io.Writer
	env *vars.Env
}

// New returns a VM with an empty environment that reads lines for ‘in’
// statements from in and writes ‘out’ statements to out.
func New(in io.Reader, out io.Writer) *VM {
	return &VM{
		in:  builtin.Reader(in),
		out: out,
		env: vars.New(),
	}
}

// Env returns the environment of the VM.
func (vm *VM) Env() *vars.Env {
	return vm.env
}

// Run executes the statements of prog in order.  The first fault stops the
// program; the side effects of the statements before it remain.
func (vm *VM) Run(prog ast.Program) error {
	for _, stmt := range prog {
		log.Tracef("%s: %s", stmt.Position(), stmt)
		if err := vm.exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
