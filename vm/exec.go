package vm

import (
	"strconv"

	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/builtin"
	"git.sr.ht/~mango/stk/fault"
)

func (vm *VM) exec(stmt ast.Expr) error {
	switch s := stmt.(type) {
	case *ast.StackDecl:
		return vm.execStackDecl(s)
	case *ast.Output:
		return vm.execOutput(s)
	case *ast.Input:
		return vm.execInput(s)
	}
	return errAt(fault.UnsupportedExpr, stmt,
		"‘%s’ is not a statement", stmt)
}

func (vm *VM) execStackDecl(d *ast.StackDecl) error {
	switch d.Type {
	case ast.TypeText:
		s, ok := d.Value.(ast.StringLiteral)
		if !ok {
			return errAt(fault.TypeMismatch, d.Value,
				"cannot initialize ‘%s’ of type text with %s", d.Name, d.Value)
		}
		vm.env.Set(d.Name, s.Val)
	case ast.TypeNum:
		n, ok := d.Value.(ast.NumberLiteral)
		if !ok {
			return errAt(fault.TypeMismatch, d.Value,
				"cannot initialize ‘%s’ of type num with %s", d.Name, d.Value)
		}
		vm.env.Set(d.Name, strconv.FormatInt(n.Val, 10))
	default:
		return errAt(fault.UnsupportedType, d, "unsupported type ‘%s’", d.Type)
	}
	return nil
}

func (vm *VM) execOutput(o *ast.Output) error {
	s, err := vm.eval(o.Inner)
	if err != nil {
		return err
	}
	if err := builtin.Echo(vm.out, s); err != nil {
		return fault.Wrap(fault.IO, err, "failed to write output")
	}
	return nil
}

func (vm *VM) execInput(in *ast.Input) error {
	id, ok := in.Inner.(ast.Identifier)
	if !ok {
		return errAt(fault.UnsupportedExpr, in.Inner,
			"cannot read input into %s", in.Inner)
	}
	if !vm.env.Has(id.Name) {
		return errUndeclared(id)
	}

	line, err := builtin.ReadLine(vm.in)
	if err != nil {
		return fault.Wrap(fault.IO, err, "failed to read input for ‘%s’", id.Name)
	}
	vm.env.Set(id.Name, line)
	return nil
}
