package vm

import (
	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/fault"
)

func errAt(r fault.Reason, e ast.Expr, format string, args ...any) error {
	if e == nil {
		return fault.New(r, 0, 0, format, args...)
	}
	p := e.Position()
	return fault.New(r, p.Line, p.Col, format, args...)
}

func errUndeclared(id ast.Identifier) error {
	return errAt(fault.Undeclared, id, "variable ‘%s’ is not declared", id.Name)
}
