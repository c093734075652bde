package vm

import (
	"strconv"
	"strings"

	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/fault"
	"git.sr.ht/~mango/stk/lexer"
	"git.sr.ht/~mango/stk/pkg/stack"
)

// eval returns the text an expression evaluates to.  Addition is always
// concatenation, even when both operands are numbers.
//
// Chains of ‘+’ nest to the left, so rather than recursing down the left
// spine we push each right operand and then evaluate them in source order.
func (vm *VM) eval(e ast.Expr) (string, error) {
	rhs := stack.New[ast.Expr](4)
	for {
		a, ok := e.(*ast.Addition)
		if !ok {
			break
		}
		rhs.Push(a.Right)
		e = a.Left
	}

	sb := strings.Builder{}
	for {
		s, err := vm.evalTerm(e)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)

		next, ok := rhs.Pop()
		if !ok {
			return sb.String(), nil
		}
		e = next
	}
}

func (vm *VM) evalTerm(e ast.Expr) (string, error) {
	switch e := e.(type) {
	case ast.Identifier:
		v, ok := vm.env.Get(e.Name)
		if !ok {
			return "", errUndeclared(e)
		}
		return lexer.Unescape(v), nil
	case ast.StringLiteral:
		return lexer.Unescape(e.Val), nil
	case ast.NumberLiteral:
		return strconv.FormatInt(e.Val, 10), nil
	case *ast.Addition:
		return vm.eval(e)
	}
	return "", errAt(fault.UnsupportedExpr, e,
		"unsupported expression in evaluation: ‘%s’", e)
}
