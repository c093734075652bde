package parser

import (
	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/fault"
	"git.sr.ht/~mango/stk/lexer"
)

func (p *parser) parseProgram() (ast.Program, error) {
	prog := ast.Program{}

	for {
		var (
			stmt ast.Expr
			err  error
		)

		switch t := p.peek(); t.Kind {
		case lexer.TokEof:
			return prog, nil
		case lexer.TokStack:
			stmt, err = p.parseStackDecl()
		case lexer.TokOut:
			stmt, err = p.parseOutput()
		case lexer.TokIn:
			stmt, err = p.parseInput()
		default:
			err = errAt(fault.UnexpectedToken, t,
				"Expected ‘stack’, ‘out’ or ‘in’ but got %s", t)
		}

		if err != nil {
			return nil, err
		}
		prog = append(prog, stmt)
	}
}

// declShape is the token sequence every declaration starts with after the
// ‘stack’ keyword.
var declShape = [...]lexer.TokenType{lexer.TokIdent, lexer.TokColon, lexer.TokType}

func (p *parser) parseStackDecl() (ast.Expr, error) {
	kw := p.next() // Consume ‘stack’

	for i, k := range declShape {
		switch t := p.peekN(i); {
		case t.Kind == k:
		case t.Kind == lexer.TokEof:
			return nil, errAt(fault.Truncated, t,
				"unexpected end of file in stack declaration")
		default:
			return nil, errAt(fault.InvalidDecl, kw,
				"invalid stack declaration: unexpected %s", t)
		}
	}

	name, _, typ := p.next(), p.next(), p.next()
	if !lexer.IsTypeName(typ.Val) {
		return nil, errAt(fault.UnsupportedType, typ,
			"unsupported type ‘%s’", typ.Val)
	}

	decl := &ast.StackDecl{Name: name.Val, Type: ast.Type(typ.Val), Pos: kw.Pos}

	if p.peek().Kind != lexer.TokAssign {
		decl.Value, _ = ast.ZeroValue(decl.Type, typ.Pos)
		return decl, nil
	}

	p.next() // Consume ‘<-’
	t := p.next()
	if !lexer.IsLiteral(t.Kind) {
		return nil, errExpected("literal after ‘<-’", t)
	}
	decl.Value = ast.NewLiteral(t)
	return decl, nil
}

func (p *parser) parseOutput() (ast.Expr, error) {
	kw := p.next() // Consume ‘out’

	if t := p.next(); t.Kind != lexer.TokIntoStream {
		return nil, errExpected("‘<-’ after ‘out’", t)
	}

	e, err := p.parseAddition()
	if err != nil {
		return nil, err
	}
	return &ast.Output{Inner: e, Pos: kw.Pos}, nil
}

// parseAddition folds a chain of terms joined by ‘+’ to the left, so that
// a + b + c becomes ((a + b) + c).
func (p *parser) parseAddition() (ast.Expr, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.peek().Kind == lexer.TokAdd {
		p.next() // Consume ‘+’
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Addition{Left: lhs, Right: rhs, Pos: lhs.Position()}
	}

	return lhs, nil
}

func (p *parser) parseTerm() (ast.Expr, error) {
	t := p.next()
	if !lexer.IsTerm(t.Kind) {
		return nil, errExpected("identifier or literal", t)
	}
	return ast.NewTerm(t), nil
}

func (p *parser) parseInput() (ast.Expr, error) {
	kw := p.next() // Consume ‘in’

	if t := p.next(); t.Kind != lexer.TokFromStream {
		return nil, errExpected("‘->’ after ‘in’", t)
	}

	t := p.next()
	if t.Kind != lexer.TokIdent {
		return nil, errExpected("identifier after ‘->’", t)
	}
	return &ast.Input{Inner: ast.NewTerm(t), Pos: kw.Pos}, nil
}
