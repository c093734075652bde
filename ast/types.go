package ast

import "git.sr.ht/~mango/stk/lexer"

// Type is the declared type of a variable.  Only TypeText and TypeNum are
// supported; other values only arise from hand-built trees.
type Type string

const (
	TypeText Type = "text"
	TypeNum  Type = "num"
)

// ZeroValue returns the initializer used when a declaration of type t omits
// one.  The boolean is false for unsupported types.
func ZeroValue(t Type, pos lexer.Pos) (Expr, bool) {
	switch t {
	case TypeText:
		return StringLiteral{Pos: pos}, true
	case TypeNum:
		return NumberLiteral{Pos: pos}, true
	}
	return nil, false
}

// NewLiteral converts a literal token into its leaf node.
func NewLiteral(t lexer.Token) Expr {
	switch t.Kind {
	case lexer.TokString:
		return StringLiteral{Val: t.Val, Pos: t.Pos}
	case lexer.TokNumber:
		return NumberLiteral{Val: t.Num, Pos: t.Pos}
	}
	panic("unreachable")
}

// NewTerm converts an operand token of ‘+’ into its leaf node.
func NewTerm(t lexer.Token) Expr {
	if t.Kind == lexer.TokIdent {
		return Identifier{Name: t.Val, Pos: t.Pos}
	}
	return NewLiteral(t)
}
