package ast

import (
	"strconv"

	"git.sr.ht/~mango/stk/lexer"
)

// Program is a complete script, one statement per element
type Program = []Expr

// Expr is either a statement or one of its operands.  The set of
// implementations is closed; see the isExpr methods below.
type Expr interface {
	Position() lexer.Pos
	String() string
	isExpr()
}

// StackDecl declares a variable of type Type bound to Name
type StackDecl struct {
	Name  string
	Type  Type
	Value Expr // Initializer literal, or the zero value of Type
	Pos   lexer.Pos
}

// Addition concatenates the text of its operands
type Addition struct {
	Left, Right Expr
	Pos         lexer.Pos
}

type StringLiteral struct {
	Val string // Raw text, escapes unresolved
	Pos lexer.Pos
}

type NumberLiteral struct {
	Val int64
	Pos lexer.Pos
}

type Identifier struct {
	Name string
	Pos  lexer.Pos
}

// Output prints the value of Inner
type Output struct {
	Inner Expr
	Pos   lexer.Pos
}

// Input overwrites the variable named by Inner with a line of input
type Input struct {
	Inner Expr
	Pos   lexer.Pos
}

func (e *StackDecl) Position() lexer.Pos    { return e.Pos }
func (e *Addition) Position() lexer.Pos     { return e.Pos }
func (e StringLiteral) Position() lexer.Pos { return e.Pos }
func (e NumberLiteral) Position() lexer.Pos { return e.Pos }
func (e Identifier) Position() lexer.Pos    { return e.Pos }
func (e *Output) Position() lexer.Pos       { return e.Pos }
func (e *Input) Position() lexer.Pos        { return e.Pos }

func (e *StackDecl) String() string {
	return "stack " + e.Name + " : " + string(e.Type) + " <- " + e.Value.String()
}

func (e *Addition) String() string {
	return e.Left.String() + " + " + e.Right.String()
}

func (e StringLiteral) String() string { return `"` + e.Val + `"` }
func (e NumberLiteral) String() string { return strconv.FormatInt(e.Val, 10) }
func (e Identifier) String() string    { return e.Name }
func (e *Output) String() string       { return "out <- " + e.Inner.String() }
func (e *Input) String() string        { return "in -> " + e.Inner.String() }

func (_ *StackDecl) isExpr()    {}
func (_ *Addition) isExpr()     {}
func (_ StringLiteral) isExpr() {}
func (_ NumberLiteral) isExpr() {}
func (_ Identifier) isExpr()    {}
func (_ *Output) isExpr()       {}
func (_ *Input) isExpr()        {}
