package parser

import (
	"git.sr.ht/~mango/stk/ast"
	"git.sr.ht/~mango/stk/lexer"
)

type parser struct {
	toks []lexer.Token
	pos  int
	end  lexer.Pos // Reported position of end of file
}

// Parse builds the statements of a program from its tokens.  Parsing stops
// at the first fault.
func Parse(toks []lexer.Token) (ast.Program, error) {
	p := parser{toks: toks, end: lexer.Pos{Line: 1, Col: 1}}
	if n := len(toks); n > 0 {
		p.end = toks[n-1].Pos
	}
	return p.parseProgram()
}

func (p *parser) next() lexer.Token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) peek() lexer.Token {
	return p.peekN(0)
}

// peekN returns the token n places after the cursor without consuming
// anything.
func (p *parser) peekN(n int) lexer.Token {
	if i := p.pos + n; i < len(p.toks) {
		return p.toks[i]
	}
	return lexer.Token{Kind: lexer.TokEof, Pos: p.end}
}
