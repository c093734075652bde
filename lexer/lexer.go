package lexer

import (
	"unicode/utf8"

	"git.sr.ht/~mango/stk/fault"
)

const eof rune = -1

type lexer struct {
	input string  // The input string to lex
	start int     // The start of the current token in input
	pos   int     // The pos of the cursor in input
	width int     // Width of the last rune lexed
	line  int     // Line of the cursor
	col   int     // Column of the cursor, in runes
	first Pos     // Position of the current token
	out   []Token // Tokens lexed so far
	err   error   // Fault that stopped the lexer

	// Strict makes an unterminated string literal a fault instead of
	// yielding whatever was scanned.
	Strict bool
}

func New(input string) *lexer {
	return &lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Run lexes the entire input and returns the tokens in source order.
func (l *lexer) Run() ([]Token, error) {
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.out, nil
}

// Tokenize is shorthand for New(input).Run().
func Tokenize(input string) ([]Token, error) {
	return New(input).Run()
}

// mark records the start of a new token at the cursor.
func (l *lexer) mark() {
	l.start = l.pos
	l.first = Pos{l.line, l.col}
}

func (l *lexer) emit(t TokenType) {
	l.emitVal(t, l.input[l.start:l.pos])
}

func (l *lexer) emitVal(t TokenType, val string) {
	l.out = append(l.out, Token{Kind: t, Val: val, Pos: l.first})
	l.start = l.pos
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *lexer) errorf(r fault.Reason, format string, args ...any) lexFn {
	l.err = fault.New(r, l.first.Line, l.first.Col, format, args...)
	return nil
}
