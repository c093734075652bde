package parser

import (
	"git.sr.ht/~mango/stk/fault"
	"git.sr.ht/~mango/stk/lexer"
)

// errExpected reports that want was needed where got was found.  Running
// into the end of file is always a truncation.
func errExpected(want string, got lexer.Token) error {
	r := fault.Expected
	if got.Kind == lexer.TokEof {
		r = fault.Truncated
	}
	return fault.New(r, got.Pos.Line, got.Pos.Col,
		"Expected %s but got %s", want, got)
}

func errAt(r fault.Reason, t lexer.Token, format string, args ...any) error {
	return fault.New(r, t.Pos.Line, t.Pos.Col, format, args...)
}
