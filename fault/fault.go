// Package fault holds the one error type shared by every stage of the
// pipeline.  A fault always aborts the stage that raised it.
package fault

import "fmt"

// Reason classifies a fault.  Reasons are themselves errors so that callers
// can match them with errors.Is.
type Reason int

const (
	_ Reason = iota

	Truncated       // End of input inside a construct
	UnsupportedType // Declared type other than ‘text’ or ‘num’
	TypeMismatch    // Initializer literal does not match the declared type
	Undeclared      // Reference to a variable that was never declared
	UnexpectedToken // Token that cannot start a statement
	InvalidDecl     // ‘stack’ followed by neither declaration shape
	Expected        // Wrong token inside a construct
	MalformedNumber // Digits that do not fit in an int64
	Unterminated    // Unterminated string literal (strict mode only)
	UnsupportedExpr // Node shape the evaluator cannot run
	IO              // Failed read or write
)

var descriptions = [...]string{
	Truncated:       "truncated input",
	UnsupportedType: "unsupported type",
	TypeMismatch:    "type mismatch",
	Undeclared:      "undeclared variable",
	UnexpectedToken: "unexpected token",
	InvalidDecl:     "invalid stack declaration",
	Expected:        "unexpected token in construct",
	MalformedNumber: "malformed number",
	Unterminated:    "unterminated string",
	UnsupportedExpr: "unsupported expression",
	IO:              "I/O failure",
}

func (r Reason) Error() string {
	if r <= 0 || int(r) >= len(descriptions) {
		return fmt.Sprintf("fault(%d)", int(r))
	}
	return descriptions[r]
}

// Error is a fault raised at a position in the source.  Line and Col are
// 1-based; a zero Line means the position is unknown.
type Error struct {
	Reason    Reason
	Line, Col int
	Msg       string
	Err       error // Underlying cause, if any
}

// New returns a fault at the given position with a formatted message.
func New(r Reason, line, col int, format string, args ...any) *Error {
	return &Error{
		Reason: r,
		Line:   line,
		Col:    col,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// Wrap returns a positionless fault caused by err.
func Wrap(r Reason, err error, format string, args ...any) *Error {
	e := New(r, 0, 0, format, args...)
	e.Err = err
	return e
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Reason.Error()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Line > 0 {
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, msg)
	}
	return msg
}

func (e *Error) Is(target error) bool {
	r, ok := target.(Reason)
	return ok && r == e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}
