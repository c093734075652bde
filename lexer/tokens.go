package lexer

import "fmt"

type TokenType int

const (
	// TokEof is never emitted by the lexer.  The parser returns it when asked
	// for a token past the end of input.
	TokEof TokenType = iota

	TokStack // The ‘stack’ keyword
	TokOut   // The ‘out’ keyword
	TokIn    // The ‘in’ keyword
	TokType  // A builtin type name, ‘text’ or ‘num’

	TokNumber // An integer literal
	TokString // A double-quoted string literal
	TokIdent  // A variable name

	TokColon      // The ‘:’ separator
	TokIntoStream // The ‘<-’ operator
	TokFromStream // The ‘->’ operator

	TokAdd // The ‘+’ operator
	TokSub // The ‘-’ operator
	TokMul // The ‘*’ operator
	TokDel // The ‘/’ operator

	TokUnknown // Any character no other rule accepts
)

// TokAssign is the ‘<-’ operator as it is used in declarations.
const TokAssign = TokIntoStream

// Pos is a 1-based source position.  Columns count runes, not bytes.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Token struct {
	Kind TokenType
	Val  string // Literal text, identifier or type name
	Num  int64  // Value of a TokNumber
	Pos  Pos
}

// Maximum length of a string before truncation in diagnostics printing
const maxStrLen = 20

func (t Token) String() string {
	switch t.Kind {
	case TokEof:
		return "end of file"

	case TokStack:
		return "‘stack’"
	case TokOut:
		return "‘out’"
	case TokIn:
		return "‘in’"
	case TokType, TokIdent:
		return "‘" + t.Val + "’"

	case TokNumber:
		return fmt.Sprintf("‘%d’", t.Num)
	case TokString:
		if len(t.Val) > maxStrLen {
			return fmt.Sprintf("‘\"%.*s…’", maxStrLen, t.Val)
		}
		return "‘\"" + t.Val + "\"’"

	case TokColon:
		return "‘:’"
	case TokIntoStream:
		return "‘<-’"
	case TokFromStream:
		return "‘->’"

	case TokAdd:
		return "‘+’"
	case TokSub:
		return "‘-’"
	case TokMul:
		return "‘*’"
	case TokDel:
		return "‘/’"

	case TokUnknown:
		return "unknown character ‘" + t.Val + "’"
	}

	panic("unreachable")
}
