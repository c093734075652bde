package lexer

import (
	"unicode"

	"golang.org/x/exp/slices"
)

var (
	keywords = map[string]TokenType{
		"stack": TokStack,
		"out":   TokOut,
		"in":    TokIn,
	}
	typeNames = []string{"text", "num"}
)

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// IsTypeName reports whether s names one of the builtin types.
func IsTypeName(s string) bool {
	return slices.Contains(typeNames, s)
}

// IsLiteral reports whether kind is a literal usable as an initializer.
func IsLiteral(kind TokenType) bool {
	return kind == TokString || kind == TokNumber
}

// IsTerm reports whether kind may appear as an operand of ‘+’.
func IsTerm(kind TokenType) bool {
	return kind == TokIdent || IsLiteral(kind)
}
