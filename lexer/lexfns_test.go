package lexer

import (
	"errors"
	"testing"

	"git.sr.ht/~mango/stk/fault"
)

func getTokens(t *testing.T, s string) []Token {
	xs, err := Tokenize(s)
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	return xs
}

func assertTokens(t *testing.T, xs []TokenType, ys []Token) {
	for i := range xs {
		if i >= len(ys) {
			break
		}
		if xs[i] != ys[i].Kind {
			t.Fatalf("Expected token %s at position %d but got %s",
				Token{Kind: xs[i]}, i, ys[i])
		}
	}

	if len(xs) != len(ys) {
		t.Fatalf("Expected %d tokens but got %d", len(xs), len(ys))
	}
}

func TestEmitTokenTypes(t *testing.T) {
	xs := []TokenType{
		TokStack, TokIdent, TokColon, TokType, TokIntoStream, TokString,
		TokStack, TokIdent, TokColon, TokType,
		TokOut, TokIntoStream, TokIdent, TokAdd, TokNumber, TokAdd, TokString,
		TokIn, TokFromStream, TokIdent,
		TokSub, TokMul, TokDel, TokUnknown, TokUnknown,
	}
	s := `
	stack greeting : text <- "hello\n"
	stack n:num
	out <- greeting + 42 + "!"
	in -> name
	- * / # <`

	assertTokens(t, xs, getTokens(t, s))
}

func TestTokenValues(t *testing.T) {
	ys := getTokens(t, `stack my_var : num <- 1234 "a b"`)

	if ys[1].Val != "my_var" {
		t.Fatalf("Expected identifier ‘my_var’ but got %s", ys[1])
	}
	if ys[3].Val != "num" {
		t.Fatalf("Expected type ‘num’ but got %s", ys[3])
	}
	if ys[5].Num != 1234 {
		t.Fatalf("Expected number 1234 but got %d", ys[5].Num)
	}
	if ys[6].Val != "a b" {
		t.Fatalf("Expected string ‘a b’ but got ‘%s’", ys[6].Val)
	}
}

func TestIdentifierStopsAtDigit(t *testing.T) {
	assertTokens(t, []TokenType{TokIdent, TokNumber, TokIdent},
		getTokens(t, "x1y"))
}

func TestStringVerbatim(t *testing.T) {
	ys := getTokens(t, `"a\nb"`)
	if ys[0].Val != `a\nb` {
		t.Fatalf("Expected raw ‘a\\nb’ but got ‘%s’", ys[0].Val)
	}
	if Unescape(ys[0].Val) != "a\nb" {
		t.Fatalf("Expected escape to resolve to a newline")
	}
}

func TestUnterminatedString(t *testing.T) {
	ys := getTokens(t, `out <- "never closed`)
	if n := len(ys); n != 3 || ys[2].Kind != TokString || ys[2].Val != "never closed" {
		t.Fatalf("Expected lenient string token but got %v", ys)
	}

	l := New(`out <- "never closed`)
	l.Strict = true
	_, err := l.Run()
	if !errors.Is(err, fault.Unterminated) {
		t.Fatalf("Expected unterminated fault but got %v", err)
	}
}

func TestMalformedNumber(t *testing.T) {
	_, err := Tokenize("stack n : num <- 99999999999999999999")
	if !errors.Is(err, fault.MalformedNumber) {
		t.Fatalf("Expected malformed number fault but got %v", err)
	}
}

func TestTokenPositions(t *testing.T) {
	ys := getTokens(t, "stack x : num\n  out <- x")
	want := []Pos{{1, 1}, {1, 7}, {1, 9}, {1, 11}, {2, 3}, {2, 7}, {2, 10}}

	for i, p := range want {
		if ys[i].Pos != p {
			t.Fatalf("Expected %s at %s but got %s", ys[i], p, ys[i].Pos)
		}
	}
}

func TestCarriageReturn(t *testing.T) {
	assertTokens(t, []TokenType{TokOut, TokIntoStream, TokNumber},
		getTokens(t, "out <- 1\r\n"))
}
