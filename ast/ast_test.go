package ast

import (
	"testing"

	"git.sr.ht/~mango/stk/lexer"
)

func TestString(t *testing.T) {
	a := Identifier{Name: "a"}
	tests := []struct {
		e    Expr
		want string
	}{
		{&StackDecl{Name: "x", Type: TypeText, Value: StringLiteral{Val: `hi\n`}},
			`stack x : text <- "hi\n"`},
		{&Output{Inner: &Addition{
			Left:  &Addition{Left: a, Right: NumberLiteral{Val: 1}},
			Right: StringLiteral{Val: "!"},
		}}, `out <- a + 1 + "!"`},
		{&Input{Inner: a}, "in -> a"},
	}

	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Expected ‘%s’ but got ‘%s’", tt.want, got)
		}
	}
}

func TestZeroValue(t *testing.T) {
	if e, ok := ZeroValue(TypeText, lexer.Pos{}); !ok || e != (StringLiteral{}) {
		t.Fatalf("Expected empty string literal but got %v", e)
	}
	if e, ok := ZeroValue(TypeNum, lexer.Pos{}); !ok || e != (NumberLiteral{}) {
		t.Fatalf("Expected zero number literal but got %v", e)
	}
	if _, ok := ZeroValue("bool", lexer.Pos{}); ok {
		t.Fatalf("Expected ‘bool’ to have no zero value")
	}
}

func TestNewTerm(t *testing.T) {
	tok := lexer.Token{Kind: lexer.TokIdent, Val: "x", Pos: lexer.Pos{Line: 2, Col: 4}}
	e := NewTerm(tok)
	if id, ok := e.(Identifier); !ok || id.Name != "x" || id.Pos != tok.Pos {
		t.Fatalf("Expected identifier ‘x’ at %s but got %v", tok.Pos, e)
	}

	tok = lexer.Token{Kind: lexer.TokNumber, Num: 7}
	if n, ok := NewTerm(tok).(NumberLiteral); !ok || n.Val != 7 {
		t.Fatalf("Expected number literal 7 but got %v", NewTerm(tok))
	}
}
