package lexer

import (
	"strconv"
	"strings"

	"git.sr.ht/~mango/stk/fault"
)

type lexFn func(*lexer) lexFn

func lexDefault(l *lexer) lexFn {
	for {
		l.mark()
		switch r := l.next(); {
		case r == eof:
			return nil
		case isSpace(r):
		case r == ':':
			l.emit(TokColon)
		case r == '<' && l.peek() == '-':
			l.next()
			l.emit(TokIntoStream)
		case r == '-' && l.peek() == '>':
			l.next()
			l.emit(TokFromStream)
		case r == '-':
			l.emit(TokSub)
		case r == '+':
			l.emit(TokAdd)
		case r == '*':
			l.emit(TokMul)
		case r == '/':
			l.emit(TokDel)
		case r == '"':
			return lexString
		case isDigit(r):
			return lexNumber
		case isIdentStart(r):
			return lexIdent
		default:
			l.emit(TokUnknown)
		}
	}
}

// lexString is entered after the opening quote.  The body is taken verbatim;
// escape sequences are resolved at evaluation time.
func lexString(l *lexer) lexFn {
	body := l.pos
	for {
		switch r := l.next(); r {
		case eof:
			if l.Strict {
				return l.errorf(fault.Unterminated,
					"unterminated string literal ‘\"%s’", l.input[body:l.pos])
			}
			l.emitVal(TokString, l.input[body:l.pos])
			return nil
		case '"':
			l.emitVal(TokString, l.input[body:l.pos-1])
			return lexDefault
		}
	}
}

func lexNumber(l *lexer) lexFn {
	for isDigit(l.peek()) {
		l.next()
	}

	s := l.input[l.start:l.pos]
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return l.errorf(fault.MalformedNumber,
			"malformed number ‘%s’: %s", s, err.(*strconv.NumError).Err)
	}
	l.out = append(l.out, Token{Kind: TokNumber, Val: s, Num: n, Pos: l.first})
	return lexDefault
}

func lexIdent(l *lexer) lexFn {
	for isIdentRune(l.peek()) {
		l.next()
	}

	s := l.input[l.start:l.pos]
	if k, ok := keywords[s]; ok {
		l.emit(k)
	} else if IsTypeName(s) {
		l.emit(TokType)
	} else {
		l.emit(TokIdent)
	}
	return lexDefault
}

// Unescape resolves the only escape sequence the language knows, the two
// characters ‘\’ and ‘n’, into a newline.
func Unescape(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
