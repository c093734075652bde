package builtin

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"
)

func TestEcho(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := Echo(w, "no newline"); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	if buf.String() != "no newline" {
		t.Fatalf("Expected output to be flushed but got ‘%s’", buf.String())
	}
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, syscall.EPIPE }

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEchoErrors(t *testing.T) {
	if err := Echo(brokenPipe{}, "x"); err != nil {
		t.Fatalf("Expected EPIPE to be ignored but got %s", err)
	}
	if err := Echo(failing{}, "x"); err == nil {
		t.Fatalf("Expected write error to be returned")
	}
}

func TestReadLine(t *testing.T) {
	r := Reader(strings.NewReader("first  \r\nsecond\nlast"))
	for _, want := range []string{"first", "second", "last", "", ""} {
		got, err := ReadLine(r)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}
		if got != want {
			t.Fatalf("Expected ‘%s’ but got ‘%s’", want, got)
		}
	}
}

func TestReaderReuse(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("x"))
	if Reader(br) != br {
		t.Fatalf("Expected an existing *bufio.Reader to be reused")
	}
}
