package log

import (
	"bytes"
	"testing"
)

func capture(t *testing.T, f func()) string {
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	f()
	return buf.String()
}

func TestErr(t *testing.T) {
	got := capture(t, func() { Err("%d:%d: %s", 1, 2, "oops") })
	if want := "stk: 1:2: oops\n"; got != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, got)
	}
}

func TestTracef(t *testing.T) {
	got := capture(t, func() { Tracef("out <- %s", "x") })
	if got != "" {
		t.Fatalf("Expected no output with tracing off but got ‘%s’", got)
	}

	Trace = true
	t.Cleanup(func() { Trace = false })
	got = capture(t, func() { Tracef("out <- %s", "x") })
	if want := "stk: trace: out <- x\n"; got != want {
		t.Fatalf("Expected ‘%s’ but got ‘%s’", want, got)
	}
}
