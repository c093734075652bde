package builtin

import (
	"errors"
	"io"
	"syscall"
)

type flusher interface {
	Flush() error
}

// Echo writes s to w exactly, with no trailing newline, and flushes w if it
// buffers.  A reader that went away is not an error.
func Echo(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	if err == nil {
		if f, ok := w.(flusher); ok {
			err = f.Flush()
		}
	}
	if err != nil && !errors.Is(err, syscall.EPIPE) {
		return err
	}
	return nil
}
