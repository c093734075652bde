package builtin

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Reader returns r as a *bufio.Reader, wrapping it only if needed, so that a
// caller that shares r with us does not lose buffered input.
func Reader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// ReadLine reads one line from r with trailing whitespace, including the
// newline, removed.  At end of input it returns whatever was read, possibly
// nothing, and no error.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}
