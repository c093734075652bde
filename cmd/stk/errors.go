package main

import "fmt"

type errFileOp struct {
	desc string // Attempted action on file (‘read’, ‘open’, etc.)
	file string // File related to the error
	err  error  // Error that caused this
}

func (e errFileOp) Error() string {
	return fmt.Sprintf("Failed to %s file ‘%s’: %s", e.desc, e.file, e.err)
}

func (e errFileOp) Unwrap() error {
	return e.err
}
