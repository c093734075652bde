package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"git.sr.ht/~mango/stk"
	"git.sr.ht/~mango/stk/log"
)

// runRepl executes one line at a time against a single environment.  The
// same reader feeds ‘in’ statements, so a line read by ‘in -> x’ is not
// executed as source.
func runRepl(interp *stk.Interpreter, r *bufio.Reader, prompt io.Writer, ps string) {
	for {
		fmt.Fprint(prompt, ps)
		line, err := r.ReadString('\n')

		switch {
		case errors.Is(err, io.EOF):
			if line == "" {
				fmt.Fprintln(prompt, "^D")
				return
			}
		case err != nil:
			log.Err("%s", err)
			return
		}

		if err := interp.Exec(line); err != nil {
			log.Err("%s", err)
		}
	}
}
