package log

import (
	"fmt"
	"io"
	"os"
)

var (
	// Output is where diagnostics are written.
	Output io.Writer = os.Stderr

	// Trace enables Tracef.
	Trace = false
)

// Err prints a diagnostic to Output according to format.  It also prepends
// the program name and appends a newline, much like the warnx(3) function
// from C.
func Err(format string, args ...any) {
	fmt.Fprintf(Output, "stk: "+format+"\n", args...)
}

// Tracef is like Err but prints nothing unless Trace is set.
func Tracef(format string, args ...any) {
	if Trace {
		fmt.Fprintf(Output, "stk: trace: "+format+"\n", args...)
	}
}
