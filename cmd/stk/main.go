package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/stk"
	"git.sr.ht/~mango/stk/config"
	"git.sr.ht/~mango/stk/log"
	"git.sr.ht/~mango/stk/vm/vars"
)

const version = "stk 0.1.0"

type flags struct {
	config   string
	script   string
	explicit bool // -c was given
	inline   bool // -e was given
	dump     bool
	strict   bool
	trace    bool
}

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Output = stderr

	opts, optind, err := getopt.Getopts(argv, "c:de:hstv")
	if err != nil {
		log.Err("%s", err)
		usage(stderr)
		return 1
	}

	f := flags{config: config.DefaultPath}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			f.config, f.explicit = opt.Value, true
		case 'd':
			f.dump = true
		case 'e':
			f.script, f.inline = opt.Value, true
		case 'h':
			usage(stdout)
			return 0
		case 's':
			f.strict = true
		case 't':
			f.trace = true
		case 'v':
			fmt.Fprintln(stdout, version)
			return 0
		}
	}
	rest := argv[optind:]

	cfg, err := config.Load(f.config, !f.explicit)
	if err != nil {
		log.Err("%s", err)
		return 1
	}
	cfg.Strict = cfg.Strict || f.strict
	cfg.Trace = cfg.Trace || f.trace
	log.Trace = cfg.Trace

	in := bufio.NewReader(stdin)
	interp, err := stk.New(cfg, in, stdout)
	if err != nil {
		log.Err("%s", err)
		return 1
	}

	switch {
	case f.inline && len(rest) == 0:
		err = interp.Exec(f.script)
	case !f.inline && len(rest) == 1:
		err = runFile(interp, rest[0])
	case !f.inline && len(rest) == 0:
		runRepl(interp, in, stderr, cfg.Prompt)
	default:
		usage(stderr)
		return 1
	}

	if f.dump {
		dumpEnv(stderr, interp.Env())
	}
	if err != nil {
		log.Err("%s", err)
		return 1
	}
	return 0
}

func runFile(interp *stk.Interpreter, name string) error {
	bytes, err := os.ReadFile(name)
	if err != nil {
		return errFileOp{"read", name, err}
	}
	return interp.Exec(string(bytes))
}

func dumpEnv(w io.Writer, env *vars.Env) {
	env.Each(func(name, val string) bool {
		fmt.Fprintf(w, "%s = %q\n", name, val)
		return true
	})
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: stk [-dhstv] [-c config] [-e script | file]")
}
