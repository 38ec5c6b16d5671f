package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

// errFailed reports that at least one expression had an error. The errors
// themselves have already been printed.
var errFailed = errors.New("evaluation failed")

type options struct {
	in      string
	verb    string
	places  uint
	echo    bool
	dump    bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "calc [expression...]",
		Short: "Evaluate arithmetic expressions",
		Long: `Calc evaluates arithmetic expressions of non-negative decimal numbers,
the operators + - * /, and parentheses, e.g. "2*(3+(4-1)*5)".

Division keeps a fixed number of decimal places, rounding half up.

Expressions given as arguments are evaluated in order. With --in, each
non-blank line of the file is an expression. With neither, expressions are
read from standard input, with an interactive prompt if it is a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", `input file, one expression per line ("-" for stdin)`)
	f.StringVar(&o.verb, "fmt", "%v", "result formatting string")
	f.UintVar(&o.places, "places", calc.DefaultPlaces, "decimal places kept by division")
	f.BoolVar(&o.echo, "echo", false, "print the postfix form before each result")
	f.BoolVar(&o.dump, "dump", false, "dump the postfix tokens of each expression")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log each expression as it is evaluated")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	ev := &evaluator{
		out:  cmd.OutOrStdout(),
		errs: cmd.ErrOrStderr(),
		verb: o.verb + "\n",
		echo: o.echo,
		dump: o.dump,
		opts: []calc.Option{calc.Places(o.places)},

		errColor: newErrColor(cmd.ErrOrStderr()),
	}
	if o.verbose {
		ev.log = log.New(cmd.ErrOrStderr(), "calc: ", 0)
	}
	in := cmd.InOrStdin()
	switch {
	case o.in != "" && o.in != "-":
		f, err := os.Open(o.in)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := ev.lines(f); err != nil {
			return fmt.Errorf("reading %s: %w", o.in, err)
		}
	case o.in == "-", len(args) == 0:
		if f, ok := in.(*os.File); ok && len(args) == 0 && term.IsTerminal(int(f.Fd())) {
			return repl(ev)
		}
		if err := ev.lines(in); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	for _, arg := range args {
		ev.eval(arg)
	}
	if ev.failed > 0 {
		return errFailed
	}
	return nil
}

// lines evaluates each non-blank line of r.
func (ev *evaluator) lines(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		ev.eval(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}
	if ev.log != nil {
		ev.log.Printf("end of input, %d failed", ev.failed)
	}
	return nil
}
