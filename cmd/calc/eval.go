package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

// evaluator evaluates single expressions and prints their results.
type evaluator struct {
	out, errs io.Writer

	// verb is the result format, including the trailing newline.
	verb string
	echo bool
	dump bool
	opts []calc.Option

	// log is nil unless verbose logging is on.
	log *log.Logger

	// errColor formats error messages.
	errColor *color.Color

	// failed counts expressions that had errors.
	failed int
}

// dumper shows the fields of each token rather than the String form of the
// sequence.
var dumper = spew.ConfigState{
	Indent:                  "\t",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// eval evaluates src and prints the result or the error. It reports whether
// evaluation succeeded.
func (ev *evaluator) eval(src string) bool {
	e, err := calc.Compile(src)
	if err != nil {
		ev.fail(src, err)
		return false
	}
	if ev.log != nil {
		ev.log.Printf("%s => %v", src, e)
	}
	if ev.dump {
		dumper.Fdump(ev.out, e.Postfix())
	}
	r, err := e.Eval(ev.opts...)
	if err != nil {
		ev.fail(src, err)
		return false
	}
	if ev.echo {
		fmt.Fprintf(ev.out, "%v : ", e)
	}
	fmt.Fprintf(ev.out, ev.verb, r)
	return true
}

// newErrColor returns the color for error messages written to w. Color is
// only used when w is a terminal.
func newErrColor(w io.Writer) *color.Color {
	c := color.New(color.FgRed)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (ev *evaluator) fail(src string, err error) {
	ev.failed++
	if ev.log != nil {
		ev.log.Printf("%s failed: %v", src, err)
	}
	if src == "" {
		ev.errColor.Fprintln(ev.errs, err)
		return
	}
	ev.errColor.Fprintf(ev.errs, "%s: %v\n", src, err)
}
