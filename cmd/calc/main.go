// Command calc evaluates arithmetic expressions.
//
// Expressions given as arguments are evaluated in order. With --in, each
// non-blank line of a file is an expression. With neither, calc reads
// expressions from standard input, interactively if it is a terminal.
package main

import (
	"errors"
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Print(err)
		}
		os.Exit(1)
	}
}
