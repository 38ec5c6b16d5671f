package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	prompt      = "calc> "
	historyFile = ".calc_history"
)

const replHelp = `Enter an expression to evaluate it, e.g. 2*(3+(4-1)*5).
Commands:
  :help    Show this message
  :quit    Exit
Ctrl+C cancels the current line, Ctrl+D exits.`

// repl evaluates expressions entered at an interactive prompt until EOF or
// :quit. Errors in expressions are printed but do not end the session.
func repl(ev *evaluator) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		switch {
		case err == nil: // do nothing
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(ev.out)
			return nil
		default:
			return fmt.Errorf("reading input: %w", err)
		}
		line = strings.TrimSpace(line)
		if quit := command(ev, line); quit {
			return nil
		}
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		ln.AppendHistory(line)
		ev.eval(line)
	}
}

// command handles a REPL command line. It reports whether the session should
// end.
func command(ev *evaluator, line string) (quit bool) {
	if !strings.HasPrefix(line, ":") {
		return false
	}
	switch strings.ToLower(line) {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		fmt.Fprintln(ev.out, replHelp)
	default:
		fmt.Fprintf(ev.out, "unknown command %s. Type :help for help.\n", line)
	}
	return false
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}
