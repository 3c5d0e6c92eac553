package main

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// stdoutIsTerminal reports whether stdout is an interactive terminal.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// writeDeck prints the deck on one line for terminals, or one card per line
// for pipes and files.
func writeDeck(w io.Writer, cards []string, terminal bool) error {
	var out string
	if terminal {
		out = strings.Join(cards, " ") + "\n"
	} else if len(cards) > 0 {
		out = strings.Join(cards, "\n") + "\n"
	}
	_, err := io.WriteString(w, out)
	return errors.Wrap(err, "write deck")
}
