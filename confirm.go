package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Confirmer asks the user to approve an action.
type Confirmer interface {
	// Confirm returns whether the action described by prompt is approved.
	Confirm(prompt string) bool
}

// lineConfirmer reads yes/no answers line by line. An empty answer
// accepts the default, which is yes.
type lineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// newLineConfirmer returns a Confirmer which prompts on out and reads
// answers from in.
func newLineConfirmer(in io.Reader, out io.Writer) *lineConfirmer {
	return &lineConfirmer{in: bufio.NewReader(in), out: out}
}

// newStdinConfirmer returns a Confirmer bound to the process's terminal.
func newStdinConfirmer() *lineConfirmer {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Warn("standard input is not a terminal; reading answers from it anyway")
	}
	return newLineConfirmer(os.Stdin, os.Stdout)
}

func (c *lineConfirmer) Confirm(prompt string) bool {
	for {
		fmt.Fprintf(c.out, "%s [Y/n] ", prompt)

		line, err := c.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))

		switch answer {
		case "", "y", "yes":
			if answer == "" && err != nil {
				// Input closed before an answer was given.
				fmt.Fprintln(c.out)
				return false
			}
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			fmt.Fprintln(c.out)
			return false
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}
