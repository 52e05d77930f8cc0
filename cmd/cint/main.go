// Command cint does arithmetic on arbitrary precision packed decimal
// integers.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/zeebo/errs"
	"golang.org/x/term"
)

// Error is the error class for the command.
var Error = errs.Class("cint")

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	cmd := newRootCmd()

	err := cmd.Execute()
	if err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func printError(w io.Writer, err error) {
	errorColor.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
