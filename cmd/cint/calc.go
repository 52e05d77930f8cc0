package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calebcase/cint/integer"
	"github.com/calebcase/cint/internal/lineio"
)

var calcOps = map[string]binaryOp{
	"+":   (*integer.Integer).Add,
	"-":   (*integer.Integer).Sub,
	"*":   (*integer.Integer).Mul,
	"/":   (*integer.Integer).Div,
	"%":   (*integer.Integer).Mod,
	"cat": integer.Cat,
}

func (a *app) calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc",
		Short: "Evaluate \"A op B\" lines read from standard input",
		Long: `Evaluate "A op B" lines read from standard input.

Operators: + - * / % cat. A blank line is ignored; "quit" or end of input
stops. Errors are reported and evaluation continues with the next line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			prompt := isTerminal(cmd.InOrStdin())

			for {
				if prompt {
					_, err = io.WriteString(out, "> ")
					if err != nil {
						return Error.Wrap(err)
					}
				}

				line, err := lineio.ReadLine(a.in)
				if errors.Is(err, io.EOF) {
					return nil
				}
				if err != nil {
					return err
				}

				line = strings.TrimSpace(line)
				if line == "quit" {
					return nil
				}
				if line == "" {
					continue
				}

				z, err := evaluate(line)
				if err != nil {
					a.log.Debug("calc", "line", line, "error", err)
					printError(cmd.ErrOrStderr(), err)

					continue
				}

				err = a.print(out, z)
				if err != nil {
					return err
				}
			}
		},
	}
}

// evaluate computes a single "A op B" expression.
func evaluate(line string) (z *integer.Integer, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return nil, Error.New("expected \"A op B\", got %q", line)
	}

	op, ok := calcOps[fields[1]]
	if !ok {
		return nil, Error.New("unknown operator %q", fields[1])
	}

	x, err := integer.New(fields[0])
	if err != nil {
		return nil, err
	}

	y, err := integer.New(fields[2])
	if err != nil {
		return nil, err
	}

	return op(x, y)
}
