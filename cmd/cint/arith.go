package main

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/cint/integer"
)

type binaryOp func(x, y *integer.Integer) (*integer.Integer, error)

type unaryOp func(x *integer.Integer) (*integer.Integer, error)

var binaryOps = []struct {
	name  string
	short string
	op    binaryOp
}{
	{"add", "Print A + B", (*integer.Integer).Add},
	{"sub", "Print A - B; fails when B > A", (*integer.Integer).Sub},
	{"mul", "Print A * B", (*integer.Integer).Mul},
	{"div", "Print the quotient of A / B", (*integer.Integer).Div},
	{"mod", "Print the remainder of A / B", (*integer.Integer).Mod},
}

var unaryOps = []struct {
	name  string
	short string
	op    unaryOp
}{
	{"inc", "Print A + 1", (*integer.Integer).Inc},
	{"dec", "Print A - 1; fails when A is 0", (*integer.Integer).Dec},
}

func (a *app) arithCmds() (cmds []*cobra.Command) {
	for _, b := range binaryOps {
		cmds = append(cmds, &cobra.Command{
			Use:   b.name + " A B",
			Short: b.short,
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) (err error) {
				xs, err := a.operands(args)
				if err != nil {
					return err
				}

				a.log.Debug(b.name, "a.len", xs[0].Len(), "b.len", xs[1].Len())

				z, err := b.op(xs[0], xs[1])
				if err != nil {
					return err
				}

				return a.print(cmd.OutOrStdout(), z)
			},
		})
	}

	for _, u := range unaryOps {
		cmds = append(cmds, &cobra.Command{
			Use:   u.name + " A",
			Short: u.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) (err error) {
				x, err := a.operand(args[0])
				if err != nil {
					return err
				}

				z, err := u.op(x)
				if err != nil {
					return err
				}

				return a.print(cmd.OutOrStdout(), z)
			},
		})
	}

	return cmds
}
